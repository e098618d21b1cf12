//go:build unit

package shared_test

import (
	"errors"
	"testing"

	"autoflow/internal/domain/proposal"
	"autoflow/internal/infra"
	"autoflow/internal/pkg/errs"
	"autoflow/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateRepoErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		notFound error
		wantIs   error
		wantKind errs.Kind
	}{
		{name: "missing row", err: pgx.ErrNoRows, notFound: proposal.ErrProposalNotFound, wantIs: proposal.ErrProposalNotFound, wantKind: errs.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantIs: shared.ErrConcurrentChange, wantKind: errs.KindConflict},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, wantIs: shared.ErrConcurrentChange, wantKind: errs.KindConflict},
		{name: "numeric overflow", err: &pgconn.PgError{Code: "22003"}, wantIs: shared.ErrValueOutOfRange, wantKind: errs.KindValidation},
		{name: "driver failure stays internal", err: errors.New("connection reset"), wantKind: errs.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := shared.TranslateRepoErr(infra.WrapRepoErr("op failed", tt.err), tt.notFound)

			if tt.wantIs != nil {
				assert.True(t, errs.Is(err, tt.wantIs), "got %v", err)
			}
			assert.Equal(t, tt.wantKind, errs.KindOf(err))
		})
	}

	assert.NoError(t, shared.TranslateRepoErr(nil, nil))
}

//go:build unit

package invoice_test

import (
	"testing"
	"time"

	"autoflow/internal/domain/invoice"
	"autoflow/internal/domain/proposal"
	"autoflow/internal/pkg/errs"
	"autoflow/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		year, seq int
		want      string
	}{
		{2025, 1, "AF-2025-001"},
		{2025, 42, "AF-2025-042"},
		{2025, 999, "AF-2025-999"},
		{2026, 1000, "AF-2026-1000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			n, err := invoice.NewNumber(tt.year, tt.seq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())

			parsed, err := invoice.ParseNumber(tt.want)
			require.NoError(t, err)
			assert.Equal(t, n, parsed)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := invoice.NewNumber(2025, 0)
		assert.True(t, errs.Is(err, invoice.ErrInvalidNumber))

		for _, s := range []string{"", "AF-2025", "XX-2025-001", "AF-2025-1"} {
			_, err := invoice.ParseNumber(s)
			assert.True(t, errs.Is(err, invoice.ErrInvalidNumber), s)
		}
	})
}

func TestIssue(t *testing.T) {
	now := time.Date(2025, 5, 2, 10, 30, 0, 0, time.UTC)
	number, err := invoice.NewNumber(2025, 7)
	require.NoError(t, err)

	t.Run("completed proposal is billed at its agreed price", func(t *testing.T) {
		p := builder.NewProposalBuilder().WithStatus(proposal.StatusCompleted).WithPrice("20990").BuildDomain()

		inv, err := invoice.Issue(p, number, " bank transfer ", nil, now)
		require.NoError(t, err)

		assert.Equal(t, p.ID(), inv.ProposalID())
		assert.Equal(t, p.ClientID(), inv.ClientID())
		assert.Equal(t, "20990.00", inv.Amount().String())
		assert.Equal(t, "AF-2025-007", inv.Number().String())
		assert.Equal(t, time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), inv.IssuedOn())
		assert.Equal(t, "bank transfer", inv.Notes())
		assert.False(t, inv.IsPaid())
	})

	t.Run("every other status is a precondition failure", func(t *testing.T) {
		for _, status := range proposal.AllStatuses {
			if status == proposal.StatusCompleted {
				continue
			}
			p := builder.NewProposalBuilder().WithStatus(status).BuildDomain()
			_, err := invoice.Issue(p, number, "", nil, now)
			assert.True(t, errs.Is(err, invoice.ErrProposalNotCompleted), status.String())
			assert.Equal(t, errs.KindPrecondition, errs.KindOf(err))
		}
	})

	t.Run("paid date before issue date", func(t *testing.T) {
		p := builder.NewProposalBuilder().WithStatus(proposal.StatusCompleted).BuildDomain()
		paid := now.AddDate(0, 0, -1)
		_, err := invoice.Issue(p, number, "", &paid, now)
		assert.True(t, errs.Is(err, invoice.ErrInvalidPaidDate))
	})
}

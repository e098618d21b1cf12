//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"autoflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errVehicleSold := errs.NewKind(errs.ErrValidation, "vehicle sold")
	errLocked := errs.NewKind(errs.ErrLocked, "configuration locked")

	cases := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error is internal", err: errors.New("boom"), want: errs.KindInternal},
		{name: "kind sentinel itself", err: errs.ErrConflict, want: errs.KindConflict},
		{name: "specific sentinel", err: errVehicleSold, want: errs.KindValidation},
		{name: "wrapped specific sentinel", err: errs.Wrap(errLocked, "delete configuration"), want: errs.KindLocked},
		{name: "marked low level error", err: errs.Mark(errors.New("23505"), errs.ErrConflict), want: errs.KindConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.KindOf(tc.err))
		})
	}
}

func TestIs_SpecificSentinelSurvivesWrapping(t *testing.T) {
	errSpecific := errs.NewKind(errs.ErrPrecondition, "proposal not completed")
	wrapped := errs.Wrap(errs.Wrap(errSpecific, "request invoice"), "handler")

	assert.True(t, errs.Is(wrapped, errSpecific))
	assert.True(t, errs.Is(wrapped, errs.ErrPrecondition))
	assert.False(t, errs.Is(wrapped, errs.ErrValidation))
}

func TestIs_SentinelsOfSameKindStayDistinct(t *testing.T) {
	errSold := errs.NewKind(errs.ErrValidation, "vehicle sold")
	errNote := errs.NewKind(errs.ErrValidation, "note too long")

	assert.False(t, errs.Is(errSold, errNote))
	assert.False(t, errs.Is(errs.Wrap(errSold, "create"), errNote))
	assert.True(t, errs.Is(errSold, errs.ErrValidation))
}

func TestMark_WithSpecificSentinel(t *testing.T) {
	errInvalid := errs.NewKind(errs.ErrValidation, "invalid amount")
	marked := errs.Mark(errors.New("strconv: bad digit"), errInvalid)

	assert.True(t, errs.Is(marked, errInvalid))
	assert.Equal(t, errs.KindValidation, errs.KindOf(marked))
	assert.Contains(t, marked.Error(), "bad digit")
}

func TestReason(t *testing.T) {
	errLocked := errs.NewKind(errs.ErrLocked, "configuration locked")

	assert.Equal(t, "configuration locked", errs.Reason(errs.Wrap(errLocked, "pq: select failed")))
	assert.Equal(t, "", errs.Reason(errors.New("boom")))
	assert.Equal(t, "", errs.Reason(nil))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.New("boom"), 2)
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "boom")
}

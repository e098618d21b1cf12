//go:build unit

package patch_test

import (
	"testing"

	"autoflow/internal/pkg/patch"
	"autoflow/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "kept", patch.Coalesce(nil, "kept"))
	assert.Equal(t, "", patch.Coalesce(ptr.Of(""), "kept"), "an explicit zero value wins")
}

func TestAssign(t *testing.T) {
	price := 100
	assert.False(t, patch.Assign(&price, nil))
	assert.Equal(t, 100, price)

	assert.True(t, patch.Assign(&price, ptr.Of(250)))
	assert.Equal(t, 250, price)
}

package ptr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xeptore/dcue/ptr"
)

func TestValueOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fallback", ptr.ValueOr[string](nil, "fallback"))
	assert.Equal(t, "value", ptr.ValueOr(ptr.Of("value"), "fallback"))
	assert.Equal(t, 0, ptr.ValueOr(ptr.Of(0), 7))
}

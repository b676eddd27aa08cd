package iterutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xeptore/dcue/iterutil"
)

func TestIntIterator(t *testing.T) {
	t.Parallel()

	it := iterutil.Int(0)
	assert.Equal(t, 1, it.Next())
	assert.Equal(t, 2, it.Next())

	it.Reset()
	assert.Equal(t, 1, it.Next())
}

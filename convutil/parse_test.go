package convutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xeptore/dcue/convutil"
)

func TestParseOr(t *testing.T) {
	t.Parallel()

	t.Run("signed", func(t *testing.T) {
		t.Parallel()

		v, ok := convutil.ParseOr("-12", 0)
		assert.True(t, ok)
		assert.Equal(t, -12, v)

		v, ok = convutil.ParseOr("x1", 3)
		assert.False(t, ok)
		assert.Equal(t, 3, v)
	})

	t.Run("unsigned", func(t *testing.T) {
		t.Parallel()

		v, ok := convutil.ParseOr[uint]("2", 0)
		assert.True(t, ok)
		assert.Equal(t, uint(2), v)

		v, ok = convutil.ParseOr[uint]("-2", 0)
		assert.False(t, ok)
		assert.Equal(t, uint(0), v)
	})

	t.Run("overflow", func(t *testing.T) {
		t.Parallel()

		v, ok := convutil.ParseOr[uint8]("256", 0)
		assert.False(t, ok)
		assert.Equal(t, uint8(0), v)

		w, ok := convutil.ParseOr[int8]("127", 0)
		assert.True(t, ok)
		assert.Equal(t, int8(127), w)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		v, ok := convutil.ParseOr("", 0)
		assert.False(t, ok)
		assert.Zero(t, v)
	})
}

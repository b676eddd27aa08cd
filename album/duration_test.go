package album_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/dcue/album"
)

func TestParseDuration(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		d := album.ParseDuration("3:45")
		require.NotNil(t, d)
		assert.Equal(t, album.Duration{Minutes: 3, Seconds: 45}, *d)
		assert.Equal(t, 225, d.TotalSeconds())
		assert.Equal(t, "3:45", d.String())
	})

	t.Run("whitespace", func(t *testing.T) {
		t.Parallel()
		d := album.ParseDuration(" 12 : 05 ")
		require.NotNil(t, d)
		assert.Equal(t, album.Duration{Minutes: 12, Seconds: 5}, *d)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", "203", "1:2:3", "1:02:03:04"} {
			assert.Nil(t, album.ParseDuration(s), "duration %q", s)
		}
	})

	t.Run("signed_components_read_zero", func(t *testing.T) {
		t.Parallel()
		d := album.ParseDuration("-1:+5")
		require.NotNil(t, d)
		assert.Equal(t, album.Duration{Minutes: 0, Seconds: 0}, *d)

		d = album.ParseDuration("4:-30")
		require.NotNil(t, d)
		assert.Equal(t, album.Duration{Minutes: 4, Seconds: 0}, *d)
		assert.GreaterOrEqual(t, d.TotalSeconds(), 0)
	})

	t.Run("non_numeric_reads_zero", func(t *testing.T) {
		t.Parallel()
		d := album.ParseDuration("x:30")
		require.NotNil(t, d)
		assert.Equal(t, album.Duration{Minutes: 0, Seconds: 30}, *d)
	})
}

package discogs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/dcue/discogs"
)

func TestParseRef(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		tests := map[string]discogs.Ref{
			"1432":       {Kind: discogs.KindRelease, ID: 1432},
			" r=1 ":      {Kind: discogs.KindRelease, ID: 1},
			"Release=7":  {Kind: discogs.KindRelease, ID: 7},
			"m=218406":   {Kind: discogs.KindMaster, ID: 218406},
			"MASTER=218": {Kind: discogs.KindMaster, ID: 218},
			"https://www.discogs.com/release/249504-Rick-Astley-Never-Gonna-Give-You-Up": {Kind: discogs.KindRelease, ID: 249504},
			"https://www.discogs.com/master/96559-Rick-Astley-Never-Gonna-Give-You-Up":   {Kind: discogs.KindMaster, ID: 96559},
			"https://discogs.com/de/release/1":                                           {Kind: discogs.KindRelease, ID: 1},
		}
		for in, expected := range tests {
			ref, err := discogs.ParseRef(in)
			require.NoError(t, err, in)
			assert.Equal(t, expected, ref, in)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		tests := []string{
			"",
			"abc",
			"0",
			"-5",
			"x=12",
			"r=",
			"https://example.com/release/1",
			"https://www.discogs.com/artist/1-Someone",
			"https://www.discogs.com/release/abc",
		}
		for _, in := range tests {
			_, err := discogs.ParseRef(in)
			assert.ErrorIs(t, err, discogs.ErrInvalidRef, in)
		}
	})

	t.Run("paths", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/releases/1", discogs.Ref{Kind: discogs.KindRelease, ID: 1}.Path())
		assert.Equal(t, "/masters/2", discogs.Ref{Kind: discogs.KindMaster, ID: 2}.Path())
		assert.Equal(t, "master/2", discogs.Ref{Kind: discogs.KindMaster, ID: 2}.String())
	})
}

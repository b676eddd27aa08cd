package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xeptore/dcue/naming"
)

func TestArtistFacets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected string
	}{
		{in: "Aphex Twin", expected: "Aphex Twin"},
		{in: "Nirvana (2)", expected: "Nirvana"},
		{in: "Beatles, The", expected: "The Beatles"},
		{in: "Prodigy, The (3)", expected: "The Prodigy"},
		{in: "  Boards   of Canada ", expected: "Boards of Canada"},
		{in: "Earth, Wind & Fire", expected: "Earth, Wind & Fire"},
		{in: "Sigur Rós", expected: "Sigur Rós"},
		{in: "Kraftwerk (1970)", expected: "Kraftwerk"},
		{in: "", expected: ""},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, naming.ArtistFacets(test.in))
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		for _, test := range tests {
			once := naming.ArtistFacets(test.in)
			assert.Equal(t, once, naming.ArtistFacets(once))
		}
	})
}

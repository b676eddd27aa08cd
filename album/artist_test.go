package album_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xeptore/dcue/album"
)

func TestResolveArtists(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, album.ResolveArtists(nil, album.Identity))
		assert.Empty(t, album.ResolveArtists([]album.ArtistEntry{}, nil))
	})

	t.Run("single", func(t *testing.T) {
		t.Parallel()
		entries := []album.ArtistEntry{{Name: "Aphex Twin"}}
		assert.Equal(t, "Aphex Twin", album.ResolveArtists(entries, album.Identity))
	})

	t.Run("name_variation", func(t *testing.T) {
		t.Parallel()
		entries := []album.ArtistEntry{{Name: "Richard D. James", NameVariation: "AFX"}}
		assert.Equal(t, "AFX", album.ResolveArtists(entries, album.Identity))
	})

	t.Run("connectors", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			entries  []album.ArtistEntry
			expected string
		}{
			{
				name: "ampersand",
				entries: []album.ArtistEntry{
					{Name: "Simon", JoinConnector: "&"},
					{Name: "Garfunkel"},
				},
				expected: "Simon & Garfunkel",
			},
			{
				name: "comma",
				entries: []album.ArtistEntry{
					{Name: "Crosby", JoinConnector: ","},
					{Name: "Stills", JoinConnector: "&"},
					{Name: "Nash"},
				},
				expected: "Crosby, Stills & Nash",
			},
			{
				name: "featuring",
				entries: []album.ArtistEntry{
					{Name: "Daft Punk", JoinConnector: "feat."},
					{Name: "Pharrell Williams", NameVariation: "Pharrell"},
				},
				expected: "Daft Punk feat. Pharrell",
			},
			{
				name: "no_connector",
				entries: []album.ArtistEntry{
					{Name: "A"},
					{Name: "B"},
				},
				expected: "A B",
			},
			{
				name: "trailing_connector",
				entries: []album.ArtistEntry{
					{Name: "A", JoinConnector: "&"},
				},
				expected: "A &",
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				t.Parallel()
				got := album.ResolveArtists(test.entries, album.Identity)
				assert.Equal(t, test.expected, got)
				assert.NotContains(t, got, "  ")
				assert.Equal(t, strings.TrimSpace(got), got)
			})
		}
	})

	t.Run("all_commas", func(t *testing.T) {
		t.Parallel()
		entries := []album.ArtistEntry{
			{Name: "A", JoinConnector: ","},
			{Name: "B", JoinConnector: ","},
			{Name: "C", JoinConnector: ","},
		}
		got := album.ResolveArtists(entries, album.Identity)
		assert.Equal(t, "A, B, C,", got)
		assert.NotContains(t, got, " ,")
	})

	t.Run("filtered_to_empty", func(t *testing.T) {
		t.Parallel()
		filter := func(name string) string { return strings.TrimSpace(name) }

		entries := []album.ArtistEntry{
			{Name: "  "},
			{Name: "B", JoinConnector: ","},
			{Name: "C"},
		}
		assert.Equal(t, "B, C", album.ResolveArtists(entries, filter))

		entries = []album.ArtistEntry{
			{Name: "A", JoinConnector: "&"},
			{Name: " ", JoinConnector: "&"},
			{Name: "B"},
		}
		assert.Equal(t, "A & B", album.ResolveArtists(entries, filter))

		assert.Empty(t, album.ResolveArtists([]album.ArtistEntry{{Name: " "}}, filter))
	})

	t.Run("filter_applied_once_per_entry", func(t *testing.T) {
		t.Parallel()
		var calls []string
		filter := func(name string) string {
			calls = append(calls, name)
			return strings.ToUpper(name)
		}
		entries := []album.ArtistEntry{
			{Name: "a", JoinConnector: "/"},
			{Name: "b", NameVariation: "bee"},
		}
		assert.Equal(t, "A / BEE", album.ResolveArtists(entries, filter))
		assert.Equal(t, []string{"a", "bee"}, calls)
	})
}

package album

import (
	"strings"
)

// ArtistEntry is one credit of a multi-artist field. NameVariation, when
// non-empty, replaces Name for display. JoinConnector is placed between this
// artist and the next one.
type ArtistEntry struct {
	Name          string `json:"name"`
	NameVariation string `json:"anv"`
	JoinConnector string `json:"join"`
}

func (a ArtistEntry) displayName() string {
	if a.NameVariation != "" {
		return a.NameVariation
	}
	return a.Name
}

// NameFilter cleans up a single artist credit before it is concatenated.
type NameFilter func(name string) string

func Identity(name string) string { return name }

// ResolveArtists joins artist credits into one display string. A comma
// connector sticks to the preceding name, any other connector is surrounded
// by spaces. An empty list resolves to an empty string. Credits the filter
// reduces to an empty name are skipped along with their connector.
func ResolveArtists(entries []ArtistEntry, filter NameFilter) string {
	if nil == filter {
		filter = Identity
	}

	var b strings.Builder
	for _, entry := range entries {
		name := filter(entry.displayName())
		if name == "" {
			continue
		}
		b.WriteString(name)
		if join := entry.JoinConnector; join != "" {
			if join != "," {
				b.WriteByte(' ')
			}
			b.WriteString(join)
		}
		b.WriteByte(' ')
	}

	out := b.String()
	if len(out) == 0 {
		return ""
	}
	return out[:len(out)-1]
}

package naming

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Discogs disambiguates artists sharing a name with a numeric suffix,
	// e.g. "Nirvana (2)".
	disambiguationSuffix = regexp.MustCompile(`\s+\(\d+\)$`)
	articleSuffixes      = []string{"The", "A", "An", "Les", "Los", "Die", "Der", "Das", "La", "Le", "El", "Il"}
)

// ArtistFacets cleans up a single artist credit for display. It composes the
// string to NFC, collapses whitespace, drops the catalog's numeric
// disambiguation suffix and moves a trailing article back to the front
// ("Beatles, The" becomes "The Beatles").
func ArtistFacets(name string) string {
	name = norm.NFC.String(name)
	name = strings.Join(strings.Fields(name), " ")
	name = disambiguationSuffix.ReplaceAllString(name, "")
	return frontArticle(name)
}

func frontArticle(name string) string {
	i := strings.LastIndex(name, ", ")
	if i < 0 {
		return name
	}
	article := name[i+2:]
	for _, a := range articleSuffixes {
		if article == a {
			return article + " " + name[:i]
		}
	}
	return name
}

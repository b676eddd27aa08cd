package album

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/xeptore/dcue/convutil"
	"github.com/xeptore/dcue/iterutil"
	"github.com/xeptore/dcue/ptr"
)

// Release is a decoded source record before normalization.
type Release struct {
	Title      string
	Year       *int
	Styles     []string
	Genres     []string
	Artists    []ArtistEntry
	HasArtists bool
	Tracklist  []RawTrack
}

// RawTrack is one tracklist row as it appears in the source record.
type RawTrack struct {
	Position string
	Title    string
	Duration *string
	// Artists is nil when the row has no artist list of its own. A non-nil
	// empty slice is an explicit, empty list.
	Artists []ArtistEntry
}

const discSeparators = ".-"

type Normalizer struct {
	filter NameFilter
	logger zerolog.Logger
}

func NewNormalizer(filter NameFilter, logger zerolog.Logger) *Normalizer {
	if nil == filter {
		filter = Identity
	}
	return &Normalizer{
		filter: filter,
		logger: logger,
	}
}

func (n *Normalizer) Normalize(rel Release) Album {
	a := Album{
		Title:       rel.Title,
		Year:        nil,
		Genre:       genre(rel),
		AlbumArtist: "",
		Discs:       nil,
	}
	if nil != rel.Year {
		a.Year = ptr.Of(strconv.Itoa(*rel.Year))
	}
	if rel.HasArtists {
		a.AlbumArtist = ResolveArtists(rel.Artists, n.filter)
	}
	a.Discs = n.Discs(a.AlbumArtist, rel.Tracklist)
	return a
}

// genre prefers the first style, which is usually more specific than the
// first generic genre.
func genre(rel Release) *string {
	if len(rel.Styles) > 0 {
		return ptr.Of(rel.Styles[0])
	}
	if len(rel.Genres) > 0 {
		return ptr.Of(rel.Genres[0])
	}
	return nil
}

// Discs walks the tracklist and groups tracks into discs. Rows with an empty
// position are headings and are skipped. A position whose prefix before the
// first '.' or '-' is a number greater than the current disc index opens a
// new disc. Tracks are numbered from 1 within each disc in encounter order.
func (n *Normalizer) Discs(albumArtist string, tracklist []RawTrack) []Disc {
	var (
		discs     = []Disc{{Tracks: nil}}
		discIndex uint
		trackNum  = iterutil.Int(0)
	)

	for i, raw := range tracklist {
		if raw.Position == "" {
			continue
		}

		if sep := strings.IndexAny(raw.Position, discSeparators); sep >= 0 {
			prefix := raw.Position[:sep]
			discNum, ok := convutil.ParseOr[uint](prefix, 0)
			if !ok {
				n.logger.Warn().
					Int("row", i).
					Str("position", raw.Position).
					Str("prefix", prefix).
					Msg("Position has a non-numeric disc prefix. Keeping current disc")
			}
			if discNum > discIndex {
				discIndex++
				discs = append(discs, Disc{Tracks: nil})
				trackNum.Reset()
			}
		}

		t := Track{
			Position: trackNum.Next(),
			Title:    raw.Title,
			Artist:   albumArtist,
			Duration: nil,
		}
		if nil != raw.Artists {
			t.Artist = ResolveArtists(raw.Artists, n.filter)
		}
		if nil != raw.Duration {
			d, clean := parseDuration(*raw.Duration)
			if !clean {
				n.logger.Warn().
					Int("row", i).
					Str("position", raw.Position).
					Str("duration", *raw.Duration).
					Msg("Duration has a component that is not an unsigned number. Reading it as zero")
			}
			t.Duration = d
		}

		discs[discIndex].Tracks = append(discs[discIndex].Tracks, t)
	}

	if len(discs) > 1 {
		if placeholder := discs[0]; len(placeholder.Tracks) > 0 {
			n.logger.Warn().
				Int("tracks", len(placeholder.Tracks)).
				Msg("Dropping tracks listed before the first disc marker")
		}
		discs = discs[1:]
	}

	out := make([]Disc, 0, len(discs))
	for _, d := range discs {
		if len(d.Tracks) > 0 {
			out = append(out, d)
		}
	}
	return out
}

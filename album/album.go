package album

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xeptore/flaw/v8"

	"github.com/xeptore/dcue/ptr"
)

type Duration struct {
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

func (d Duration) TotalSeconds() int {
	return d.Minutes*60 + d.Seconds
}

func (d Duration) String() string {
	return fmt.Sprintf("%d:%02d", d.Minutes, d.Seconds)
}

type Track struct {
	Position int       `json:"position"`
	Title    string    `json:"title"`
	Artist   string    `json:"artist"`
	Duration *Duration `json:"duration"`
}

type Disc struct {
	Tracks []Track `json:"tracks"`
}

// Duration sums the durations of all tracks that have one.
func (d Disc) Duration() Duration {
	var total int
	for _, t := range d.Tracks {
		if nil != t.Duration {
			total += t.Duration.TotalSeconds()
		}
	}
	return Duration{Minutes: total / 60, Seconds: total % 60}
}

type Album struct {
	Title       string  `json:"title"`
	Year        *string `json:"year"`
	Genre       *string `json:"genre"`
	AlbumArtist string  `json:"album_artist"`
	Discs       []Disc  `json:"discs"`
}

func (a Album) TrackCount() int {
	var n int
	for _, d := range a.Discs {
		n += len(d.Tracks)
	}
	return n
}

func (a Album) FlawP() flaw.P {
	return flaw.P{
		"title":        a.Title,
		"year":         ptr.ValueOr(a.Year, ""),
		"genre":        ptr.ValueOr(a.Genre, ""),
		"album_artist": a.AlbumArtist,
		"discs":        len(a.Discs),
		"tracks":       a.TrackCount(),
	}
}

func (a Album) Log(e *zerolog.Event) {
	e.
		Str("title", a.Title).
		Str("year", ptr.ValueOr(a.Year, "")).
		Str("genre", ptr.ValueOr(a.Genre, "")).
		Str("album_artist", a.AlbumArtist).
		Int("discs", len(a.Discs)).
		Int("tracks", a.TrackCount())
}

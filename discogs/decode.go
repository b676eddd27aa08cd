package discogs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"github.com/xeptore/dcue/album"
	"github.com/xeptore/dcue/convutil"
	"github.com/xeptore/dcue/ptr"
)

var ErrInvalidRecord = errors.New("invalid release record")

// Decode converts a raw release or master record into a typed release.
// Missing keys take their default values. Only a malformed document or a
// tracklist that is not an array is rejected.
func Decode(raw []byte) (album.Release, error) {
	if !gjson.ValidBytes(raw) {
		return album.Release{}, fmt.Errorf("%w: not a valid JSON document", ErrInvalidRecord)
	}

	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return album.Release{}, fmt.Errorf("%w: expected an object, got %s", ErrInvalidRecord, root.Type)
	}

	tracklist := root.Get("tracklist")
	if tracklist.Exists() && !tracklist.IsArray() && tracklist.Type != gjson.Null {
		return album.Release{}, fmt.Errorf("%w: tracklist is %s, expected an array", ErrInvalidRecord, tracklist.Type)
	}

	artists := root.Get("artists")
	return album.Release{
		Title:      stringOr(root, "title", ""),
		Year:       intOr(root, "year"),
		Styles:     stringList(root.Get("styles")),
		Genres:     stringList(root.Get("genres")),
		Artists:    decodeArtists(artists),
		HasArtists: artists.Exists(),
		Tracklist:  lo.Map(tracklist.Array(), func(r gjson.Result, _ int) album.RawTrack { return decodeTrack(r) }),
	}, nil
}

func decodeTrack(r gjson.Result) album.RawTrack {
	t := album.RawTrack{
		Position: stringOr(r, "position", ""),
		Title:    stringOr(r, "title", ""),
		Duration: nil,
		Artists:  nil,
	}
	if d := r.Get("duration"); d.Exists() {
		t.Duration = ptr.Of(d.String())
	}
	if a := r.Get("artists"); a.Exists() {
		t.Artists = decodeArtists(a)
	}
	return t
}

// decodeArtists never returns nil for an existing key so that callers can
// tell an explicit empty list from a missing one.
func decodeArtists(r gjson.Result) []album.ArtistEntry {
	if !r.Exists() {
		return nil
	}
	if !r.IsArray() {
		return []album.ArtistEntry{}
	}
	return lo.Map(r.Array(), func(a gjson.Result, _ int) album.ArtistEntry {
		return album.ArtistEntry{
			Name:          stringOr(a, "name", ""),
			NameVariation: stringOr(a, "anv", ""),
			JoinConnector: stringOr(a, "join", ""),
		}
	})
}

func stringOr(r gjson.Result, key, def string) string {
	v := r.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return def
	}
	return v.String()
}

func intOr(r gjson.Result, key string) *int {
	v := r.Get(key)
	switch v.Type { //nolint:exhaustive
	case gjson.Number:
		return ptr.Of(int(v.Int()))
	case gjson.String:
		if n, ok := convutil.ParseOr(strings.TrimSpace(v.Str), 0); ok {
			return &n
		}
	}
	return nil
}

func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	return lo.FilterMap(r.Array(), func(v gjson.Result, _ int) (string, bool) {
		return v.String(), v.Type == gjson.String && v.Str != ""
	})
}

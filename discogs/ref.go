package discogs

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var ErrInvalidRef = errors.New("invalid release reference")

type Kind string

const (
	KindRelease Kind = "release"
	KindMaster  Kind = "master"
)

// Ref identifies a release or a master release in the catalog.
type Ref struct {
	Kind Kind
	ID   uint64
}

func (r Ref) String() string {
	return string(r.Kind) + "/" + strconv.FormatUint(r.ID, 10)
}

// Path is the API resource path of the referenced record.
func (r Ref) Path() string {
	return "/" + string(r.Kind) + "s/" + strconv.FormatUint(r.ID, 10)
}

// ParseRef accepts "<id>", "r=<id>", "release=<id>", "m=<id>", "master=<id>"
// and discogs.com release or master page links.
func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return parseLink(s)
	}

	kind := KindRelease
	id := lower
	if k, v, ok := strings.Cut(lower, "="); ok {
		switch k {
		case "r", "release":
			kind = KindRelease
		case "m", "master":
			kind = KindMaster
		default:
			return Ref{}, fmt.Errorf("%w: unknown kind %q in %q", ErrInvalidRef, k, s)
		}
		id = v
	}

	n, err := parseID(id)
	if nil != err {
		return Ref{}, fmt.Errorf("%w: %q: %v", ErrInvalidRef, s, err)
	}
	return Ref{Kind: kind, ID: n}, nil
}

func parseID(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fmt.Errorf("id %q is not a number", s)
	}
	if n == 0 {
		return 0, errors.New("id must be positive")
	}
	return n, nil
}

func parseLink(s string) (Ref, error) {
	u, err := url.Parse(s)
	if nil != err {
		return Ref{}, fmt.Errorf("%w: %q: %v", ErrInvalidRef, s, err)
	}

	switch strings.ToLower(u.Host) {
	case "discogs.com", "www.discogs.com":
	default:
		return Ref{}, fmt.Errorf("%w: %q is not a discogs.com link", ErrInvalidRef, s)
	}

	// Links may be language prefixed, e.g. /de/release/123-Artist-Title.
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) == 3 {
		parts = parts[1:]
	}
	if len(parts) != 2 {
		return Ref{}, fmt.Errorf("%w: unexpected link path %q", ErrInvalidRef, u.Path)
	}

	var kind Kind
	switch strings.ToLower(parts[0]) {
	case "release":
		kind = KindRelease
	case "master":
		kind = KindMaster
	default:
		return Ref{}, fmt.Errorf("%w: unsupported link kind %q", ErrInvalidRef, parts[0])
	}

	id, _, _ := strings.Cut(parts[1], "-")
	n, err := parseID(id)
	if nil != err {
		return Ref{}, fmt.Errorf("%w: %q: %v", ErrInvalidRef, s, err)
	}
	return Ref{Kind: kind, ID: n}, nil
}

package album

import (
	"strings"

	"github.com/xeptore/dcue/convutil"
)

// ParseDuration parses an "MM:SS" string. Anything that does not split into
// exactly two components has no duration. A component that is not an
// unsigned number reads as zero.
func ParseDuration(s string) *Duration {
	d, _ := parseDuration(s)
	return d
}

// parseDuration additionally reports whether every component was numeric.
func parseDuration(s string) (d *Duration, clean bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return nil, true
	}

	minutes, minutesOK := component(parts[0])
	seconds, secondsOK := component(parts[1])
	return &Duration{Minutes: minutes, Seconds: seconds}, minutesOK && secondsOK
}

// component rejects signs so that a duration is never negative.
func component(s string) (int, bool) {
	v, ok := convutil.ParseOr[uint16](strings.TrimSpace(s), 0)
	return int(v), ok
}

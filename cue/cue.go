package cue

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xeptore/dcue/album"
)

const (
	lineEnd         = "\r\n"
	discPlaceholder = "?"
)

var (
	ErrNoTracks         = errors.New("album has no tracks")
	ErrDiscPlaceholder  = errors.New("multi-disc album needs a '?' disc number placeholder in the audio file name")
	ErrMissingDuration  = errors.New("track has no duration")
	ErrInvalidAudioPath = errors.New("audio file name is empty")
)

// Sheet is the cue sheet of a single disc.
type Sheet struct {
	Disc      int
	AudioPath string
	Path      string
	Content   string
}

// Build renders one cue sheet per disc of a. The '?' characters of
// audioPath are replaced by the disc number. Each sheet is placed next to
// its audio file with a .cue extension.
func Build(a album.Album, audioPath, comment string) ([]Sheet, error) {
	if audioPath == "" || strings.HasSuffix(audioPath, string(filepath.Separator)) {
		return nil, ErrInvalidAudioPath
	}
	if len(a.Discs) == 0 {
		return nil, ErrNoTracks
	}
	if len(a.Discs) > 1 && !strings.Contains(filepath.Base(audioPath), discPlaceholder) {
		return nil, ErrDiscPlaceholder
	}

	sheets := make([]Sheet, 0, len(a.Discs))
	for i, disc := range a.Discs {
		discNum := i + 1
		discAudio := filepath.Join(
			filepath.Dir(audioPath),
			strings.ReplaceAll(filepath.Base(audioPath), discPlaceholder, strconv.Itoa(discNum)),
		)
		content, err := render(a, disc, filepath.Base(discAudio), comment)
		if nil != err {
			return nil, fmt.Errorf("disc %d: %w", discNum, err)
		}
		sheets = append(sheets, Sheet{
			Disc:      discNum,
			AudioPath: discAudio,
			Path:      strings.TrimSuffix(discAudio, filepath.Ext(discAudio)) + ".cue",
			Content:   content,
		})
	}
	return sheets, nil
}

func render(a album.Album, disc album.Disc, audioName, comment string) (string, error) {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteString(lineEnd)
	}

	if nil != a.Genre {
		line("REM GENRE %s", quote(*a.Genre))
	}
	if nil != a.Year {
		line("REM DATE %s", *a.Year)
	}
	if comment != "" {
		line("REM COMMENT %s", quote(comment))
	}
	line("PERFORMER %s", quote(a.AlbumArtist))
	line("TITLE %s", quote(a.Title))
	line("FILE %s %s", quote(audioName), fileType(audioName))

	var offset int
	for i, t := range disc.Tracks {
		line("  TRACK %02d AUDIO", t.Position)
		line("    TITLE %s", quote(t.Title))
		line("    PERFORMER %s", quote(t.Artist))
		line("    INDEX 01 %s", index(offset))

		if nil == t.Duration {
			if i < len(disc.Tracks)-1 {
				return "", fmt.Errorf("%w: track %d %q, cannot place track %d", ErrMissingDuration, t.Position, t.Title, disc.Tracks[i+1].Position)
			}
			continue
		}
		offset += t.Duration.TotalSeconds()
	}
	return b.String(), nil
}

// index formats an offset in seconds as MM:SS:FF. Minutes are not capped at
// 99 since long discs exceed it.
func index(seconds int) string {
	return fmt.Sprintf("%02d:%02d:00", seconds/60, seconds%60)
}

// quote wraps s in double quotes. Cue sheets have no escape sequence, so
// embedded double quotes become single quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `'`) + `"`
}

func fileType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp3":
		return "MP3"
	case ".aif", ".aiff":
		return "AIFF"
	default:
		return "WAVE"
	}
}

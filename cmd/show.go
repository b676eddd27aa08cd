package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"
	"github.com/xeptore/flaw/v8"

	"github.com/xeptore/dcue/album"
	"github.com/xeptore/dcue/discogs"
	"github.com/xeptore/dcue/ptr"
)

var (
	colorAlbum  = color.New(color.FgCyan, color.Bold)
	colorDisc   = color.New(color.FgYellow)
	colorTrack  = color.New(color.FgGreen)
	colorArtist = color.New(color.FgMagenta)
	colorFaint  = color.New(color.Faint)
)

func show(cliCtx *cli.Context) error {
	if n := cliCtx.NArg(); n != 1 {
		return fmt.Errorf("expected <release> argument, got %d", n)
	}
	ref, err := discogs.ParseRef(cliCtx.Args().First())
	if nil != err {
		return err
	}

	ctx, cancel := signal.NotifyContext(cliCtx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := setup(cliCtx)
	if nil != err {
		return err
	}
	defer a.Close()

	alb, err := a.album(ctx, ref)
	if nil != err {
		return albumError(ctx, ref, err, flaw.P{"ref": ref.String()})
	}

	if cliCtx.Bool(flagJSON) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(alb); nil != err {
			return fmt.Errorf("failed to encode album: %v", err)
		}
		return nil
	}

	printAlbum(os.Stdout, alb)
	return nil
}

func printAlbum(w io.Writer, a album.Album) {
	colorAlbum.Fprintf(w, "%s", a.Title)
	fmt.Fprintf(w, " by ")
	colorArtist.Fprintln(w, a.AlbumArtist)
	colorFaint.Fprintf(w, "year: %s  genre: %s  tracks: %d\n", ptr.ValueOr(a.Year, "-"), ptr.ValueOr(a.Genre, "-"), a.TrackCount())

	for i, d := range a.Discs {
		colorDisc.Fprintf(w, "Disc %d", i+1)
		colorFaint.Fprintf(w, " (%s)\n", d.Duration())
		for _, t := range d.Tracks {
			duration := "--:--"
			if nil != t.Duration {
				duration = t.Duration.String()
			}
			colorTrack.Fprintf(w, "  %02d ", t.Position)
			fmt.Fprintf(w, "%s - ", t.Title)
			colorArtist.Fprint(w, t.Artist)
			colorFaint.Fprintf(w, " [%s]\n", duration)
		}
	}
}

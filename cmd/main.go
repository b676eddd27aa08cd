package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"github.com/xeptore/flaw/v8"
	"gopkg.in/matryer/try.v1"

	"github.com/xeptore/dcue/album"
	"github.com/xeptore/dcue/cache"
	"github.com/xeptore/dcue/config"
	"github.com/xeptore/dcue/constant"
	"github.com/xeptore/dcue/ctxutil"
	"github.com/xeptore/dcue/cue"
	"github.com/xeptore/dcue/discogs"
	"github.com/xeptore/dcue/errutil"
	"github.com/xeptore/dcue/log"
	"github.com/xeptore/dcue/must"
	"github.com/xeptore/dcue/naming"
	"github.com/xeptore/dcue/ratelimit"
)

const (
	flagConfigFilePath = "config"
	flagJSON           = "json"
	envConfig          = "DCUE_CONFIG"
	cacheMaxSize       = 256
	writeGracePeriod   = 5 * time.Second
)

func main() {
	logger := log.NewPretty(os.Stderr).Level(zerolog.InfoLevel)
	if err := godotenv.Load(); nil != err {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug().Msg(".env file was not found")
		} else {
			logger.Fatal().Err(err).Msg("Failed to load .env file")
		}
	}

	//nolint:exhaustruct
	app := &cli.App{
		Name:      "dcue",
		Version:   constant.Version,
		Compiled:  constant.CompileTime,
		Suggest:   true,
		Usage:     "Generate cue sheets from Discogs release metadata",
		ArgsUsage: "<release> <audio file>",
		Flags: []cli.Flag{
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:     flagConfigFilePath,
				Aliases:  []string{"c"},
				Usage:    "Config file path",
				Required: false,
			},
		},
		Action: generate,
		Commands: []*cli.Command{
			//nolint:exhaustruct
			{
				Name:      "generate",
				Aliases:   []string{"g"},
				Usage:     "Write the cue sheets of a release next to its audio files",
				ArgsUsage: "<release> <audio file>",
				Action:    generate,
			},
			//nolint:exhaustruct
			{
				Name:      "show",
				Aliases:   []string{"s"},
				Usage:     "Print the normalized album of a release",
				ArgsUsage: "<release>",
				Action:    show,
				Flags: []cli.Flag{
					//nolint:exhaustruct
					&cli.BoolFlag{
						Name:  flagJSON,
						Usage: "Print as JSON",
					},
				},
			},
			//nolint:exhaustruct
			{
				Name:      "batch",
				Aliases:   []string{"b"},
				Usage:     "Generate cue sheets for every job of a jobs file",
				ArgsUsage: "<jobs file>",
				Action:    batch,
			},
		},
	}

	if err := app.Run(os.Args); nil != err {
		if errors.Is(err, context.Canceled) {
			logger.Trace().Msg("Application was canceled")
			return
		}
		if flawErr := new(flaw.Flaw); errors.As(err, &flawErr) {
			logger.Fatal().Func(log.Flaw(flawErr)).Msg("Application exited with flaw")
			return
		}
		logger.Fatal().Err(err).Msg("Application exited with error")
	}
}

type app struct {
	config  *config.Config
	cache   *cache.Cache[[]byte]
	service *discogs.Service
	writer  *cue.Writer
	logger  zerolog.Logger
	closer  io.Closer
	// retryWait is the pause before a retried (1-based) fetch attempt.
	retryWait func(attempt int) time.Duration
}

func setup(cliCtx *cli.Context) (*app, error) {
	cfg, err := loadConfig(cliCtx.String(flagConfigFilePath))
	if nil != err {
		return nil, err
	}

	logger, closer := log.New(os.Stderr, cfg.Log)

	normalizer := album.NewNormalizer(naming.ArtistFacets, logger.With().Str("module", "album").Logger())
	client := discogs.NewClient(cfg.Discogs, logger.With().Str("module", "discogs").Logger())
	records := cache.New[[]byte](cacheMaxSize)
	service := discogs.NewService(
		client,
		records,
		cfg.Cache.TTL,
		normalizer,
		logger.With().Str("module", "service").Logger(),
	)

	return &app{
		config:  cfg,
		cache:   records,
		service: service,
		writer:  cue.NewWriter(afero.NewOsFs()),
		logger:  logger,
		closer:  closer,

		retryWait: ratelimit.RetryWait,
	}, nil
}

func (a *app) Close() {
	a.cache.Stop()
	if err := a.closer.Close(); nil != err {
		a.logger.Error().Err(err).Msg("Failed to close log file")
	}
}

func loadConfig(filePath string) (*config.Config, error) {
	cfgEnv := os.Getenv(envConfig)
	switch {
	case filePath != "" && cfgEnv != "":
		return nil, fmt.Errorf("config file path and %s environment variable are both set. specify only one", envConfig)
	case filePath != "":
		cfg, err := config.FromFile(filePath)
		if nil != err {
			return nil, fmt.Errorf("failed to load config file: %v", err)
		}
		return cfg, nil
	case cfgEnv != "":
		cfg, err := config.FromString(cfgEnv)
		if nil != err {
			return nil, fmt.Errorf("failed to load config from environment variable: %v", err)
		}
		return cfg, nil
	default:
		cfg, err := config.Load()
		if nil != err {
			return nil, fmt.Errorf("failed to load default config: %v", err)
		}
		return cfg, nil
	}
}

func generate(cliCtx *cli.Context) error {
	if n := cliCtx.NArg(); n != 2 {
		return fmt.Errorf("expected <release> <audio file> arguments, got %d", n)
	}
	ref, err := discogs.ParseRef(cliCtx.Args().Get(0))
	if nil != err {
		return err
	}
	audioPath := cliCtx.Args().Get(1)

	ctx, cancel := signal.NotifyContext(cliCtx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := setup(cliCtx)
	if nil != err {
		return err
	}
	defer a.Close()

	return a.generate(ctx, ref, audioPath)
}

func (a *app) generate(ctx context.Context, ref discogs.Ref, audioPath string) error {
	flawP := flaw.P{"ref": ref.String(), "audio_path": audioPath}

	alb, err := a.album(ctx, ref)
	if nil != err {
		return albumError(ctx, ref, err, flawP)
	}

	sheets, err := cue.Build(alb, audioPath, a.config.Cue.Comment)
	if nil != err {
		return fmt.Errorf("failed to build cue sheets of %s: %w", ref, err)
	}

	// Writes in flight when a signal arrives get a short grace period so
	// sheets are not left truncated.
	writeCtx, cancel := ctxutil.WithDelayedTimeout(ctx, writeGracePeriod)
	defer cancel()
	if err := a.write(writeCtx, sheets); nil != err {
		flawP["album"] = alb.FlawP()
		switch {
		case errutil.IsContext(writeCtx):
			return writeCtx.Err()
		case errutil.IsFlaw(err):
			return must.BeFlaw(err).Append(flawP)
		default:
			panic(errutil.UnknownError(err))
		}
	}

	for _, s := range sheets {
		a.logger.Info().Str("ref", ref.String()).Int("disc", s.Disc).Str("path", s.Path).Msg("Cue sheet written")
	}
	return nil
}

func (a *app) write(ctx context.Context, sheets []cue.Sheet) error {
	done := make(chan error, 1)
	go func() { done <- a.writer.Write(sheets) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// album fetches and normalizes ref, retrying when the service throttles
// or a request times out.
func (a *app) album(ctx context.Context, ref discogs.Ref) (album.Album, error) {
	var out album.Album
	err := try.Do(func(attempt int) (retry bool, err error) {
		const maxAttempts = 3
		attemptRemained := attempt < maxAttempts
		if wait := a.retryWait(attempt); wait > 0 {
			a.logger.Debug().Str("ref", ref.String()).Int("attempt", attempt).Dur("wait", wait).Msg("Retrying album fetch")
			select {
			case <-ctx.Done():
				return false, ctx.Err()
			case <-time.After(wait):
			}
		}
		alb, err := a.service.Album(ctx, ref)
		if nil != err {
			if errutil.IsContext(ctx) {
				return false, ctx.Err()
			}
			if matched, ok := errutil.IsAny(err, context.DeadlineExceeded, discogs.ErrTooManyRequests); ok {
				return attemptRemained, matched
			}
			return false, err
		}
		out = alb
		return false, nil
	})
	if nil != err {
		return album.Album{}, err
	}
	return out, nil
}

// albumError maps a failed album fetch of ref to the error reported to the
// user.
func albumError(ctx context.Context, ref discogs.Ref, err error, flawP flaw.P) error {
	switch {
	case errutil.IsContext(ctx):
		return ctx.Err()
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("fetching %s timed out: %w", ref, err)
	case errutil.IsFlaw(err):
		return must.BeFlaw(err).Append(flawP)
	default:
		return fmt.Errorf("failed to get album %s: %w", ref, err)
	}
}

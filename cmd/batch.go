package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"github.com/xeptore/flaw/v8"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/xeptore/dcue/discogs"
	"github.com/xeptore/dcue/errutil"
	"github.com/xeptore/dcue/log"
	"github.com/xeptore/dcue/must"
	"github.com/xeptore/dcue/ratelimit"
)

type job struct {
	Ref   string `yaml:"ref"`
	Audio string `yaml:"audio"`
}

type jobsFile struct {
	Jobs []job `yaml:"jobs"`
}

type parsedJob struct {
	ref   discogs.Ref
	audio string
}

func loadJobs(filePath string) ([]parsedJob, error) {
	data, err := os.ReadFile(filePath)
	if nil != err {
		return nil, fmt.Errorf("failed to read jobs file %q: %v", filePath, err)
	}

	var f jobsFile
	if err := yaml.Unmarshal(data, &f); nil != err {
		return nil, fmt.Errorf("failed to unmarshal jobs file %q: %v", filePath, err)
	}
	if len(f.Jobs) == 0 {
		return nil, fmt.Errorf("jobs file %q has no jobs", filePath)
	}

	out := make([]parsedJob, len(f.Jobs))
	for i, j := range f.Jobs {
		ref, err := discogs.ParseRef(j.Ref)
		if nil != err {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
		if j.Audio == "" {
			return nil, fmt.Errorf("job %d: audio file is empty", i+1)
		}
		out[i] = parsedJob{ref: ref, audio: j.Audio}
	}
	return out, nil
}

func batch(cliCtx *cli.Context) error {
	if n := cliCtx.NArg(); n != 1 {
		return fmt.Errorf("expected <jobs file> argument, got %d", n)
	}
	jobs, err := loadJobs(cliCtx.Args().First())
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

	return a.runJobs(ctx, jobs)
}

// runJobs generates the cue sheets of jobs concurrently. The first failing
// job cancels the rest and its error is returned.
func (a *app) runJobs(ctx context.Context, jobs []parsedJob) error {
	flawP := flaw.P{"jobs": len(jobs)}
	a.logger.Info().Int("jobs", len(jobs)).Msg("Starting batch")

	wg, wgCtx := errgroup.WithContext(ctx)
	wg.SetLimit(ratelimit.BatchConcurrency)
	for i, j := range jobs {
		wg.Go(func() (err error) {
			defer func() {
				if r := recover(); nil != r {
					a.logger.Error().Func(log.Panic(r)).Int("job", i+1).Str("ref", j.ref.String()).Msg("Job panicked")
					err = fmt.Errorf("job %d panicked: %v", i+1, r)
				}
			}()
			if err := a.generate(wgCtx, j.ref, j.audio); nil != err {
				if errutil.IsContext(wgCtx) {
					return wgCtx.Err()
				}
				if errutil.IsFlaw(err) {
					return must.BeFlaw(err).Append(flaw.P{"job": i + 1})
				}
				return fmt.Errorf("job %d: %w", i+1, err)
			}
			return nil
		})
	}

	if err := wg.Wait(); nil != err {
		switch {
		case errutil.IsContext(ctx):
			return ctx.Err()
		case errutil.IsFlaw(err):
			return must.BeFlaw(err).Append(flawP)
		default:
			return err
		}
	}

	a.logger.Info().Int("jobs", len(jobs)).Msg("Batch finished")
	return nil
}

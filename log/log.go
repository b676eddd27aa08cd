package log

import (
	"io"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/tidwall/pretty"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/xeptore/dcue/config"
	"github.com/xeptore/dcue/constant"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

func newBaseLogger() zerolog.Logger {
	return zerolog.
		New(io.Discard).
		With().
		Dict(
			"app",
			zerolog.Dict().
				Str("version", constant.Version).
				Str("compilation_time", constant.CompileTime.Format(time.RFC3339)),
		).
		Timestamp().
		Logger().
		Level(zerolog.TraceLevel)
}

func NewPretty(w io.Writer) zerolog.Logger {
	return newBaseLogger().Output(newPrettyWriter(w))
}

func NewPacked(w io.Writer) zerolog.Logger {
	return newBaseLogger().Output(w)
}

// New builds the application logger from cfg. Console output is pretty
// printed when w is a terminal and packed otherwise. When a log file is
// configured, packed JSON lines are additionally written to it with size
// based rotation.
func New(w io.Writer, cfg config.Log) (zerolog.Logger, io.Closer) {
	level := cfg.ZerologLevel()

	if cfg.File == "" {
		if isTerminal(w) {
			return NewPretty(w).Level(level), nopCloser{}
		}
		return NewPacked(w).Level(level), nopCloser{}
	}

	//nolint:exhaustruct
	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	console := w
	if isTerminal(w) {
		console = newPrettyWriter(w)
	}
	out := zerolog.MultiLevelWriter(console, file)
	return newBaseLogger().Output(out).Level(level), file
}

func newPrettyWriter(out io.Writer) prettyWriter {
	return prettyWriter{out}
}

type prettyWriter struct {
	out io.Writer
}

func (p prettyWriter) Write(line []byte) (int, error) {
	if n, err := p.out.Write(pretty.Color(pretty.Pretty(line), nil)); nil != err {
		return n, err
	}
	return len(line), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

package cue

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/xeptore/flaw/v8"

	"github.com/xeptore/dcue/errutil"
	"github.com/xeptore/dcue/must"
)

type Writer struct {
	fs afero.Fs
}

func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

func (w *Writer) Write(sheets []Sheet) error {
	for _, s := range sheets {
		if err := w.write(s); nil != err {
			return err
		}
	}
	return nil
}

func (w *Writer) write(s Sheet) (err error) {
	flawP := flaw.P{"path": s.Path, "disc": s.Disc}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := w.fs.MkdirAll(dir, 0o0755); nil != err {
			flawP["err_debug_tree"] = errutil.Tree(err).FlawP()
			return flaw.From(fmt.Errorf("failed to create cue sheet directory: %v", err)).Append(flawP)
		}
	}

	f, err := w.fs.OpenFile(s.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o0644)
	if nil != err {
		flawP["err_debug_tree"] = errutil.Tree(err).FlawP()
		return flaw.From(fmt.Errorf("failed to create cue sheet file: %v", err)).Append(flawP)
	}
	defer func() {
		if closeErr := f.Close(); nil != closeErr {
			flawP["err_debug_tree"] = errutil.Tree(closeErr).FlawP()
			closeErr = flaw.From(fmt.Errorf("failed to close cue sheet file: %v", closeErr)).Append(flawP)
			if nil != err {
				err = must.BeFlaw(err).Join(closeErr)
			} else {
				err = closeErr
			}
		}
	}()

	if _, err := io.Copy(f, strings.NewReader(s.Content)); nil != err {
		flawP["err_debug_tree"] = errutil.Tree(err).FlawP()
		return flaw.From(fmt.Errorf("failed to write cue sheet: %v", err)).Append(flawP)
	}

	if err := f.Sync(); nil != err {
		flawP["err_debug_tree"] = errutil.Tree(err).FlawP()
		return flaw.From(fmt.Errorf("failed to sync cue sheet file: %v", err)).Append(flawP)
	}

	return nil
}

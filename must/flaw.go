package must

import (
	"errors"

	"github.com/xeptore/flaw/v8"

	"github.com/xeptore/dcue/errutil"
)

// BeFlaw returns the flaw in err's chain. Callers use it after checking
// errutil.IsFlaw, so a miss is a programming error and panics.
func BeFlaw(err error) *flaw.Flaw {
	f := new(flaw.Flaw)
	if !errors.As(err, &f) {
		panic(errutil.UnknownError(err))
	}
	return f
}

package errutil

import (
	"fmt"
)

// UnknownError describes an error that none of the caller's cases expected.
// It is meant to be panicked with.
func UnknownError(err error) string {
	return fmt.Sprintf("unexpected error of type %T: %v", err, err)
}

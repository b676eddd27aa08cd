package log

import (
	"bytes"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// Panic logs a recovered value with the stack of the panicking goroutine.
// Frames above the runtime's panic call belong to the recovery path and are
// dropped.
func Panic(recovered any) func(e *zerolog.Event) {
	return func(e *zerolog.Event) {
		e.Dict(
			"panic",
			zerolog.Dict().
				Any("content", recovered).
				Bytes("stack_traces", panicStack(debug.Stack())),
		)
	}
}

func panicStack(stack []byte) []byte {
	lines := bytes.Split(stack, []byte("\n"))
	for i, line := range lines {
		if bytes.HasPrefix(line, []byte("panic(")) && i+2 <= len(lines) {
			return bytes.Join(lines[i+2:], []byte("\n"))
		}
	}
	return stack
}

package log

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/xeptore/flaw/v8"
)

// Flaw logs err with its flaw records, joined errors and stack trace when
// err carries a flaw, and as a plain error otherwise.
func Flaw(err error) func(e *zerolog.Event) {
	return func(e *zerolog.Event) {
		flawErr := new(flaw.Flaw)
		if !errors.As(err, &flawErr) {
			e.Err(err)
			return
		}

		records := zerolog.Arr()
		for _, r := range flawErr.Records {
			d := zerolog.Dict().Str("function", r.Function)
			if b, err := json.MarshalWithOption(r.Payload, json.UnorderedMap(), json.DisableNormalizeUTF8(), json.DisableHTMLEscape()); nil != err {
				d.Dict("payload", zerolog.Dict().Str("error", err.Error()).Str("raw", fmt.Sprintf("%#+v", r.Payload)))
			} else {
				d.RawJSON("payload", b)
			}
			records.Dict(d)
		}

		joined := zerolog.Arr()
		for _, v := range flawErr.JoinedErrors {
			d := zerolog.Dict().Dict("error", errorDict(v.Message, v.TypeName, v.SyntaxRepr))
			if st := v.CallerStackTrace; nil != st {
				d.Dict("caller_stack_trace", frame(fmt.Sprintf("%s:%d", st.File, st.Line), st.Function))
			} else {
				d.Stringer("caller_stack_trace", nil)
			}
			joined.Dict(d)
		}

		stackTraces := zerolog.Arr()
		for _, v := range flawErr.StackTrace {
			stackTraces.Dict(frame(fmt.Sprintf("%s:%d", v.File, v.Line), v.Function))
		}

		e.
			Dict("error", errorDict(flawErr.Inner, flawErr.InnerType, flawErr.InnerSyntaxRepr)).
			Array("records", records).
			Array("joined_errors", joined).
			Array("stack_traces", stackTraces)
	}
}

func errorDict(message, typeName, syntaxRepr string) *zerolog.Event {
	return zerolog.Dict().
		Str("message", message).
		Str("type_name", typeName).
		Str("syntax_representation", syntaxRepr)
}

func frame(location, function string) *zerolog.Event {
	return zerolog.Dict().
		Str("location", location).
		Str("function", function)
}

package errutil

import (
	"fmt"

	"github.com/xeptore/flaw/v8"
)

// ErrInfo is a printable snapshot of an error chain, suitable for flaw
// payloads under the err_debug_tree key.
type ErrInfo struct {
	Message    string
	TypeName   string
	SyntaxRepr string
	Children   []ErrInfo
}

func (e ErrInfo) FlawP() flaw.P {
	var children []flaw.P
	if len(e.Children) > 0 {
		children = make([]flaw.P, len(e.Children))
		for i, child := range e.Children {
			children[i] = child.FlawP()
		}
	}

	return flaw.P{
		"message":     e.Message,
		"type_name":   e.TypeName,
		"syntax_repr": e.SyntaxRepr,
		"children":    children,
	}
}

// Tree walks err through both single and multi error unwrapping. It panics
// on a nil error.
func Tree(err error) ErrInfo {
	if err == nil {
		panic("nil error")
	}

	var children []ErrInfo
	for _, child := range unwrap(err) {
		children = append(children, Tree(child))
	}
	return ErrInfo{
		Message:    err.Error(),
		TypeName:   fmt.Sprintf("%T", err),
		SyntaxRepr: fmt.Sprintf("%+#v", err),
		Children:   children,
	}
}

func unwrap(err error) []error {
	//nolint:errorlint
	switch x := err.(type) {
	case interface{ Unwrap() error }:
		if inner := x.Unwrap(); nil != inner {
			return []error{inner}
		}
		return nil
	case interface{ Unwrap() []error }:
		return x.Unwrap()
	default:
		return nil
	}
}

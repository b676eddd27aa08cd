package constant

import (
	_ "embed"
	"fmt"
	"strings"
	"time"
)

var (
	//go:embed version
	version     string
	Version            = strings.TrimSpace(version)
	compileTime string = "2026-10-19T00:00:00Z"
	CompileTime time.Time
)

func init() {
	t, err := time.Parse(time.RFC3339, compileTime)
	if nil != err {
		panic(fmt.Errorf("could not parse CompileTime constant %q. Make sure you it is set at build time", compileTime))
	}
	CompileTime = t
}

package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"

	"github.com/xitonix/kmeta/internal"
)

// Populated by the build flags.
var (
	version    string
	commit     string
	runtimeVer string
	built      string
)

var enabledColor bool

func main() {
	if err := newApplication(os.Args[1:]); err != nil {
		exit(err)
	}
}

func exit(err error) {
	msg := fmt.Sprintf("FATAL: %s", internal.Title(err))
	if enabledColor {
		msg = color.Error.Render(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

//go:build !ebiten

package main

import (
	"os"
	"strings"

	"mad-gol/internal/logging"
)

// headless lists the commands that work without the GUI toolkit.
var headless = []string{"./cmd/gol-term", "./cmd/gol-run", "./cmd/gol-sweep"}

func stubHint() string {
	return "rebuild with -tags ebiten for the window, or try " + strings.Join(headless, ", ")
}

func main() {
	log := logging.New(os.Stderr, "info", true)
	log.Error().Str("hint", stubHint()).Msg("mad-gol window viewer not compiled in")
	os.Exit(2)
}

package display

import (
	"fmt"
	"os"

	"github.com/J22Melody/transcription/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____                ____        _       _
|  _ \ ___  ___  ___| __ )  __ _| |_ ___| |__
| |_) / _ \/ __|/ _ \  _ \ / _`+"`"+` | __/ __| '_ \
|  __/ (_) \__ \  __/ |_) | (_| | || (__| | | |
|_|   \___/|___/\___|____/ \__,_|\__\___|_| |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}

package display

import (
	"fmt"
	"io"

	"github.com/backmassage/adsoyad/internal/term"
)

// PrintBanner writes the ASCII art banner to w; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer, version string) {
	art := `            _
   __ _  __| |___  ___  _   _  __ _  __| |
  / _` + "`" + ` |/ _` + "`" + ` / __|/ _ \| | | |/ _` + "`" + ` |/ _` + "`" + ` |
 | (_| | (_| \__ \ (_) | |_| | (_| | (_| |
  \__,_|\__,_|___/\___/ \__, |\__,_|\__,_|
                        |___/  v` + version + `
`
	fmt.Fprint(w, term.Paint(term.Magenta, art))
	if term.Enabled() {
		fmt.Fprintln(w)
	}
}

package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/abx-format/go-abx/stream"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var warnColor = color.New(color.FgYellow)

// Warnings returns a WarnFunc printing to w in the tool's warning
// format, colored when w is a terminal.
func Warnings(w io.Writer) stream.WarnFunc {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isatty.IsTerminal(f.Fd())
	}
	return func(feature, detail string) {
		head := fmt.Sprintf("WARNING: %s is not supported and might be lost.", feature)
		if useColor {
			head = warnColor.Sprint(head)
		}
		fmt.Fprintln(w, head)
		if detail != "" {
			fmt.Fprintf(w, "  %s\n", detail)
		}
	}
}

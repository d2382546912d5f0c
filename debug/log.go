package debug

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/abx-format/go-abx/stream"
)

// Logf writes a trace line to stderr. Arguments are rendered for
// readability: parse events in compact form, byte slices as a bounded
// hex window.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *stream.Event:
			args[i] = x.String()
		case []byte:
			args[i] = hexWindow(x, 32)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func hexWindow(d []byte, n int) string {
	if len(d) <= n {
		return hex.EncodeToString(d)
	}
	return fmt.Sprintf("%s... (%d bytes)", hex.EncodeToString(d[:n]), len(d))
}

package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

// Logf writes a diagnostic line to stderr, expanding structured
// arguments (maps, slices) as indented JSON so token and tree dumps
// stay readable.
func Logf(msg string, args ...any) {
	for i := range args {
		switch a := args[i].(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case fmt.Stringer:
			args[i] = a.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

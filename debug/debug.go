// Package debug gates diagnostic output behind environment variables
// so the library stays silent in normal use.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens     bool
	HashColors bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("GROVE_DEBUG_TOKENS")
	d.HashColors = boolEnv("GROVE_DEBUG_HASH_COLORS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Tokens reports whether flattened token streams should be dumped.
func Tokens() bool {
	return d.Tokens
}

// HashColors reports whether renders should color each span by its
// originating node's hash instead of the color scheme.
func HashColors() bool {
	return d.HashColors
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte("\n"))
}

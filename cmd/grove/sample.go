package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grove-editor/grove/json"
)

// samples are the built-in documents the demo commands operate on.
// The tool deliberately has no parser: documents come from the host
// application in real use.
var samples = map[string]func(*json.Arena) *json.Node{
	"config": func(a *json.Arena) *json.Node {
		return json.Object(a,
			json.Field(a, json.Str(a, "name"), json.Str(a, "grove")),
			json.Field(a, json.Str(a, "debug"), json.False(a)),
			json.Field(a, json.Str(a, "paths"), json.Array(a,
				json.Str(a, "src"),
				json.Str(a, "docs"),
			)),
			json.Field(a, json.Str(a, "limit"), json.Null(a)),
		)
	},
	"flags": func(a *json.Arena) *json.Node {
		return json.Array(a, json.True(a), json.False(a), json.Null(a))
	},
	"empty": func(a *json.Arena) *json.Node {
		return json.Object(a)
	},
}

func sampleDoc(a *json.Arena, name string) (*json.Node, error) {
	build, ok := samples[name]
	if !ok {
		names := make([]string, 0, len(samples))
		for n := range samples {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown sample %q, have: %s", name, strings.Join(names, ", "))
	}
	return build(a), nil
}

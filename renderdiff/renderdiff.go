// Package renderdiff shows the textual effect of a structural edit.
//
// Because every render is a fresh total recomputation, the only way
// to present "what changed" to a user is to diff the text before and
// after the edit; this package does that with diffmatchpatch and
// colors the result for terminal display.
package renderdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	deleted  = color.New(color.FgRed, color.CrossedOut)
	inserted = color.New(color.FgGreen)
)

// Diff computes the edit script between two renders, cleaned up to
// align on word-ish boundaries.
func Diff(before, after string) []diffpatch.Diff {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	return dmp.DiffCleanupSemantic(diffs)
}

// Render colors an edit script for the terminal: deletions struck
// through in red, insertions in green, unchanged text as is.
func Render(diffs []diffpatch.Diff) string {
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			sb.WriteString(deleted.Sprint(d.Text))
		case diffpatch.DiffInsert:
			sb.WriteString(inserted.Sprint(d.Text))
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

// Changed reports whether the script contains any insertion or
// deletion.
func Changed(diffs []diffpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

// Package ast defines the node contract that every editable tree
// grammar implements, and the generic operations built on it.
//
// A grammar provides one concrete node type satisfying Ast; all
// editing and rendering components work against that interface alone.
// Nodes live in an arena (see the arena package) for the lifetime of
// an editing session; a node's children are non-owning references into
// the same arena.
//
// The package supplies the operations shared by every grammar:
// flattening a node's recursive token description into an ordered
// stream (DisplayTokens), text serialization (ToText, WriteText), the
// debug outline (TreeView, WriteTreeView), sizing (SizeOf), and the
// shortcut-membership helpers (IsReplaceChar, IsInsertChar).
//
// Mutation failures are values, not aborts: see TooManyChildrenError,
// TooFewChildrenError and IndexOutOfRangeError.
package ast

// Package json is the reference grammar for the editor core: a JSON
// document tree implementing the ast node contract.
//
// Objects hold field nodes (key/value pairs, exactly two children
// each); arrays and objects are unconstrained in length; value nodes
// are leaves.  Inserting a plain value into an object synthesizes the
// empty-string key and the field node through the arena, so the tree
// stays well-formed: {} becomes {"": true}.
//
// The Style enum picks between single-line (Compact) and indented
// multiline (Pretty) rendering.
package json

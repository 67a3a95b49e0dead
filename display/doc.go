// Package display defines the token stream that trees render through.
//
// Every node describes its own appearance as an ordered sequence of
// RecTok values: literal tokens (text runs with a syntax category,
// whitespace, newlines, indentation changes) interleaved with
// references to child nodes.  Flattening that description (see the ast
// package) yields a single ordered stream of NodeToken pairs, which is
// the interface consumed both by the plain-text renderer here and by
// styled or layout-computing consumers.
//
// # Example
//
//	toks := ast.DisplayTokens(root, style)
//	text := display.TokensToString(toks)
//	size := display.Measure(toks)
//
// The stream for a fixed tree and format style is deterministic: it
// drives cursor positioning as well as text output, so two renders of
// an unmodified tree are always identical.
package display

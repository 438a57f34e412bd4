// Package highlight models code syntax color themes in the token-type-to-style
// shape used by prism-react-renderer, and bridges them to chroma, the
// highlighter Hugo renders code blocks with.
//
// A Theme is an ordered list of rules. Each rule maps a set of token types
// (keyword, string, comment, ...) to a style. A token type may appear in at
// most one rule; lookups return the first matching rule.
package highlight

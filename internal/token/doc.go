// Package token defines lexical token kinds for scooter sources.
// Invariants:
//   - Token.Text is the source slice (identifiers are NFC-normalized).
//   - Token.Span matches the consumed bytes exactly (Start..End).
//   - Primitive type names (i32, bool) are identifiers; `()` is two tokens.
//     They are recognized by the resolver, not the lexer.
package token

// Package token defines lexical token kinds and trivia for concatident templates.
// Invariants:
//   - Token.Text is the exact source text of the token (escape markers included).
//   - Token.Span matches Text exactly, except for tokens synthesized by a macro,
//     whose span points at the site that produced them.
//   - Whitespace and comments are carried as leading Trivia so that a token stream
//     can be printed back without loss.
//   - true and false are BoolLit, not identifiers; other predeclared Go names are Ident.
package token

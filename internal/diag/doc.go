// Package diag defines the diagnostic model shared by the lexer, the token-tree
// builder, macro expanders and the expansion driver.
//
// A Diagnostic carries a Severity, a stable Code (LEX/SYN/MAC/EXP families), a
// short human message, the primary span and optional notes. Producers emit
// through a Reporter; BagReporter collects into a Bag that the driver sorts
// and hands to internal/diagfmt for rendering.
//
// Package diag does no formatting and no IO.
package diag

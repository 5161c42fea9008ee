// Package concat implements the concat_idents! macro.
//
//	concat_idents!(fn_name = foo, _, bar {
//		func fn_name() {}
//	})
//
// expands to
//
//	func foo_bar() {}
//
// The argument list is parsed into a placeholder, an identifier built from the
// fragments and a brace block. Every identifier token of the block equal to the
// placeholder is replaced by the built identifier, nested invocations included,
// and the statements of the block are returned without the braces. Nested
// invocations are never expanded here; the driver picks them up in a later round.
package concat

package concat

import (
	"concatident/internal/diag"
	"concatident/internal/token"
	"concatident/internal/tree"
)

// Input is a parsed invocation argument list: NAME = FRAGMENTS { BLOCK }.
type Input struct {
	Placeholder token.Token
	Ident       Ident
	Block       *tree.Group
}

// ParseInput parses the argument group of an invocation.
func ParseInput(args *tree.Group) (Input, *Error) {
	c := tree.NewCursor(args.Nodes, args.Close.Span)

	placeholder, ok := c.PeekToken()
	if !ok || !placeholder.IsIdent() {
		return Input{}, newError(diag.MacMalformed, c.Span(),
			"expected a placeholder identifier")
	}
	c.Next()

	if !c.PeekKind(token.Assign) {
		return Input{}, newError(diag.MacMalformed, c.Span(),
			"expected `=` after the placeholder")
	}
	c.Next()

	ident, err := ParseIdent(c)
	if err != nil {
		return Input{}, err
	}

	if !c.PeekGroup(tree.Brace) {
		return Input{}, newError(diag.MacMalformed, c.Span(),
			"expected `,` or a `{ ... }` block after the fragment")
	}
	block, _ := c.Next().(*tree.Group)

	if !c.Done() {
		return Input{}, newError(diag.MacMalformed, c.Span(),
			"unexpected tokens after the block")
	}
	return Input{Placeholder: placeholder, Ident: ident, Block: block}, nil
}

package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// RawIdent represents an escaped identifier such as r#struct.
	RawIdent

	KwBreak       // break
	KwCase        // case
	KwChan        // chan
	KwConst       // const
	KwContinue    // continue
	KwDefault     // default
	KwDefer       // defer
	KwElse        // else
	KwFallthrough // fallthrough
	KwFor         // for
	KwFunc        // func
	KwGo          // go
	KwGoto        // goto
	KwIf          // if
	KwImport      // import
	KwInterface   // interface
	KwMap         // map
	KwPackage     // package
	KwRange       // range
	KwReturn      // return
	KwSelect      // select
	KwStruct      // struct
	KwSwitch      // switch
	KwType        // type
	KwVar         // var

	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating point literal.
	FloatLit
	// ImagLit represents an imaginary literal (1i).
	ImagLit
	// BoolLit represents true or false.
	BoolLit
	// StringLit represents an interpreted string literal.
	StringLit
	// RawStringLit represents a backquoted string literal.
	RawStringLit
	// CharLit represents a rune literal.
	CharLit
	// ByteLit represents a byte literal b'x'. Only meaningful inside macro arguments.
	ByteLit
	// ByteStringLit represents a byte string literal b"...". Only meaningful inside macro arguments.
	ByteStringLit

	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	Amp           // &
	Pipe          // |
	Caret         // ^
	Shl           // <<
	Shr           // >>
	AndNot        // &^
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	AmpAssign     // &=
	PipeAssign    // |=
	CaretAssign   // ^=
	ShlAssign     // <<=
	ShrAssign     // >>=
	AndNotAssign  // &^=
	AndAnd        // &&
	OrOr          // ||
	Arrow         // <-
	Inc           // ++
	Dec           // --
	EqEq          // ==
	Lt            // <
	Gt            // >
	Assign        // =
	Bang          // !
	Tilde         // ~
	BangEq        // !=
	LtEq          // <=
	GtEq          // >=
	Define        // :=
	Ellipsis      // ...
	LParen        // (
	RParen        // )
	LBracket      // [
	RBracket      // ]
	LBrace        // {
	RBrace        // }
	Comma         // ,
	Semicolon     // ;
	Dot           // .
	Colon         // :
	Underscore    // _
	Hash          // #
	At            // @
	Question      // ?

	kindCount
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	RawIdent:      "RawIdent",
	KwBreak:       "KwBreak",
	KwCase:        "KwCase",
	KwChan:        "KwChan",
	KwConst:       "KwConst",
	KwContinue:    "KwContinue",
	KwDefault:     "KwDefault",
	KwDefer:       "KwDefer",
	KwElse:        "KwElse",
	KwFallthrough: "KwFallthrough",
	KwFor:         "KwFor",
	KwFunc:        "KwFunc",
	KwGo:          "KwGo",
	KwGoto:        "KwGoto",
	KwIf:          "KwIf",
	KwImport:      "KwImport",
	KwInterface:   "KwInterface",
	KwMap:         "KwMap",
	KwPackage:     "KwPackage",
	KwRange:       "KwRange",
	KwReturn:      "KwReturn",
	KwSelect:      "KwSelect",
	KwStruct:      "KwStruct",
	KwSwitch:      "KwSwitch",
	KwType:        "KwType",
	KwVar:         "KwVar",
	IntLit:        "IntLit",
	FloatLit:      "FloatLit",
	ImagLit:       "ImagLit",
	BoolLit:       "BoolLit",
	StringLit:     "StringLit",
	RawStringLit:  "RawStringLit",
	CharLit:       "CharLit",
	ByteLit:       "ByteLit",
	ByteStringLit: "ByteStringLit",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Amp:           "Amp",
	Pipe:          "Pipe",
	Caret:         "Caret",
	Shl:           "Shl",
	Shr:           "Shr",
	AndNot:        "AndNot",
	PlusAssign:    "PlusAssign",
	MinusAssign:   "MinusAssign",
	StarAssign:    "StarAssign",
	SlashAssign:   "SlashAssign",
	PercentAssign: "PercentAssign",
	AmpAssign:     "AmpAssign",
	PipeAssign:    "PipeAssign",
	CaretAssign:   "CaretAssign",
	ShlAssign:     "ShlAssign",
	ShrAssign:     "ShrAssign",
	AndNotAssign:  "AndNotAssign",
	AndAnd:        "AndAnd",
	OrOr:          "OrOr",
	Arrow:         "Arrow",
	Inc:           "Inc",
	Dec:           "Dec",
	EqEq:          "EqEq",
	Lt:            "Lt",
	Gt:            "Gt",
	Assign:        "Assign",
	Bang:          "Bang",
	Tilde:         "Tilde",
	BangEq:        "BangEq",
	LtEq:          "LtEq",
	GtEq:          "GtEq",
	Define:        "Define",
	Ellipsis:      "Ellipsis",
	LParen:        "LParen",
	RParen:        "RParen",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	Comma:         "Comma",
	Semicolon:     "Semicolon",
	Dot:           "Dot",
	Colon:         "Colon",
	Underscore:    "Underscore",
	Hash:          "Hash",
	At:            "At",
	Question:      "Question",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

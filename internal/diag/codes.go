package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005
	LexBadEscape                Code = 1006

	// Token tree
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedDelimiter Code = 2002
	SynUnexpectedCloser  Code = 2003

	// concat_idents!
	MacInfo                        Code = 3000
	MacExpectedFragment            Code = 3001
	MacUnsupportedFragmentKind     Code = 3002
	MacInvalidFragmentCharacters   Code = 3003
	MacEmptyIdentifier             Code = 3004
	MacIdentifierIsSingleBoolean   Code = 3005
	MacIdentifierIsOnlyInteger     Code = 3006
	MacIdentifierStartsWithInteger Code = 3007
	MacMalformed                   Code = 3008

	// Expansion driver
	ExpInfo           Code = 4000
	ExpRecursionLimit Code = 4001
	ExpFormatFailed   Code = 4002
	ExpStaleOutput    Code = 4003
	ExpLoadFailed     Code = 4004
)

var codeDescription = map[Code]string{
	UnknownCode:                    "Unknown error",
	LexInfo:                        "Lexical information",
	LexUnknownChar:                 "Unknown character",
	LexUnterminatedString:          "Unterminated string literal",
	LexUnterminatedBlockComment:    "Unterminated block comment",
	LexBadNumber:                   "Malformed numeric literal",
	LexUnterminatedChar:            "Unterminated character literal",
	LexBadEscape:                   "Invalid escape sequence",
	SynInfo:                        "Syntax information",
	SynUnexpectedToken:             "Unexpected token",
	SynUnclosedDelimiter:           "Unclosed delimiter",
	SynUnexpectedCloser:            "Unexpected closing delimiter",
	MacInfo:                        "Macro information",
	MacExpectedFragment:            "Expected identifier fragment",
	MacUnsupportedFragmentKind:     "Literal kind cannot be part of an identifier",
	MacInvalidFragmentCharacters:   "Literal contains characters outside [A-Za-z0-9_]",
	MacEmptyIdentifier:             "Empty identifier",
	MacIdentifierIsSingleBoolean:   "Identifier is a single boolean",
	MacIdentifierIsOnlyInteger:     "Identifier is only an integer",
	MacIdentifierStartsWithInteger: "Identifier starts with an integer",
	MacMalformed:                   "Malformed macro invocation",
	ExpInfo:                        "Expansion information",
	ExpRecursionLimit:              "Expansion recursion limit reached",
	ExpFormatFailed:                "Expanded output is not valid Go",
	ExpStaleOutput:                 "Generated file is out of date",
	ExpLoadFailed:                  "Failed to read template",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("MAC%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("EXP%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

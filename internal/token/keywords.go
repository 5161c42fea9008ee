package token

var keywords = map[string]Kind{
	"break":       KwBreak,
	"case":        KwCase,
	"chan":        KwChan,
	"const":       KwConst,
	"continue":    KwContinue,
	"default":     KwDefault,
	"defer":       KwDefer,
	"else":        KwElse,
	"fallthrough": KwFallthrough,
	"for":         KwFor,
	"func":        KwFunc,
	"go":          KwGo,
	"goto":        KwGoto,
	"if":          KwIf,
	"import":      KwImport,
	"interface":   KwInterface,
	"map":         KwMap,
	"package":     KwPackage,
	"range":       KwRange,
	"return":      KwReturn,
	"select":      KwSelect,
	"struct":      KwStruct,
	"switch":      KwSwitch,
	"type":        KwType,
	"var":         KwVar,
	"true":        BoolLit,
	"false":       BoolLit,
}

// LookupKeyword reports the kind of a reserved word. Keywords are case sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

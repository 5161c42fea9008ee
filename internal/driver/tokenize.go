package driver

import (
	"concatident/internal/diag"
	"concatident/internal/lexer"
	"concatident/internal/source"
	"concatident/internal/token"
	"concatident/internal/tree"
)

// TokenizeResult is the token stream of one file, EOF included.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).All()
	return &TokenizeResult{FileSet: fs, File: file, Tokens: tokens, Bag: bag}, nil
}

// TreeResult is the token tree of one file.
type TreeResult struct {
	*TokenizeResult
	Tree *tree.File
}

// BuildTree loads path, lexes it and groups the tokens into a tree.
func BuildTree(path string, maxDiagnostics int) (*TreeResult, error) {
	tr, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	f := tree.Build(tr.Tokens, diag.BagReporter{Bag: tr.Bag})
	return &TreeResult{TokenizeResult: tr, Tree: f}, nil
}

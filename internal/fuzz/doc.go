// Package fuzztests houses Go fuzz harnesses for the template pipeline
// (source -> lexer -> token tree -> expansion). They guard against panics,
// hangs and lossy round trips on arbitrary inputs.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests

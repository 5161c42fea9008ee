// Package tree groups a token stream into a strict tree of delimited groups.
//
// The tree is what macro expanders receive and return: it knows nothing about Go
// syntax beyond matching (), [] and {} and recognising macro invocations of the
// form name!(...). Every token keeps its leading trivia, so Print reproduces the
// input byte for byte when nothing was rewritten.
package tree

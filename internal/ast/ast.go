package ast

import "github.com/kievzenit/konsol/internal/lexer"

// AstNode is implemented only by the node types of this package, so a type
// switch over them is exhaustive.
type AstNode interface {
	astNode()
	FirstToken() *lexer.Token
}

package ast

import "github.com/kievzenit/konsol/internal/lexer"

type NumberExpr struct {
	StartToken *lexer.Token

	RawText string
}

type VariableExpr struct {
	StartToken *lexer.Token

	Name string
}

// BinaryExpr covers PLUS, MINUS and ASSIGN. For ASSIGN the left side is
// always a *VariableExpr.
type BinaryExpr struct {
	StartToken *lexer.Token

	Left  AstNode
	Op    *lexer.Token
	Right AstNode
}

func (*NumberExpr) astNode()   {}
func (*VariableExpr) astNode() {}
func (*BinaryExpr) astNode()   {}

func (e *NumberExpr) FirstToken() *lexer.Token   { return e.StartToken }
func (e *VariableExpr) FirstToken() *lexer.Token { return e.StartToken }
func (e *BinaryExpr) FirstToken() *lexer.Token   { return e.StartToken }

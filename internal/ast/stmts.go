package ast

import "github.com/kievzenit/konsol/internal/lexer"

// UnaryExpr is the print statement: Op is a LOG token.
type UnaryExpr struct {
	StartToken *lexer.Token

	Op      *lexer.Token
	Operand AstNode
}

type StatementList struct {
	Statements []AstNode
}

func (s *StatementList) Add(node AstNode) {
	s.Statements = append(s.Statements, node)
}

func (*UnaryExpr) astNode()     {}
func (*StatementList) astNode() {}

func (s *UnaryExpr) FirstToken() *lexer.Token { return s.StartToken }

func (s *StatementList) FirstToken() *lexer.Token {
	if len(s.Statements) == 0 {
		return nil
	}

	return s.Statements[0].FirstToken()
}

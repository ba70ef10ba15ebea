package ast

import (
	"fmt"
	"strings"

	"github.com/kievzenit/konsol/internal/lexer"
)

// Format renders node with every PLUS/MINUS grouping made explicit, so
// "1 - 2 + 3" becomes "((1 - 2) + 3)". Statement lists render one statement
// per line, each terminated by ";".
func Format(node AstNode) string {
	var b strings.Builder
	format(&b, node)
	return b.String()
}

func format(b *strings.Builder, node AstNode) {
	switch n := node.(type) {
	case *NumberExpr:
		b.WriteString(n.RawText)
	case *VariableExpr:
		b.WriteString(n.Name)
	case *BinaryExpr:
		if n.Op.Kind == lexer.ASSIGN {
			format(b, n.Left)
			b.WriteString(" = ")
			format(b, n.Right)
			return
		}

		b.WriteByte('(')
		format(b, n.Left)
		b.WriteString(operatorSymbol(n.Op.Kind))
		format(b, n.Right)
		b.WriteByte(')')
	case *UnaryExpr:
		b.WriteString("print ")
		format(b, n.Operand)
	case *StatementList:
		for _, stmt := range n.Statements {
			format(b, stmt)
			b.WriteString(";\n")
		}
	default:
		panic(fmt.Sprintf("ast.Format(): received illegal node: %T", node))
	}
}

func operatorSymbol(kind lexer.TokenKind) string {
	switch kind {
	case lexer.PLUS:
		return " + "
	case lexer.MINUS:
		return " - "
	}

	return " " + kind.String() + " "
}

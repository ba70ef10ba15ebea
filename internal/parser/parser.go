package parser

import (
	"slices"

	"github.com/kievzenit/konsol/internal/ast"
	"github.com/kievzenit/konsol/internal/lexer"
)

// Parser is a recursive-descent parser over a single forward cursor. It is
// not safe for concurrent use and parses one sequence once.
//
//	program    := statement* EOF
//	statement  := assignment ';' | printStmt ';'
//	assignment := VARIABLE ASSIGN formula
//	printStmt  := LOG formula
//	formula    := atom ( (PLUS|MINUS) atom )*
//	atom       := LPAR formula RPAR | NUMBER | VARIABLE
type Parser struct {
	scanner lexer.TokenScanner
}

func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{
		scanner: lexer.NewTokenScanner(slices.Clone(tokens)),
	}
}

func ParseProgram(tokens []lexer.Token) (*ast.StatementList, error) {
	return NewParser(tokens).Parse()
}

// Parse consumes the whole sequence. An empty sequence yields an empty list.
func (p *Parser) Parse() (*ast.StatementList, error) {
	root := &ast.StatementList{
		Statements: make([]ast.AstNode, 0),
	}

	for p.scanner.HasTokens() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		if _, err := p.require(lexer.SEMICOLON); err != nil {
			return nil, err
		}

		root.Add(stmt)
	}

	return root, nil
}

func (p *Parser) parseStatement() (ast.AstNode, error) {
	if p.match(lexer.VARIABLE) != nil {
		p.scanner.Unread()
		return p.parseAssignment()
	}

	if p.isCurrAny(lexer.LOG) {
		return p.parsePrint()
	}

	return nil, p.unexpected(lexer.VARIABLE, lexer.LOG)
}

func (p *Parser) parseAssignment() (ast.AstNode, error) {
	variable, err := p.require(lexer.VARIABLE)
	if err != nil {
		return nil, err
	}

	op, err := p.require(lexer.ASSIGN)
	if err != nil {
		return nil, err
	}

	value, err := p.parseFormula()
	if err != nil {
		return nil, err
	}

	return &ast.BinaryExpr{
		StartToken: variable,

		Left: &ast.VariableExpr{
			StartToken: variable,

			Name: variable.Value,
		},
		Op:    op,
		Right: value,
	}, nil
}

func (p *Parser) parsePrint() (ast.AstNode, error) {
	op, err := p.require(lexer.LOG)
	if err != nil {
		return nil, err
	}

	operand, err := p.parseFormula()
	if err != nil {
		return nil, err
	}

	return &ast.UnaryExpr{
		StartToken: op,

		Op:      op,
		Operand: operand,
	}, nil
}

// parseFormula folds PLUS and MINUS left to right with equal precedence.
func (p *Parser) parseFormula() (ast.AstNode, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for op := p.match(lexer.PLUS, lexer.MINUS); op != nil; op = p.match(lexer.PLUS, lexer.MINUS) {
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			StartToken: left.FirstToken(),

			Left:  left,
			Op:    op,
			Right: right,
		}
	}

	return left, nil
}

func (p *Parser) parseAtom() (ast.AstNode, error) {
	if p.match(lexer.LPAR) != nil {
		expr, err := p.parseFormula()
		if err != nil {
			return nil, err
		}

		if _, err := p.require(lexer.RPAR); err != nil {
			return nil, err
		}

		return expr, nil
	}

	if number := p.match(lexer.NUMBER); number != nil {
		return &ast.NumberExpr{
			StartToken: number,

			RawText: number.Value,
		}, nil
	}

	if variable := p.match(lexer.VARIABLE); variable != nil {
		return &ast.VariableExpr{
			StartToken: variable,

			Name: variable.Value,
		}, nil
	}

	return nil, p.unexpected(lexer.LPAR, lexer.NUMBER, lexer.VARIABLE)
}

// match consumes and returns the current token when its kind is one of
// kinds. It never fails and leaves the cursor alone on a miss.
func (p *Parser) match(kinds ...lexer.TokenKind) *lexer.Token {
	if !p.isCurrAny(kinds...) {
		return nil
	}

	return p.scanner.Read()
}

func (p *Parser) require(kinds ...lexer.TokenKind) (*lexer.Token, error) {
	if token := p.match(kinds...); token != nil {
		return token, nil
	}

	return nil, p.unexpected(kinds...)
}

func (p *Parser) isCurrAny(kinds ...lexer.TokenKind) bool {
	curr := p.scanner.Peek()
	return curr != nil && slices.Contains(kinds, curr.Kind)
}

func (p *Parser) unexpected(kinds ...lexer.TokenKind) *ParseError {
	return &ParseError{
		Pos:      p.scanner.Pos(),
		Expected: kinds,
		Found:    p.scanner.Peek(),
	}
}

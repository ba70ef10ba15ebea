package evaluator

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kievzenit/konsol/internal/ast"
	"github.com/kievzenit/konsol/internal/lexer"
)

// Evaluator walks an AST against a Bindings store, writing one line to out
// for every print statement. It is single-threaded; give each run its own
// Evaluator.
type Evaluator struct {
	out      io.Writer
	bindings *Bindings
}

func New(out io.Writer, bindings *Bindings) *Evaluator {
	if bindings == nil {
		bindings = NewBindings()
	}

	return &Evaluator{
		out:      out,
		bindings: bindings,
	}
}

// Evaluate runs list against bindings and stops at the first error.
func Evaluate(list *ast.StatementList, bindings *Bindings, out io.Writer) error {
	return New(out, bindings).Run(list)
}

func (e *Evaluator) Bindings() *Bindings {
	return e.bindings
}

func (e *Evaluator) Run(list *ast.StatementList) error {
	_, _, err := e.Eval(list)
	return err
}

// Eval evaluates node. ok is false for nodes that yield no value: print
// statements and statement lists.
func (e *Evaluator) Eval(node ast.AstNode) (value int64, ok bool, err error) {
	switch n := node.(type) {
	case *ast.NumberExpr:
		v, err := strconv.ParseInt(n.RawText, 10, 64)
		if err != nil {
			return 0, false, &NumericFormatError{
				Text:  n.RawText,
				Token: n.StartToken,
				Err:   err,
			}
		}
		return v, true, nil

	case *ast.VariableExpr:
		v, found := e.bindings.Get(n.Name)
		if !found {
			return 0, false, &UndefinedVariableError{
				Name:  n.Name,
				Token: n.StartToken,
			}
		}
		return v, true, nil

	case *ast.BinaryExpr:
		return e.evalBinary(n)

	case *ast.UnaryExpr:
		return 0, false, e.evalUnary(n)

	case *ast.StatementList:
		for _, stmt := range n.Statements {
			if _, _, err := e.Eval(stmt); err != nil {
				return 0, false, err
			}
		}
		return 0, false, nil
	}

	panic(fmt.Sprintf("Evaluator.Eval(): received illegal node: %T", node))
}

func (e *Evaluator) evalBinary(n *ast.BinaryExpr) (int64, bool, error) {
	if n.Op.Kind == lexer.ASSIGN {
		v, err := e.evalValue(n.Right)
		if err != nil {
			return 0, false, err
		}

		target := n.Left.(*ast.VariableExpr)
		e.bindings.Set(target.Name, v)
		return v, true, nil
	}

	left, err := e.evalValue(n.Left)
	if err != nil {
		return 0, false, err
	}
	right, err := e.evalValue(n.Right)
	if err != nil {
		return 0, false, err
	}

	switch n.Op.Kind {
	case lexer.PLUS:
		return left + right, true, nil
	case lexer.MINUS:
		return left - right, true, nil
	}

	panic(fmt.Sprintf("Evaluator.evalBinary(): received illegal operator: %s", n.Op.Kind))
}

func (e *Evaluator) evalUnary(n *ast.UnaryExpr) error {
	if n.Op.Kind != lexer.LOG {
		panic(fmt.Sprintf("Evaluator.evalUnary(): received illegal operator: %s", n.Op.Kind))
	}

	v, err := e.evalValue(n.Operand)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(e.out, strconv.FormatInt(v, 10)+"\n"); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}

// evalValue evaluates a node that must produce a value.
func (e *Evaluator) evalValue(node ast.AstNode) (int64, error) {
	v, ok, err := e.Eval(node)
	if err != nil {
		return 0, err
	}
	if !ok {
		panic(fmt.Sprintf("Evaluator.evalValue(): node yields no value: %T", node))
	}
	return v, nil
}

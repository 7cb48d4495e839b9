package osil

import (
	"fmt"

	"github.com/katalvlaran/factorable/expr"
)

// parseExpression turns one operator element at the given tree level into
// an expression node, recursing into nested operator tags. Leaves are
// variable elements (idx, optional coef) and number elements (value).
func (p *parser) parseExpression(e *element, level int) (expr.Node, error) {
	switch e.tag() {
	case "sum":
		return p.parseSum(e, level)
	case "product":
		return p.parseProduct(e, level)
	case "square":
		arg, coef, err := p.parseUnaryArg(e, level)
		if err != nil {
			return nil, err
		}

		return wrap(expr.NewSquare(arg, coef, level))
	case "cos":
		p.stats.Cos++
		arg, coef, err := p.parseUnaryArg(e, level)
		if err != nil {
			return nil, err
		}

		return wrap(expr.NewCosine(arg, coef, level))
	case "sin":
		p.stats.Sin++
		arg, coef, err := p.parseUnaryArg(e, level)
		if err != nil {
			return nil, err
		}

		return wrap(expr.NewSine(arg, coef, level))
	case "negate":
		arg, coef, err := p.parseUnaryArg(e, level)
		if err != nil {
			return nil, err
		}

		return wrap(expr.NewNegate(arg, coef, level))
	case "sqrt":
		p.stats.Sqrt++
		arg, coef, err := p.parseUnaryArg(e, level)
		if err != nil {
			return nil, err
		}

		return wrap(expr.NewSquareroot(arg, coef, level))
	case "exp":
		p.stats.Exp++
		arg, coef, err := p.parseUnaryArg(e, level)
		if err != nil {
			return nil, err
		}

		return wrap(expr.NewExp(arg, coef, level))
	case "abs":
		arg, coef, err := p.parseUnaryArg(e, level)
		if err != nil {
			return nil, err
		}

		return wrap(expr.NewAbs(arg, coef, level))
	case "ln":
		p.stats.Log++
		arg, coef, err := p.parseUnaryArg(e, level)
		if err != nil {
			return nil, err
		}

		return wrap(expr.NewLn(arg, coef, level))
	case "log10":
		p.stats.Log++
		arg, coef, err := p.parseUnaryArg(e, level)
		if err != nil {
			return nil, err
		}

		return wrap(expr.NewLog10(arg, coef, level))
	case "power":
		return p.parsePower(e, level)
	case "divide":
		return p.parseDivide(e, level)
	case "signpower":
		return p.parseSignPower(e, level)
	default:
		return nil, fmt.Errorf("%w: <%s>", ErrUnknownOperator, e.tag())
	}
}

// parseSum collects the entities of a sum: variable and number leaves
// become Summands, anything else recurses.
func (p *parser) parseSum(e *element, level int) (expr.Node, error) {
	entities := make([]expr.Node, 0, len(e.Children))
	for i := range e.Children {
		child := &e.Children[i]
		switch child.tag() {
		case "variable":
			idx, coef, err := p.parseVariableLeaf(child)
			if err != nil {
				return nil, err
			}
			leaf, err := expr.NewSummand(idx, coef, level+1)
			if err != nil {
				return nil, fmt.Errorf("osil: sum entity: %w", err)
			}
			entities = append(entities, leaf)
		case "number":
			value, err := child.requireFloatAttr("value")
			if err != nil {
				return nil, err
			}
			leaf, err := expr.NewSummand(expr.NoVar, value, level+1)
			if err != nil {
				return nil, fmt.Errorf("osil: sum entity: %w", err)
			}
			entities = append(entities, leaf)
		default:
			node, err := p.parseExpression(child, level+1)
			if err != nil {
				return nil, err
			}
			entities = append(entities, node)
		}
	}

	return wrap(expr.NewSum(entities, level))
}

// parseProduct collects the factors of a product, mirroring parseSum with
// Factor leaves.
func (p *parser) parseProduct(e *element, level int) (expr.Node, error) {
	factors := make([]expr.Node, 0, len(e.Children))
	for i := range e.Children {
		child := &e.Children[i]
		switch child.tag() {
		case "variable":
			idx, coef, err := p.parseVariableLeaf(child)
			if err != nil {
				return nil, err
			}
			leaf, err := expr.NewFactor(idx, coef, level+1)
			if err != nil {
				return nil, fmt.Errorf("osil: product factor: %w", err)
			}
			factors = append(factors, leaf)
		case "number":
			value, err := child.requireFloatAttr("value")
			if err != nil {
				return nil, err
			}
			leaf, err := expr.NewFactor(expr.NoVar, value, level+1)
			if err != nil {
				return nil, fmt.Errorf("osil: product factor: %w", err)
			}
			factors = append(factors, leaf)
		default:
			node, err := p.parseExpression(child, level+1)
			if err != nil {
				return nil, err
			}
			factors = append(factors, node)
		}
	}

	return wrap(expr.NewProduct(factors, level))
}

// parseUnaryArg reads the single argument of a unary operator. Numbers are
// rejected: a constant argument is assumed to have been simplified away by
// the producer of the document.
func (p *parser) parseUnaryArg(e *element, level int) (expr.Operand, float64, error) {
	if len(e.Children) != 1 {
		return expr.Operand{}, 0, fmt.Errorf("%w: <%s> holds %d children, want 1", ErrArity, e.tag(), len(e.Children))
	}

	return p.parseOperand(&e.Children[0], level, false)
}

// parseOperand reads one argument slot: a variable leaf with an optional
// coefficient, a number leaf (only where the operator accepts constants),
// or a nested operator.
func (p *parser) parseOperand(child *element, level int, allowNumber bool) (expr.Operand, float64, error) {
	switch child.tag() {
	case "variable":
		idx, coef, err := p.parseVariableLeaf(child)
		if err != nil {
			return expr.Operand{}, 0, err
		}

		return expr.VarOperand(idx), coef, nil
	case "number":
		if !allowNumber {
			return expr.Operand{}, 0, ErrNumberArgument
		}
		value, err := child.requireFloatAttr("value")
		if err != nil {
			return expr.Operand{}, 0, err
		}

		return expr.ConstOperand(value), 1.0, nil
	default:
		node, err := p.parseExpression(child, level+1)
		if err != nil {
			return expr.Operand{}, 0, err
		}

		return expr.ChildOperand(node), 1.0, nil
	}
}

// parseVariableLeaf reads idx and the optional coef (default 1.0).
func (p *parser) parseVariableLeaf(child *element) (int, float64, error) {
	idx, err := child.requireIntAttr("idx")
	if err != nil {
		return 0, 0, err
	}
	coef, err := child.floatAttr("coef", 1.0)
	if err != nil {
		return 0, 0, err
	}
	p.warnUnknownAttrs(child, "idx", "coef")

	return idx, coef, nil
}

// parsePower reads base and exponent, each independently a variable,
// number or nested operator with its own coefficient.
func (p *parser) parsePower(e *element, level int) (expr.Node, error) {
	if len(e.Children) != 2 {
		return nil, fmt.Errorf("%w: <power> holds %d children, want 2", ErrArity, len(e.Children))
	}
	base, baseCoef, err := p.parseOperand(&e.Children[0], level, true)
	if err != nil {
		return nil, err
	}
	exponent, expCoef, err := p.parseOperand(&e.Children[1], level, true)
	if err != nil {
		return nil, err
	}

	return wrap(expr.NewPower(base, exponent, baseCoef, expCoef, level))
}

// parseDivide reads numerator (constant allowed) and denominator (variable
// or nested operator only).
func (p *parser) parseDivide(e *element, level int) (expr.Node, error) {
	if len(e.Children) != 2 {
		return nil, fmt.Errorf("%w: <divide> holds %d children, want 2", ErrArity, len(e.Children))
	}
	num, numCoef, err := p.parseOperand(&e.Children[0], level, true)
	if err != nil {
		return nil, err
	}
	den, denCoef, err := p.parseOperand(&e.Children[1], level, false)
	if err != nil {
		return nil, err
	}

	return wrap(expr.NewDivide(num, den, numCoef, denCoef, level))
}

// parseSignPower reads the restricted signpower form: a variable base and
// a constant exponent greater than one.
func (p *parser) parseSignPower(e *element, level int) (expr.Node, error) {
	if len(e.Children) != 2 {
		return nil, fmt.Errorf("%w: <signpower> holds %d children, want 2", ErrArity, len(e.Children))
	}
	if e.Children[0].tag() != "variable" {
		return nil, fmt.Errorf("%w: signpower base must be a variable, got <%s>", ErrUnknownTag, e.Children[0].tag())
	}
	if e.Children[1].tag() != "number" {
		return nil, fmt.Errorf("%w: signpower exponent must be a number, got <%s>", ErrUnknownTag, e.Children[1].tag())
	}
	base, err := e.Children[0].requireIntAttr("idx")
	if err != nil {
		return nil, err
	}
	exponent, err := e.Children[1].requireFloatAttr("value")
	if err != nil {
		return nil, err
	}

	return wrap(expr.NewSignPower(base, exponent, level))
}

// wrap converts an expr constructor result into the parser's error idiom.
func wrap[N expr.Node](n N, err error) (expr.Node, error) {
	if err != nil {
		return nil, fmt.Errorf("osil: building expression: %w", err)
	}

	return n, nil
}

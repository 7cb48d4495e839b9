package osil

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/factorable/logger"
	"github.com/katalvlaran/factorable/model"
)

// Stats counts selected operator occurrences seen while parsing the
// nonlinear expression forest, for reporting purposes.
type Stats struct {
	Cos  int
	Sin  int
	Sqrt int
	Exp  int
	Log  int // ln and log10 together
}

// parser holds the state of one ingestion run.
type parser struct {
	inst  *model.Instance
	stats Stats
	log   zerolog.Logger
}

// Parse ingests an OSiL document into a fresh model.Instance. On any
// format error no instance is returned.
func Parse(r io.Reader) (*model.Instance, error) {
	inst, _, err := ParseWithStats(r)

	return inst, err
}

// ParseFile ingests the OSiL document at path.
func ParseFile(path string) (*model.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("osil: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// ParseWithStats ingests an OSiL document and additionally returns the
// operator occurrence statistics gathered along the way.
func ParseWithStats(r io.Reader) (*model.Instance, Stats, error) {
	var root element
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, Stats{}, fmt.Errorf("osil: decoding document: %w", err)
	}
	if root.tag() != "osil" {
		return nil, Stats{}, fmt.Errorf("%w: got <%s>", ErrNotOSiL, root.tag())
	}

	p := &parser{log: logger.Logger().With().Str("component", "osil").Logger()}

	var header, data *element
	for i := range root.Children {
		child := &root.Children[i]
		switch child.tag() {
		case "instanceHeader":
			header = child
		case "instanceData":
			data = child
		default:
			return nil, Stats{}, fmt.Errorf("%w: <%s> at document level", ErrUnknownTag, child.tag())
		}
	}
	if data == nil {
		return nil, Stats{}, fmt.Errorf("%w: instanceData", ErrMissingSection)
	}

	p.inst = model.NewInstance(p.parseHeader(header))
	if err := p.parseData(data); err != nil {
		return nil, Stats{}, err
	}
	// Cross-reference check: every coefficient key names a real constraint
	// (or the objective) and every term index a declared variable.
	if err := p.inst.ValidateReferences(); err != nil {
		return nil, Stats{}, fmt.Errorf("osil: %w", err)
	}
	p.inst.MarkCompleted()

	return p.inst, p.stats, nil
}

// parseHeader extracts the instance name; other header children are
// informational and skipped with a warning.
func (p *parser) parseHeader(header *element) string {
	if header == nil {
		return ""
	}
	name := ""
	for i := range header.Children {
		child := &header.Children[i]
		if child.tag() == "name" {
			name = child.Text
		} else {
			p.log.Warn().Str("tag", child.tag()).Msg("unknown instanceHeader child skipped")
		}
	}

	return name
}

// parseData walks the instanceData sections in their canonical order:
// variables, objectives, constraints, then the three coefficient blocks.
func (p *parser) parseData(data *element) error {
	vars := data.find("variables")
	if vars == nil {
		return fmt.Errorf("%w: variables", ErrMissingSection)
	}
	if err := p.parseVariables(vars); err != nil {
		return err
	}

	if objectives := data.find("objectives"); objectives != nil {
		if err := p.parseObjectives(objectives); err != nil {
			return err
		}
	} else {
		p.log.Warn().Str("instance", p.inst.Name).Msg("no objective found")
	}

	if constraints := data.find("constraints"); constraints != nil {
		if err := p.parseConstraints(constraints); err != nil {
			return err
		}
	}

	// Every real constraint starts with empty linear and quadratic term
	// lists; the objective key is reserved up front.
	p.inst.Quadratic[model.ObjectiveKey] = nil
	for i := range p.inst.Constraints {
		p.inst.Linear[i] = nil
		p.inst.Quadratic[i] = nil
	}

	if lin := data.find("linearConstraintCoefficients"); lin != nil {
		if err := p.parseLinearCoefficients(lin); err != nil {
			return err
		}
	}
	if quad := data.find("quadraticCoefficients"); quad != nil {
		if err := p.parseQuadraticCoefficients(quad); err != nil {
			return err
		}
	}
	if nl := data.find("nonlinearExpressions"); nl != nil {
		if err := p.parseNonlinearExpressions(nl); err != nil {
			return err
		}
	}

	for i := range data.Children {
		switch data.Children[i].tag() {
		case "variables", "objectives", "constraints",
			"linearConstraintCoefficients", "quadraticCoefficients", "nonlinearExpressions":
		default:
			p.log.Warn().Str("tag", data.Children[i].tag()).Msg("unknown instanceData child skipped")
		}
	}

	return nil
}

// parseVariables reads the variable sequence: name, lb (default 0), ub
// (default unbounded), type C/I/B (default C).
func (p *parser) parseVariables(node *element) error {
	declared, err := node.requireIntAttr("numberOfVariables")
	if err != nil {
		return err
	}
	for i := range node.Children {
		child := &node.Children[i]
		name, err := child.requireAttr("name")
		if err != nil {
			return err
		}
		lb, err := child.floatAttr("lb", 0)
		if err != nil {
			return err
		}
		ub, err := child.floatAttr("ub", math.Inf(1))
		if err != nil {
			return err
		}
		kind := model.Continuous
		if raw, ok := child.attr("type"); ok {
			switch raw {
			case "C":
				kind = model.Continuous
			case "I":
				kind = model.Integer
			case "B":
				kind = model.Binary
			default:
				return fmt.Errorf("%w: type=%q on variable %q", ErrBadAttr, raw, name)
			}
		}
		p.warnUnknownAttrs(child, "name", "lb", "ub", "type")
		p.inst.AddVariable(model.Variable{Name: name, Lb: lb, Ub: ub, Kind: kind})
	}
	if len(p.inst.Variables) != declared {
		return fmt.Errorf("%w: numberOfVariables=%d, parsed %d", ErrCountMismatch, declared, len(p.inst.Variables))
	}

	return nil
}

// parseObjectives reads the single objective: direction, sparse linear
// coefficients keyed by variable index, and the constant offset.
func (p *parser) parseObjectives(node *element) error {
	if len(node.Children) != 1 {
		return fmt.Errorf("%w: found %d", ErrObjectiveCount, len(node.Children))
	}
	obj := &node.Children[0]
	if obj.tag() != "obj" {
		return fmt.Errorf("%w: <%s> inside objectives", ErrUnknownTag, obj.tag())
	}

	name, err := obj.requireAttr("name")
	if err != nil {
		return err
	}
	rawDir, err := obj.requireAttr("maxOrMin")
	if err != nil {
		return err
	}
	dir, err := model.ParseDirection(rawDir)
	if err != nil {
		return fmt.Errorf("%w: maxOrMin=%q", ErrBadAttr, rawDir)
	}
	declared, err := obj.requireIntAttr("numberOfObjCoef")
	if err != nil {
		return err
	}
	constant, err := obj.floatAttr("constant", 0)
	if err != nil {
		return err
	}

	coeffs := make(map[int]float64, declared)
	for i := range obj.Children {
		coef := &obj.Children[i]
		idx, err := coef.requireIntAttr("idx")
		if err != nil {
			return err
		}
		if _, dup := coeffs[idx]; dup {
			return fmt.Errorf("%w: variable index %d", ErrDuplicateCoef, idx)
		}
		val, err := parseFloatText(coef)
		if err != nil {
			return err
		}
		coeffs[idx] = val
	}
	if len(coeffs) != declared {
		return fmt.Errorf("%w: numberOfObjCoef=%d, parsed %d", ErrCountMismatch, declared, len(coeffs))
	}

	p.inst.Objective = &model.Objective{Name: name, Direction: dir, Coeffs: coeffs, Constant: constant}

	return nil
}

// parseConstraints reads the constraint metadata sequence: name plus
// optional lb/ub (a constraint unbounded on both sides is rejected).
func (p *parser) parseConstraints(node *element) error {
	declared, err := node.requireIntAttr("numberOfConstraints")
	if err != nil {
		return err
	}
	for i := range node.Children {
		child := &node.Children[i]
		name, err := child.requireAttr("name")
		if err != nil {
			return err
		}
		lb, err := child.floatAttr("lb", math.Inf(-1))
		if err != nil {
			return err
		}
		ub, err := child.floatAttr("ub", math.Inf(1))
		if err != nil {
			return err
		}
		info := model.ConstraintInfo{Name: name, Lb: lb, Ub: ub}
		if err := info.Validate(); err != nil {
			return fmt.Errorf("osil: %w", err)
		}
		p.warnUnknownAttrs(child, "name", "lb", "ub")
		p.inst.AddConstraint(info)
	}
	if len(p.inst.Constraints) != declared {
		return fmt.Errorf("%w: numberOfConstraints=%d, parsed %d", ErrCountMismatch, declared, len(p.inst.Constraints))
	}

	return nil
}

// parseLinearCoefficients expands the run-length compressed sparse block.
// With colIdx the start offsets delimit each row's slice of the index and
// value arrays; with rowIdx they delimit each column's slice.
func (p *parser) parseLinearCoefficients(node *element) error {
	declared, err := node.requireIntAttr("numberOfValues")
	if err != nil {
		return err
	}

	start := node.find("start")
	value := node.find("value")
	if start == nil || value == nil {
		return fmt.Errorf("%w: start/value inside linearConstraintCoefficients", ErrMissingSection)
	}
	starts, err := decodeIntArray(start)
	if err != nil {
		return err
	}
	values, err := decodeFloatArray(value)
	if err != nil {
		return err
	}

	count := 0
	switch {
	case node.find("colIdx") != nil:
		cols, err := decodeIntArray(node.find("colIdx"))
		if err != nil {
			return err
		}
		if len(cols) != len(values) {
			return fmt.Errorf("%w: %d column indices for %d values", ErrCountMismatch, len(cols), len(values))
		}
		for row := 0; row+1 < len(starts); row++ {
			for k := starts[row]; k < starts[row+1]; k++ {
				p.inst.Linear[row] = append(p.inst.Linear[row], model.LinearTerm{Var: cols[k], Coef: values[k]})
				count++
			}
		}
	case node.find("rowIdx") != nil:
		rows, err := decodeIntArray(node.find("rowIdx"))
		if err != nil {
			return err
		}
		if len(rows) != len(values) {
			return fmt.Errorf("%w: %d row indices for %d values", ErrCountMismatch, len(rows), len(values))
		}
		for col := 0; col+1 < len(starts); col++ {
			for k := starts[col]; k < starts[col+1]; k++ {
				p.inst.Linear[rows[k]] = append(p.inst.Linear[rows[k]], model.LinearTerm{Var: col, Coef: values[k]})
				count++
			}
		}
	default:
		return fmt.Errorf("%w: colIdx or rowIdx inside linearConstraintCoefficients", ErrMissingSection)
	}

	if count != declared {
		return fmt.Errorf("%w: numberOfValues=%d, expanded %d", ErrCountMismatch, declared, count)
	}

	return nil
}

// parseQuadraticCoefficients reads the quadratic term list; the idx
// attribute addresses the owning constraint (-1 for the objective).
func (p *parser) parseQuadraticCoefficients(node *element) error {
	declared, err := node.requireIntAttr("numberOfQuadraticTerms")
	if err != nil {
		return err
	}
	for i := range node.Children {
		term := &node.Children[i]
		idx, err := term.requireIntAttr("idx")
		if err != nil {
			return err
		}
		one, err := term.requireIntAttr("idxOne")
		if err != nil {
			return err
		}
		two, err := term.requireIntAttr("idxTwo")
		if err != nil {
			return err
		}
		coef, err := term.requireFloatAttr("coef")
		if err != nil {
			return err
		}
		p.warnUnknownAttrs(term, "idx", "idxOne", "idxTwo", "coef")
		p.inst.Quadratic[idx] = append(p.inst.Quadratic[idx], model.QuadTerm{Var1: one, Var2: two, Coef: coef})
	}
	if len(node.Children) != declared {
		return fmt.Errorf("%w: numberOfQuadraticTerms=%d, parsed %d", ErrCountMismatch, declared, len(node.Children))
	}

	return nil
}

// parseNonlinearExpressions reads the nonlinear forest: one root operator
// per nl element, keyed by constraint index (-1 for the objective). Each
// root's bounds are computed eagerly once, so downstream consumers see
// cached intervals.
func (p *parser) parseNonlinearExpressions(node *element) error {
	declared, err := node.requireIntAttr("numberOfNonlinearExpressions")
	if err != nil {
		return err
	}
	varBounds := p.inst.VariableBounds()
	for i := range node.Children {
		nl := &node.Children[i]
		if nl.tag() != "nl" {
			return fmt.Errorf("%w: <%s> inside nonlinearExpressions", ErrUnknownTag, nl.tag())
		}
		idx, err := nl.requireIntAttr("idx")
		if err != nil {
			return err
		}
		if len(nl.Children) != 1 {
			return fmt.Errorf("%w: nl idx=%d holds %d roots", ErrArity, idx, len(nl.Children))
		}
		root, err := p.parseExpression(&nl.Children[0], 0)
		if err != nil {
			return err
		}
		if _, err := root.ComputeBounds(varBounds); err != nil {
			return fmt.Errorf("osil: bounds of nonlinear root idx=%d: %w", idx, err)
		}
		p.inst.Nonlinear[idx] = root
	}
	if len(node.Children) != declared {
		return fmt.Errorf("%w: numberOfNonlinearExpressions=%d, parsed %d",
			ErrCountMismatch, declared, len(node.Children))
	}

	return nil
}

// warnUnknownAttrs logs attributes outside the known set; they do not
// affect semantics and are skipped.
func (p *parser) warnUnknownAttrs(e *element, known ...string) {
	for _, a := range e.Attrs {
		found := false
		for _, k := range known {
			if a.Name.Local == k {
				found = true

				break
			}
		}
		if !found {
			p.log.Warn().
				Str("tag", e.tag()).
				Str("attr", a.Name.Local).
				Msg("unknown attribute skipped")
		}
	}
}

package osil

import "errors"

// Sentinel format errors raised during ingestion. All of them abort the
// parse; no partial instance is ever returned.
var (
	// ErrNotOSiL indicates the document root is not an osil element.
	ErrNotOSiL = errors.New("osil: root element is not osil")

	// ErrUnknownTag indicates an unknown structural tag.
	ErrUnknownTag = errors.New("osil: unknown structural tag")

	// ErrMissingSection indicates a required section is absent.
	ErrMissingSection = errors.New("osil: required section missing")

	// ErrCountMismatch indicates a declared count attribute disagrees with
	// the number of parsed entries.
	ErrCountMismatch = errors.New("osil: declared count does not match contents")

	// ErrObjectiveCount indicates the objectives section does not hold
	// exactly one objective.
	ErrObjectiveCount = errors.New("osil: instance must carry exactly one objective")

	// ErrDuplicateCoef indicates an objective coefficient entry repeats a
	// variable index.
	ErrDuplicateCoef = errors.New("osil: duplicate objective coefficient")

	// ErrMissingAttr indicates a required attribute is absent.
	ErrMissingAttr = errors.New("osil: missing required attribute")

	// ErrBadAttr indicates an attribute value failed to parse.
	ErrBadAttr = errors.New("osil: malformed attribute value")

	// ErrArity indicates an operator tag with the wrong number of children.
	ErrArity = errors.New("osil: wrong number of children for operator")

	// ErrNumberArgument indicates a number leaf where the operator does not
	// accept a constant argument.
	ErrNumberArgument = errors.New("osil: number not allowed as operator argument")

	// ErrUnknownOperator indicates a nonlinear operator tag outside the
	// supported set of fourteen.
	ErrUnknownOperator = errors.New("osil: unsupported nonlinear operator")
)

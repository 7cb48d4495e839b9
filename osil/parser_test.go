package osil_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorable/expr"
	"github.com/katalvlaran/factorable/model"
	"github.com/katalvlaran/factorable/osil"
)

// fullDocument covers every section: variables with defaults and types, a
// minimizing objective with a constant, ranged and equality constraints,
// row-major linear coefficients, a quadratic term and two nonlinear roots.
const fullDocument = `
<osil>
  <instanceHeader><name>sample</name></instanceHeader>
  <instanceData>
    <variables numberOfVariables="2">
      <var name="x" lb="-1" ub="4"/>
      <var name="y" lb="0" ub="2" type="I"/>
    </variables>
    <objectives>
      <obj name="obj" maxOrMin="min" numberOfObjCoef="2" constant="3">
        <coef idx="0">1.5</coef>
        <coef idx="1">-2</coef>
      </obj>
    </objectives>
    <constraints numberOfConstraints="2">
      <con name="e1" ub="10"/>
      <con name="e2" lb="0" ub="0"/>
    </constraints>
    <linearConstraintCoefficients numberOfValues="3">
      <start><el>0</el><el>2</el><el>3</el></start>
      <colIdx><el>0</el><el>1</el><el>0</el></colIdx>
      <value><el>1</el><el>2</el><el>-1</el></value>
    </linearConstraintCoefficients>
    <quadraticCoefficients numberOfQuadraticTerms="1">
      <qTerm idx="0" idxOne="0" idxTwo="1" coef="2.5"/>
    </quadraticCoefficients>
    <nonlinearExpressions numberOfNonlinearExpressions="2">
      <nl idx="-1"><square><variable idx="0" coef="2"/></square></nl>
      <nl idx="1"><sum><variable idx="0"/><cos><variable idx="1"/></cos></sum></nl>
    </nonlinearExpressions>
  </instanceData>
</osil>`

//----------------------------------------------------------------------------//
// Happy-Path Tests
//----------------------------------------------------------------------------//

// TestParse_FullDocument walks every parsed section of fullDocument.
func TestParse_FullDocument(t *testing.T) {
	inst, stats, err := osil.ParseWithStats(strings.NewReader(fullDocument))
	require.NoError(t, err)
	require.True(t, inst.Completed())
	require.Equal(t, "sample", inst.Name)

	// Variables: attribute defaults and the type letter.
	require.Len(t, inst.Variables, 2)
	require.Equal(t, model.Variable{Name: "x", Lb: -1, Ub: 4, Kind: model.Continuous}, inst.Variables[0])
	require.Equal(t, model.Variable{Name: "y", Lb: 0, Ub: 2, Kind: model.Integer}, inst.Variables[1])

	// Objective.
	require.Equal(t, "obj", inst.Objective.Name)
	require.Equal(t, model.Minimize, inst.Objective.Direction)
	require.Equal(t, map[int]float64{0: 1.5, 1: -2}, inst.Objective.Coeffs)
	require.Equal(t, 3.0, inst.Objective.Constant)

	// Constraints: missing lb defaults to unbounded.
	require.Len(t, inst.Constraints, 2)
	require.False(t, math.IsInf(inst.Constraints[0].Ub, 1))
	require.True(t, math.IsInf(inst.Constraints[0].Lb, -1))
	require.True(t, inst.Constraints[1].Equality())

	// Linear terms in row-major (colIdx) layout.
	require.Equal(t, []model.LinearTerm{{Var: 0, Coef: 1}, {Var: 1, Coef: 2}}, inst.Linear[0])
	require.Equal(t, []model.LinearTerm{{Var: 0, Coef: -1}}, inst.Linear[1])

	// Quadratic terms, with the objective key reserved.
	require.Equal(t, []model.QuadTerm{{Var1: 0, Var2: 1, Coef: 2.5}}, inst.Quadratic[0])
	_, reserved := inst.Quadratic[model.ObjectiveKey]
	require.True(t, reserved)

	// Nonlinear roots with eagerly computed bounds: (2x)² over x ∈ [-1, 4]
	// gives [0, 64].
	require.Equal(t, expr.KindSquare, inst.Nonlinear[model.ObjectiveKey].Kind())
	require.Equal(t, expr.Interval{Lower: 0, Upper: 64}, inst.Nonlinear[model.ObjectiveKey].Bounds())
	require.Equal(t, expr.KindSum, inst.Nonlinear[1].Kind())

	require.Equal(t, osil.Stats{Cos: 1}, stats)
	require.NoError(t, inst.Validate())
}

// TestParse_ColumnMajorLinear exercises the rowIdx layout, where start
// offsets delimit each column's slice.
func TestParse_ColumnMajorLinear(t *testing.T) {
	doc := `
<osil>
  <instanceData>
    <variables numberOfVariables="2">
      <var name="x"/>
      <var name="y"/>
    </variables>
    <objectives>
      <obj name="obj" maxOrMin="min" numberOfObjCoef="0"/>
    </objectives>
    <constraints numberOfConstraints="2">
      <con name="e1" ub="1"/>
      <con name="e2" ub="1"/>
    </constraints>
    <linearConstraintCoefficients numberOfValues="2">
      <start><el>0</el><el>1</el><el>2</el></start>
      <rowIdx><el>0</el><el>1</el></rowIdx>
      <value><el>3</el><el>4</el></value>
    </linearConstraintCoefficients>
  </instanceData>
</osil>`
	inst, err := osil.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []model.LinearTerm{{Var: 0, Coef: 3}}, inst.Linear[0])
	require.Equal(t, []model.LinearTerm{{Var: 1, Coef: 4}}, inst.Linear[1])
}

// TestParse_RunLengthEncoding checks mult/incr expansion of el runs.
func TestParse_RunLengthEncoding(t *testing.T) {
	doc := `
<osil>
  <instanceData>
    <variables numberOfVariables="3">
      <var name="a"/><var name="b"/><var name="c"/>
    </variables>
    <objectives>
      <obj name="obj" maxOrMin="min" numberOfObjCoef="0"/>
    </objectives>
    <constraints numberOfConstraints="1">
      <con name="e1" ub="9"/>
    </constraints>
    <linearConstraintCoefficients numberOfValues="3">
      <start><el>0</el><el>3</el></start>
      <colIdx><el mult="3" incr="1">0</el></colIdx>
      <value><el mult="3" incr="0.5">1</el></value>
    </linearConstraintCoefficients>
  </instanceData>
</osil>`
	inst, err := osil.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []model.LinearTerm{
		{Var: 0, Coef: 1},
		{Var: 1, Coef: 1.5},
		{Var: 2, Coef: 2},
	}, inst.Linear[0])
}

// TestParse_OperatorForest covers the remaining operator tags in one
// document and the gathered statistics.
func TestParse_OperatorForest(t *testing.T) {
	doc := `
<osil>
  <instanceData>
    <variables numberOfVariables="2">
      <var name="x" lb="1" ub="2"/>
      <var name="y" lb="1" ub="4"/>
    </variables>
    <objectives>
      <obj name="obj" maxOrMin="max" numberOfObjCoef="0"/>
    </objectives>
    <constraints numberOfConstraints="6">
      <con name="e1" ub="1"/>
      <con name="e2" ub="1"/>
      <con name="e3" ub="1"/>
      <con name="e4" ub="1"/>
      <con name="e5" ub="1"/>
      <con name="e6" ub="1"/>
    </constraints>
    <nonlinearExpressions numberOfNonlinearExpressions="6">
      <nl idx="0"><divide><number value="5"/><variable idx="1"/></divide></nl>
      <nl idx="1"><power><variable idx="0"/><number value="2"/></power></nl>
      <nl idx="2"><signpower><variable idx="0"/><number value="3"/></signpower></nl>
      <nl idx="3"><product><variable idx="0"/><variable idx="1"/><number value="2"/></product></nl>
      <nl idx="4"><sqrt><variable idx="1"/></sqrt></nl>
      <nl idx="5"><ln><exp><variable idx="0"/></exp></ln></nl>
    </nonlinearExpressions>
  </instanceData>
</osil>`
	inst, stats, err := osil.ParseWithStats(strings.NewReader(doc))
	require.NoError(t, err)

	require.Equal(t, expr.KindDivide, inst.Nonlinear[0].Kind())
	require.Equal(t, expr.Interval{Lower: 1.25, Upper: 5}, inst.Nonlinear[0].Bounds())
	require.Equal(t, expr.KindPower, inst.Nonlinear[1].Kind())
	require.Equal(t, expr.KindSignPower, inst.Nonlinear[2].Kind())
	require.Equal(t, expr.KindProduct, inst.Nonlinear[3].Kind())
	require.Equal(t, expr.Interval{Lower: 2, Upper: 16}, inst.Nonlinear[3].Bounds())
	require.Equal(t, expr.KindSquareroot, inst.Nonlinear[4].Kind())
	require.Equal(t, expr.KindLn, inst.Nonlinear[5].Kind())

	require.Equal(t, osil.Stats{Sqrt: 1, Exp: 1, Log: 1}, stats)
}

// TestParse_MissingObjective verifies a missing objectives section is
// tolerated at parse time.
func TestParse_MissingObjective(t *testing.T) {
	doc := `
<osil>
  <instanceData>
    <variables numberOfVariables="1"><var name="x"/></variables>
  </instanceData>
</osil>`
	inst, err := osil.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Nil(t, inst.Objective)
}

//----------------------------------------------------------------------------//
// Error Tests
//----------------------------------------------------------------------------//

// TestParse_Errors is the format-error table, matched with errors.Is.
func TestParse_Errors(t *testing.T) {
	const prologue = `
<osil>
  <instanceData>
    <variables numberOfVariables="1"><var name="x" lb="1" ub="2"/></variables>
    <objectives><obj name="obj" maxOrMin="min" numberOfObjCoef="0"/></objectives>
    <constraints numberOfConstraints="1"><con name="e1" ub="1"/></constraints>`
	const epilogue = `
  </instanceData>
</osil>`

	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"NotOSiL", `<lp></lp>`, osil.ErrNotOSiL},
		{"UnknownDocumentTag", `<osil><bogus/></osil>`, osil.ErrUnknownTag},
		{"MissingInstanceData", `<osil><instanceHeader/></osil>`, osil.ErrMissingSection},
		{"MissingVariables", `<osil><instanceData/></osil>`, osil.ErrMissingSection},
		{
			"VariableCountMismatch",
			`<osil><instanceData><variables numberOfVariables="2"><var name="x"/></variables></instanceData></osil>`,
			osil.ErrCountMismatch,
		},
		{
			"VariableMissingName",
			`<osil><instanceData><variables numberOfVariables="1"><var lb="0"/></variables></instanceData></osil>`,
			osil.ErrMissingAttr,
		},
		{
			"VariableBadType",
			`<osil><instanceData><variables numberOfVariables="1"><var name="x" type="Z"/></variables></instanceData></osil>`,
			osil.ErrBadAttr,
		},
		{
			"TwoObjectives",
			`<osil><instanceData><variables numberOfVariables="1"><var name="x"/></variables>` +
				`<objectives><obj name="a" maxOrMin="min" numberOfObjCoef="0"/><obj name="b" maxOrMin="min" numberOfObjCoef="0"/></objectives>` +
				`</instanceData></osil>`,
			osil.ErrObjectiveCount,
		},
		{
			"BadDirection",
			`<osil><instanceData><variables numberOfVariables="1"><var name="x"/></variables>` +
				`<objectives><obj name="a" maxOrMin="minimize" numberOfObjCoef="0"/></objectives>` +
				`</instanceData></osil>`,
			osil.ErrBadAttr,
		},
		{
			"DuplicateObjectiveCoef",
			`<osil><instanceData><variables numberOfVariables="1"><var name="x"/></variables>` +
				`<objectives><obj name="a" maxOrMin="min" numberOfObjCoef="2">` +
				`<coef idx="0">1</coef><coef idx="0">2</coef></obj></objectives>` +
				`</instanceData></osil>`,
			osil.ErrDuplicateCoef,
		},
		{
			"FreeConstraint",
			`<osil><instanceData><variables numberOfVariables="1"><var name="x"/></variables>` +
				`<objectives><obj name="a" maxOrMin="min" numberOfObjCoef="0"/></objectives>` +
				`<constraints numberOfConstraints="1"><con name="free"/></constraints>` +
				`</instanceData></osil>`,
			model.ErrFreeConstraint,
		},
		{
			"UnaryNumberArgument",
			prologue + `<nonlinearExpressions numberOfNonlinearExpressions="1">` +
				`<nl idx="0"><cos><number value="1"/></cos></nl></nonlinearExpressions>` + epilogue,
			osil.ErrNumberArgument,
		},
		{
			"UnknownOperator",
			prologue + `<nonlinearExpressions numberOfNonlinearExpressions="1">` +
				`<nl idx="0"><tan><variable idx="0"/></tan></nl></nonlinearExpressions>` + epilogue,
			osil.ErrUnknownOperator,
		},
		{
			"RootArity",
			prologue + `<nonlinearExpressions numberOfNonlinearExpressions="1">` +
				`<nl idx="0"><variable idx="0"/><variable idx="0"/></nl></nonlinearExpressions>` + epilogue,
			osil.ErrArity,
		},
		{
			"UnaryArity",
			prologue + `<nonlinearExpressions numberOfNonlinearExpressions="1">` +
				`<nl idx="0"><sqrt><variable idx="0"/><variable idx="0"/></sqrt></nl></nonlinearExpressions>` + epilogue,
			osil.ErrArity,
		},
		{
			"SignPowerCompositeBase",
			prologue + `<nonlinearExpressions numberOfNonlinearExpressions="1">` +
				`<nl idx="0"><signpower><square><variable idx="0"/></square><number value="2"/></signpower></nl>` +
				`</nonlinearExpressions>` + epilogue,
			osil.ErrUnknownTag,
		},
		{
			"LinearMissingIndexArray",
			prologue + `<linearConstraintCoefficients numberOfValues="1">` +
				`<start><el>0</el><el>1</el></start><value><el>1</el></value>` +
				`</linearConstraintCoefficients>` + epilogue,
			osil.ErrMissingSection,
		},
		{
			"LinearCountMismatch",
			prologue + `<linearConstraintCoefficients numberOfValues="2">` +
				`<start><el>0</el><el>1</el></start><colIdx><el>0</el></colIdx><value><el>1</el></value>` +
				`</linearConstraintCoefficients>` + epilogue,
			osil.ErrCountMismatch,
		},
		{
			"LinearConstraintRange",
			prologue + `<linearConstraintCoefficients numberOfValues="1">` +
				`<start><el>0</el><el>1</el></start><rowIdx><el>7</el></rowIdx><value><el>1</el></value>` +
				`</linearConstraintCoefficients>` + epilogue,
			model.ErrIndexRange,
		},
		{
			"LinearVariableRange",
			prologue + `<linearConstraintCoefficients numberOfValues="1">` +
				`<start><el>0</el><el>1</el></start><colIdx><el>9</el></colIdx><value><el>1</el></value>` +
				`</linearConstraintCoefficients>` + epilogue,
			model.ErrIndexRange,
		},
		{
			"LinearFractionalIndex",
			prologue + `<linearConstraintCoefficients numberOfValues="1">` +
				`<start><el>0</el><el>1.5</el></start><colIdx><el>0</el></colIdx><value><el>1</el></value>` +
				`</linearConstraintCoefficients>` + epilogue,
			osil.ErrBadAttr,
		},
		{
			"LinearFractionalIncrement",
			prologue + `<linearConstraintCoefficients numberOfValues="1">` +
				`<start><el>0</el><el>1</el></start><colIdx><el incr="0.5" mult="1">0</el></colIdx>` +
				`<value><el>1</el></value>` +
				`</linearConstraintCoefficients>` + epilogue,
			osil.ErrBadAttr,
		},
		{
			"QuadraticConstraintRange",
			prologue + `<quadraticCoefficients numberOfQuadraticTerms="1">` +
				`<qTerm idx="5" idxOne="0" idxTwo="0" coef="1"/>` +
				`</quadraticCoefficients>` + epilogue,
			model.ErrIndexRange,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := osil.Parse(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

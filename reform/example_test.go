package reform_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/factorable/expr"
	"github.com/katalvlaran/factorable/model"
	"github.com/katalvlaran/factorable/reform"
)

// ExampleReformulate rewrites cos(x + y) ≤ 1 into factorable form: the sum
// argument moves into a defining equality constraint behind a fresh
// auxiliary variable.
func ExampleReformulate() {
	inst := model.NewInstance("demo")

	x := model.NewVariable("x")
	x.Ub = 1
	inst.AddVariable(x)
	y := model.NewVariable("y")
	y.Ub = 2
	inst.AddVariable(y)
	inst.Objective = &model.Objective{
		Name:      "obj",
		Direction: model.Minimize,
		Coeffs:    map[int]float64{0: 1},
	}

	sx, _ := expr.NewSummand(0, 1.0, 1)
	sy, _ := expr.NewSummand(1, 1.0, 1)
	sum, _ := expr.NewSum([]expr.Node{sx, sy}, 1)
	cosine, _ := expr.NewCosine(expr.ChildOperand(sum), 1.0, 0)

	idx := inst.AddConstraint(model.ConstraintInfo{Name: "c1", Lb: math.Inf(-1), Ub: 1})
	inst.Nonlinear[idx] = cosine
	inst.MarkCompleted()

	out, nAux, err := reform.Reformulate(inst, reform.DefaultOptions())
	if err != nil {
		fmt.Println("reformulate:", err)

		return
	}

	fmt.Println("auxiliary variables:", nAux)
	fmt.Println("constraints:", len(out.Constraints))
	fmt.Println("factorable:", reform.IsFactorable(out))
	// Output:
	// auxiliary variables: 1
	// constraints: 2
	// factorable: true
}

// Package factorable rewrites nonlinear mathematical-programming instances
// into factorable form: a form where no constraint contains more than one
// non-decomposed nonlinear operation and every multi-way product has been
// reduced to bilinear terms.
//
// The pipeline, leaves first:
//
//	expr/   - typed expression-tree model (fourteen operator kinds plus two
//	          leaf kinds) with interval bound propagation per kind
//	model/  - the instance container: variables, objective, constraint
//	          metadata and the linear/quadratic/nonlinear coefficient maps
//	osil/   - ingestion of OSiL XML documents into a model.Instance
//	reform/ - the worklist-driven reformulation engine: hoists composite
//	          sub-expressions into auxiliary-variable-defining equality
//	          constraints until every nonlinear root is factorable
//
// Control flow:
//
//	osil.Parse → model.Instance (raw) → reform.Reformulate → model.Instance
//	(factorable), ready for hand-off to a model builder or solver binding.
//
// Quick example:
//
//	inst, err := osil.ParseFile("model.osil")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, nAux, err := reform.Reformulate(inst, reform.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("introduced %d auxiliary variables\n", nAux)
package factorable

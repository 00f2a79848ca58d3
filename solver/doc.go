// Package solver turns a built model.Model into a status, an objective and a
// point. Solver is the narrow contract callers depend on; Simplex is the
// bundled implementation on top of gonum's dense simplex
// (gonum.org/v1/gonum/optimize/convex/lp).
//
// Infeasible and unbounded models are ordinary results, not errors:
//
//	res, err := solver.NewSimplex().Solve(ctx, m)
//	if err != nil { ... }           // malformed model or numerical trouble
//	if res.Status == solver.StatusInfeasible { ... }
//
// Every optimal point is checked against the model rows and bounds before it
// is returned.
package solver

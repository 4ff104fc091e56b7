package solver

import (
	"gonum.org/v1/gonum/mat"
)

// NormalInverseSolver computes the textbook normal-equation expression
// (XᵀX)⁻¹Xᵀy literally: it inverts the 2×2 Gram matrix and evaluates the
// products left to right, which materializes a 2×N intermediate. It exists
// as the slow straw man the regrouped variant improves on.
type NormalInverseSolver struct{}

var _ Solver = NormalInverseSolver{}

// NewNormalInverseSolver creates the explicit-inverse normal-equation strategy.
func NewNormalInverseSolver() NormalInverseSolver {
	return NormalInverseSolver{}
}

// Name returns the strategy key.
func (NormalInverseSolver) Name() string { return "normal-inverse" }

// Description returns the strategy description.
func (NormalInverseSolver) Description() string {
	return "explicit normal equations (XᵀX)⁻¹Xᵀy with matrix inverse"
}

// Solve evaluates ((XᵀX)⁻¹ · Xᵀ) · y in that grouping.
func (NormalInverseSolver) Solve(x *mat.Dense, y []float64) (Coefficients, error) {
	n, err := validate(x, y)
	if err != nil {
		return Coefficients{}, err
	}

	xt := x.T()

	var xtx mat.Dense
	xtx.Mul(xt, x)

	var inv mat.Dense
	if err := asSolveError(inv.Inverse(&xtx)); err != nil {
		return Coefficients{}, err
	}

	// Left-to-right grouping: the 2×N intermediate is the point of this
	// strategy.
	var projector mat.Dense
	projector.Mul(&inv, xt)

	var beta mat.VecDense
	beta.MulVec(&projector, mat.NewVecDense(n, y))

	return coefficientsFromVec(&beta), nil
}

// NormalSolveSolver is the algebraic regrouping of the normal equations:
// it forms the 2×2 Gram matrix XᵀX and the length-2 vector Xᵀy first, then
// solves the tiny linear system by LU. No inverse, no N-sized intermediate.
type NormalSolveSolver struct{}

var _ Solver = NormalSolveSolver{}

// NewNormalSolveSolver creates the regrouped normal-equation strategy.
func NewNormalSolveSolver() NormalSolveSolver {
	return NormalSolveSolver{}
}

// Name returns the strategy key.
func (NormalSolveSolver) Name() string { return "normal-solve" }

// Description returns the strategy description.
func (NormalSolveSolver) Description() string {
	return "regrouped normal equations solve(XᵀX, Xᵀy) via LU"
}

// Solve computes β from XᵀX · β = Xᵀy.
func (NormalSolveSolver) Solve(x *mat.Dense, y []float64) (Coefficients, error) {
	n, err := validate(x, y)
	if err != nil {
		return Coefficients{}, err
	}

	xt := x.T()

	var xtx mat.Dense
	xtx.Mul(xt, x)

	var xty mat.VecDense
	xty.MulVec(xt, mat.NewVecDense(n, y))

	var beta mat.Dense
	if err := asSolveError(beta.Solve(&xtx, &xty)); err != nil {
		return Coefficients{}, err
	}

	return Coefficients{
		Intercept: beta.At(0, 0),
		Slope:     beta.At(1, 0),
	}, nil
}

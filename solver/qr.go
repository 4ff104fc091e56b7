package solver

import (
	"gonum.org/v1/gonum/mat"
)

// QRSolver is the reference full fit: a least-squares solve through QR
// decomposition of the design matrix, the route a general model-fitting
// routine takes. It is the most numerically robust strategy and the
// baseline every other strategy must agree with.
type QRSolver struct{}

var _ Solver = QRSolver{}

// NewQRSolver creates the QR least-squares strategy.
func NewQRSolver() QRSolver {
	return QRSolver{}
}

// Name returns the strategy key.
func (QRSolver) Name() string { return "qr" }

// Description returns the strategy description.
func (QRSolver) Description() string {
	return "full least-squares fit via QR decomposition"
}

// Solve computes the coefficients by factorizing X = QR and solving the
// triangular system Rβ = Qᵀy.
func (QRSolver) Solve(x *mat.Dense, y []float64) (Coefficients, error) {
	n, err := validate(x, y)
	if err != nil {
		return Coefficients{}, err
	}

	var qr mat.QR
	qr.Factorize(x)

	var beta mat.VecDense
	if err := asSolveError(qr.SolveVecTo(&beta, false, mat.NewVecDense(n, y))); err != nil {
		return Coefficients{}, err
	}

	return coefficientsFromVec(&beta), nil
}

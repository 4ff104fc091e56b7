// Package solver implements the competing strategies for computing
// ordinary-least-squares coefficients of a simple linear regression.
//
// Every strategy answers the same question, finding the (intercept, slope)
// pair minimizing ‖y − Xβ‖² for an N×2 design matrix X = [1 | x], but takes
// a different computational route:
//
//   - QRSolver: the reference full fit, a QR least-squares solve.
//   - NormalInverseSolver: the textbook normal equations (XᵀX)⁻¹Xᵀy with an
//     explicit inverse and left-to-right product order.
//   - NormalSolveSolver: the algebraic regrouping solve(XᵀX, Xᵀy) via LU,
//     avoiding the inverse and the N-sized intermediate.
//   - CrossProdSolver: a fused symmetric cross-product accumulated directly
//     into a symmetric matrix, solved by Cholesky.
//   - SparseSolver: the same normal equations over a compressed sparse
//     column representation of the design matrix.
//   - AccumSolver: single-pass scalar accumulator sums with the closed-form
//     two-parameter solution; Precompile returns a closure that captures the
//     sums so repeated evaluation skips the data pass entirely.
//
// On the same well-conditioned data all strategies agree up to
// floating-point tolerance; VerifyAgreement asserts this. Their run times
// differ by orders of magnitude, which is what the bench package measures.
//
// # Basic Usage
//
//	data, _ := simdata.Generate(simdata.WithSampleSize(1000))
//	x, y := data.Design(), data.Response
//
//	for _, s := range solver.All() {
//	    coef, err := s.Solve(x, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("%-15s intercept=%.4f slope=%.4f\n", s.Name(), coef.Intercept, coef.Slope)
//	}
package solver

package solver

import (
	"fmt"
	"math"

	"github.com/arloliu/olsbench/errs"
)

// DefaultTolerance is the absolute coefficient tolerance used when
// comparing strategies against the reference fit. It is deliberately loose
// relative to float64 precision: the strategies take different numerical
// routes and are only expected to agree to well beyond any statistically
// meaningful digit.
const DefaultTolerance = 1e-6

// Agree reports whether two coefficient pairs match within an absolute
// tolerance on both intercept and slope.
func Agree(a, b Coefficients, tol float64) bool {
	return math.Abs(a.Intercept-b.Intercept) <= tol &&
		math.Abs(a.Slope-b.Slope) <= tol
}

// VerifyAgreement checks every candidate against the reference
// coefficients. It returns an error wrapping ErrAgreementFailed naming the
// first strategy outside tolerance, or nil if all agree.
func VerifyAgreement(ref Coefficients, candidates map[string]Coefficients, tol float64) error {
	for name, got := range candidates {
		if !Agree(ref, got, tol) {
			return fmt.Errorf("%w: strategy %q produced (%.9g, %.9g), reference is (%.9g, %.9g), tolerance %g",
				errs.ErrAgreementFailed, name,
				got.Intercept, got.Slope,
				ref.Intercept, ref.Slope, tol)
		}
	}

	return nil
}

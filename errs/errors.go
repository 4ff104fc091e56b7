// Package errs defines the sentinel errors shared across olsbench packages.
//
// Callers wrap these sentinels with context using fmt.Errorf and %w, so
// errors.Is works across package boundaries:
//
//	return fmt.Errorf("%w: design matrix is %dx%d", errs.ErrDimensionMismatch, r, c)
package errs

import "errors"

var (
	// ErrEmptyData indicates an empty predictor or response vector.
	ErrEmptyData = errors.New("empty data")

	// ErrDimensionMismatch indicates incompatible matrix or vector shapes.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrSingularSystem indicates the normal-equation system XᵀX could not
	// be solved because it is singular or numerically rank deficient.
	ErrSingularSystem = errors.New("singular system")

	// ErrInvalidSampleCount indicates a dataset size below the minimum of 2.
	ErrInvalidSampleCount = errors.New("invalid sample count")

	// ErrInvalidNoiseSigma indicates a negative noise standard deviation.
	ErrInvalidNoiseSigma = errors.New("invalid noise sigma")

	// ErrInvalidRepetitions indicates a benchmark repetition count below 1.
	ErrInvalidRepetitions = errors.New("invalid repetition count")

	// ErrInvalidWarmup indicates a negative benchmark warmup count.
	ErrInvalidWarmup = errors.New("invalid warmup count")

	// ErrNoMeasurements indicates an empty measurement set where at least
	// one measurement is required.
	ErrNoMeasurements = errors.New("no measurements")

	// ErrAgreementFailed indicates that a strategy produced coefficients
	// outside the agreement tolerance of the reference fit.
	ErrAgreementFailed = errors.New("coefficient agreement failed")

	// ErrInvalidMagicNumber indicates artifact data that does not start
	// with the olsbench artifact magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrUnsupportedVersion indicates an artifact encoded with a newer
	// format version than this library understands.
	ErrUnsupportedVersion = errors.New("unsupported artifact version")

	// ErrChecksumMismatch indicates artifact payload corruption.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrTruncatedArtifact indicates artifact data shorter than its
	// header or entry table declares.
	ErrTruncatedArtifact = errors.New("truncated artifact")
)

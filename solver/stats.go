package solver

import "math"

// RSquared computes the coefficient of determination of predicted against
// observed values.
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squared residuals (observed - predicted)²
//   - SS_tot: Total sum of squares (observed - mean)²
//
// Returns 0 for empty input or zero total variance.
func RSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 || len(observed) != len(predicted) {
		return 0
	}

	var mean float64
	for _, v := range observed {
		mean += v
	}
	mean /= float64(len(observed))

	ssTot := 0.0
	ssRes := 0.0
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// RMSE computes the root mean square error of predicted against observed
// values. Returns 0 for empty input.
func RMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 || len(observed) != len(predicted) {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

// Evaluate computes R² and RMSE of fitted coefficients against a sample in
// a single pass, without materializing the predicted vector.
func Evaluate(c Coefficients, predictor, response []float64) (r2, rmse float64) {
	n := len(response)
	if n == 0 || len(predictor) != n {
		return 0, 0
	}

	var meanY float64
	for _, y := range response {
		meanY += y
	}
	meanY /= float64(n)

	ssTot := 0.0
	ssRes := 0.0
	for i := 0; i < n; i++ {
		predicted := c.Intercept + c.Slope*predictor[i]
		residual := response[i] - predicted
		ssTot += (response[i] - meanY) * (response[i] - meanY)
		ssRes += residual * residual
	}

	rmse = math.Sqrt(ssRes / float64(n))
	if ssTot == 0 {
		return 0, rmse
	}

	return 1.0 - (ssRes / ssTot), rmse
}

// Package simdata generates the simulated regression sample shared by every
// coefficient-computation strategy.
//
// A dataset is a predictor vector of length N drawn from a standard normal
// distribution and a response vector computed as a fixed linear function of
// the predictor plus normal noise:
//
//	y = intercept + slope*x + ε,  ε ~ N(0, sigma²)
//
// The defaults reproduce the canonical demonstration: N = 10,000,000,
// intercept 5, slope 2, unit-variance noise.
//
// # Basic Usage
//
//	data, err := simdata.Generate(
//	    simdata.WithSampleSize(1000),
//	    simdata.WithSeed(42),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	x := data.Design()   // N×2 design matrix [1 | predictor]
//	y := data.Response   // length-N response vector
//
// Generation is deterministic for a given seed, and Fingerprint() returns a
// stable xxHash64 of the generated vectors so benchmark reports and
// artifacts can state exactly which dataset produced them.
package simdata

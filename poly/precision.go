package poly

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/polyarith/polylist/utils/bignum"
)

// ReferencePrecision is the precision in bits of the reference evaluation
// used by GetPrecisionStats.
const ReferencePrecision = 256

// MaxPrecision is the precision reported for an exact float64 evaluation.
const MaxPrecision = 53

// PrecisionStats stores statistics about the precision, in bits, of the
// float64 evaluation of a polynomial over a set of points.
// The precision at a point is -log2(|want-have| / max(1, |want|)),
// where want is the reference evaluation, capped at MaxPrecision.
type PrecisionStats struct {
	Points int

	MinPrecision    float64
	MaxPrecision    float64
	MeanPrecision   float64
	MedianPrecision float64
	STDPrecision    float64
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬────────┐
│    Log2 │ PREC   │
├─────────┼────────┤
│MIN Prec │ %6.2f │
│MAX Prec │ %6.2f │
│AVG Prec │ %6.2f │
│MED Prec │ %6.2f │
│STD Prec │ %6.2f │
└─────────┴────────┘
Points : %d
`,
		prec.MinPrecision,
		prec.MaxPrecision,
		prec.MeanPrecision,
		prec.MedianPrecision,
		prec.STDPrecision,
		prec.Points)
}

// GetPrecisionStats compares Evaluate(p, x) against EvaluateBig(p, x) at
// ReferencePrecision bits for every x in points.
// It returns an error if points is empty.
func GetPrecisionStats(p Polynomial, points []float64) (prec PrecisionStats, err error) {

	if len(points) == 0 {
		return prec, fmt.Errorf("cannot GetPrecisionStats: no evaluation points")
	}

	precisions := make([]float64, len(points))
	for i, x := range points {
		precisions[i] = precisionAt(p, x)
	}

	prec.Points = len(points)

	if prec.MinPrecision, err = stats.Min(precisions); err != nil {
		return prec, fmt.Errorf("stats.Min: %w", err)
	}

	if prec.MaxPrecision, err = stats.Max(precisions); err != nil {
		return prec, fmt.Errorf("stats.Max: %w", err)
	}

	if prec.MeanPrecision, err = stats.Mean(precisions); err != nil {
		return prec, fmt.Errorf("stats.Mean: %w", err)
	}

	if prec.MedianPrecision, err = stats.Median(precisions); err != nil {
		return prec, fmt.Errorf("stats.Median: %w", err)
	}

	if prec.STDPrecision, err = stats.StandardDeviation(precisions); err != nil {
		return prec, fmt.Errorf("stats.StandardDeviation: %w", err)
	}

	return prec, nil
}

func precisionAt(p Polynomial, x float64) float64 {

	have := Evaluate(p, x)

	if math.IsInf(have, 0) || math.IsNaN(have) {
		return 0
	}

	want := EvaluateBig(p, bignum.NewFloat(x, ReferencePrecision))

	delta := bignum.NewFloat(have, ReferencePrecision)
	delta.Sub(delta, want)
	delta.Abs(delta)

	if delta.Sign() == 0 {
		return MaxPrecision
	}

	scale := new(big.Float).Abs(want)
	if scale.Cmp(bignum.NewFloat(1, ReferencePrecision)) > 0 {
		delta.Quo(delta, scale)
	}

	bits, _ := bignum.Log2(delta).Float64()

	return math.Min(-bits, MaxPrecision)
}

package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/mfortier/climdex/series"
)

// ReduceOp is the closed set of period-wise reductions over numeric series.
type ReduceOp uint8

const (
	ReduceSum   ReduceOp = 0x1 // ReduceSum totals the samples of each period.
	ReduceMean  ReduceOp = 0x2 // ReduceMean averages the samples of each period.
	ReduceMin   ReduceOp = 0x3 // ReduceMin takes each period's smallest sample.
	ReduceMax   ReduceOp = 0x4 // ReduceMax takes each period's largest sample.
	ReduceCount ReduceOp = 0x5 // ReduceCount counts each period's valid samples.
)

func (op ReduceOp) String() string {
	switch op {
	case ReduceSum:
		return "sum"
	case ReduceMean:
		return "mean"
	case ReduceMin:
		return "min"
	case ReduceMax:
		return "max"
	case ReduceCount:
		return "count"
	default:
		return "unknown"
	}
}

// ErrUnknownReduce is returned for reduction operators outside the closed set.
var ErrUnknownReduce = errors.New("resample: unknown reduce operator")

// Value is one per-period scalar result, paired with the period it covers.
type Value struct {
	Period Period
	Value  float64
}

// Reduce partitions the series' timeline with freq and reduces each period's
// samples with op.
//
// NaN samples are treated as missing and skipped. A period without any valid
// sample yields NaN, except under ReduceCount where a period that has
// samples (all invalid) yields 0 and only a period with no samples at all
// yields NaN. One period's emptiness never affects its neighbors.
func Reduce(s *series.Series, freq Freq, op ReduceOp) ([]Value, error) {
	switch op {
	case ReduceSum, ReduceMean, ReduceMin, ReduceMax, ReduceCount:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownReduce, op)
	}

	periods, err := Partition(s.Times(), s.Calendar(), freq)
	if err != nil {
		return nil, err
	}

	values := s.Values()
	out := make([]Value, len(periods))
	for i, p := range periods {
		lo, hi := p.Bounds()
		out[i] = Value{Period: p, Value: reduceSlice(values[lo:hi], op)}
	}

	return out, nil
}

func reduceSlice(vals []float64, op ReduceOp) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}

	var (
		sum   float64
		count int
		min   = math.Inf(1)
		max   = math.Inf(-1)
	)
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		count++
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if op == ReduceCount {
		return float64(count)
	}
	if count == 0 {
		return math.NaN()
	}

	switch op {
	case ReduceSum:
		return sum
	case ReduceMean:
		return sum / float64(count)
	case ReduceMin:
		return min
	default:
		return max
	}
}

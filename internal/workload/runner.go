// Package workload replays scripted operation sequences against a
// dynarr.Array and records how its length and capacity evolve.
package workload

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/penev-ff/dynarr"
)

var (
	// ErrUnknownOp indicates a step with an unrecognized operation.
	ErrUnknownOp = errors.New("workload: unknown operation")

	// ErrCanceled indicates the replay was interrupted.
	ErrCanceled = errors.New("workload: replay canceled by context")
)

// Runner replays one workload at a time. Pushed values come from a
// seeded source so replays are reproducible.
type Runner struct {
	rng *rand.Rand
}

func NewRunner(seed int64) *Runner {
	return &Runner{rng: rand.New(rand.NewSource(seed))}
}

// Run replays w against a fresh array and returns the recorded series.
// Pops against an empty array are counted as underflows rather than
// aborting the replay; an unknown op aborts.
func (r *Runner) Run(ctx context.Context, w Workload) (*Result, error) {
	var (
		arr *dynarr.Array[float64]
		err error
	)
	if w.Capacity > 0 {
		arr, err = dynarr.WithCapacity[float64](w.Capacity)
		if err != nil {
			return nil, err
		}
	} else {
		arr = dynarr.New[float64]()
	}

	res := &Result{
		Samples: make([]Sample, 0, totalOps(w.Steps)),
		Metrics: make(map[string]float64),
	}

	peakCap := arr.Cap()
	underflows := 0
	totalGrows := 0
	totalCopied := 0
	prevGrows := 0
	prevCopied := 0

	for _, step := range w.Steps {
		if ctx.Err() != nil {
			return nil, ErrCanceled
		}

		count := step.Count
		if count < 1 {
			count = 1
		}

		for i := 0; i < count; i++ {
			switch step.Op {
			case OpPush:
				arr.Push(r.rng.Float64())
			case OpPop:
				if _, err := arr.Pop(); err != nil {
					underflows++
				}
			case OpClear:
				arr.Clear()
			case OpReset:
				arr.Reset()
			case OpReserve:
				arr.Reserve(step.Capacity)
			default:
				return nil, fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
			}

			st := arr.Stats()
			if st.Cap > peakCap {
				peakCap = st.Cap
			}
			// Reset zeroes the array's own counters; accumulate
			// across it so the totals survive.
			if st.Grows < prevGrows {
				prevGrows, prevCopied = 0, 0
			}
			totalGrows += st.Grows - prevGrows
			totalCopied += st.Copied - prevCopied
			prevGrows, prevCopied = st.Grows, st.Copied
			res.Samples = append(res.Samples, Sample{
				Op:    step.Op,
				Len:   st.Len,
				Cap:   st.Cap,
				Grows: st.Grows,
			})
			res.Applied++
		}
	}

	st := arr.Stats()
	res.Metrics["grows"] = float64(totalGrows)
	res.Metrics["copied_elements"] = float64(totalCopied)
	res.Metrics["final_len"] = float64(st.Len)
	res.Metrics["final_cap"] = float64(st.Cap)
	res.Metrics["peak_cap"] = float64(peakCap)
	res.Metrics["load_factor"] = st.LoadFactor()
	res.Metrics["underflows"] = float64(underflows)

	return res, nil
}

func totalOps(steps []Step) int {
	n := 0
	for _, s := range steps {
		if s.Count < 1 {
			n++
			continue
		}
		n += s.Count
	}
	return n
}

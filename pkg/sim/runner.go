// Package sim drives scripted or generated request flows through a
// market manager and reports what traded.
package sim

import (
	"context"
	"sort"

	"github.com/gammazero/deque"
	"go.uber.org/zap"

	"github.com/joripage/matchsim/pkg/book"
	"github.com/joripage/matchsim/pkg/logging"
	"github.com/joripage/matchsim/pkg/stats"
)

// Report tallies one run.
type Report struct {
	Submitted    int
	Rejected     int
	Trades       int
	ByInstrument map[string]stats.Summary
}

type Runner struct {
	mgr     manager
	pending deque.Deque[Step]
	log     *logging.Logger
}

// manager is the slice of pkg/market the runner needs.
type manager interface {
	Submit(instrument string, side book.Side, req book.Request) ([]book.Event, error)
	History(instrument string) []book.Event
}

func NewRunner(mgr manager, log *logging.Logger) *Runner {
	return &Runner{mgr: mgr, log: log}
}

// Enqueue appends steps to the pending flow.
func (r *Runner) Enqueue(steps ...Step) {
	for _, s := range steps {
		r.pending.PushBack(s)
	}
}

// Run submits every pending step in order and returns the tally.
// Malformed or rule-rejected steps are counted and skipped; the run
// itself only fails on context cancellation.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	log, _ := logging.GetLogger(ctx)
	if r.log != nil {
		log = r.log
	}

	report := &Report{ByInstrument: map[string]stats.Summary{}}
	instruments := map[string]struct{}{}

	for r.pending.Len() > 0 {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		step := r.pending.PopFront()
		report.Submitted++
		instruments[step.Instrument] = struct{}{}

		side, req, err := step.request()
		if err != nil {
			log.Warn("skipping malformed step", zap.Error(err))
			report.Rejected++
			continue
		}

		trades, err := r.mgr.Submit(step.Instrument, side, req)
		if err != nil {
			report.Rejected++
			continue
		}
		report.Trades += len(trades)
	}

	for instrument := range instruments {
		report.ByInstrument[instrument] = stats.Summarize(r.mgr.History(instrument))
	}
	return report, nil
}

// Instruments lists the instruments a report touched, sorted for
// stable output.
func (rep *Report) Instruments() []string {
	names := make([]string, 0, len(rep.ByInstrument))
	for name := range rep.ByInstrument {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

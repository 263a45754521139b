package report

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"bosstime/internal/estimate"
)

type Row struct {
	Phase string  `json:"phase"`
	Power float64 `json:"power"`
	Semi  float64 `json:"semi"`
	Condi float64 `json:"condi"`
}

func (r *Row) set(c estimate.Category, v float64) {
	switch c {
	case estimate.Power:
		r.Power = v
	case estimate.Semi:
		r.Semi = v
	case estimate.Condi:
		r.Condi = v
	}
}

type Table struct {
	Boss   string  `json:"boss,omitempty"`
	Rows   []Row   `json:"rows"`
	Total  Row     `json:"total"`
	Events []Event `json:"events,omitempty"`
}

type Options struct {
	Workers int
	Trace   bool
}

type outcome struct {
	row    Row
	events []Event
	err    error
}

func evaluate(phase estimate.BossPhase, lib *estimate.Library, trace bool) outcome {
	est := estimate.NewEstimator(phase, lib)
	out := outcome{row: Row{Phase: est.Phase()}}
	for _, c := range estimate.Categories() {
		sol, err := est.Solve(c)
		if err != nil {
			out.err = err
			return out
		}
		out.row.set(c, sol.Time)
		if trace {
			out.events = append(out.events, solvedEvent(est.Phase(), c, phase.Threshold(c), sol))
		}
	}
	log.Debug().Str("phase", out.row.Phase).
		Float64("power", out.row.Power).Float64("semi", out.row.Semi).Float64("condi", out.row.Condi).
		Msg("phase estimated")
	return out
}

// Build estimates every phase on a pool of workers. Rows keep the order
// of phases whatever the scheduling, and the total is summed in that
// order. The first failing phase, in input order, fails the whole table.
func Build(ctx context.Context, boss string, phases []estimate.BossPhase, lib *estimate.Library, opts Options) (*Table, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(phases) {
		workers = len(phases)
	}

	results := make([]outcome, len(phases))
	jobs := make(chan int)
	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = evaluate(phases[i], lib, opts.Trace)
			}
		}()
	}

dispatch:
	for i := range phases {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := &Table{Boss: boss, Rows: make([]Row, 0, len(phases)), Total: Row{Phase: "Total"}}
	for _, res := range results {
		if res.err != nil {
			return nil, res.err
		}
		t.Rows = append(t.Rows, res.row)
		t.Events = append(t.Events, res.events...)
		t.Total.Power += res.row.Power
		t.Total.Semi += res.row.Semi
		t.Total.Condi += res.row.Condi
	}
	return t, nil
}

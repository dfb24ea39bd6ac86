package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/montellese/sigslot"
	"github.com/olekukonko/tablewriter"
)

// Hammers one async signal from many goroutines at once: emitters doing full
// emit-then-wait round trips while churners connect, disconnect and clear
// tracked receivers. Every Wait must come back clean and a final quiet
// emission must land exactly once on the one slot left standing.

func main() {
	log.Print("Starting sigslot soak, please wait...")
	defer log.Print("Finished sigslot soak")

	cfgs := []soakConfig{
		{
			name:      "gentle",
			emitters:  2,
			churners:  1,
			emissions: 2_000,
			churnOps:  500,
		},
		{
			name:      "balanced",
			emitters:  4,
			churners:  4,
			emissions: 2_000,
			churnOps:  2_000,
		},
		{
			name:      "churn heavy",
			emitters:  2,
			churners:  8,
			emissions: 1_000,
			churnOps:  5_000,
		},
		{
			name:      "emit heavy",
			emitters:  8,
			churners:  2,
			emissions: 5_000,
			churnOps:  500,
		},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"scenario", "emitters", "churners", "emissions", "churnOps",
		"time", "emitRate", "verdict",
	})

	failed := false
	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)
		r := runSoak(cfg)

		verdict := "ok"
		if r.err != nil {
			verdict = r.err.Error()
			failed = true
		}

		emitRate := float64(r.emissions) / (float64(r.duration) / float64(time.Second))
		table.Append([]string{
			cfg.name,
			fmt.Sprint(cfg.emitters),
			fmt.Sprint(cfg.churners),
			humanize.Comma(r.emissions),
			humanize.Comma(cfg.churnOps * int64(cfg.churners)),
			fmt.Sprint(r.duration),
			humanize.Comma(int64(emitRate)),
			verdict,
		})
	}
	table.Render()

	if failed {
		os.Exit(1)
	}
}

type soakConfig struct {
	name      string // friendly name for the scenario, should be unique
	emitters  int    // goroutines doing emit-then-wait round trips
	churners  int    // goroutines mutating the registry while emissions run
	emissions int64  // round trips per emitter
	churnOps  int64  // connect/clear cycles per churner
}

type soakResult struct {
	emissions int64
	duration  time.Duration
	err       error
}

type probe struct {
	sigslot.AsyncTracker
	hits atomic.Int64
}

func (p *probe) observe(int) { p.hits.Add(1) }

func runSoak(cfg soakConfig) soakResult {
	s := sigslot.NewAsyncSignal1[int](&sync.Mutex{})

	// the stable slot every emission must reach
	var stable atomic.Int64
	s.Connect(func(int) { stable.Add(1) })

	var (
		wg        sync.WaitGroup
		emissions atomic.Int64
		errOnce   sync.Once
		soakErr   error
	)

	start := time.Now()
	for i := 0; i < cfg.emitters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := int64(0); j < cfg.emissions; j++ {
				if err := s.Emit(int(j)).Wait(); err != nil {
					errOnce.Do(func() { soakErr = err })
					return
				}
				emissions.Add(1)
			}
		}()
	}

	for i := 0; i < cfg.churners; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := &probe{}
			for j := int64(0); j < cfg.churnOps; j++ {
				sigslot.ConnectMethod1(s, p, (*probe).observe)
				if j%2 == 0 {
					sigslot.DisconnectMethod1(s, p, (*probe).observe)
				} else {
					p.Clear()
				}
			}
			p.Clear()
		}()
	}
	wg.Wait()
	duration := time.Since(start)

	r := soakResult{emissions: emissions.Load(), duration: duration}
	if soakErr != nil {
		r.err = soakErr
		return r
	}

	// all churned slots are gone, the stable slot must see exactly one more
	before := stable.Load()
	if err := s.Emit(0).Wait(); err != nil {
		r.err = err
		return r
	}
	if got := stable.Load(); got != before+1 {
		r.err = fmt.Errorf("quiet emission hit %d slots, want 1", got-before)
		return r
	}
	if before < r.emissions {
		r.err = fmt.Errorf("stable slot saw %d of %d emissions", before, r.emissions)
	}
	return r
}

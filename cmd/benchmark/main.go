package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montellese/sigslot"
	"github.com/urfave/cli/v3"
	"github.com/valyala/quicktemplate"
)

const (
	itersKey   = "iters"
	profileKey = "profile"
	reportKey  = "report"
)

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100}
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Benchmark sigslot emission, chains, folds and the async gate",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Emissions per benchmark point",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
			},
			&cli.StringFlag{
				Name:  reportKey,
				Usage: "Write a Markdown report to this file",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type result struct {
	suite, name string
	m           *tachymeter.Metrics
}

func run(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))

	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	digest := xxhash.New()

	var rows []result
	rows = append(rows, benchmarkFanout(iters, digest)...)
	rows = append(rows, benchmarkChains(iters, digest)...)
	rows = append(rows, benchmarkFolds(iters, digest)...)
	rows = append(rows, benchmarkAsync(iters, digest)...)

	render(rows)
	// identical flag values must reproduce this digest exactly, whatever the
	// timings did
	log.Printf("work digest %016x over %s emissions",
		digest.Sum64(), humanize.Comma(int64(iters)))

	if path := cmd.String(reportKey); path != "" {
		if err := writeReport(path, rows, digest.Sum64(), iters); err != nil {
			return err
		}
		log.Printf("report written to %s", path)
	}
	return nil
}

func render(rows []result) {
	suite := ""
	var tbl table.Writer
	flush := func() {
		if tbl != nil {
			tbl.Render()
		}
	}
	for _, r := range rows {
		if r.suite != suite {
			flush()
			suite = r.suite
			tbl = table.NewWriter()
			tbl.SetTitle(suite)
			tbl.SetOutputMirror(os.Stdout)
			tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
		}
		tbl.AppendRows([]table.Row{{
			r.name,
			r.m.Time.Avg,
			r.m.Time.Min,
			r.m.Time.P75,
			r.m.Time.P99,
			r.m.Time.Max,
		}})
	}
	flush()
}

// benchmarkFanout emits one signal into w directly connected slots.
func benchmarkFanout(iters int, digest *xxhash.Digest) []result {
	var rows []result
	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		s := sigslot.NewSignal1[int]()
		total := 0
		for i := 0; i < w; i++ {
			s.Connect(func(v int) { total += v })
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			s.Emit(1)
			tach.AddTime(time.Since(start))
		}
		fmt.Fprintf(digest, "fanout:%d:%d;", w, total)

		rows = append(rows, result{
			suite: "Fanout",
			name:  fmt.Sprintf("emit: 1 * %d", w),
			m:     tach.Calc(),
		})
	}
	return rows
}

// benchmarkChains emits into w parallel chains of h signals each, with a
// counting slot at every tail. Tracked connections do the forwarding, the
// same wiring an application chaining signals would use.
func benchmarkChains(iters int, digest *xxhash.Digest) []result {
	var rows []result
	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := sigslot.NewSignal1[int]()
			total := 0
			for i := 0; i < w; i++ {
				prev := src
				for j := 0; j < h; j++ {
					next := sigslot.NewSignal1[int]()
					sigslot.ConnectMethod1(prev, next, (*sigslot.Signal1[int]).Emit)
					prev = next
				}
				prev.Connect(func(v int) { total += v })
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Emit(1)
				tach.AddTime(time.Since(start))
			}
			fmt.Fprintf(digest, "chain:%d:%d:%d;", w, h, total)

			rows = append(rows, result{
				suite: "Chains",
				name:  fmt.Sprintf("propagate: %d * %d", w, h),
				m:     tach.Calc(),
			})
		}
	}
	return rows
}

// benchmarkFolds accumulates w integer results per emission.
func benchmarkFolds(iters int, digest *xxhash.Digest) []result {
	var rows []result
	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		s := sigslot.NewResultSignal1[int, int]()
		for i := 0; i < w; i++ {
			s.Connect(func(v int) int { return v + 1 })
		}

		total := 0
		for i := 0; i < iters; i++ {
			start := time.Now()
			total += sigslot.Accumulate1(s, 0, 1)
			tach.AddTime(time.Since(start))
		}
		fmt.Fprintf(digest, "fold:%d:%d;", w, total)

		rows = append(rows, result{
			suite: "Folds",
			name:  fmt.Sprintf("accumulate: 1 * %d", w),
			m:     tach.Calc(),
		})
	}
	return rows
}

// benchmarkAsync measures full emit-then-wait round trips through the gate.
func benchmarkAsync(iters int, digest *xxhash.Digest) []result {
	var rows []result
	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		s := sigslot.NewAsyncSignal1[int]()
		total := 0
		for i := 0; i < w; i++ {
			s.Connect(func(v int) { total += v })
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			if err := s.Emit(1).Wait(); err != nil {
				log.Panic(err)
			}
			tach.AddTime(time.Since(start))
		}
		fmt.Fprintf(digest, "async:%d:%d;", w, total)

		rows = append(rows, result{
			suite: "Async",
			name:  fmt.Sprintf("emit+wait: 1 * %d", w),
			m:     tach.Calc(),
		})
	}
	return rows
}

func writeReport(path string, rows []result, digest uint64, iters int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	qw := quicktemplate.AcquireWriter(f)
	defer quicktemplate.ReleaseWriter(qw)
	w := qw.N()

	w.S("# sigslot benchmark\n\n")
	w.S("Generated ")
	w.S(time.Now().Format(time.RFC3339))
	w.S(" over ")
	w.S(humanize.Comma(int64(iters)))
	w.S(" emissions per point. Work digest `")
	w.S(fmt.Sprintf("%016x", digest))
	w.S("`.\n\n")
	w.S("| suite | benchmark | avg | min | p75 | p99 | max |\n")
	w.S("|---|---|---|---|---|---|---|\n")
	for _, r := range rows {
		w.S("| ")
		w.S(r.suite)
		w.S(" | ")
		w.S(r.name)
		w.S(" | ")
		w.S(r.m.Time.Avg.String())
		w.S(" | ")
		w.S(r.m.Time.Min.String())
		w.S(" | ")
		w.S(r.m.Time.P75.String())
		w.S(" | ")
		w.S(r.m.Time.P99.String())
		w.S(" | ")
		w.S(r.m.Time.Max.String())
		w.S(" |\n")
	}
	return nil
}

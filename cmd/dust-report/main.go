package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"golden-frame/internal/app"
	"golden-frame/internal/render"
	"golden-frame/pkg/core"
	"golden-frame/pkg/dust"

	"github.com/atotto/clipboard"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func (l kvList) toMap() map[string]string {
	out := map[string]string{}
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

type runOptions struct {
	frames int
	delta  float64
	jitter float64
	width  float64
	height float64
	dpr    float64
}

type runResult struct {
	seed      int64
	minLive   int
	maxLive   int
	meanLive  float64
	meanAlpha float64
	stats     dust.FieldStats
}

func main() {
	frames := flag.Int("frames", 3600, "frames to simulate per run")
	delta := flag.Float64("delta", 1000.0/60, "frame interval in milliseconds")
	jitter := flag.Float64("jitter", 0, "uniform random frame interval jitter in milliseconds")
	width := flag.Float64("width", 1280, "surface width in logical pixels")
	height := flag.Float64("height", 720, "surface height in logical pixels")
	dpr := flag.Float64("dpr", 1, "device pixel ratio")
	runs := flag.Int("runs", 4, "number of seeds to run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	copyOut := flag.Bool("copy", false, "copy the report to the clipboard")
	var overrides kvList
	flag.Var(&overrides, "set", "animator override in key=value form (capacity, seed; repeatable)")
	flag.Parse()

	base := dust.FromMap(overrides.toMap())
	opts := runOptions{
		frames: *frames,
		delta:  *delta,
		jitter: *jitter,
		width:  *width,
		height: *height,
		dpr:    *dpr,
	}

	results, err := runAll(base, opts, *runs, *workers)
	if err != nil {
		log.Fatalf("dust-report: %v", err)
	}
	report := formatReport(base, opts, results)
	fmt.Print(report)

	if *copyOut {
		if err := clipboard.WriteAll(report); err != nil {
			fmt.Fprintf(os.Stderr, "copy to clipboard: %v\n", err)
			os.Exit(1)
		}
	}
}

func runAll(base dust.Config, opts runOptions, runs, workers int) ([]runResult, error) {
	if runs <= 0 {
		runs = 1
	}
	if workers <= 0 {
		workers = 1
	}

	type job struct{ seed int64 }
	jobs := make(chan job)
	results := make([]runResult, 0, runs)
	var (
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				cfg := base
				cfg.Seed = j.seed
				res, err := runOnce(cfg, opts)
				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = err
				}
				if err == nil {
					results = append(results, res)
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < runs; i++ {
		jobs <- job{seed: base.Seed + int64(i)}
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].seed < results[j].seed })
	return results, firstErr
}

// runOnce mounts a hero on a recording surface and drives it for opts.frames
// frames.
func runOnce(cfg dust.Config, opts runOptions) (runResult, error) {
	vp := app.NewViewport(opts.width, opts.height, opts.dpr)
	rec := render.NewRecorder(vp.Size)
	frames := app.NewFrames()
	hero := app.NewHero(rec, frames, vp, cfg)
	if err := hero.Mount(); err != nil {
		return runResult{}, fmt.Errorf("seed %d: %w", cfg.Seed, err)
	}
	defer hero.Unmount()

	jitter := core.NewRNG(cfg.Seed ^ 0x5eed)
	field := hero.Animator().Field()
	res := runResult{seed: cfg.Seed, minLive: math.MaxInt}

	var (
		now        time.Duration
		liveSum    int
		alphaSum   float64
		alphaCount int
	)
	for i := 0; i < opts.frames; i++ {
		step := opts.delta
		if opts.jitter > 0 {
			step += jitter.Between(-opts.jitter, opts.jitter)
		}
		if step < 0 {
			step = 0
		}
		now += time.Duration(step * float64(time.Millisecond))
		frames.Advance(now)

		live := field.Len()
		liveSum += live
		res.minLive = min(res.minLive, live)
		res.maxLive = max(res.maxLive, live)
		for _, c := range rec.Frame() {
			alphaSum += float64(c.Color.A) / 255
			alphaCount++
		}
	}
	if opts.frames > 0 {
		res.meanLive = float64(liveSum) / float64(opts.frames)
	} else {
		res.minLive = field.Len()
		res.maxLive = field.Len()
		res.meanLive = float64(field.Len())
	}
	if alphaCount > 0 {
		res.meanAlpha = alphaSum / float64(alphaCount)
	}
	res.stats = hero.Animator().Stats()
	return res, nil
}

func formatReport(cfg dust.Config, opts runOptions, results []runResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "dust field: capacity=%d surface=%.0fx%.0f dpr=%.2f frames=%d delta=%.2fms jitter=%.2fms\n",
		cfg.Capacity, opts.width, opts.height, opts.dpr, opts.frames, opts.delta, opts.jitter)
	for _, r := range results {
		fmt.Fprintf(&b, "seed %d: live min=%d mean=%.2f max=%d alpha=%.3f spawned=%d dropped=%d faded=%d escaped=%d skipped=%d\n",
			r.seed, r.minLive, r.meanLive, r.maxLive, r.meanAlpha,
			r.stats.Spawned, r.stats.Dropped, r.stats.Faded, r.stats.Escaped, r.stats.Skipped)
	}
	return b.String()
}

// trap-sweep grid-sweeps the petroleum generator: every combination of
// basin size, trap efficiency, and seed is surveyed across all system
// types, reporting point totals, trap histograms, and depth envelopes.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"depositlab/internal/core"
	"depositlab/internal/deposits/petroleum"
	"depositlab/internal/render"
)

type paramSet struct {
	basinSize  float64
	efficiency float64
	reservoirs int
	seed       int64
}

func (p paramSet) String() string {
	return fmt.Sprintf("basin=%.0f eff=%.2f reservoirs=%d seed=%d",
		p.basinSize, p.efficiency, p.reservoirs, p.seed)
}

type sweepResult struct {
	params      paramSet
	totalPoints int
	trapCounts  [3]int
	minDepth    float64
	maxDepth    float64
	err         error
}

func main() {
	basins := flag.String("basins", "25,50,100", "comma-separated basin sizes")
	efficiencies := flag.String("efficiencies", "0.2,0.4,0.6,0.8,1.0", "comma-separated trap efficiencies")
	reservoirs := flag.Int("reservoirs", 3, "reservoirs per system")
	seeds := flag.Int("seeds", 3, "number of consecutive seeds starting at 42")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	pngDir := flag.String("png", "", "directory for plan-view PNG dumps (optional)")
	flag.Parse()

	var sets []paramSet
	for _, basin := range parseFloats(*basins) {
		for _, eff := range parseFloats(*efficiencies) {
			for s := 0; s < *seeds; s++ {
				sets = append(sets, paramSet{
					basinSize:  basin,
					efficiency: eff,
					reservoirs: *reservoirs,
					seed:       42 + int64(s),
				})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers)\n", len(sets), *workers)

	jobs := make(chan paramSet)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runSweep(params, *pngDir)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		if res.err != nil {
			fmt.Printf("FAILED %s: %v\n", res.params, res.err)
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].totalPoints > all[j].totalPoints })
	elapsed := time.Since(start)

	fmt.Printf("\nResults by total yield (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%3d) points=%5d traps[a=%d f=%d s=%d] depth[%.0f, %.0f] %s\n",
			i+1, res.totalPoints,
			res.trapCounts[0], res.trapCounts[1], res.trapCounts[2],
			res.minDepth, res.maxDepth, res.params)
	}
}

func runSweep(params paramSet, pngDir string) sweepResult {
	cfg := petroleum.Config{
		BasinSize:      params.basinSize,
		ReservoirCount: params.reservoirs,
		TrapEfficiency: params.efficiency,
		Seed:           params.seed,
	}
	gen, err := petroleum.New(cfg)
	if err != nil {
		return sweepResult{params: params, err: err}
	}

	res := sweepResult{params: params}
	first := true
	for _, dt := range petroleum.Types {
		survey, err := gen.Survey(dt)
		if err != nil {
			return sweepResult{params: params, err: err}
		}
		res.totalPoints += survey.TotalPoints
		for i, n := range survey.TrapCounts {
			res.trapCounts[i] += n
		}
		if survey.TotalPoints > 0 {
			if first || survey.MinDepth < res.minDepth {
				res.minDepth = survey.MinDepth
			}
			if first || survey.MaxDepth > res.maxDepth {
				res.maxDepth = survey.MaxDepth
			}
			first = false
		}

		if pngDir != "" {
			if err := dumpPlan(gen, dt, params, pngDir); err != nil {
				return sweepResult{params: params, err: err}
			}
		}
	}
	return res
}

func dumpPlan(gen *petroleum.Generator, dt core.DepositType, params paramSet, dir string) error {
	cloud, err := gen.Generate(dt)
	if err != nil {
		return err
	}
	img := render.PlanView([]render.Layer{{
		Name:    dt.Name,
		Points:  cloud.Points(),
		Color:   dt.Color,
		Visible: true,
	}}, 512)

	name := fmt.Sprintf("%s_b%.0f_e%.2f_s%d.png",
		strings.ReplaceAll(strings.ToLower(dt.Name), " ", "_"),
		params.basinSize, params.efficiency, params.seed)
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func parseFloats(csv string) []float64 {
	var out []float64
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if v, err := strconv.ParseFloat(part, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

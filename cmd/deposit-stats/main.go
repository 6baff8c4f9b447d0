// deposit-stats generates every deposit type of a source with a given
// configuration and prints a summary table: point counts, bounding boxes,
// and per-axis spread. Useful for eyeballing the effect of parameter
// overrides without launching a viewer.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/golang/geo/r3"

	"depositlab/internal/core"
	"depositlab/pkg/pointcloud"

	_ "depositlab/internal/deposits/mineral"
	_ "depositlab/internal/deposits/petroleum"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	source := flag.String("source", "minerals", "deposit source to inspect")
	var overrides kvList
	flag.Var(&overrides, "set", "generator parameter in key=value form (repeatable)")
	flag.Parse()

	factory, ok := core.Sources()[*source]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown source %q; available: %s\n", *source, strings.Join(sourceNames(), ", "))
		os.Exit(1)
	}

	cfg := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		cfg[parts[0]] = parts[1]
	}

	src, err := factory(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configure %s: %v\n", *source, err)
		os.Exit(1)
	}

	fmt.Printf("Source: %s\n", src.Name())
	fmt.Printf("%-14s %6s  %-24s %-24s %-20s %8s  %s\n",
		"type", "points", "x range", "y range", "z range", "mean z", "spread (sx, sy, sz)")

	total := 0
	for _, dt := range src.Types() {
		cloud, err := src.Generate(dt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "generate %s: %v\n", dt.Name, err)
			os.Exit(1)
		}
		meta := cloud.Meta()
		mean, sx, sy, sz := moments(cloud)
		fmt.Printf("%-14s %6d  %-24s %-24s %-20s %8.1f  %.1f, %.1f, %.1f\n",
			dt.Name, cloud.Size(),
			rangeStr(meta.MinX, meta.MaxX),
			rangeStr(meta.MinY, meta.MaxY),
			rangeStr(meta.MinZ, meta.MaxZ),
			mean.Z, sx, sy, sz)
		total += cloud.Size()
	}
	fmt.Printf("\nTotal: %d points across %d types\n", total, len(src.Types()))
}

func sourceNames() []string {
	var names []string
	for name := range core.Sources() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func rangeStr(lo, hi float64) string {
	return fmt.Sprintf("[%.1f, %.1f]", lo, hi)
}

// moments computes the centroid and per-axis standard deviation.
func moments(cloud *pointcloud.Cloud) (mean r3.Vector, sx, sy, sz float64) {
	n := cloud.Size()
	if n == 0 {
		return r3.Vector{}, 0, 0, 0
	}
	for i := 0; i < n; i++ {
		mean = mean.Add(cloud.At(i))
	}
	mean = mean.Mul(1 / float64(n))
	var vx, vy, vz float64
	for i := 0; i < n; i++ {
		d := cloud.At(i).Sub(mean)
		vx += d.X * d.X
		vy += d.Y * d.Y
		vz += d.Z * d.Z
	}
	return mean, math.Sqrt(vx / float64(n)), math.Sqrt(vy / float64(n)), math.Sqrt(vz / float64(n))
}

package main

import (
	"fmt"

	mineral "depositlab/internal/deposits/mineral"
)

// mode_gallery runs every mineral type through every formation mode at a
// fixed seed and prints one row per combination, so shape changes from
// generator edits are easy to spot in a diff of the output.
func main() {
	cfg := mineral.DefaultConfig()
	cfg.Count = 120
	cfg.Seed = 42
	cfg.Complexity = 4

	fmt.Printf("gallery: %d modes x %d minerals, count=%d seed=%d\n",
		len(mineral.Modes()), len(mineral.Types), cfg.Count, cfg.Seed)

	for _, mode := range mineral.Modes() {
		cfg.Mode = mode
		gen, err := mineral.New(cfg)
		if err != nil {
			fmt.Printf("mode %s: %v\n", mode, err)
			continue
		}
		fmt.Printf("\n== %s ==\n", mode.Label())
		for _, dt := range mineral.Types {
			cloud, err := gen.Generate(dt)
			if err != nil {
				fmt.Printf("  %-12s error: %v\n", dt.Name, err)
				continue
			}
			meta := cloud.Meta()
			fmt.Printf("  %-12s %4d pts  x[%8.1f, %8.1f]  y[%8.1f, %8.1f]  z[%8.1f, %8.1f]\n",
				dt.Name, cloud.Size(),
				meta.MinX, meta.MaxX,
				meta.MinY, meta.MaxY,
				meta.MinZ, meta.MaxZ)
		}
	}
}

package petroleum

import (
	"depositlab/internal/core"
	pcore "depositlab/pkg/core"
	"depositlab/pkg/pointcloud"
)

// ReservoirReport describes the structure one reservoir was generated
// with: the same draws Generate consumed, so reports always agree with
// the emitted cloud.
type ReservoirReport struct {
	Trap      Trap
	Points    int
	CenterX   float64
	CenterY   float64
	DepthBase float64
	Thickness float64
}

// SurveyResult aggregates the reservoir structure of one petroleum system
// for a fixed configuration and seed.
type SurveyResult struct {
	Type        string
	Reservoirs  []ReservoirReport
	TrapCounts  [3]int
	TotalPoints int
	MinDepth    float64
	MaxDepth    float64
}

// Survey generates one system and reports its reservoir structure.
// The point stream is identical to Generate's, so TotalPoints matches the
// size of the cloud a Generate call with the same configuration returns.
func (g *Generator) Survey(t core.DepositType) (SurveyResult, error) {
	class, err := classFor(t.Name)
	if err != nil {
		return SurveyResult{}, err
	}
	rng := pcore.NewRNG(core.DepositSeed(g.cfg.Seed, t.Name))

	res := SurveyResult{Type: t.Name}
	cloud := pointcloud.New()
	for r := 0; r < g.cfg.ReservoirCount; r++ {
		plan := g.planReservoir(rng, class)
		g.fillReservoir(rng, cloud, plan)
		res.Reservoirs = append(res.Reservoirs, ReservoirReport{
			Trap:      plan.trap,
			Points:    plan.points,
			CenterX:   plan.cx,
			CenterY:   plan.cy,
			DepthBase: plan.depthBase,
			Thickness: plan.thickness,
		})
		res.TrapCounts[plan.trap]++
		res.TotalPoints += plan.points
	}
	meta := cloud.Meta()
	if meta.Count > 0 {
		res.MinDepth = meta.MinZ
		res.MaxDepth = meta.MaxZ
	}
	return res, nil
}

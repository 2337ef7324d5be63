package optimize

import (
	"fmt"

	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/strategy"
)

// Combo is one point of the parameter grid: the four swept knobs.
type Combo struct {
	ThetaOFI  float64
	ThetaImb  float64
	SlipTicks int
	MaxHoldNs int64
}

// Apply overlays the swept values onto a base parameter set, leaving the
// structural gates and product constants untouched.
func (c Combo) Apply(base strategy.Params) strategy.Params {
	base.ThetaOFI = c.ThetaOFI
	base.ThetaImb = c.ThetaImb
	base.SlipTicks = c.SlipTicks
	base.MaxHoldNs = c.MaxHoldNs
	return base
}

// String renders the combo the way sweep logs report it.
func (c Combo) String() string {
	return fmt.Sprintf("ofi=%.2f imb=%.2f slip=%d hold=%.1fs",
		c.ThetaOFI, c.ThetaImb, c.SlipTicks, float64(c.MaxHoldNs)/1e9)
}

// Grid enumerates candidate values per swept parameter. The cartesian product
// is generated once; enumeration order is the tie-break for equal scores.
type Grid struct {
	ThetaOFI  []float64
	ThetaImb  []float64
	SlipTicks []int
	MaxHoldNs []int64
}

// Combos expands the cartesian product in field order.
func (g Grid) Combos() []Combo {
	combos := make([]Combo, 0, len(g.ThetaOFI)*len(g.ThetaImb)*len(g.SlipTicks)*len(g.MaxHoldNs))
	for _, ofi := range g.ThetaOFI {
		for _, imb := range g.ThetaImb {
			for _, slip := range g.SlipTicks {
				for _, hold := range g.MaxHoldNs {
					combos = append(combos, Combo{
						ThetaOFI:  ofi,
						ThetaImb:  imb,
						SlipTicks: slip,
						MaxHoldNs: hold,
					})
				}
			}
		}
	}
	return combos
}

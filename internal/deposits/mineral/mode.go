package mineral

import (
	"fmt"
	"strings"
)

// Mode selects the formation model used to shape a mineral deposit.
type Mode int

const (
	// ModeOrebody scatters points around a tilted axis with scatter that
	// widens along it.
	ModeOrebody Mode = iota
	// ModeVeins grows a biased random walk with bounded branching.
	ModeVeins
	// ModeLayers stacks strata with polar scatter and a fixed elevation
	// step between them.
	ModeLayers
	// ModeContact wraps an aureole around a single intrusion center.
	ModeContact
	// ModePlacer spreads points along a near-surface stream channel.
	ModePlacer
	// ModeBlobs draws one isotropic gaussian cluster.
	ModeBlobs
	// ModeVoxel aggregates hits on a coarse voxel grid and emits a sample
	// of the occupied cells.
	ModeVoxel
)

const modeCount = int(ModeVoxel) + 1

var modeNames = [...]string{
	ModeOrebody: "orebody",
	ModeVeins:   "veins",
	ModeLayers:  "layers",
	ModeContact: "contact",
	ModePlacer:  "placer",
	ModeBlobs:   "blobs",
	ModeVoxel:   "voxel",
}

var modeLabels = [...]string{
	ModeOrebody: "Orebody systems",
	ModeVeins:   "Hydrothermal veins",
	ModeLayers:  "Sedimentary layers",
	ModeContact: "Contact metamorphic",
	ModePlacer:  "Placer deposits",
	ModeBlobs:   "Gaussian blobs",
	ModeVoxel:   "Voxel aggregate",
}

// String returns the short mode name used on flags and config maps.
func (m Mode) String() string {
	if m < 0 || int(m) >= modeCount {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Label returns the display name shown in viewers.
func (m Mode) Label() string {
	if m < 0 || int(m) >= modeCount {
		return m.String()
	}
	return modeLabels[m]
}

// ParseMode resolves a short name or display label to a Mode.
func ParseMode(s string) (Mode, error) {
	for i := 0; i < modeCount; i++ {
		if strings.EqualFold(s, modeNames[i]) || strings.EqualFold(s, modeLabels[i]) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown formation mode %q", s)
}

// Modes lists every formation mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, modeCount)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

package core

import (
	"image/color"

	"depositlab/pkg/pointcloud"
)

// Size describes the dimensions of a logical viewer canvas.
type Size struct {
	W int
	H int
}

// DepositType identifies one deposit a source can generate: a display name
// plus the color it is drawn with. Values are declared in package-level
// tables at init and never mutated.
type DepositType struct {
	Name  string
	Color color.RGBA
}

// Source defines the minimal contract a deposit generator must implement.
// Generate is pure: identical configuration and deposit type yield the
// identical point cloud, and no state is shared between calls.
type Source interface {
	Name() string
	Types() []DepositType
	Generate(t DepositType) (*pointcloud.Cloud, error)
}

// Factory constructs a Source using an optional configuration map. Factories
// validate eagerly and fail before any point is generated.
type Factory func(cfg map[string]string) (Source, error)

var sources = map[string]Factory{}

// Register adds a source factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Sources exposes the registry of available source factories.
func Sources() map[string]Factory {
	return sources
}

package app

import (
	"depositlab/internal/core"
	"depositlab/internal/render"
	"depositlab/pkg/pointcloud"
)

// Scene holds the generated layers for one deposit source. It is plain
// data plumbing with no GUI dependency, so viewers and tests share it.
type Scene struct {
	src    core.Source
	layers []render.Layer
	bounds pointcloud.Meta
}

// NewScene generates every deposit type of the source once.
func NewScene(src core.Source) (*Scene, error) {
	s := &Scene{src: src}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Source returns the scene's generator.
func (s *Scene) Source() core.Source { return s.src }

// Regenerate rebuilds every layer from the source's current
// configuration, preserving per-layer visibility across rebuilds.
func (s *Scene) Regenerate() error {
	visible := map[string]bool{}
	for _, layer := range s.layers {
		visible[layer.Name] = layer.Visible
	}

	types := s.src.Types()
	layers := make([]render.Layer, 0, len(types))
	bounds := pointcloud.Meta{}
	for _, dt := range types {
		cloud, err := s.src.Generate(dt)
		if err != nil {
			return err
		}
		show := true
		if prev, ok := visible[dt.Name]; ok {
			show = prev
		}
		layers = append(layers, render.Layer{
			Name:    dt.Name,
			Points:  cloud.Points(),
			Color:   dt.Color,
			Visible: show,
		})
		for _, p := range cloud.Points() {
			bounds.Merge(p)
		}
	}
	s.layers = layers
	s.bounds = bounds
	return nil
}

// Layers returns the renderable layers in deposit type order.
func (s *Scene) Layers() []render.Layer { return s.layers }

// Bounds returns the aggregate bounding box over all layers, visible or
// not.
func (s *Scene) Bounds() pointcloud.Meta { return s.bounds }

// ToggleLayer flips the visibility of layer i. Out-of-range indices are
// ignored.
func (s *Scene) ToggleLayer(i int) {
	if i < 0 || i >= len(s.layers) {
		return
	}
	s.layers[i].Visible = !s.layers[i].Visible
}

// Extent returns the largest axis span of the scene bounds; viewers fit
// the camera zoom to it.
func (s *Scene) Extent() float64 {
	ext := s.bounds.MaxX - s.bounds.MinX
	if dy := s.bounds.MaxY - s.bounds.MinY; dy > ext {
		ext = dy
	}
	if dz := s.bounds.MaxZ - s.bounds.MinZ; dz > ext {
		ext = dz
	}
	return ext
}

// Center returns the midpoint of the scene bounds.
func (s *Scene) Center() (x, y, z float64) {
	return (s.bounds.MinX + s.bounds.MaxX) / 2,
		(s.bounds.MinY + s.bounds.MaxY) / 2,
		(s.bounds.MinZ + s.bounds.MaxZ) / 2
}

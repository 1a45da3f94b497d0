package chart

import (
	"context"
	"sort"
	"sync"

	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
)

// Gallery keeps the latest rendering of each chart in memory for the
// preview server
type Gallery struct {
	mu     sync.RWMutex
	charts map[types.ChartID]*Rendered
}

// Rendered is a chart spec together with its PNG image
type Rendered struct {
	Spec model.ChartSpec
	PNG  []byte
}

var _ interfaces.ChartSink = (*Gallery)(nil)

// NewGallery creates an empty Gallery
func NewGallery() *Gallery {
	return &Gallery{
		charts: make(map[types.ChartID]*Rendered),
	}
}

// Render implements interfaces.ChartSink
func (g *Gallery) Render(ctx context.Context, spec model.ChartSpec) error {
	data, err := EncodePNG(spec, DefaultWidth, DefaultHeight)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.charts[spec.ID] = &Rendered{Spec: spec, PNG: data}
	return nil
}

// Get returns the rendered chart with id
func (g *Gallery) Get(id types.ChartID) (*Rendered, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.charts[id]
	return r, ok
}

// List returns every rendered chart ordered by id
func (g *Gallery) List() []*Rendered {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list := make([]*Rendered, 0, len(g.charts))
	for _, r := range g.charts {
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Spec.ID < list[j].Spec.ID
	})
	return list
}

package catalog

import (
	"strconv"
	"sync"

	"nursery/internal/domain/plant"

	"github.com/google/uuid"
)

type IDGenerator interface {
	NextID(category plant.Category) string
}

// SequenceIDs hands out "<category>-<n>" ids with one counter per category.
type SequenceIDs struct {
	mu       sync.Mutex
	counters map[plant.Category]int
}

func NewSequenceIDs() *SequenceIDs {
	return &SequenceIDs{counters: map[plant.Category]int{}}
}

func (g *SequenceIDs) NextID(category plant.Category) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.counters == nil {
		g.counters = map[plant.Category]int{}
	}
	g.counters[category]++
	return string(category) + "-" + strconv.Itoa(g.counters[category])
}

type UUIDs struct{}

func (UUIDs) NextID(category plant.Category) string {
	return string(category) + "-" + uuid.NewString()
}

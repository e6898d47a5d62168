package physics

import (
	"math/rand"
	"time"

	"github.com/TFMV/ropesim/models"
)

// Order is the shuffled sequence in which link constraints are relaxed.
// It is rebuilt only when the graph topology changes, not every frame.
type Order struct {
	indices    []int
	rng        *rand.Rand
	generation uint64
	synced     bool
}

// NewOrder creates an empty order. A zero seed draws one from the clock.
func NewOrder(seed int64) *Order {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Order{
		indices: []int{},
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Regenerate rebuilds the order as a uniformly shuffled permutation of [0, n).
func (o *Order) Regenerate(n int) {
	if n < 0 {
		n = 0
	}
	o.indices = make([]int, n)
	for i := range o.indices {
		o.indices[i] = i
	}

	// Fisher-Yates: swap each slot from the end with one of the unshuffled
	// slots before it, itself included.
	for remaining := n; remaining > 1; remaining-- {
		j := o.rng.Intn(remaining)
		o.indices[j], o.indices[remaining-1] = o.indices[remaining-1], o.indices[j]
	}
}

// Stale reports whether the order no longer matches g's topology.
func (o *Order) Stale(g *models.Graph) bool {
	return !o.synced || o.generation != g.Generation() || len(o.indices) != len(g.Links)
}

// Sync regenerates the order if it is stale and reports whether it did.
func (o *Order) Sync(g *models.Graph) bool {
	if !o.Stale(g) {
		return false
	}
	o.Regenerate(len(g.Links))
	o.generation = g.Generation()
	o.synced = true
	return true
}

// Indices returns the current permutation. Callers must not modify it.
func (o *Order) Indices() []int {
	return o.indices
}

// Len returns the number of entries in the order.
func (o *Order) Len() int {
	return len(o.indices)
}

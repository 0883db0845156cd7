package engine

import (
	"sort"

	"github.com/byrax15/snake-gl/core"
)

// QueryBuilder provides a fluent interface for querying entities based on component intersection.
// The query optimizes by starting with the smallest store and filtering through larger ones.
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder for finding entities with specific component combinations.
// Use With() to add component filters, then Execute() to get the results.
//
// Example:
//
//	apples := world.Query().
//	    With(world.Components.Apple).
//	    With(world.Components.Position).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter.
// Panics if called after Execute().
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns all entities present in every specified store.
// Order follows the smallest store's iteration order. Repeated calls return the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	if len(qb.stores) == 1 {
		qb.results = qb.stores[0].AllEntity()
		return qb.results
	}

	// Stable so equal-sized stores keep the caller's order
	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].CountEntity() < qb.stores[j].CountEntity()
	})

	candidates := qb.stores[0].AllEntity()
	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.HasComponent(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered

		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}

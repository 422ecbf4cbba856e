package hfsm

import "github.com/apextree/hfsm/pkg/errs"

// registry is the StateId -> Index mapping built during apex
// construction and frozen afterward.
type registry struct {
	byId map[StateId]Index
}

func newRegistry() *registry {
	return &registry{byId: make(map[StateId]Index)}
}

func (r *registry) add(id StateId) (Index, error) {
	if _, exists := r.byId[id]; exists {
		return noIndex, errs.NewDuplicateStateError(id.String())
	}
	idx := Index(len(r.byId))
	r.byId[id] = idx
	return idx, nil
}

func (r *registry) lookup(id StateId) (Index, bool) {
	idx, ok := r.byId[id]
	return idx, ok
}

func (r *registry) count() int {
	return len(r.byId)
}

package hfsm

import "github.com/apextree/hfsm/pkg/errs"

// transitionQueue is the bounded buffer of pending transitions
// accumulated between resolution passes. Capacity defaults to the
// tree's fork count and can be overridden with WithQueueCapacity.
type transitionQueue struct {
	items    []Transition
	capacity int
}

func newTransitionQueue(capacity int) *transitionQueue {
	return &transitionQueue{capacity: capacity}
}

func (q *transitionQueue) push(t Transition) error {
	if len(q.items) >= q.capacity {
		return errs.NewQueueOverflowError(q.capacity)
	}
	q.items = append(q.items, t)
	return nil
}

func (q *transitionQueue) drain() []Transition {
	items := q.items
	q.items = nil
	return items
}

func (q *transitionQueue) empty() bool {
	return len(q.items) == 0
}

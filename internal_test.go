package hfsm

import "testing"

type probeA struct{ Base[*int] }
type probeB struct{ Base[*int] }

func TestRegistryRejectsDuplicateIdentity(t *testing.T) {
	r := newRegistry()
	if _, err := r.add(Id[probeA]()); err != nil {
		t.Fatalf("first add: unexpected error %v", err)
	}
	if _, err := r.add(Id[probeA]()); err == nil {
		t.Fatal("expected duplicate identity to be rejected")
	}
}

func TestRegistryAssignsDenseSequentialIndices(t *testing.T) {
	r := newRegistry()
	ia, _ := r.add(Id[probeA]())
	ib, _ := r.add(Id[probeB]())
	if ia != 0 || ib != 1 {
		t.Fatalf("expected dense 0,1 indices, got %d,%d", ia, ib)
	}
}

func TestForkPendingComparesAgainstFrozenActive(t *testing.T) {
	f := newFork(0)
	if f.pending() {
		t.Fatal("a fresh fork with no requested prong must not be pending")
	}
	f.requested = 1
	if !f.pending() {
		t.Fatal("requested != active (including active == noIndex) must be pending")
	}
	f.active = 1
	if f.pending() {
		t.Fatal("requested == active must not be pending")
	}
}

func TestTransitionQueueEnforcesCapacity(t *testing.T) {
	q := newTransitionQueue(2)
	if err := q.push(Transition{Kind: Remain}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := q.push(Transition{Kind: Remain}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := q.push(Transition{Kind: Remain}); err == nil {
		t.Fatal("expected overflow past capacity")
	}
}

func TestTransitionQueueDrainEmpties(t *testing.T) {
	q := newTransitionQueue(4)
	_ = q.push(Transition{Kind: Restart, Target: Id[probeA]()})
	items := q.drain()
	if len(items) != 1 {
		t.Fatalf("expected 1 drained item, got %d", len(items))
	}
	if !q.empty() {
		t.Fatal("queue should be empty after drain")
	}
}

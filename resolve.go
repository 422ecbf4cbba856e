package hfsm

import "github.com/apextree/hfsm/pkg/errs"

// resolveAndApply drains the transition queue, runs the substitution
// fixpoint to convergence, and applies the net effect to the tree. It is
// called once after every Update/React dispatch; the very first time
// either is called there is no dispatch, and this call performs the
// implicit initial entry instead.
//
// Every failure this can hit (an unresolvable StateId, a malformed
// Schedule target, a non-converging fixpoint) is a programming error: it
// panics with a structured *errs.EngineError rather than returning one.
func (r *Root[Ctx]) resolveAndApply() {
	batch := r.queue.drain()
	firstApply := !r.started
	if firstApply {
		batch = append([]Transition{{Kind: Restart, Target: r.apex.id}}, batch...)
	}
	if len(batch) == 0 {
		r.tickActivity()
		return
	}

	// substituted remembers, per fork, the requested prong that was last
	// handed to Substitute, so a fork whose requested value is merely
	// carried over from an earlier round (untouched by the current
	// batch) is not re-substituted.
	substituted := make(map[Index]Index)
	rounds := 0

	for {
		if err := r.applyBatch(batch); err != nil {
			panic(err)
		}

		var pending []Index
		for _, f := range r.forks {
			if !f.pending() {
				continue
			}
			if last, ok := substituted[f.self]; ok && last == f.requested {
				continue
			}
			pending = append(pending, f.self)
		}

		if len(pending) == 0 {
			break
		}

		rounds++
		if rounds > r.maxSubstitutions {
			panic(errs.NewSubstitutionOverflowError(r.lastSubstitutedName, r.maxSubstitutions))
		}

		var next []Transition
		for _, fidx := range pending {
			f := r.forks[fidx]
			substituted[fidx] = f.requested
			owner := r.forkOwners[fidx]
			child := owner.children[f.requested]
			r.lastSubstitutedName = child.id.String()

			ctrl := &Control[Ctx]{root: r}
			r.callSubstitute(child, ctrl)
			next = append(next, ctrl.pending...)
		}
		batch = next
	}

	// The very first apply has no prior active subtree to diff against:
	// every fork's requested prong was just set by wideRequest all the
	// way down from the apex, so the whole initial subtree is entered
	// unconditionally via enterSubtree rather than applyNode's
	// requested-vs-active diff (which would never reach an Orthogonal
	// apex's children, since Orthogonal has no fork of its own to diff).
	if firstApply {
		r.enterSubtree(r.apex)
	} else {
		r.applyNode(r.apex)
	}
	r.started = true
	r.tickActivity()
}

// applyBatch processes one round's worth of queued transitions, updating
// requested/resumable fields without touching active.
func (r *Root[Ctx]) applyBatch(batch []Transition) error {
	for _, t := range batch {
		idx, ok := r.registry.lookup(t.Target)
		if !ok {
			return errs.NewUnknownStateError(t.Target.String())
		}
		target := r.statesByIndex[idx]

		switch t.Kind {
		case Remain:
			continue
		case Restart, Resume:
			r.markAncestors(target)
			r.wideRequest(target, t.Kind)
		case Schedule:
			parent := target.parent
			if parent == nil || parent.kind != compositeKind {
				return errs.NewScheduleTargetError(target.id.String())
			}
			prong := parent.prongIndexOf(target)
			r.forks[parent.forkIndex].resumable = prong
		}
	}
	return nil
}

// markAncestors walks from target up to the apex, setting requested on
// every composite fork crossed to the prong leading toward target.
// Orthogonal ancestors are passed through unmarked, since they have no
// fork.
func (r *Root[Ctx]) markAncestors(target *node[Ctx]) {
	cur := target
	for cur.parent != nil {
		p := cur.parent
		if p.kind == compositeKind {
			r.forks[p.forkIndex].requested = p.prongIndexOf(cur)
		}
		cur = p
	}
}

// wideRequest cascades a Restart or Resume directive downward from n into
// its own fork, if any, and recursively into descendant forks: Restart
// always picks the first prong, Resume prefers a fork's remembered
// resumable prong when it has one.
func (r *Root[Ctx]) wideRequest(n *node[Ctx], kind TransitionKind) {
	switch n.kind {
	case compositeKind:
		f := r.forks[n.forkIndex]
		prong := Index(0)
		if kind == Resume && f.resumable != noIndex {
			prong = f.resumable
		}
		f.requested = prong
		r.wideRequest(n.children[prong], kind)
	case orthogonalKind:
		for _, c := range n.children {
			r.wideRequest(c, kind)
		}
	}
}

// applyNode walks the tree applying the net effect of a converged
// resolution: forks whose requested differs from active leave their old
// subtree and enter their new one; unaffected forks are simply descended
// into, to reach any deeper fork that did change.
func (r *Root[Ctx]) applyNode(n *node[Ctx]) {
	switch n.kind {
	case orthogonalKind:
		for _, c := range n.children {
			r.applyNode(c)
		}
	case compositeKind:
		f := r.forks[n.forkIndex]
		if f.requested != noIndex && f.requested != f.active {
			if f.active != noIndex {
				r.leaveSubtree(n.children[f.active])
				f.resumable = f.active
			}
			f.active = f.requested
			f.requested = noIndex
			r.enterSubtree(n.children[f.active])
		} else if f.active != noIndex {
			r.applyNode(n.children[f.active])
		}
	}
}

// leaveSubtree calls Leave deepest-first over n and its active
// descendants, remembering each composite fork's active prong as its new
// resumable prong along the way.
func (r *Root[Ctx]) leaveSubtree(n *node[Ctx]) {
	switch n.kind {
	case compositeKind:
		f := r.forks[n.forkIndex]
		if f.active != noIndex {
			r.leaveSubtree(n.children[f.active])
			f.resumable = f.active
			f.active = noIndex
		}
	case orthogonalKind:
		// Leave runs in the reverse of declaration order, the mirror
		// image of enterSubtree below: the last region to come up goes
		// down first.
		for i := len(n.children) - 1; i >= 0; i-- {
			r.leaveSubtree(n.children[i])
		}
	}
	r.callLeave(n)
}

// enterSubtree calls Enter shallowest-first over n and its descendants,
// consuming each composite fork's requested prong (already set by
// wideRequest) into its active prong.
func (r *Root[Ctx]) enterSubtree(n *node[Ctx]) {
	r.callEnter(n)

	switch n.kind {
	case compositeKind:
		f := r.forks[n.forkIndex]
		f.active = f.requested
		f.requested = noIndex
		if f.active != noIndex {
			r.enterSubtree(n.children[f.active])
		}
	case orthogonalKind:
		for _, c := range n.children {
			r.enterSubtree(c)
		}
	}
}

package hfsm

// This file holds the per-hook call wrappers (injection composition +
// logging), the per-tick activity counter, and the per-tick top-down
// walks that use the wrappers. Entry/leave during transition application live in resolve.go;
// this file covers Update/Transition/React, which run against whatever
// is already active.

func (r *Root[Ctx]) callSubstitute(n *node[Ctx], c *Control[Ctx]) {
	r.logHook(n, "substitute")
	for _, inj := range n.injections {
		inj.PreSubstitute(c, r.ctx)
	}
	n.head.Substitute(c, r.ctx)
}

func (r *Root[Ctx]) callEnter(n *node[Ctx]) {
	r.logHook(n, "enter")
	for _, inj := range n.injections {
		inj.PreEnter(r.ctx)
	}
	n.head.Enter(r.ctx)
}

func (r *Root[Ctx]) callUpdate(n *node[Ctx]) {
	r.logHook(n, "update")
	for _, inj := range n.injections {
		inj.PreUpdate(r.ctx)
	}
	n.head.Update(r.ctx)
}

func (r *Root[Ctx]) callTransition(n *node[Ctx], c *Control[Ctx]) {
	r.logHook(n, "transition")
	for _, inj := range n.injections {
		inj.PreTransition(c, r.ctx)
	}
	n.head.Transition(c, r.ctx)
}

func (r *Root[Ctx]) callReact(n *node[Ctx], event Event, c *Control[Ctx]) {
	r.logHook(n, "react")
	for _, inj := range n.injections {
		inj.PreReact(event, c, r.ctx)
	}
	n.head.React(event, c, r.ctx)
}

func (r *Root[Ctx]) callLeave(n *node[Ctx]) {
	r.logHook(n, "leave")
	n.head.Leave(r.ctx)
	for i := len(n.injections) - 1; i >= 0; i-- {
		n.injections[i].PostLeave(r.ctx)
	}
}

func (r *Root[Ctx]) logHook(n *node[Ctx], method string) {
	if r.logger != nil {
		r.logger.Log(n.id.String(), method)
	}
}

// activityBound caps each counter's magnitude so a long-lived machine's
// Activity never overflows int64; once a node has been active (or
// inactive) for this many ticks in a row, further ticks of the same kind
// leave its counter unchanged.
const activityBound = 1 << 30

// tickActivity runs once per settled tick (initial entry, and every
// subsequent Update/React resolution), crediting every node +1 if it is
// on the currently active path and -1 otherwise.
func (r *Root[Ctx]) tickActivity() {
	if r.activity == nil {
		return
	}
	for i, n := range r.statesByIndex {
		switch {
		case r.isNodeActive(n):
			if r.activity[i] < activityBound {
				r.activity[i]++
			}
		default:
			if r.activity[i] > -activityBound {
				r.activity[i]--
			}
		}
	}
}

// dispatchUpdate calls Update then Transition on n, then recurses into
// whatever is active below it.
func (r *Root[Ctx]) dispatchUpdate(n *node[Ctx], ctrl *Control[Ctx]) {
	r.callUpdate(n)
	r.callTransition(n, ctrl)

	switch n.kind {
	case compositeKind:
		f := r.forks[n.forkIndex]
		if f.active != noIndex {
			r.dispatchUpdate(n.children[f.active], ctrl)
		}
	case orthogonalKind:
		for _, c := range n.children {
			r.dispatchUpdate(c, ctrl)
		}
	}
}

// dispatchReact delivers event to n, then fans it out into whatever is
// active below it.
func (r *Root[Ctx]) dispatchReact(n *node[Ctx], event Event, ctrl *Control[Ctx]) {
	r.callReact(n, event, ctrl)

	switch n.kind {
	case compositeKind:
		f := r.forks[n.forkIndex]
		if f.active != noIndex {
			r.dispatchReact(n.children[f.active], event, ctrl)
		}
	case orthogonalKind:
		for _, c := range n.children {
			r.dispatchReact(c, event, ctrl)
		}
	}
}

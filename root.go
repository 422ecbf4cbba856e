package hfsm

// defaultMaxSubstitutions bounds the substitution fixpoint: a chain of
// Substitute hooks redirecting each other more than this many rounds is
// treated as non-convergent rather than looped forever.
const defaultMaxSubstitutions = 4

// Root is the host-facing facade over a built tree. It is not safe for
// concurrent use: Update, React, ChangeTo, Resume, and Schedule must all
// be called from a single goroutine, one at a time, to completion.
type Root[Ctx any] struct {
	ctx      Ctx
	apex     *node[Ctx]
	registry *registry

	statesByIndex []*node[Ctx]
	forks         []*fork
	forkOwners    []*node[Ctx]

	queue            *transitionQueue
	queueCapacity    int
	maxSubstitutions int
	started          bool

	logger   Logger
	activity []int64

	lastSubstitutedName string
}

// Option configures a Root at construction time.
type Option[Ctx any] func(*Root[Ctx])

// WithMaxSubstitutions overrides the substitution fixpoint's bound.
// Default 4.
func WithMaxSubstitutions[Ctx any](n int) Option[Ctx] {
	return func(r *Root[Ctx]) { r.maxSubstitutions = n }
}

// WithQueueCapacity overrides the transition queue's capacity. Default is
// the tree's fork count, or 1 for a tree without forks.
func WithQueueCapacity[Ctx any](n int) Option[Ctx] {
	return func(r *Root[Ctx]) { r.queueCapacity = n }
}

// WithLogger attaches a Logger from construction time, equivalent to
// calling AttachLogger immediately after New.
func WithLogger[Ctx any](logger Logger) Option[Ctx] {
	return func(r *Root[Ctx]) { r.logger = logger }
}

// WithActivityTracking enables per-state tick counters, retrievable via
// Activity.
func WithActivityTracking[Ctx any]() Option[Ctx] {
	return func(r *Root[Ctx]) { r.activity = []int64{} }
}

// New builds a Root from a declared tree. The tree is not entered until
// the first call to Update or React.
//
// A malformed tree (two nodes sharing a StateId) is a programming error:
// New panics with a structured *errs.EngineError rather than returning
// one, the same way regexp.MustCompile or template.Must report a caller
// mistake that no runtime input could have caused.
func New[Ctx any](ctx Ctx, apex *NodeDef[Ctx], opts ...Option[Ctx]) *Root[Ctx] {
	b := newBuilder[Ctx]()
	built, err := b.build(apex, nil)
	if err != nil {
		panic(err)
	}

	r := &Root[Ctx]{
		ctx:              ctx,
		apex:             built,
		registry:         b.registry,
		statesByIndex:    b.statesByIdx,
		forks:            b.forks,
		forkOwners:       b.forkOwners,
		maxSubstitutions: defaultMaxSubstitutions,
	}

	r.queueCapacity = len(b.forks)
	if r.queueCapacity == 0 {
		r.queueCapacity = 1
	}

	for _, opt := range opts {
		opt(r)
	}

	r.queue = newTransitionQueue(r.queueCapacity)
	if r.activity != nil {
		r.activity = make([]int64, len(b.statesByIdx))
	}

	return r
}

// Update drives the Update and Transition hooks top-down over the
// currently active subtree, then resolves and applies any transitions
// requested along the way (or, on the very first call, performs the
// implicit initial entry). The only error it can return is a transition
// queue overflow; anything else is a programming error and panics.
func (r *Root[Ctx]) Update() error {
	if r.started {
		ctrl := &Control[Ctx]{root: r}
		r.dispatchUpdate(r.apex, ctrl)
		for _, t := range ctrl.pending {
			if err := r.queue.push(t); err != nil {
				return err
			}
		}
	}
	r.resolveAndApply()
	return nil
}

// React delivers event top-down over the currently active subtree, then
// resolves and applies any transitions requested along the way. See
// Update for the error contract.
func (r *Root[Ctx]) React(event Event) error {
	event = event.withID()
	if r.started {
		ctrl := &Control[Ctx]{root: r}
		r.dispatchReact(r.apex, event, ctrl)
		for _, t := range ctrl.pending {
			if err := r.queue.push(t); err != nil {
				return err
			}
		}
	}
	r.resolveAndApply()
	return nil
}

// ChangeTo enqueues a Restart transition targeting id, for resolution on
// the next Update or React.
func (r *Root[Ctx]) ChangeTo(id StateId) error {
	return r.queue.push(Transition{Kind: Restart, Target: id})
}

// Resume enqueues a Resume transition targeting id.
func (r *Root[Ctx]) Resume(id StateId) error {
	return r.queue.push(Transition{Kind: Resume, Target: id})
}

// Schedule enqueues a Schedule transition targeting id.
func (r *Root[Ctx]) Schedule(id StateId) error {
	return r.queue.push(Transition{Kind: Schedule, Target: id})
}

// IsActive reports whether id names a node on the currently active path
// from the apex.
func (r *Root[Ctx]) IsActive(id StateId) bool {
	n, ok := r.find(id)
	if !ok || !r.started {
		return false
	}
	return r.isNodeActive(n)
}

// IsResumable reports whether id names the node remembered by its
// immediately containing fork's resumable prong. This is a local
// property of that one fork, not transitive up the ancestry: an ancestor
// fork's own resumable prong does not make this node resumable unless
// its own parent fork also remembers it.
func (r *Root[Ctx]) IsResumable(id StateId) bool {
	n, ok := r.find(id)
	if !ok {
		return false
	}
	return r.isNodeResumable(n)
}

// AttachLogger attaches l; every subsequent hook invocation is reported
// to it as (state, method).
func (r *Root[Ctx]) AttachLogger(l Logger) {
	r.logger = l
}

func (r *Root[Ctx]) find(id StateId) (*node[Ctx], bool) {
	idx, ok := r.registry.lookup(id)
	if !ok {
		return nil, false
	}
	return r.statesByIndex[idx], true
}

func (r *Root[Ctx]) isNodeActive(n *node[Ctx]) bool {
	cur := n
	for cur.parent != nil {
		p := cur.parent
		if p.kind == compositeKind {
			f := r.forks[p.forkIndex]
			if f.active == noIndex || p.children[f.active] != cur {
				return false
			}
		}
		cur = p
	}
	return true
}

func (r *Root[Ctx]) isNodeResumable(n *node[Ctx]) bool {
	p := n.parent
	if p == nil || p.kind != compositeKind {
		return false
	}
	f := r.forks[p.forkIndex]
	return f.resumable != noIndex && p.children[f.resumable] == n
}

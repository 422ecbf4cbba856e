package hfsm

// Hooks is implemented by every leaf, and by the head of every composite
// or orthogonal node. Embed Base[Ctx] to satisfy it while overriding only
// the hooks a particular node cares about.
type Hooks[Ctx any] interface {
	// Substitute runs once, right before a node is about to be entered as
	// the result of a transition resolution, and may veto or redirect the
	// transition by enqueuing an alternative through c.
	Substitute(c *Control[Ctx], ctx Ctx)
	// Enter runs when the node becomes active.
	Enter(ctx Ctx)
	// Update runs once per tick while the node is active.
	Update(ctx Ctx)
	// Transition runs once per tick while the node is active, after
	// Update, and is the idiomatic place to enqueue a transition in
	// response to host-observable conditions rather than an event.
	Transition(c *Control[Ctx], ctx Ctx)
	// React runs when an event is delivered while the node is active.
	React(event Event, c *Control[Ctx], ctx Ctx)
	// Leave runs when the node stops being active.
	Leave(ctx Ctx)
}

// Base is a no-op implementation of Hooks[Ctx]; embed it in a behavior
// struct to pick and choose which hooks to override.
type Base[Ctx any] struct{}

func (Base[Ctx]) Substitute(*Control[Ctx], Ctx)   {}
func (Base[Ctx]) Enter(Ctx)                       {}
func (Base[Ctx]) Update(Ctx)                      {}
func (Base[Ctx]) Transition(*Control[Ctx], Ctx)   {}
func (Base[Ctx]) React(Event, *Control[Ctx], Ctx) {}
func (Base[Ctx]) Leave(Ctx)                       {}

// Injection decorates a node's hooks. The five Pre* hooks run before the
// node's own hook, outermost injection first; PostLeave runs after the
// node's own Leave, outermost injection last.
type Injection[Ctx any] interface {
	PreSubstitute(c *Control[Ctx], ctx Ctx)
	PreEnter(ctx Ctx)
	PreUpdate(ctx Ctx)
	PreTransition(c *Control[Ctx], ctx Ctx)
	PreReact(event Event, c *Control[Ctx], ctx Ctx)
	PostLeave(ctx Ctx)
}

// BaseInjection is a no-op Injection[Ctx]; embed it to override a subset
// of the decorator hooks.
type BaseInjection[Ctx any] struct{}

func (BaseInjection[Ctx]) PreSubstitute(*Control[Ctx], Ctx)   {}
func (BaseInjection[Ctx]) PreEnter(Ctx)                       {}
func (BaseInjection[Ctx]) PreUpdate(Ctx)                      {}
func (BaseInjection[Ctx]) PreTransition(*Control[Ctx], Ctx)   {}
func (BaseInjection[Ctx]) PreReact(Event, *Control[Ctx], Ctx) {}
func (BaseInjection[Ctx]) PostLeave(Ctx)                      {}

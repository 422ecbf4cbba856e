package hfsm

// builder walks a declared NodeDef tree once, assigning dense indices,
// allocating forks, and wiring parent links. It is discarded once New
// returns.
type builder[Ctx any] struct {
	registry    *registry
	statesByIdx []*node[Ctx]
	forks       []*fork
	forkOwners  []*node[Ctx]
}

func newBuilder[Ctx any]() *builder[Ctx] {
	return &builder[Ctx]{registry: newRegistry()}
}

func (b *builder[Ctx]) build(def *NodeDef[Ctx], parent *node[Ctx]) (*node[Ctx], error) {
	idx, err := b.registry.add(def.id)
	if err != nil {
		return nil, err
	}

	n := &node[Ctx]{
		kind:       def.kind,
		id:         def.id,
		index:      idx,
		forkIndex:  noIndex,
		head:       def.head,
		injections: def.injections,
		parent:     parent,
	}

	b.statesByIdx = append(b.statesByIdx, n)

	if def.kind == compositeKind {
		forkIdx := Index(len(b.forks))
		f := newFork(forkIdx)
		b.forks = append(b.forks, f)
		b.forkOwners = append(b.forkOwners, n)
		n.forkIndex = forkIdx
	}

	for _, childDef := range def.children {
		child, err := b.build(childDef, n)
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
	}

	return n, nil
}

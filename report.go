package hfsm

// StructureEntry is one line of a structural report: a node's path and
// whether it is currently active or remembered as resumable. Rendering a
// report into an actual diagram is left to an external collaborator;
// this module only produces the data.
type StructureEntry struct {
	Path      string
	Active    bool
	Resumable bool
}

// Structure returns a flat, depth-ordered report of every node in the
// tree, each with its full slash-separated path from the apex.
func (r *Root[Ctx]) Structure() []StructureEntry {
	var out []StructureEntry
	r.collectStructure(r.apex, "", &out)
	return out
}

func (r *Root[Ctx]) collectStructure(n *node[Ctx], prefix string, out *[]StructureEntry) {
	path := n.id.String()
	if prefix != "" {
		path = prefix + "/" + path
	}

	*out = append(*out, StructureEntry{
		Path:      path,
		Active:    r.started && r.isNodeActive(n),
		Resumable: r.isNodeResumable(n),
	})

	for _, c := range n.children {
		r.collectStructure(c, path, out)
	}
}

// Activity returns a copy of the per-state tick counters accumulated
// since the Root was built with WithActivityTracking. It is nil if
// activity tracking was not enabled.
func (r *Root[Ctx]) Activity() []int64 {
	if r.activity == nil {
		return nil
	}
	out := make([]int64, len(r.activity))
	copy(out, r.activity)
	return out
}

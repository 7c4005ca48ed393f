// Package forest builds the parent/child and dependency/dependent graph over
// a flat issue list.
//
// Nodes live in an arena addressed by index; parent, child, dependency, and
// dependent links are stored as indices into that arena. Back-references
// (parent, dependents) therefore never form ownership cycles, and both
// directions of every edge are O(1) to follow.
package forest

import "github.com/Tubbz-alt/project-planning-for-you-track/internal/domain"

// NoNode marks an absent node reference (e.g. the parent of a root).
const NoNode = -1

// Node wraps one issue inside a Forest. Child and dependency order matches
// the order of the input issue list.
type Node struct {
	Issue domain.Issue

	Parent       int // arena index, NoNode for roots
	Children     []int
	Dependencies []int
	Dependents   []int
}

// Forest is an immutable issue forest. Build it once per scheduling call and
// discard it when the call returns.
type Forest struct {
	nodes []Node
	roots []int
}

// New builds a forest over a closed issue set: every parent or dependency ID
// that is set must resolve to an issue in the set (pre-filter with
// tracker.ValidateIssues first). Unresolvable references are ignored here,
// which for a parent means the issue becomes a root.
func New(issues []domain.Issue) *Forest {
	f := &Forest{nodes: make([]Node, len(issues))}
	byID := make(map[string]int, len(issues))
	for i, issue := range issues {
		f.nodes[i] = Node{Issue: issue, Parent: NoNode}
		byID[issue.ID] = i
	}

	for i, issue := range issues {
		if issue.ParentID != "" {
			if p, ok := byID[issue.ParentID]; ok {
				f.nodes[i].Parent = p
				f.nodes[p].Children = append(f.nodes[p].Children, i)
			}
		}
		for _, depID := range issue.Dependencies {
			if d, ok := byID[depID]; ok {
				f.nodes[i].Dependencies = append(f.nodes[i].Dependencies, d)
				f.nodes[d].Dependents = append(f.nodes[d].Dependents, i)
			}
		}
	}

	for i := range f.nodes {
		if f.nodes[i].Parent == NoNode {
			f.roots = append(f.roots, i)
		}
	}
	return f
}

// Len returns the number of nodes (one per input issue).
func (f *Forest) Len() int { return len(f.nodes) }

// Node returns the node at arena index i.
func (f *Forest) Node(i int) *Node { return &f.nodes[i] }

// Roots returns the arena indices of the root nodes, in input order.
func (f *Forest) Roots() []int { return f.roots }

// Visit walks the forest depth-first, calling enter before a node's children
// and leave after. Either callback may be nil. The walk uses an explicit
// stack so arbitrarily deep parent chains cannot exhaust the goroutine stack.
func (f *Forest) Visit(enter, leave func(idx int, n *Node)) {
	type frame struct {
		idx   int
		child int // next child offset to descend into
	}
	stack := make([]frame, 0, 16)
	for _, root := range f.roots {
		if enter != nil {
			enter(root, &f.nodes[root])
		}
		stack = append(stack, frame{idx: root})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			n := &f.nodes[top.idx]
			if top.child < len(n.Children) {
				c := n.Children[top.child]
				top.child++
				if enter != nil {
					enter(c, &f.nodes[c])
				}
				stack = append(stack, frame{idx: c})
				continue
			}
			if leave != nil {
				leave(top.idx, n)
			}
			stack = stack[:len(stack)-1]
		}
	}
}

package forest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tubbz-alt/project-planning-for-you-track/internal/domain"
)

func issue(id, parent string, deps ...string) domain.Issue {
	return domain.Issue{ID: id, ParentID: parent, Dependencies: deps}
}

func TestNew_RootsAndChildrenPreserveInputOrder(t *testing.T) {
	f := New([]domain.Issue{
		issue("a", ""),
		issue("a2", "a"),
		issue("b", ""),
		issue("a1", "a"),
	})

	require.Equal(t, 4, f.Len())
	require.Len(t, f.Roots(), 2)
	assert.Equal(t, "a", f.Node(f.Roots()[0]).Issue.ID)
	assert.Equal(t, "b", f.Node(f.Roots()[1]).Issue.ID)

	a := f.Node(f.Roots()[0])
	require.Len(t, a.Children, 2)
	assert.Equal(t, "a2", f.Node(a.Children[0]).Issue.ID, "children keep input order")
	assert.Equal(t, "a1", f.Node(a.Children[1]).Issue.ID)
}

func TestNew_DependencyEdgesAreBidirectional(t *testing.T) {
	f := New([]domain.Issue{
		issue("x", ""),
		issue("y", "", "x"),
		issue("z", "", "x", "y"),
	})

	x, y, z := f.Node(0), f.Node(1), f.Node(2)
	assert.Empty(t, x.Dependencies)
	assert.Equal(t, []int{1, 2}, x.Dependents)
	assert.Equal(t, []int{0}, y.Dependencies)
	assert.Equal(t, []int{2}, y.Dependents)
	assert.Equal(t, []int{0, 1}, z.Dependencies)
	assert.Empty(t, z.Dependents)
}

func TestNew_AbsentParentMakesRoot(t *testing.T) {
	f := New([]domain.Issue{issue("a", "missing")})

	require.Len(t, f.Roots(), 1)
	assert.Equal(t, NoNode, f.Node(0).Parent)
}

func TestVisit_EnterBeforeChildrenLeaveAfter(t *testing.T) {
	f := New([]domain.Issue{
		issue("a", ""),
		issue("a1", "a"),
		issue("a11", "a1"),
		issue("a2", "a"),
		issue("b", ""),
	})

	var trace []string
	f.Visit(
		func(_ int, n *Node) { trace = append(trace, "+"+n.Issue.ID) },
		func(_ int, n *Node) { trace = append(trace, "-"+n.Issue.ID) },
	)

	assert.Equal(t, []string{
		"+a", "+a1", "+a11", "-a11", "-a1", "+a2", "-a2", "-a", "+b", "-b",
	}, trace)
}

func TestVisit_DeepChainDoesNotRecurse(t *testing.T) {
	const depth = 200_000
	issues := make([]domain.Issue, depth)
	issues[0] = issue("i0", "")
	for i := 1; i < depth; i++ {
		issues[i] = domain.Issue{ID: idFor(i), ParentID: idFor(i - 1)}
	}

	f := New(issues)
	visited := 0
	f.Visit(func(int, *Node) { visited++ }, nil)
	assert.Equal(t, depth, visited)
}

func idFor(i int) string {
	// Small deterministic IDs without fmt in the hot loop.
	const digits = "0123456789"
	if i == 0 {
		return "i0"
	}
	buf := []byte{}
	for i > 0 {
		buf = append([]byte{digits[i%10]}, buf...)
		i /= 10
	}
	return "i" + string(buf)
}

// TestNew_Invariants_EveryIssueExactlyOneNode property-tests the forest
// invariant: every issue maps to exactly one node, and roots are exactly the
// issues whose parent is unset or absent.
func TestNew_Invariants_EveryIssueExactlyOneNode(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(40) + 1
		issues := make([]domain.Issue, n)
		for i := range issues {
			issues[i] = domain.Issue{ID: idFor(i)}
			if i > 0 && rng.Intn(3) > 0 {
				// Parent earlier in the list keeps the graph a forest.
				issues[i].ParentID = idFor(rng.Intn(i))
			}
			for d := 0; d < i && rng.Intn(8) == 0; d++ {
				issues[i].Dependencies = append(issues[i].Dependencies, idFor(d))
			}
		}

		f := New(issues)
		require.Equal(t, n, f.Len(), "trial %d", trial)

		seen := make(map[string]int, n)
		f.Visit(func(_ int, node *Node) { seen[node.Issue.ID]++ }, nil)
		for _, is := range issues {
			assert.Equal(t, 1, seen[is.ID], "trial %d: issue %s visited once", trial, is.ID)
		}

		wantRoots := 0
		for _, is := range issues {
			if is.ParentID == "" {
				wantRoots++
			}
		}
		assert.Len(t, f.Roots(), wantRoots, "trial %d", trial)
	}
}

package reasoner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeadmin/alcq-tableau/reasoner"
)

func newTestABox(una bool) (*reasoner.ABox, *reasoner.SymbolTable) {
	st := reasoner.NewSymbolTable()
	tbox := reasoner.NewTBox()
	return reasoner.NewABox(st, tbox, una), st
}

// TestMerge_Idempotent checks merging an individual into itself is a no-op.
func TestMerge_Idempotent(t *testing.T) {
	ab, _ := newTestABox(false)
	x := ab.InternNamed("x")
	ok := ab.Merge(x, x)
	assert.True(t, ok)
	assert.Equal(t, ab.Rep(x), ab.Rep(x))
}

// TestMerge_PreservesLabels checks that merging two individuals unions
// their concept labels onto the surviving representative.
func TestMerge_PreservesLabels(t *testing.T) {
	ab, st := newTestABox(false)
	a := ab.InternNamed("a")
	b := ab.InternNamed("b")
	cA := reasoner.Atomic(st.InternConcept("A"))
	cB := reasoner.Atomic(st.InternConcept("B"))
	ab.AddConcept(a, cA)
	ab.AddConcept(b, cB)

	ok := ab.Merge(a, b)
	require.True(t, ok)

	rep := ab.Rep(a)
	assert.Equal(t, rep, ab.Rep(b))
	assert.True(t, ab.HasConcept(rep, cA))
	assert.True(t, ab.HasConcept(rep, cB))
}

// TestMerge_NamedNamedUnderUNA checks the UNA merge restriction: two
// distinct named individuals may never merge when una is set.
func TestMerge_NamedNamedUnderUNA(t *testing.T) {
	ab, _ := newTestABox(true)
	a := ab.InternNamed("a")
	b := ab.InternNamed("b")
	ok := ab.Merge(a, b)
	assert.False(t, ok, "merging two distinct named individuals must fail under UNA")
}

// TestMerge_NamedSurvivesOverAnonymous checks that merging a named
// individual with an anonymous one always keeps the named one as the
// surviving representative, regardless of argument order.
func TestMerge_NamedSurvivesOverAnonymous(t *testing.T) {
	for _, order := range []bool{true, false} {
		ab, st := newTestABox(false)
		named := ab.InternNamed("mary")
		filler := reasoner.Atomic(st.InternConcept("Person"))
		anon := ab.NewAnonymousIndividual(named, filler)

		var ok bool
		if order {
			ok = ab.Merge(named, anon)
		} else {
			ok = ab.Merge(anon, named)
		}
		require.True(t, ok)
		assert.Equal(t, ab.Rep(named), ab.Rep(anon))
		assert.True(t, ab.Individuals().IsNamed(ab.Rep(anon)))
	}
}

// TestMerge_RespectsDistinct checks that merging two individuals already
// asserted distinct fails (Merge refuses it up front, before any union).
func TestMerge_RespectsDistinct(t *testing.T) {
	ab, _ := newTestABox(false)
	a := ab.InternNamed("a")
	b := ab.InternNamed("b")
	ab.AddInequality(a, b)

	ok := ab.Merge(a, b)
	assert.False(t, ok)
}

// TestBlocked_DetectsAncestorSubset checks that an anonymous individual
// whose label set is a subset of an ancestor's is reported blocked, the
// termination device of spec §4.6.
func TestBlocked_DetectsAncestorSubset(t *testing.T) {
	ab, st := newTestABox(false)
	root := ab.InternNamed("root")
	a := reasoner.Atomic(st.InternConcept("A"))
	r := st.InternRole("r")
	gen := reasoner.Exists(r, a)

	ab.AddConcept(root, a)
	child := ab.NewAnonymousIndividual(root, gen)
	ab.AddRole(root, r, child)
	ab.AddConcept(child, a)

	assert.True(t, ab.Blocked(child), "child with a label subset of its ancestor should be blocked")
}

// TestBlocked_NotBlockedWhenLabelsDiverge checks an anonymous individual
// with strictly more labels than every ancestor is not blocked.
func TestBlocked_NotBlockedWhenLabelsDiverge(t *testing.T) {
	ab, st := newTestABox(false)
	root := ab.InternNamed("root")
	a := reasoner.Atomic(st.InternConcept("A"))
	b := reasoner.Atomic(st.InternConcept("B"))
	r := st.InternRole("r")
	gen := reasoner.Exists(r, a)

	ab.AddConcept(root, a)
	child := ab.NewAnonymousIndividual(root, gen)
	ab.AddRole(root, r, child)
	ab.AddConcept(child, a)
	ab.AddConcept(child, b)

	assert.False(t, ab.Blocked(child))
}

// TestClone_Independence checks that mutating a clone never affects the
// original, the copy-on-branch invariant spec §4.5 depends on.
func TestClone_Independence(t *testing.T) {
	ab, st := newTestABox(false)
	a := ab.InternNamed("a")
	cA := reasoner.Atomic(st.InternConcept("A"))

	clone := ab.Clone()
	clone.AddConcept(a, cA)

	assert.False(t, ab.HasConcept(a, cA))
	assert.True(t, clone.HasConcept(a, cA))
}

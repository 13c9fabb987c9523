package reasoner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeadmin/alcq-tableau/reasoner"
)

// TestNormalize_Idempotent checks that normalizing an already-normalized
// concept is a no-op, the fixpoint property normalize(normalize(C)) ==
// normalize(C) relies on throughout the completion rules.
func TestNormalize_Idempotent(t *testing.T) {
	st := reasoner.NewSymbolTable()
	a := reasoner.Atomic(st.InternConcept("A"))
	b := reasoner.Atomic(st.InternConcept("B"))
	r := st.InternRole("r")

	cases := []*reasoner.Concept{
		reasoner.And(a, b),
		reasoner.Or(a, reasoner.Not(b)),
		reasoner.Implies(a, b),
		reasoner.Exists(r, a),
		reasoner.AtLeast(2, r, a),
	}
	for _, c := range cases {
		once := reasoner.Normalize(c)
		twice := reasoner.Normalize(once)
		assert.True(t, reasoner.Equal(once, twice), "normalize should be idempotent for %s", once.Key())
	}
}

// TestNormalize_DoubleNegationEliminated checks ¬¬C normalizes the same as C.
func TestNormalize_DoubleNegationEliminated(t *testing.T) {
	st := reasoner.NewSymbolTable()
	a := reasoner.Atomic(st.InternConcept("A"))
	got := reasoner.Normalize(reasoner.Not(reasoner.Not(a)))
	want := reasoner.Normalize(a)
	assert.True(t, reasoner.Equal(got, want))
}

// TestNormalize_DeMorgan checks ¬(A⊓B) normalizes to ¬A⊔¬B (NNF pushes
// negation to the leaves, per spec §4.1).
func TestNormalize_DeMorgan(t *testing.T) {
	st := reasoner.NewSymbolTable()
	a := reasoner.Atomic(st.InternConcept("A"))
	b := reasoner.Atomic(st.InternConcept("B"))

	got := reasoner.Normalize(reasoner.Not(reasoner.And(a, b)))
	want := reasoner.Normalize(reasoner.Or(reasoner.Not(a), reasoner.Not(b)))
	assert.True(t, reasoner.Equal(got, want))
}

// TestNormalize_QuantifierDuals checks ¬∃R.C → ∀R.¬C and ¬∀R.C → ∃R.¬C.
func TestNormalize_QuantifierDuals(t *testing.T) {
	st := reasoner.NewSymbolTable()
	a := reasoner.Atomic(st.InternConcept("A"))
	r := st.InternRole("r")

	gotExists := reasoner.Normalize(reasoner.Not(reasoner.Exists(r, a)))
	wantExists := reasoner.Normalize(reasoner.All(r, reasoner.Not(a)))
	assert.True(t, reasoner.Equal(gotExists, wantExists))

	gotAll := reasoner.Normalize(reasoner.Not(reasoner.All(r, a)))
	wantAll := reasoner.Normalize(reasoner.Exists(r, reasoner.Not(a)))
	assert.True(t, reasoner.Equal(gotAll, wantAll))
}

// TestNormalize_CardinalityDuals checks the ≥/≤ negation rules of spec
// §4.1, including the ≥0 edge case collapsing to ⊥ under negation.
func TestNormalize_CardinalityDuals(t *testing.T) {
	st := reasoner.NewSymbolTable()
	a := reasoner.Atomic(st.InternConcept("A"))
	r := st.InternRole("r")

	gotZero := reasoner.Normalize(reasoner.Not(reasoner.AtLeast(0, r, a)))
	assert.True(t, reasoner.IsBottom(gotZero), "¬(≥0 R.C) must normalize to ⊥")

	gotAtLeast := reasoner.Normalize(reasoner.Not(reasoner.AtLeast(3, r, a)))
	wantAtLeast := reasoner.Normalize(reasoner.AtMost(2, r, a))
	assert.True(t, reasoner.Equal(gotAtLeast, wantAtLeast))

	gotAtMost := reasoner.Normalize(reasoner.Not(reasoner.AtMost(3, r, a)))
	wantAtMost := reasoner.Normalize(reasoner.AtLeast(4, r, a))
	assert.True(t, reasoner.Equal(gotAtMost, wantAtMost))
}

// TestValidateCardinality_RejectsNegativeN enforces spec §7's malformed
// input rule for negative cardinalities.
func TestValidateCardinality_RejectsNegativeN(t *testing.T) {
	st := reasoner.NewSymbolTable()
	a := reasoner.Atomic(st.InternConcept("A"))
	r := st.InternRole("r")

	err := reasoner.ValidateCardinality(reasoner.AtLeast(-1, r, a))
	require.Error(t, err)
}

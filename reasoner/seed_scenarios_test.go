package reasoner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeadmin/alcq-tableau/reasoner"
)

// TestSeedScenario_Mother implements spec §8's seed scenario 1: Woman ≡
// Person⊓Female, Man ≡ Person⊓¬Female, Mother ≡ Woman⊓∃hasChild.Person,
// with hasChild(mary,tom), Woman(mary), Person(tom), Mother(mary).
// Expected: consistent, with Female(mary) and Person(mary) in the model.
func TestSeedScenario_Mother(t *testing.T) {
	st := reasoner.NewSymbolTable()
	tbox := reasoner.NewTBox()

	person := reasoner.Atomic(st.InternConcept("Person"))
	female := reasoner.Atomic(st.InternConcept("Female"))
	hasChild := st.InternRole("hasChild")

	tbox.Define(st, "Woman", reasoner.And(person, female))
	tbox.Define(st, "Man", reasoner.And(person, reasoner.Not(female)))
	woman := reasoner.Atomic(st.InternConcept("Woman"))
	tbox.Define(st, "Mother", reasoner.And(woman, reasoner.Exists(hasChild, person)))

	ab := reasoner.NewABox(st, tbox, false)
	mary := ab.InternNamed("mary")
	tom := ab.InternNamed("tom")
	ab.AddRole(mary, hasChild, tom)
	ab.AddConcept(mary, reasoner.Normalize(woman))
	ab.AddConcept(tom, reasoner.Normalize(person))
	mother := reasoner.Atomic(st.InternConcept("Mother"))
	ab.AddConcept(mary, reasoner.Normalize(mother))

	ok, model, err := reasoner.AboxConsistent(ab)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, model)

	rep := model.Rep(mary)
	assert.True(t, model.HasConcept(rep, reasoner.Normalize(female)), "model must contain Female(mary)")
	assert.True(t, model.HasConcept(rep, reasoner.Normalize(person)), "model must contain Person(mary)")
}

// TestSeedScenario_GoodStudentSubsumption implements spec §8's seed
// scenario 2: GoodStudent ≡ Smart⊔Studious; premise
// ∃attendedBy.(Smart⊓Studious) ⊑ ∃attendedBy.GoodStudent. Expected: true.
func TestSeedScenario_GoodStudentSubsumption(t *testing.T) {
	st := reasoner.NewSymbolTable()
	tbox := reasoner.NewTBox()

	smart := reasoner.Atomic(st.InternConcept("Smart"))
	studious := reasoner.Atomic(st.InternConcept("Studious"))
	tbox.Define(st, "GoodStudent", reasoner.Or(smart, studious))
	goodStudent := reasoner.Atomic(st.InternConcept("GoodStudent"))
	attendedBy := st.InternRole("attendedBy")

	ab := reasoner.NewABox(st, tbox, false)

	c1 := reasoner.Exists(attendedBy, reasoner.And(smart, studious))
	c2 := reasoner.Exists(attendedBy, goodStudent)
	premise := reasoner.Subsumption{C1: reasoner.Normalize(c1), C2: reasoner.Normalize(c2)}

	_, holds, err := reasoner.PremiseSubsumes(ab, premise)
	require.NoError(t, err)
	assert.True(t, holds)
}

// TestSeedScenario_NumberRestrictionWithUNA implements spec §8's seed
// scenario 3: hasChild(mary,ann/eva/joe), (≤2 hasChild.⊤)(mary), under
// UNA. Expected: inconsistent (three named children can never merge).
func TestSeedScenario_NumberRestrictionWithUNA(t *testing.T) {
	ok := runNumberRestrictionScenario(t, true)
	assert.False(t, ok, "with UNA, three distinct named children must violate ≤2")
}

// TestSeedScenario_NumberRestrictionWithoutUNA implements spec §8's seed
// scenario 4: the same ABox without UNA. Expected: consistent, since some
// of ann/eva/joe may merge.
func TestSeedScenario_NumberRestrictionWithoutUNA(t *testing.T) {
	ok := runNumberRestrictionScenario(t, false)
	assert.True(t, ok, "without UNA, the children may merge to satisfy ≤2")
}

func runNumberRestrictionScenario(t *testing.T, una bool) bool {
	t.Helper()
	st := reasoner.NewSymbolTable()
	tbox := reasoner.NewTBox()
	hasChild := st.InternRole("hasChild")

	ab := reasoner.NewABox(st, tbox, una)
	mary := ab.InternNamed("mary")
	ann := ab.InternNamed("ann")
	eva := ab.InternNamed("eva")
	joe := ab.InternNamed("joe")
	ab.AddRole(mary, hasChild, ann)
	ab.AddRole(mary, hasChild, eva)
	ab.AddRole(mary, hasChild, joe)

	atMost := reasoner.AtMost(2, hasChild, reasoner.Top)
	ab.AddConcept(mary, reasoner.Normalize(atMost))

	ok, _, err := reasoner.AboxConsistent(ab)
	require.NoError(t, err)
	return ok
}

// TestSeedScenario_NestedQuantifierSubsumption implements spec §8's seed
// scenario 5: ∀r.∀s.A ⊓ ∃r.∀s.B ⊓ ∀r.∃s.C ⊑ ∃r.∃s.(A⊓B⊓C). Expected: true.
func TestSeedScenario_NestedQuantifierSubsumption(t *testing.T) {
	st := reasoner.NewSymbolTable()
	tbox := reasoner.NewTBox()
	a := reasoner.Atomic(st.InternConcept("A"))
	b := reasoner.Atomic(st.InternConcept("B"))
	c := reasoner.Atomic(st.InternConcept("C"))
	r := st.InternRole("r")
	s := st.InternRole("s")

	ab := reasoner.NewABox(st, tbox, false)

	lhs := reasoner.And(
		reasoner.And(
			reasoner.All(r, reasoner.All(s, a)),
			reasoner.Exists(r, reasoner.All(s, b)),
		),
		reasoner.All(r, reasoner.Exists(s, c)),
	)
	rhs := reasoner.Exists(r, reasoner.Exists(s, reasoner.And(reasoner.And(a, b), c)))
	premise := reasoner.Subsumption{C1: reasoner.Normalize(lhs), C2: reasoner.Normalize(rhs)}

	_, holds, err := reasoner.PremiseSubsumes(ab, premise)
	require.NoError(t, err)
	assert.True(t, holds)
}

// TestSeedScenario_BranchingSubsumption implements spec §8's seed scenario
// 6: ∀r.∀s.A ⊓ (∃r.∀s.¬A ⊔ ∀r.∃s.B) ⊑ ∀r.∃s.(A⊓B) ⊔ ∃r.∀s.¬B. Expected:
// true. This scenario exercises both the ⊔ rule and backtracking search.
func TestSeedScenario_BranchingSubsumption(t *testing.T) {
	st := reasoner.NewSymbolTable()
	tbox := reasoner.NewTBox()
	a := reasoner.Atomic(st.InternConcept("A"))
	b := reasoner.Atomic(st.InternConcept("B"))
	r := st.InternRole("r")
	s := st.InternRole("s")

	ab := reasoner.NewABox(st, tbox, false)

	lhs := reasoner.And(
		reasoner.All(r, reasoner.All(s, a)),
		reasoner.Or(
			reasoner.Exists(r, reasoner.All(s, reasoner.Not(a))),
			reasoner.All(r, reasoner.Exists(s, b)),
		),
	)
	rhs := reasoner.Or(
		reasoner.All(r, reasoner.Exists(s, reasoner.And(a, b))),
		reasoner.Exists(r, reasoner.All(s, reasoner.Not(b))),
	)
	premise := reasoner.Subsumption{C1: reasoner.Normalize(lhs), C2: reasoner.Normalize(rhs)}

	_, holds, err := reasoner.PremiseSubsumes(ab, premise)
	require.NoError(t, err)
	assert.True(t, holds)
}

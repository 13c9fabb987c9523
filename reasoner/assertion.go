package reasoner

import "fmt"

// AssertionKind discriminates the three assertion shapes of spec §3.
type AssertionKind uint8

const (
	KindConcept AssertionKind = iota
	KindRole
	KindInequality
)

// Assertion is the sealed variant over concept assertions C(a), role
// assertions R(a,b), and inequalities a ≠ b.
type Assertion struct {
	Kind AssertionKind

	// KindConcept: Subject is a, Concept is C.
	// KindRole: Subject is a, Role is R, Object is b.
	// KindInequality: Subject is a, Object is b (symmetric).
	Subject IndividualID
	Object  IndividualID
	Role    RoleID
	Concept *Concept
}

// ConceptAssertion builds C(ind). c must already be normalized.
func ConceptAssertion(ind IndividualID, c *Concept) Assertion {
	return Assertion{Kind: KindConcept, Subject: ind, Concept: c}
}

// RoleAssertion builds R(from, to).
func RoleAssertion(from IndividualID, role RoleID, to IndividualID) Assertion {
	return Assertion{Kind: KindRole, Subject: from, Role: role, Object: to}
}

// InequalityAssertion builds x ≠ y.
func InequalityAssertion(x, y IndividualID) Assertion {
	return Assertion{Kind: KindInequality, Subject: x, Object: y}
}

// String renders the assertion using st/it's names, for logging.
func (a Assertion) String(st *SymbolTable, it *IndividualTable) string {
	switch a.Kind {
	case KindConcept:
		return fmt.Sprintf("%s(%s)", a.Concept.String(st), it.Label(a.Subject))
	case KindRole:
		return fmt.Sprintf("%s(%s,%s)", st.RoleName(a.Role), it.Label(a.Subject), it.Label(a.Object))
	case KindInequality:
		return fmt.Sprintf("%s≠%s", it.Label(a.Subject), it.Label(a.Object))
	}
	return "?"
}

// Subsumption is the premise of premise_subsumes: C1 ⊑ C2.
type Subsumption struct {
	C1, C2 *Concept
}

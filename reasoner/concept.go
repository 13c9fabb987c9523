package reasoner

import (
	"fmt"
	"strconv"
	"strings"
)

// ConceptTag identifies the shape of a Concept node. Concept is a sealed
// tagged variant: exactly the fields relevant to Tag are meaningful.
type ConceptTag uint8

const (
	TagTop ConceptTag = iota
	TagBottom
	TagAtomic
	TagNot
	TagAnd
	TagOr
	TagExists
	TagAll
	TagAtLeast
	TagAtMost
)

// Concept is the tagged variant tree described in spec §3: atomic concepts
// (including the synthetic Top/Bottom), negation, conjunction/disjunction,
// existential/universal restrictions, and qualified number restrictions.
type Concept struct {
	Tag ConceptTag

	Atom ConceptID // TagAtomic

	Sub *Concept // TagNot

	Left, Right *Concept // TagAnd, TagOr

	Role   RoleID   // TagExists, TagAll, TagAtLeast, TagAtMost
	Filler *Concept // TagExists, TagAll, TagAtLeast, TagAtMost ("⊤" for :T fillers)
	N      int      // TagAtLeast, TagAtMost
}

// Top and Bottom are the shared ⊤/⊥ leaves; they carry no payload so a
// single shared value is safe to reuse everywhere.
var (
	Top    = &Concept{Tag: TagTop}
	Bottom = &Concept{Tag: TagBottom}
)

// Atomic builds a named-concept leaf.
func Atomic(id ConceptID) *Concept { return &Concept{Tag: TagAtomic, Atom: id} }

// Not builds a negation node. Callers normally pass the result through
// Normalize immediately; Not itself performs no simplification.
func Not(c *Concept) *Concept { return &Concept{Tag: TagNot, Sub: c} }

// And and Or build binary conjunction/disjunction. n-ary forms are the
// caller's responsibility to decompose into binary trees, per spec §3.
func And(l, r *Concept) *Concept { return &Concept{Tag: TagAnd, Left: l, Right: r} }
func Or(l, r *Concept) *Concept  { return &Concept{Tag: TagOr, Left: l, Right: r} }

// Implies builds A ⇒ B as sugar for ¬A ⊔ B, per spec §3/§4.1. The result
// is not yet in NNF; Normalize eliminates the Not(And/Or) shape it creates.
func Implies(a, b *Concept) *Concept { return Or(Not(a), b) }

// Exists and All build ∃R.C and ∀R.C restrictions.
func Exists(r RoleID, c *Concept) *Concept { return &Concept{Tag: TagExists, Role: r, Filler: c} }
func All(r RoleID, c *Concept) *Concept    { return &Concept{Tag: TagAll, Role: r, Filler: c} }

// AtLeast and AtMost build qualified number restrictions (≥ n R.C) and
// (≤ n R.C). n must be non-negative; callers should validate
// with ValidateCardinality (see errors.go) before reaching the engine.
func AtLeast(n int, r RoleID, c *Concept) *Concept {
	return &Concept{Tag: TagAtLeast, N: n, Role: r, Filler: c}
}
func AtMost(n int, r RoleID, c *Concept) *Concept {
	return &Concept{Tag: TagAtMost, N: n, Role: r, Filler: c}
}

// IsTop and IsBottom test the two synthetic leaves.
func IsTop(c *Concept) bool    { return c.Tag == TagTop }
func IsBottom(c *Concept) bool { return c.Tag == TagBottom }

// IsAtomicNeg reports whether c is ¬A for some atomic A, and returns A.
// Used by clash detection and by the Unfold rule's negative-assertion case.
func IsAtomicNeg(c *Concept) (ConceptID, bool) {
	if c.Tag == TagNot && c.Sub.Tag == TagAtomic {
		return c.Sub.Atom, true
	}
	return 0, false
}

// Key returns a canonical string encoding of c, used for structural
// equality and as a map key throughout the ABox store. Two concepts with
// the same Key are structurally identical.
func (c *Concept) Key() string {
	var b strings.Builder
	writeKey(&b, c)
	return b.String()
}

func writeKey(b *strings.Builder, c *Concept) {
	switch c.Tag {
	case TagTop:
		b.WriteString("T")
	case TagBottom:
		b.WriteString("B")
	case TagAtomic:
		b.WriteString("A")
		b.WriteString(strconv.FormatUint(uint64(c.Atom), 10))
	case TagNot:
		b.WriteString("~(")
		writeKey(b, c.Sub)
		b.WriteString(")")
	case TagAnd:
		b.WriteString("&(")
		writeKey(b, c.Left)
		b.WriteString(",")
		writeKey(b, c.Right)
		b.WriteString(")")
	case TagOr:
		b.WriteString("|(")
		writeKey(b, c.Left)
		b.WriteString(",")
		writeKey(b, c.Right)
		b.WriteString(")")
	case TagExists:
		b.WriteString("E")
		b.WriteString(strconv.FormatUint(uint64(c.Role), 10))
		b.WriteString(".(")
		writeKey(b, c.Filler)
		b.WriteString(")")
	case TagAll:
		b.WriteString("F")
		b.WriteString(strconv.FormatUint(uint64(c.Role), 10))
		b.WriteString(".(")
		writeKey(b, c.Filler)
		b.WriteString(")")
	case TagAtLeast:
		b.WriteString(">=")
		b.WriteString(strconv.Itoa(c.N))
		b.WriteString("_")
		b.WriteString(strconv.FormatUint(uint64(c.Role), 10))
		b.WriteString(".(")
		writeKey(b, c.Filler)
		b.WriteString(")")
	case TagAtMost:
		b.WriteString("<=")
		b.WriteString(strconv.Itoa(c.N))
		b.WriteString("_")
		b.WriteString(strconv.FormatUint(uint64(c.Role), 10))
		b.WriteString(".(")
		writeKey(b, c.Filler)
		b.WriteString(")")
	}
}

// Equal reports structural equality between two concepts.
func Equal(a, b *Concept) bool { return a.Key() == b.Key() }

// String renders c using st's names, for logging and witness output.
func (c *Concept) String(st *SymbolTable) string {
	switch c.Tag {
	case TagTop:
		return "⊤"
	case TagBottom:
		return "⊥"
	case TagAtomic:
		return st.ConceptName(c.Atom)
	case TagNot:
		return "¬" + c.Sub.String(st)
	case TagAnd:
		return fmt.Sprintf("(%s ⊓ %s)", c.Left.String(st), c.Right.String(st))
	case TagOr:
		return fmt.Sprintf("(%s ⊔ %s)", c.Left.String(st), c.Right.String(st))
	case TagExists:
		return fmt.Sprintf("∃%s.%s", st.RoleName(c.Role), c.Filler.String(st))
	case TagAll:
		return fmt.Sprintf("∀%s.%s", st.RoleName(c.Role), c.Filler.String(st))
	case TagAtLeast:
		return fmt.Sprintf("(≥%d %s.%s)", c.N, st.RoleName(c.Role), c.Filler.String(st))
	case TagAtMost:
		return fmt.Sprintf("(≤%d %s.%s)", c.N, st.RoleName(c.Role), c.Filler.String(st))
	}
	return "?"
}

package scenario

import (
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/nodeadmin/alcq-tableau/reasoner"
)

// ErrIllFormedConcept fires when a decoded Concept node has none or more
// than one of its tagged fields populated, the ill-typed-expression
// failure mode spec §7 names.
var ErrIllFormedConcept = errors.NewKind("ill-formed concept node: %s")

// Build converts a decoded Scenario into a reasoner.ABox ready for search,
// the Go-typed counterpart of the TBox/ABox the scenario file describes
// textually. It returns the built ABox and the operation to run against it.
func Build(s *Scenario) (*reasoner.ABox, Operation, error) {
	st := reasoner.NewSymbolTable()
	tbox := reasoner.NewTBox()

	for name, c := range s.TBox {
		concept, err := toConcept(st, c)
		if err != nil {
			return nil, Operation{}, err
		}
		tbox.Define(st, name, concept)
	}

	ab := reasoner.NewABox(st, tbox, s.UNA)

	for _, ca := range s.ABox.Concepts {
		c, err := toConcept(st, ca.Concept)
		if err != nil {
			return nil, Operation{}, err
		}
		if err := reasoner.ValidateCardinality(c); err != nil {
			return nil, Operation{}, err
		}
		id := ab.InternNamed(ca.Individual)
		ab.AddConcept(id, reasoner.Normalize(c))
	}

	for _, ra := range s.ABox.Roles {
		role := st.InternRole(ra.Role)
		from := ab.InternNamed(ra.From)
		to := ab.InternNamed(ra.To)
		ab.AddRole(from, role, to)
	}

	for _, ineq := range s.ABox.Inequalities {
		x := ab.InternNamed(ineq.X)
		y := ab.InternNamed(ineq.Y)
		ab.AddInequality(x, y)
	}

	return ab, s.Operation, nil
}

// BuildPremise resolves a decoded Premise's two concepts against st,
// returning a reasoner.Subsumption ready for reasoner.PremiseSubsumes.
// st must be the same table Build populated, so atomic names line up
// with the ABox/TBox the premise is tested against.
func BuildPremise(st *reasoner.SymbolTable, p *Premise) (reasoner.Subsumption, error) {
	c1, err := toConcept(st, p.C1)
	if err != nil {
		return reasoner.Subsumption{}, err
	}
	c2, err := toConcept(st, p.C2)
	if err != nil {
		return reasoner.Subsumption{}, err
	}
	return reasoner.Subsumption{C1: reasoner.Normalize(c1), C2: reasoner.Normalize(c2)}, nil
}

// toConcept recursively lowers a decoded Concept node into a
// *reasoner.Concept, interning atomic/role names as it goes. And/Or lists
// (spec.md's n-ary :and/:or) fold left into the binary tree
// reasoner.Concept expects; an Implies list must hold exactly two operands.
func toConcept(st *reasoner.SymbolTable, c Concept) (*reasoner.Concept, error) {
	populated := 0
	for _, set := range []bool{c.Top, c.Bottom, c.Atomic != "", c.Not != nil, len(c.And) > 0, len(c.Or) > 0,
		len(c.Implies) > 0, c.Exists != nil, c.All != nil, c.AtLeast != nil, c.AtMost != nil} {
		if set {
			populated++
		}
	}
	if populated > 1 {
		return nil, ErrIllFormedConcept.New("more than one tag populated")
	}
	switch {
	case c.Top:
		return reasoner.Top, nil
	case c.Bottom:
		return reasoner.Bottom, nil
	case c.Atomic != "":
		return reasoner.Atomic(st.InternConcept(c.Atomic)), nil
	case c.Not != nil:
		sub, err := toConcept(st, *c.Not)
		if err != nil {
			return nil, err
		}
		return reasoner.Not(sub), nil
	case len(c.And) > 0:
		return foldConcepts(st, c.And, reasoner.And)
	case len(c.Or) > 0:
		return foldConcepts(st, c.Or, reasoner.Or)
	case len(c.Implies) == 2:
		a, err := toConcept(st, c.Implies[0])
		if err != nil {
			return nil, err
		}
		b, err := toConcept(st, c.Implies[1])
		if err != nil {
			return nil, err
		}
		return reasoner.Implies(a, b), nil
	case c.Exists != nil:
		filler, err := toConcept(st, c.Exists.Filler)
		if err != nil {
			return nil, err
		}
		return reasoner.Exists(st.InternRole(c.Exists.Role), filler), nil
	case c.All != nil:
		filler, err := toConcept(st, c.All.Filler)
		if err != nil {
			return nil, err
		}
		return reasoner.All(st.InternRole(c.All.Role), filler), nil
	case c.AtLeast != nil:
		filler, err := toConcept(st, c.AtLeast.Filler)
		if err != nil {
			return nil, err
		}
		return reasoner.AtLeast(c.AtLeast.N, st.InternRole(c.AtLeast.Role), filler), nil
	case c.AtMost != nil:
		filler, err := toConcept(st, c.AtMost.Filler)
		if err != nil {
			return nil, err
		}
		return reasoner.AtMost(c.AtMost.N, st.InternRole(c.AtMost.Role), filler), nil
	}
	return nil, ErrIllFormedConcept.New("no recognized tag populated")
}

func foldConcepts(st *reasoner.SymbolTable, nodes []Concept, combine func(l, r *reasoner.Concept) *reasoner.Concept) (*reasoner.Concept, error) {
	if len(nodes) == 0 {
		return nil, ErrIllFormedConcept.New("empty and/or list")
	}
	acc, err := toConcept(st, nodes[0])
	if err != nil {
		return nil, err
	}
	for _, n := range nodes[1:] {
		next, err := toConcept(st, n)
		if err != nil {
			return nil, err
		}
		acc = combine(acc, next)
	}
	return acc, nil
}

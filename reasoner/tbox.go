package reasoner

// TBox is a mapping from atomic concept name to its (NNF-normalized)
// definition, per spec §4.2. Lookups are supplied lazily to the Unfold
// completion rule; no static/eager unfolding is performed here, so cyclic
// TBoxes are safe by construction — termination is blocking's job alone
// (spec §4.6).
type TBox struct {
	defs map[ConceptID]*Concept
}

// NewTBox allocates an empty TBox.
func NewTBox() *TBox {
	return &TBox{defs: make(map[ConceptID]*Concept, 16)}
}

// Define associates name with def, normalizing def to NNF before storage.
// Redefining a name overwrites the previous definition.
func (t *TBox) Define(st *SymbolTable, name string, def *Concept) ConceptID {
	id := st.InternConcept(name)
	t.defs[id] = Normalize(def)
	return id
}

// Definition returns the NNF definition of id, if the TBox defines it.
func (t *TBox) Definition(id ConceptID) (*Concept, bool) {
	d, ok := t.defs[id]
	return d, ok
}

// IsDefined reports whether id has a TBox definition.
func (t *TBox) IsDefined(id ConceptID) bool {
	_, ok := t.defs[id]
	return ok
}

// Clone returns an independent copy. ABox.Clone does not call it: the
// TBox never mutates during search, so branch clones share one TBox.
func (t *TBox) Clone() *TBox {
	out := NewTBox()
	for k, v := range t.defs {
		out.defs[k] = v
	}
	return out
}

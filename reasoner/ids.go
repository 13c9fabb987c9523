// Package reasoner implements a tableau decision procedure for the
// description logic ALCQ: concept and role expressions, ABox/TBox storage,
// the completion-rule engine, and the backtracking search driver that
// decides consistency and subsumption.
package reasoner

import "github.com/google/uuid"

// ConceptID is a dense identifier for an atomic (named) concept, interned
// by SymbolTable. It never identifies the synthetic Top/Bottom nodes —
// those are distinct Concept tags, not interned names.
type ConceptID uint32

// RoleID is a dense identifier for a role name, interned by SymbolTable.
type RoleID uint32

// SymbolTable interns atomic concept and role names to dense IDs, mirroring
// the teacher's ChEBI SymbolTable but scoped to ALCQ's two name classes.
type SymbolTable struct {
	conceptToID map[string]ConceptID
	idToConcept []string
	roleToID    map[string]RoleID
	idToRole    []string
}

// NewSymbolTable allocates an empty interning table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		conceptToID: make(map[string]ConceptID, 64),
		idToConcept: make([]string, 0, 64),
		roleToID:    make(map[string]RoleID, 16),
		idToRole:    make([]string, 0, 16),
	}
}

// InternConcept returns the ConceptID for name, creating one if needed.
func (st *SymbolTable) InternConcept(name string) ConceptID {
	if id, ok := st.conceptToID[name]; ok {
		return id
	}
	id := ConceptID(len(st.idToConcept))
	st.conceptToID[name] = id
	st.idToConcept = append(st.idToConcept, name)
	return id
}

// InternRole returns the RoleID for name, creating one if needed.
func (st *SymbolTable) InternRole(name string) RoleID {
	if id, ok := st.roleToID[name]; ok {
		return id
	}
	id := RoleID(len(st.idToRole))
	st.roleToID[name] = id
	st.idToRole = append(st.idToRole, name)
	return id
}

// ConceptName returns the interned string for id, or "" if out of range.
func (st *SymbolTable) ConceptName(id ConceptID) string {
	if int(id) < len(st.idToConcept) {
		return st.idToConcept[id]
	}
	return ""
}

// RoleName returns the interned string for id, or "" if out of range.
func (st *SymbolTable) RoleName(id RoleID) string {
	if int(id) < len(st.idToRole) {
		return st.idToRole[id]
	}
	return ""
}

// ConceptCount and RoleCount report the number of interned names.
func (st *SymbolTable) ConceptCount() int { return len(st.idToConcept) }
func (st *SymbolTable) RoleCount() int    { return len(st.idToRole) }

// Clone returns a deep copy of the symbol table, safe to mutate independently.
func (st *SymbolTable) Clone() *SymbolTable {
	out := &SymbolTable{
		conceptToID: make(map[string]ConceptID, len(st.conceptToID)),
		idToConcept: append([]string(nil), st.idToConcept...),
		roleToID:    make(map[string]RoleID, len(st.roleToID)),
		idToRole:    append([]string(nil), st.idToRole...),
	}
	for k, v := range st.conceptToID {
		out.conceptToID[k] = v
	}
	for k, v := range st.roleToID {
		out.roleToID[k] = v
	}
	return out
}

// IndividualID is a dense identifier for an individual, named or anonymous.
type IndividualID uint32

// IndividualKind distinguishes user-supplied individuals from those
// generated by the existential and at-least rules.
type IndividualKind uint8

const (
	IndividualNamed IndividualKind = iota
	IndividualAnonymous
)

// provenance records why an anonymous individual exists: the parent
// individual and the concept whose rule firing generated it. This is the
// sole input to subset blocking (see Blocked in abox.go).
type provenance struct {
	parent    IndividualID
	generator *Concept
	hasParent bool
}

// IndividualTable tracks every individual that has appeared in a problem,
// named or anonymous, plus the provenance anonymous individuals carry.
type IndividualTable struct {
	nameToID   map[string]IndividualID
	idToName   []string
	kind       []IndividualKind
	handle     []uuid.UUID
	provenance []provenance
}

// NewIndividualTable allocates an empty individual table.
func NewIndividualTable() *IndividualTable {
	return &IndividualTable{
		nameToID: make(map[string]IndividualID, 16),
	}
}

// InternNamed returns the IndividualID for a user-supplied name, creating
// one (with a fresh display handle) if this is the first mention.
func (it *IndividualTable) InternNamed(name string) IndividualID {
	if id, ok := it.nameToID[name]; ok {
		return id
	}
	id := it.alloc(name, IndividualNamed)
	return id
}

// NewAnonymous creates a fresh anonymous individual generated by parent
// under generator (an ∃R.C or ≥n R.C concept), per spec §3's "generator
// provenance" invariant: exactly one generator per anonymous individual.
func (it *IndividualTable) NewAnonymous(parent IndividualID, generator *Concept) IndividualID {
	id := it.alloc("", IndividualAnonymous)
	it.provenance[id] = provenance{parent: parent, generator: generator, hasParent: true}
	return id
}

func (it *IndividualTable) alloc(name string, kind IndividualKind) IndividualID {
	id := IndividualID(len(it.idToName))
	it.idToName = append(it.idToName, name)
	it.kind = append(it.kind, kind)
	it.handle = append(it.handle, uuid.New())
	it.provenance = append(it.provenance, provenance{})
	if kind == IndividualNamed {
		it.nameToID[name] = id
	}
	return id
}

// Kind reports whether id is named or anonymous.
func (it *IndividualTable) Kind(id IndividualID) IndividualKind {
	return it.kind[id]
}

// IsNamed and IsAnonymous are convenience predicates over Kind.
func (it *IndividualTable) IsNamed(id IndividualID) bool     { return it.Kind(id) == IndividualNamed }
func (it *IndividualTable) IsAnonymous(id IndividualID) bool { return it.Kind(id) == IndividualAnonymous }

// Name returns the user-supplied name, or "" for anonymous individuals
// (use Handle for a stable display token instead).
func (it *IndividualTable) Name(id IndividualID) string { return it.idToName[id] }

// Handle returns the UUID-based display token minted for id at creation.
// Named and anonymous individuals both get one, so logs and witnesses can
// refer to an individual without leaking or depending on dense IDs.
func (it *IndividualTable) Handle(id IndividualID) uuid.UUID { return it.handle[id] }

// Label returns a human-readable label: the name if named, else a short
// anonymous tag built from the display handle.
func (it *IndividualTable) Label(id IndividualID) string {
	if it.IsNamed(id) {
		return it.idToName[id]
	}
	return "_:" + it.handle[id].String()[:8]
}

// Parent returns the generator parent of an anonymous individual. Named
// individuals and the (unused) zero provenance both report ok=false,
// which stops blocking's ancestor walk (see Blocked in abox.go).
func (it *IndividualTable) Parent(id IndividualID) (IndividualID, bool) {
	p := it.provenance[id]
	if !p.hasParent {
		return 0, false
	}
	return p.parent, true
}

// Count reports the number of individuals known to the table.
func (it *IndividualTable) Count() int { return len(it.idToName) }

// Clone returns a deep, independent copy of the table.
func (it *IndividualTable) Clone() *IndividualTable {
	out := &IndividualTable{
		nameToID:   make(map[string]IndividualID, len(it.nameToID)),
		idToName:   append([]string(nil), it.idToName...),
		kind:       append([]IndividualKind(nil), it.kind...),
		handle:     append([]uuid.UUID(nil), it.handle...),
		provenance: append([]provenance(nil), it.provenance...),
	}
	for k, v := range it.nameToID {
		out.nameToID[k] = v
	}
	return out
}

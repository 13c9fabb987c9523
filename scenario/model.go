// Package scenario decodes human-authored YAML/JSON scenario files into
// the reasoner package's Go-typed ABox/TBox inputs, the same role the
// teacher's ontology package plays for OBO/OWL text: an external
// collaborator translating a textual surface into the engine's native
// types. See reasoner.Normalize's callers for the consuming side.
package scenario

// Concept mirrors spec.md's prefix-list concept tags (:and, :or, :not,
// :implies, :exists, :all, :>=, :<=) as a YAML/JSON-friendly tagged
// struct: exactly one of the fields below is populated per node, the
// same sealed-variant shape reasoner.Concept uses internally.
type Concept struct {
	Top     bool      `yaml:"top,omitempty" json:"top,omitempty"`
	Bottom  bool      `yaml:"bottom,omitempty" json:"bottom,omitempty"`
	Atomic  string    `yaml:"atomic,omitempty" json:"atomic,omitempty"`
	Not     *Concept  `yaml:"not,omitempty" json:"not,omitempty"`
	And     []Concept `yaml:"and,omitempty" json:"and,omitempty"`
	Or      []Concept `yaml:"or,omitempty" json:"or,omitempty"`
	Implies []Concept `yaml:"implies,omitempty" json:"implies,omitempty"`
	Exists  *RoleRestriction `yaml:"exists,omitempty" json:"exists,omitempty"`
	All     *RoleRestriction `yaml:"all,omitempty" json:"all,omitempty"`
	AtLeast *CardinalityRestriction `yaml:"atLeast,omitempty" json:"atLeast,omitempty"`
	AtMost  *CardinalityRestriction `yaml:"atMost,omitempty" json:"atMost,omitempty"`
}

// RoleRestriction is the [:exists, R, C] / [:all, R, C] shape.
type RoleRestriction struct {
	Role   string  `yaml:"role" json:"role"`
	Filler Concept `yaml:"filler" json:"filler"`
}

// CardinalityRestriction is the [:>=, n, [:rule, R, C]] / [:<=, ...] shape.
type CardinalityRestriction struct {
	N      int     `yaml:"n" json:"n"`
	Role   string  `yaml:"role" json:"role"`
	Filler Concept `yaml:"filler" json:"filler"`
}

// ConceptAssertion is a [C, a] ABox entry: individual a carries concept C.
type ConceptAssertion struct {
	Individual string  `yaml:"individual" json:"individual"`
	Concept    Concept `yaml:"concept" json:"concept"`
}

// RoleAssertion is a [R, a, b] ABox entry: a R-relates to b.
type RoleAssertion struct {
	Role string `yaml:"role" json:"role"`
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// Inequality is a [[:!=, x, y]] ABox entry.
type Inequality struct {
	X string `yaml:"x" json:"x"`
	Y string `yaml:"y" json:"y"`
}

// ABox is the scenario file's assertion set (spec §3's ABox, textual form).
type ABox struct {
	Concepts     []ConceptAssertion `yaml:"concepts,omitempty" json:"concepts,omitempty"`
	Roles        []RoleAssertion    `yaml:"roles,omitempty" json:"roles,omitempty"`
	Inequalities []Inequality       `yaml:"inequalities,omitempty" json:"inequalities,omitempty"`
}

// Premise is the [:subsumes, C1, C2] shape premise_subsumes consumes.
type Premise struct {
	C1 Concept `yaml:"c1" json:"c1"`
	C2 Concept `yaml:"c2" json:"c2"`
}

// OperationKind names which of spec §6's four external operations a
// scenario file requests.
type OperationKind string

const (
	OpConsistent           OperationKind = "consistent"
	OpConsistentWithT      OperationKind = "consistent_with_t"
	OpConsistentWithObjAndT OperationKind = "consistent_with_obj_and_t"
	OpSubsumes             OperationKind = "subsumes"
)

// Operation selects the decision procedure a scenario requests and, for
// subsumes, the premise to test.
type Operation struct {
	Kind    OperationKind `yaml:"kind" json:"kind"`
	Premise *Premise      `yaml:"premise,omitempty" json:"premise,omitempty"`
}

// Scenario is the top-level scenario file shape: a TBox, an ABox, the
// unique-name-assumption toggle, and the operation to run — everything
// abox_consistent/premise_subsumes (spec §6) need, in one decodable unit.
type Scenario struct {
	TBox      map[string]Concept `yaml:"tbox,omitempty" json:"tbox,omitempty"`
	ABox      ABox               `yaml:"abox" json:"abox"`
	UNA       bool               `yaml:"una,omitempty" json:"una,omitempty"`
	Operation Operation          `yaml:"operation" json:"operation"`
	Workers   int                `yaml:"workers,omitempty" json:"workers,omitempty"`
}

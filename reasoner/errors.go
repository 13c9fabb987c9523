package reasoner

import errors "gopkg.in/src-d/go-errors.v1"

// Malformed input (spec §7) is the one failure mode the engine does not
// treat as a logical result: it is never recovered internally, unlike a
// clash, which is the ordinary branch-abandonment signal. Each condition
// gets its own Kind so a caller can match on it instead of the message.
var (
	// ErrNegativeCardinality fires when a ≥/≤ restriction carries n < 0.
	ErrNegativeCardinality = errors.NewKind("negative cardinality in restriction: %s")

	// ErrSubsumesNotAtRoot names a :subsumes found anywhere but the
	// premise root (spec §7, §6's Premise shape). Nothing in this module
	// raises it: the scenario format has no place for :subsumes outside
	// the premise.
	ErrSubsumesNotAtRoot = errors.NewKind(":subsumes may only appear at the premise root, found in: %s")

	// ErrUnknownTag names an expression tag this engine does not
	// recognize. Nothing in this module raises it: the scenario decoder
	// reports unknown keys as scenario.ErrMalformedScenario.
	ErrUnknownTag = errors.NewKind("unknown expression tag: %q")

	// ErrIllTypedExpression names a recognized tag applied to arguments of
	// the wrong shape (e.g. :exists with no filler). Nothing in this
	// module raises it: the scenario builder reports such nodes as
	// scenario.ErrIllFormedConcept.
	ErrIllTypedExpression = errors.NewKind("ill-typed expression: %s")
)

// ValidateCardinality checks the non-negativity invariant on qualified
// number restrictions, per spec §7 ("≥/≤ with negative n" is malformed
// input, fail fast). Call before a freshly built AtLeast/AtMost concept
// enters an ABox.
func ValidateCardinality(c *Concept) error {
	switch c.Tag {
	case TagAtLeast, TagAtMost:
		if c.N < 0 {
			return ErrNegativeCardinality.New(c.Key())
		}
	}
	return nil
}

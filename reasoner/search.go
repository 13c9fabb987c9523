package reasoner

import log "github.com/sirupsen/logrus"

// Options configures a single decision-procedure call, per spec §5's
// resource model (Workers) and the ambient logging stack.
type Options struct {
	// Workers bounds how many ⊔/≤ alternatives parallel.go may explore
	// concurrently at a single branch point. 0 or 1 means sequential
	// exploration (the default): each branch point's alternatives are
	// tried one at a time in their listed order. Which rule instance or
	// branch point is picked first follows map iteration order, so the
	// returned witness can differ between runs in either mode.
	Workers int
}

// Option mutates Options; the functional-options idiom keeps the four
// external entry points of spec §6 from needing positional bool/int params.
type Option func(*Options)

// WithWorkers sets the parallel branch-exploration worker count (spec §5).
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func resolveOptions(opts []Option) *Options {
	o := &Options{Workers: 1}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// branchFrame is one entry of the explicit branch stack search.go walks
// instead of recursing host-stack frames per alternative, per the Design
// Note in spec §9 preferring an explicit work-list/branch stack over
// unbounded host recursion.
type branchFrame struct {
	base    *ABox // the ABox state the alternatives branch from
	bp      branchPoint
	nextAlt int
}

// saturate drives ab to either a clash-free saturated state (success) or
// exhausts every alternative at every branch depth (failure), per spec
// §4.5 and §4.7. explored, if non-nil, accumulates every distinct ABox
// snapshot the search attempted — premise_subsumes surfaces these as its
// "explored branches" return value (spec §6).
func saturate(ab *ABox, explored *[]*ABox) (bool, *ABox) {
	var stack []branchFrame
	cur := ab

	for {
		runDeterministicFixpoint(cur)

		if _, clashed := FindClash(cur); clashed {
			if explored != nil {
				*explored = append(*explored, cur)
			}
			var ok bool
			cur, ok = backtrack(&stack)
			if !ok {
				return false, nil
			}
			continue
		}

		if bp, ok := findDisjunctionBranch(cur); ok {
			if cur.workers > 1 && len(bp.alternatives) > 1 {
				if pok, model := exploreAlternativesParallel(cur, bp, explored, cur.workers); pok {
					return true, model
				}
				if explored != nil {
					*explored = append(*explored, cur)
				}
				var ok3 bool
				cur, ok3 = backtrack(&stack)
				if !ok3 {
					return false, nil
				}
				continue
			}
			stack = append(stack, branchFrame{base: cur, bp: bp})
			next, ok2 := tryNextAlternative(&stack[len(stack)-1])
			if !ok2 {
				stack = stack[:len(stack)-1]
				if explored != nil {
					*explored = append(*explored, cur)
				}
				var ok3 bool
				cur, ok3 = backtrack(&stack)
				if !ok3 {
					return false, nil
				}
				continue
			}
			cur = next
			continue
		}

		if bp, ok := findAtMostBranch(cur); ok {
			if cur.workers > 1 && len(bp.alternatives) > 1 {
				if pok, model := exploreAlternativesParallel(cur, bp, explored, cur.workers); pok {
					return true, model
				}
				if explored != nil {
					*explored = append(*explored, cur)
				}
				var ok3 bool
				cur, ok3 = backtrack(&stack)
				if !ok3 {
					return false, nil
				}
				continue
			}
			stack = append(stack, branchFrame{base: cur, bp: bp})
			next, ok2 := tryNextAlternative(&stack[len(stack)-1])
			if !ok2 {
				stack = stack[:len(stack)-1]
				if explored != nil {
					*explored = append(*explored, cur)
				}
				var ok3 bool
				cur, ok3 = backtrack(&stack)
				if !ok3 {
					return false, nil
				}
				continue
			}
			cur = next
			continue
		}

		// No deterministic, generative, or branching rule applies: saturated.
		if explored != nil {
			*explored = append(*explored, cur)
		}
		return true, cur
	}
}

// runDeterministicFixpoint applies ⊓, ∀, Unfold, ∃ and ≥ to a fixed point.
// ∃/≥ are generative but not branching, so they belong in the same
// non-choice loop: firing one never forecloses an alternative, only
// extends the model, per spec §4.4's rule table.
func runDeterministicFixpoint(ab *ABox) {
	for {
		if _, clashed := FindClash(ab); clashed {
			return
		}
		if applyConjunction(ab) {
			continue
		}
		if applyForall(ab) {
			continue
		}
		if applyUnfold(ab) {
			continue
		}
		if applyExists(ab) {
			continue
		}
		if applyAtLeast(ab) {
			continue
		}
		if applyWithT(ab) {
			continue
		}
		return
	}
}

// tryNextAlternative applies the next untried alternative of frame to a
// fresh clone of frame.base, per spec §4.5's copy-on-branch strategy.
// Alternatives that are immediately infeasible (e.g. a forbidden merge)
// are skipped in place, since that is equivalent to an instant clash.
func tryNextAlternative(frame *branchFrame) (*ABox, bool) {
	for frame.nextAlt < len(frame.bp.alternatives) {
		alt := frame.bp.alternatives[frame.nextAlt]
		frame.nextAlt++
		clone := frame.base.Clone()
		log.WithFields(log.Fields{"branch": frame.bp.kind, "alternative": alt.label}).Debug("trying alternative")
		if alt.apply(clone) {
			return clone, true
		}
	}
	return nil, false
}

// backtrack pops exhausted frames off the stack until it finds one with a
// remaining alternative, restoring cur to that alternative's clone — the
// atomic "restore the pre-branch ABox" spec §3 requires.
func backtrack(stack *[]branchFrame) (*ABox, bool) {
	for len(*stack) > 0 {
		top := &(*stack)[len(*stack)-1]
		next, ok := tryNextAlternative(top)
		if ok {
			return next, true
		}
		*stack = (*stack)[:len(*stack)-1]
	}
	return nil, false
}

// AboxConsistent decides abox_consistent(ABox, TBox) (spec §4.7, §6):
// drive rules to saturation with backtracking, returning (true, witness)
// on success or (false, nil) on exhaustion.
func AboxConsistent(ab *ABox, opts ...Option) (bool, *ABox, error) {
	o := resolveOptions(opts)
	clone := ab.Clone()
	clone.workers = o.Workers
	ok, model := saturate(clone, nil)
	return ok, model, nil
}

// AboxConsistentWithT decides abox_consistent_with_t (spec §4.7, §6):
// force a decision on every atomic concept the engine has interned, for
// every individual, during search (applyWithT runs inside the
// deterministic fixpoint), producing more complete models at the cost of
// more branching.
func AboxConsistentWithT(ab *ABox, opts ...Option) (bool, []*ABox, error) {
	o := resolveOptions(opts)
	enriched := ab.Clone()
	enriched.withT = true
	enriched.workers = o.Workers
	ok, model := saturate(enriched, nil)
	if !ok {
		return false, nil, nil
	}
	return true, []*ABox{model}, nil
}

// AboxConsistentWithObjAndT decides abox_consistent_with_obj_and_t (spec
// §4.7, §6): as WithT, plus pairwise inequality asserted on all named
// individuals — the unique-name assumption made explicit as assertions
// (in addition to ABox.una, which already makes UNA's merge restriction
// and Distinct's implicit-inequality behavior take effect).
func AboxConsistentWithObjAndT(ab *ABox, opts ...Option) (bool, []*ABox, error) {
	o := resolveOptions(opts)
	enriched := ab.Clone()
	enriched.withT = true
	enriched.workers = o.Workers
	injectPairwiseDistinctNamed(enriched)
	ok, model := saturate(enriched, nil)
	if !ok {
		return false, nil, nil
	}
	return true, []*ABox{model}, nil
}

// PremiseSubsumes decides premise_subsumes(ABox, TBox, premise) (spec
// §4.7, §6): C1 ⊑ C2 holds iff ABox ∪ {(C1⊓¬C2)(x_fresh)} is inconsistent.
// It returns every ABox snapshot the search explored, alongside the
// subsumption verdict.
func PremiseSubsumes(ab *ABox, premise Subsumption, opts ...Option) ([]*ABox, bool, error) {
	o := resolveOptions(opts)
	test := ab.Clone()
	test.workers = o.Workers
	x := test.InternNamed(freshSubsumptionWitnessName())
	c := Normalize(And(premise.C1, Not(premise.C2)))
	test.AddConcept(x, c)

	var explored []*ABox
	ok, _ := saturate(test, &explored)
	return explored, !ok, nil
}

var subsumptionWitnessCounter int

// freshSubsumptionWitnessName mints a name for the fresh individual
// premise_subsumes introduces. The "?" prefix and per-call counter keep it
// apart from ordinary identifiers; InternNamed does not reject a
// user-supplied name of the same form.
func freshSubsumptionWitnessName() string {
	subsumptionWitnessCounter++
	return "?subsumption-witness-" + itoa(subsumptionWitnessCounter)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// injectPairwiseDistinctNamed asserts x ≠ y for every pair of distinct
// named individuals, making the unique-name assumption explicit as
// assertions (spec §4.7's with_obj_and_t variant).
func injectPairwiseDistinctNamed(ab *ABox) {
	named := make([]IndividualID, 0)
	for _, id := range ab.AllIndividuals() {
		if ab.Individuals().IsNamed(id) {
			named = append(named, id)
		}
	}
	for i := 0; i < len(named); i++ {
		for j := i + 1; j < len(named); j++ {
			ab.AddInequality(named[i], named[j])
		}
	}
}

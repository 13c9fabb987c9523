package reasoner

// FindClash scans ab for the first contradiction of spec §4.3: ⊥(a) for
// some a; both A(a) and ¬A(a) for some atomic A; a merge that collapsed a
// pair asserted distinct; or a cardinality restriction violated by more
// pairwise-distinguished successors than it permits. It returns the
// offending assertion (for logging/witness rendering) and true — the zero
// Assertion for a merge collapse, which has no single assertion — or the
// zero Assertion and false if ab is currently clash-free.
func FindClash(ab *ABox) (Assertion, bool) {
	if ab.SelfClash() {
		return Assertion{}, true
	}

	for _, id := range ab.AllIndividuals() {
		labels := ab.Labels(id)

		haveAtomic := make(map[ConceptID]bool, len(labels))
		haveNegAtomic := make(map[ConceptID]bool, len(labels))

		for _, c := range labels {
			if IsBottom(c) {
				return ConceptAssertion(id, c), true
			}
			if c.Tag == TagAtomic {
				haveAtomic[c.Atom] = true
			}
			if a, ok := IsAtomicNeg(c); ok {
				haveNegAtomic[a] = true
			}
		}
		for a := range haveAtomic {
			if haveNegAtomic[a] {
				return ConceptAssertion(id, Atomic(a)), true
			}
		}

		for _, c := range labels {
			if c.Tag != TagAtMost {
				continue
			}
			count := distinctSuccessorCount(ab, id, c.Role, c.Filler)
			if count > c.N {
				return ConceptAssertion(id, c), true
			}
		}
	}

	return Assertion{}, false
}

// distinctSuccessorCount returns the size of the largest subset of id's
// R-successors satisfying filler that are pairwise distinguished by the
// running inequality set — the quantity clash.go's cardinality check
// needs (spec §4.3). The ≥ rule runs the same subset search through
// maxPairwiseDistinctSubsetMembers; the ≤ rule's trigger counts matching
// successors without it.
func distinctSuccessorCount(ab *ABox, id IndividualID, role RoleID, filler *Concept) int {
	candidates := matchingSuccessors(ab, id, role, filler)
	return len(maxPairwiseDistinctSubsetMembers(ab, candidates))
}

// matchingSuccessors returns id's R-successors currently asserted to
// satisfy filler (⊤ matches unconditionally, per spec §6's :T).
func matchingSuccessors(ab *ABox, id IndividualID, role RoleID, filler *Concept) []IndividualID {
	succs := ab.Successors(id, role)
	if IsTop(filler) {
		return succs
	}
	out := make([]IndividualID, 0, len(succs))
	for _, s := range succs {
		if ab.HasConcept(s, filler) {
			out = append(out, s)
		}
	}
	return out
}

// maxPairwiseDistinctSubsetMembers brute-forces the largest pairwise-distinct
// subset of candidates and returns its members. ABoxes in this domain carry
// small successor sets per individual (bounded by the TBox's number
// restrictions), so the exponential worst case never materializes in
// practice; this is a deliberate simplicity-over-generality choice,
// recorded in DESIGN.md.
func maxPairwiseDistinctSubsetMembers(ab *ABox, candidates []IndividualID) []IndividualID {
	n := len(candidates)
	var best []IndividualID
	if n == 0 {
		return best
	}
	var rec func(start int, chosen []IndividualID)
	rec = func(start int, chosen []IndividualID) {
		if len(chosen) > len(best) {
			best = append([]IndividualID(nil), chosen...)
		}
		for i := start; i < n; i++ {
			cand := candidates[i]
			ok := true
			for _, c := range chosen {
				if !ab.Distinct(cand, c) {
					ok = false
					break
				}
			}
			if ok {
				rec(i+1, append(chosen, cand))
			}
		}
	}
	rec(0, make([]IndividualID, 0, n))
	return best
}

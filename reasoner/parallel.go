package reasoner

import "sync"

// This file implements the optional parallel branch exploration spec §5
// permits but does not require: when a branch point offers more than one
// independent alternative (the ⊔ rule's two disjuncts, or the ≤ rule's
// candidate merges), a small worker pool explores them concurrently, each
// against its own cloned ABox snapshot, and the first clash-free result
// wins. Every alternative runs to completion, and losing branches'
// explored snapshots are still folded into the caller's explored set, so
// premise_subsumes' trail (spec §6) holds the snapshots of all
// alternatives, including those a sequential search would skip after its
// first success.

// exploreAlternativesParallel drives every alternative of bp to saturation
// concurrently, bounded by workers, against independent clones of base.
// It returns the first clash-free model found, or false if every
// alternative failed. explored, if non-nil, accumulates every ABox
// snapshot every alternative's sub-search attempted.
func exploreAlternativesParallel(base *ABox, bp branchPoint, explored *[]*ABox, workers int) (bool, *ABox) {
	if workers < 1 {
		workers = 1
	}

	type outcome struct {
		ok       bool
		model    *ABox
		explored []*ABox
	}

	results := make(chan outcome, len(bp.alternatives))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for _, alt := range bp.alternatives {
		alt := alt
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			clone := base.Clone()
			if !alt.apply(clone) {
				results <- outcome{}
				return
			}
			var local []*ABox
			var collect *[]*ABox
			if explored != nil {
				collect = &local
			}
			ok, model := saturate(clone, collect)
			results <- outcome{ok: ok, model: model, explored: local}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var winner *ABox
	found := false
	for r := range results {
		if explored != nil {
			*explored = append(*explored, r.explored...)
		}
		if r.ok && !found {
			winner = r.model
			found = true
		}
	}
	return found, winner
}

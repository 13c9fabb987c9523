package reasoner

import "sync"

// normCache memoizes Normalize by the input concept's Key, the way the
// teacher's SymbolTable interns strings to IDs rather than recomputing —
// here the recurring substructure is the concept tree itself. Safe for
// concurrent use since parallel.go may normalize concepts from worker
// goroutines exploring independent branches.
type normCache struct {
	mu    sync.Mutex
	cache map[string]*Concept
}

var defaultNormCache = &normCache{cache: make(map[string]*Concept, 256)}

// Normalize rewrites c into negation-normal form: negation pushed to
// atomic leaves, implication eliminated, per spec §4.1. Every concept
// entering an ABox must pass through Normalize first (spec §3 invariant).
func Normalize(c *Concept) *Concept {
	key := c.Key()
	defaultNormCache.mu.Lock()
	if hit, ok := defaultNormCache.cache[key]; ok {
		defaultNormCache.mu.Unlock()
		return hit
	}
	defaultNormCache.mu.Unlock()

	out := normalize(c)

	defaultNormCache.mu.Lock()
	defaultNormCache.cache[key] = out
	defaultNormCache.mu.Unlock()
	return out
}

func normalize(c *Concept) *Concept {
	switch c.Tag {
	case TagTop, TagBottom, TagAtomic:
		return c

	case TagAnd:
		return And(normalize(c.Left), normalize(c.Right))

	case TagOr:
		return Or(normalize(c.Left), normalize(c.Right))

	case TagExists:
		return Exists(c.Role, normalize(c.Filler))

	case TagAll:
		return All(c.Role, normalize(c.Filler))

	case TagAtLeast:
		return AtLeast(c.N, c.Role, normalize(c.Filler))

	case TagAtMost:
		return AtMost(c.N, c.Role, normalize(c.Filler))

	case TagNot:
		return normalizeNeg(c.Sub)
	}
	return c
}

// normalizeNeg normalizes ¬sub, pushing the negation one level and
// recursing, per the rewrite rules of spec §4.1.
func normalizeNeg(sub *Concept) *Concept {
	switch sub.Tag {
	case TagTop:
		return Bottom
	case TagBottom:
		return Top

	case TagAtomic:
		return Not(sub)

	case TagNot:
		// ¬¬C → C
		return normalize(sub.Sub)

	case TagAnd:
		// ¬(C ⊓ D) → ¬C ⊔ ¬D
		return Or(normalizeNeg(sub.Left), normalizeNeg(sub.Right))

	case TagOr:
		// ¬(C ⊔ D) → ¬C ⊓ ¬D
		return And(normalizeNeg(sub.Left), normalizeNeg(sub.Right))

	case TagExists:
		// ¬∃R.C → ∀R.¬C
		return All(sub.Role, normalizeNeg(sub.Filler))

	case TagAll:
		// ¬∀R.C → ∃R.¬C
		return Exists(sub.Role, normalizeNeg(sub.Filler))

	case TagAtLeast:
		// ¬(≥0 R.C) → ⊥ ; ¬(≥n R.C) → (≤n-1 R.C) for n ≥ 1
		if sub.N == 0 {
			return Bottom
		}
		return AtMost(sub.N-1, sub.Role, normalize(sub.Filler))

	case TagAtMost:
		// ¬(≤n R.C) → (≥n+1 R.C)
		return AtLeast(sub.N+1, sub.Role, normalize(sub.Filler))
	}
	return Not(sub)
}

package reasoner

// ABox is the assertional knowledge base the tableau rewrites: a set of
// assertions plus the auxiliary indexes spec §3 requires — a role
// successor (and predecessor) index, an inequality set, and the union-find
// structure that realizes individual merging (spec §4.4), grounded on the
// same find/union-with-path-compression idiom as the teacher pack's
// Kruskal MST implementation (prim_kruskal.Kruskal), with "named survives"
// substituting for union-by-rank as the tie-break.
//
// All lookups key through Rep, so a merge is visible everywhere at once;
// Clone deep-copies everything needed for branch-local, atomically
// abandonable state (spec §3's "restoring the pre-branch ABox").
type ABox struct {
	st   *SymbolTable     // shared, read-only once search begins
	tbox *TBox            // shared, read-only once search begins
	ind  *IndividualTable // owned by this ABox; cloned per branch
	una  bool             // unique name assumption

	parent []IndividualID // union-find parent array

	labels map[IndividualID]map[string]*Concept             // rep -> concept key -> concept
	succ   map[IndividualID]map[RoleID]map[IndividualID]bool // rep -> role -> successor reps
	pred   map[IndividualID]map[RoleID]map[IndividualID]bool // rep -> role -> predecessor reps
	dist   map[IndividualID]map[IndividualID]bool             // rep -> rep set, symmetric

	selfClash bool // set when consolidation discovers a ≠-self collapse
	withT     bool // with_t mode: force a decision on every atomic concept (spec §4.7)
	workers   int  // parallel.go's branch-exploration worker bound (spec §5); 0/1 = sequential
}

// NewABox allocates an empty ABox over st/tbox with a fresh individual
// table. una selects the unique-name assumption (spec §4.4, §6).
func NewABox(st *SymbolTable, tbox *TBox, una bool) *ABox {
	return &ABox{
		st:     st,
		tbox:   tbox,
		ind:    NewIndividualTable(),
		una:    una,
		labels: make(map[IndividualID]map[string]*Concept),
		succ:   make(map[IndividualID]map[RoleID]map[IndividualID]bool),
		pred:   make(map[IndividualID]map[RoleID]map[IndividualID]bool),
		dist:   make(map[IndividualID]map[IndividualID]bool),
	}
}

// Individuals exposes the owned individual table (read access for rules
// and CLI rendering; mutation goes through NewAnonymousIndividual/InternNamed).
func (ab *ABox) Individuals() *IndividualTable { return ab.ind }

// SymbolTable and TBox expose the shared, read-only tables.
func (ab *ABox) SymbolTable() *SymbolTable { return ab.st }
func (ab *ABox) TBox() *TBox               { return ab.tbox }

// InternNamed registers (or looks up) a named individual.
func (ab *ABox) InternNamed(name string) IndividualID {
	id := ab.ind.InternNamed(name)
	ab.growParent(int(id) + 1)
	return id
}

// NewAnonymousIndividual creates a fresh anonymous individual generated by
// parent under generator, per spec §4.4's ∃/≥ rule actions.
func (ab *ABox) NewAnonymousIndividual(parent IndividualID, generator *Concept) IndividualID {
	id := ab.ind.NewAnonymous(parent, generator)
	ab.growParent(int(id) + 1)
	return id
}

func (ab *ABox) growParent(n int) {
	for len(ab.parent) < n {
		ab.parent = append(ab.parent, IndividualID(len(ab.parent)))
	}
}

// Rep returns the current union-find representative of id.
func (ab *ABox) Rep(id IndividualID) IndividualID {
	ab.growParent(int(id) + 1)
	for ab.parent[id] != id {
		ab.parent[id] = ab.parent[ab.parent[id]]
		id = ab.parent[id]
	}
	return id
}

// AddConcept adds C(id) if not already present at id's representative.
// Returns true if this was a new addition.
func (ab *ABox) AddConcept(id IndividualID, c *Concept) bool {
	r := ab.Rep(id)
	m := ab.labels[r]
	if m == nil {
		m = make(map[string]*Concept, 4)
		ab.labels[r] = m
	}
	k := c.Key()
	if _, ok := m[k]; ok {
		return false
	}
	m[k] = c
	return true
}

// HasConcept reports whether C(id) currently holds.
func (ab *ABox) HasConcept(id IndividualID, c *Concept) bool {
	m := ab.labels[ab.Rep(id)]
	if m == nil {
		return false
	}
	_, ok := m[c.Key()]
	return ok
}

// Labels returns the concepts currently asserted of id (via its representative).
func (ab *ABox) Labels(id IndividualID) []*Concept {
	m := ab.labels[ab.Rep(id)]
	out := make([]*Concept, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	return out
}

// LabelKeys returns the set of concept keys currently asserted of id,
// used by Blocked for the subset test (spec §4.6).
func (ab *ABox) LabelKeys(id IndividualID) map[string]struct{} {
	m := ab.labels[ab.Rep(id)]
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

// AddRole adds R(from,to) to the successor/predecessor index. Returns
// true if this was a new addition.
func (ab *ABox) AddRole(from IndividualID, role RoleID, to IndividualID) bool {
	return ab.addEdge(ab.Rep(from), role, ab.Rep(to))
}

func (ab *ABox) addEdge(rf IndividualID, role RoleID, rt IndividualID) bool {
	if ab.succ[rf] == nil {
		ab.succ[rf] = make(map[RoleID]map[IndividualID]bool, 2)
	}
	if ab.succ[rf][role] == nil {
		ab.succ[rf][role] = make(map[IndividualID]bool, 2)
	}
	if ab.succ[rf][role][rt] {
		return false
	}
	ab.succ[rf][role][rt] = true

	if ab.pred[rt] == nil {
		ab.pred[rt] = make(map[RoleID]map[IndividualID]bool, 2)
	}
	if ab.pred[rt][role] == nil {
		ab.pred[rt][role] = make(map[IndividualID]bool, 2)
	}
	ab.pred[rt][role][rf] = true
	return true
}

// Successors returns the current R-successors of id (by representative).
func (ab *ABox) Successors(id IndividualID, role RoleID) []IndividualID {
	m := ab.succ[ab.Rep(id)][role]
	out := make([]IndividualID, 0, len(m))
	for t := range m {
		out = append(out, t)
	}
	return out
}

// AddInequality asserts x ≠ y symmetrically. Returns true if new. If x and
// y are already the same representative this sets the clash flag, per the
// "merging two distinct individuals clashes" invariant.
func (ab *ABox) AddInequality(x, y IndividualID) bool {
	rx, ry := ab.Rep(x), ab.Rep(y)
	if rx == ry {
		ab.selfClash = true
		return true
	}
	return ab.addDistinctEdge(rx, ry)
}

func (ab *ABox) addDistinctEdge(a, b IndividualID) bool {
	added := false
	if ab.dist[a] == nil {
		ab.dist[a] = make(map[IndividualID]bool, 2)
	}
	if !ab.dist[a][b] {
		ab.dist[a][b] = true
		added = true
	}
	if ab.dist[b] == nil {
		ab.dist[b] = make(map[IndividualID]bool, 2)
	}
	ab.dist[b][a] = true
	return added
}

// Distinct reports whether x and y are currently distinguished, either by
// an explicit inequality (transitively folded through merges) or, under
// the unique-name assumption, by both being distinct named individuals.
func (ab *ABox) Distinct(x, y IndividualID) bool {
	rx, ry := ab.Rep(x), ab.Rep(y)
	if rx == ry {
		return false
	}
	if ab.una && ab.ind.IsNamed(rx) && ab.ind.IsNamed(ry) {
		return true
	}
	return ab.dist[rx] != nil && ab.dist[rx][ry]
}

// SelfClash reports whether a merge has collapsed two individuals that
// were asserted distinct (directly, or transitively via Merge's own
// up-front check — this flag is the defense-in-depth backstop consulted
// by clash.go).
func (ab *ABox) SelfClash() bool { return ab.selfClash }

// Merge merges y into x (or the reverse, per named-individual precedence),
// per spec §4.4. It returns false if the merge is disallowed outright
// (merging two named individuals under UNA, or two individuals already
// asserted distinct) — the caller treats that as a clash and abandons the
// branch. It mutates ab in place; callers branching on ≤ must Clone first.
func (ab *ABox) Merge(x, y IndividualID) bool {
	x, y = ab.Rep(x), ab.Rep(y)
	if x == y {
		return true
	}

	xNamed, yNamed := ab.ind.IsNamed(x), ab.ind.IsNamed(y)
	switch {
	case xNamed && yNamed:
		if ab.una || ab.Distinct(x, y) {
			return false
		}
		if y < x {
			x, y = y, x
		}
	case yNamed && !xNamed:
		x, y = y, x
	case xNamed && !yNamed:
		// x is already the survivor
	default:
		if y < x {
			x, y = y, x
		}
	}

	if ab.Distinct(x, y) {
		return false
	}

	ab.parent[y] = x
	ab.consolidate()
	return !ab.selfClash
}

// consolidate re-keys labels/succ/pred/dist by current representative,
// merging any entries that now alias. This trades a little efficiency for
// a much simpler, harder-to-get-wrong merge than incremental edge rewiring
// — acceptable given the resource model of spec §5 (TBox/ABox sizes and
// branching depth bound the problem, not large-scale corpora).
func (ab *ABox) consolidate() {
	newLabels := make(map[IndividualID]map[string]*Concept, len(ab.labels))
	for id, m := range ab.labels {
		r := ab.Rep(id)
		dst := newLabels[r]
		if dst == nil {
			dst = make(map[string]*Concept, len(m))
			newLabels[r] = dst
		}
		for k, c := range m {
			dst[k] = c
		}
	}
	ab.labels = newLabels

	newSucc := make(map[IndividualID]map[RoleID]map[IndividualID]bool, len(ab.succ))
	newPred := make(map[IndividualID]map[RoleID]map[IndividualID]bool, len(ab.pred))
	for src, byRole := range ab.succ {
		rs := ab.Rep(src)
		for role, targets := range byRole {
			for t := range targets {
				rt := ab.Rep(t)
				addIndexEdge(newSucc, rs, role, rt)
				addIndexEdge(newPred, rt, role, rs)
			}
		}
	}
	ab.succ = newSucc
	ab.pred = newPred

	newDist := make(map[IndividualID]map[IndividualID]bool, len(ab.dist))
	for a, bs := range ab.dist {
		ra := ab.Rep(a)
		for b := range bs {
			rb := ab.Rep(b)
			if ra == rb {
				ab.selfClash = true
				continue
			}
			if newDist[ra] == nil {
				newDist[ra] = make(map[IndividualID]bool, 2)
			}
			newDist[ra][rb] = true
			if newDist[rb] == nil {
				newDist[rb] = make(map[IndividualID]bool, 2)
			}
			newDist[rb][ra] = true
		}
	}
	ab.dist = newDist
}

func addIndexEdge(m map[IndividualID]map[RoleID]map[IndividualID]bool, a IndividualID, role RoleID, b IndividualID) {
	if m[a] == nil {
		m[a] = make(map[RoleID]map[IndividualID]bool, 2)
	}
	if m[a][role] == nil {
		m[a][role] = make(map[IndividualID]bool, 2)
	}
	m[a][role][b] = true
}

// Blocked reports whether anonymous individual id is currently blocked by
// an ancestor along its generator chain, per spec §4.6: b is blocked by a
// when b's current label set is a subset of a's current label set. Named
// individuals are never blocked. This is recomputed fresh on every call —
// no caching — per the "mark-and-forget is incorrect" design note (spec §9).
func (ab *ABox) Blocked(id IndividualID) bool {
	if ab.ind.IsNamed(id) {
		return false
	}
	bLabels := ab.LabelKeys(id)
	cur := id
	for {
		parent, ok := ab.ind.Parent(cur)
		if !ok {
			return false
		}
		if isSubset(bLabels, ab.LabelKeys(parent)) {
			return true
		}
		cur = parent
	}
}

func isSubset(a, b map[string]struct{}) bool {
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// Clone returns a deep, independent copy safe for an alternate branch to
// mutate without affecting the original — spec §3's "restoring the
// pre-branch ABox" is simply discarding the clone instead of the original.
func (ab *ABox) Clone() *ABox {
	out := &ABox{
		st:        ab.st,
		tbox:      ab.tbox,
		ind:       ab.ind.Clone(),
		una:       ab.una,
		parent:    append([]IndividualID(nil), ab.parent...),
		labels:    make(map[IndividualID]map[string]*Concept, len(ab.labels)),
		succ:      make(map[IndividualID]map[RoleID]map[IndividualID]bool, len(ab.succ)),
		pred:      make(map[IndividualID]map[RoleID]map[IndividualID]bool, len(ab.pred)),
		dist:      make(map[IndividualID]map[IndividualID]bool, len(ab.dist)),
		selfClash: ab.selfClash,
		withT:     ab.withT,
		workers:   ab.workers,
	}
	for id, m := range ab.labels {
		dst := make(map[string]*Concept, len(m))
		for k, c := range m {
			dst[k] = c
		}
		out.labels[id] = dst
	}
	for src, byRole := range ab.succ {
		dst := make(map[RoleID]map[IndividualID]bool, len(byRole))
		for role, targets := range byRole {
			ts := make(map[IndividualID]bool, len(targets))
			for t := range targets {
				ts[t] = true
			}
			dst[role] = ts
		}
		out.succ[src] = dst
	}
	for tgt, byRole := range ab.pred {
		dst := make(map[RoleID]map[IndividualID]bool, len(byRole))
		for role, sources := range byRole {
			ss := make(map[IndividualID]bool, len(sources))
			for s := range sources {
				ss[s] = true
			}
			dst[role] = ss
		}
		out.pred[tgt] = dst
	}
	for a, bs := range ab.dist {
		dst := make(map[IndividualID]bool, len(bs))
		for b := range bs {
			dst[b] = true
		}
		out.dist[a] = dst
	}
	return out
}

// AllIndividuals returns every distinct representative currently holding
// at least one concept assertion or role edge — the working set the rule
// engine scans each pass.
func (ab *ABox) AllIndividuals() []IndividualID {
	seen := make(map[IndividualID]bool)
	for id := range ab.labels {
		seen[ab.Rep(id)] = true
	}
	for id := range ab.succ {
		seen[ab.Rep(id)] = true
	}
	for id := range ab.pred {
		seen[ab.Rep(id)] = true
	}
	out := make([]IndividualID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	return out
}

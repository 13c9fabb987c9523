package scenario

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/nodeadmin/alcq-tableau/reasoner"
)

const encoderBufferSize = 64 * 1024

// Witness is the JSON-rendered shape of a model ABox: the individuals the
// search produced, each with its concept labels and outgoing role edges,
// the rendering counterpart of the teacher's classified-ontology output.
type Witness struct {
	Individuals []WitnessIndividual `json:"individuals"`
}

// WitnessIndividual renders one individual's labels and role edges using
// display names rather than dense IDs. Named individuals show their names;
// anonymous ones show a prefix of a UUID minted at creation, which differs
// between runs, as does the order of individuals, concepts and edges.
type WitnessIndividual struct {
	Label    string              `json:"label"`
	Named    bool                `json:"named"`
	Concepts []string            `json:"concepts"`
	Roles    []WitnessRoleEdge   `json:"roles,omitempty"`
}

// WitnessRoleEdge is one outgoing R-edge from the owning individual.
type WitnessRoleEdge struct {
	Role string `json:"role"`
	To   string `json:"to"`
}

// RenderWitness flattens a model ABox into the display-friendly Witness
// shape, resolving every ID through st/the ABox's own individual table.
func RenderWitness(ab *reasoner.ABox, st *reasoner.SymbolTable) Witness {
	it := ab.Individuals()
	var w Witness
	for _, id := range ab.AllIndividuals() {
		wi := WitnessIndividual{
			Label: it.Label(id),
			Named: it.IsNamed(id),
		}
		for _, c := range ab.Labels(id) {
			wi.Concepts = append(wi.Concepts, c.String(st))
		}
		for r := reasoner.RoleID(0); r < reasoner.RoleID(st.RoleCount()); r++ {
			for _, succ := range ab.Successors(id, r) {
				wi.Roles = append(wi.Roles, WitnessRoleEdge{Role: st.RoleName(r), To: it.Label(succ)})
			}
		}
		w.Individuals = append(w.Individuals, wi)
	}
	return w
}

// WriteJSON writes w as JSON to the given writer, buffered the way the
// teacher's ontology.WriteJSON is.
func WriteJSON(w Witness, out io.Writer) error {
	bw := bufio.NewWriterSize(out, encoderBufferSize)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(w); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteJSONPretty writes indented JSON, for the CLI's --format json output.
func WriteJSONPretty(w Witness, out io.Writer) error {
	bw := bufio.NewWriterSize(out, encoderBufferSize)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteText renders w as a short indented listing, for the CLI's default
// --format text output.
func WriteText(w Witness, out io.Writer) error {
	bw := bufio.NewWriterSize(out, encoderBufferSize)
	for _, ind := range w.Individuals {
		kind := "anonymous"
		if ind.Named {
			kind = "named"
		}
		fmt.Fprintf(bw, "%s (%s)\n", ind.Label, kind)
		for _, c := range ind.Concepts {
			fmt.Fprintf(bw, "  : %s\n", c)
		}
		for _, r := range ind.Roles {
			fmt.Fprintf(bw, "  %s -> %s\n", r.Role, r.To)
		}
	}
	return bw.Flush()
}

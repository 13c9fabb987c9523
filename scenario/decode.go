package scenario

import (
	"bytes"
	"encoding/json"
	"io"

	errors "gopkg.in/src-d/go-errors.v1"
	"gopkg.in/yaml.v3"
)

// ErrMalformedScenario is raised when a scenario file is neither valid
// YAML nor valid JSON, or decodes to a structurally incomplete Scenario.
var ErrMalformedScenario = errors.NewKind("malformed scenario file: %s")

// Decode reads a scenario from r. YAML is the primary format; JSON is a
// strict subset of YAML 1.2, so the same decoder path handles both,
// mirroring the teacher's Ontology model accepting either OBO or OWL
// through one struct.
func Decode(r io.Reader) (*Scenario, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrMalformedScenario.New(err.Error())
	}
	return decodeBytes(buf)
}

func decodeBytes(buf []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		// Fall back to strict JSON in case the input is JSON with
		// characters yaml.v3's KnownFields rejects as duplicate keys
		// under its own decode path (rare, but keeps JSON a true
		// first-class input rather than "YAML that happens to parse").
		var js Scenario
		if jerr := json.Unmarshal(buf, &js); jerr == nil {
			if verr := validateScenario(&js); verr != nil {
				return nil, verr
			}
			return &js, nil
		}
		return nil, ErrMalformedScenario.New(err.Error())
	}
	if err := validateScenario(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// validateScenario checks the cross-field invariants spec §7 requires be
// caught fast: an operation naming a premise only when Kind is subsumes,
// and vice versa.
func validateScenario(s *Scenario) error {
	if s.Operation.Kind == OpSubsumes && s.Operation.Premise == nil {
		return ErrMalformedScenario.New("operation kind subsumes requires a premise")
	}
	if s.Operation.Kind != OpSubsumes && s.Operation.Premise != nil {
		return ErrMalformedScenario.New("premise given for a non-subsumes operation")
	}
	switch s.Operation.Kind {
	case OpConsistent, OpConsistentWithT, OpConsistentWithObjAndT, OpSubsumes:
	default:
		return ErrMalformedScenario.New("unknown operation kind " + string(s.Operation.Kind))
	}
	return nil
}

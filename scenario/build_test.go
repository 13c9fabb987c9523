package scenario_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeadmin/alcq-tableau/reasoner"
	"github.com/nodeadmin/alcq-tableau/scenario"
)

const motherScenarioYAML = `
tbox:
  Woman:
    and:
      - atomic: Person
      - atomic: Female
  Mother:
    and:
      - atomic: Woman
      - exists:
          role: hasChild
          filler:
            atomic: Person
abox:
  concepts:
    - individual: mary
      concept:
        atomic: Woman
    - individual: mary
      concept:
        atomic: Mother
    - individual: tom
      concept:
        atomic: Person
  roles:
    - {role: hasChild, from: mary, to: tom}
una: false
operation:
  kind: consistent
`

func TestDecode_MotherScenario(t *testing.T) {
	s, err := scenario.Decode(strings.NewReader(motherScenarioYAML))
	require.NoError(t, err)
	assert.Len(t, s.ABox.Concepts, 3)
	assert.Len(t, s.ABox.Roles, 1)
	assert.Equal(t, scenario.OpConsistent, s.Operation.Kind)
}

func TestBuild_MotherScenarioIsConsistent(t *testing.T) {
	s, err := scenario.Decode(strings.NewReader(motherScenarioYAML))
	require.NoError(t, err)

	ab, op, err := scenario.Build(s)
	require.NoError(t, err)
	assert.Equal(t, scenario.OpConsistent, op.Kind)
	require.NotNil(t, ab)

	ok, _, err := reasoner.AboxConsistent(ab)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDecode_SubsumesRequiresPremise(t *testing.T) {
	const bad = `
abox: {}
operation:
  kind: subsumes
`
	_, err := scenario.Decode(strings.NewReader(bad))
	require.Error(t, err)
}

func TestDecode_UnknownOperationKindRejected(t *testing.T) {
	const bad = `
abox: {}
operation:
  kind: bogus
`
	_, err := scenario.Decode(strings.NewReader(bad))
	require.Error(t, err)
}

package schema_test

import (
	"testing"

	// Packages
	schema "github.com/mckinsey/ark-go/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_phase_001(t *testing.T) {
	// Known phases parse to themselves
	assert := assert.New(t)
	for _, phase := range []schema.Phase{
		schema.PhasePending, schema.PhaseRunning, schema.PhaseDone,
		schema.PhaseError, schema.PhaseCanceled,
	} {
		assert.Equal(phase, schema.ParsePhase(string(phase)))
	}
}

func Test_phase_002(t *testing.T) {
	// Unrecognised values map to unknown
	assert := assert.New(t)
	assert.Equal(schema.PhaseUnknown, schema.ParsePhase("migrating"))
	assert.Equal(schema.PhaseUnknown, schema.ParsePhase(""))
}

func Test_phase_003(t *testing.T) {
	// Terminal set is done, error, canceled and unknown
	assert := assert.New(t)
	assert.False(schema.PhasePending.Terminal())
	assert.False(schema.PhaseRunning.Terminal())
	assert.True(schema.PhaseDone.Terminal())
	assert.True(schema.PhaseError.Terminal())
	assert.True(schema.PhaseCanceled.Terminal())
	assert.True(schema.PhaseUnknown.Terminal())
}

func Test_phase_004(t *testing.T) {
	// A query without status has no phase
	assert := assert.New(t)
	query := schema.Query{Name: "chat-query-1"}
	assert.Equal(schema.PhaseUnknown, query.Phase())
	assert.True(query.IsChatQuery())
	assert.False(schema.Query{Name: "other-query-1"}.IsChatQuery())
}

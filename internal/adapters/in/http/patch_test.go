package http

import (
	"encoding/json"
	"testing"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredPatch(t *testing.T) {
	var body servers.DriverPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ana","cpf":null}`), &body))

	name := requiredPatch(body.Name)
	require.NotNil(t, name)
	assert.Equal(t, "Ana", *name)

	cpf := requiredPatch(body.Cpf)
	require.NotNil(t, cpf, "an explicit null reaches the required rule")
	assert.Empty(t, *cpf)

	assert.Nil(t, requiredPatch(body.CnhNumber))
}

func TestNullablePatch(t *testing.T) {
	var body servers.OrderPatch
	require.NoError(t, json.Unmarshal([]byte(`{"weight_kg":0,"notes":null}`), &body))

	weight := nullablePatch(body.WeightKg)
	require.True(t, weight.IsPresent())
	require.NotNil(t, weight.Value())
	assert.Equal(t, 0.0, *weight.Value())

	notes := nullablePatch(body.Notes)
	assert.True(t, notes.IsPresent())
	assert.True(t, notes.IsNull())

	assert.Equal(t, kernel.Absent[string](), nullablePatch(body.DriverId))
}

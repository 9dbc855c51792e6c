package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	var zero Optional[string]
	assert.False(t, zero.IsSet())
	assert.Equal(t, "fallback", zero.OrElse("fallback"))
	assert.Equal(t, NoneText, zero.String())

	v, ok := Some("daint:gpu").Get()
	assert.True(t, ok)
	assert.Equal(t, "daint:gpu", v)

	// An explicitly empty value is still present
	empty := Some("")
	assert.True(t, empty.IsSet())
	assert.Equal(t, "", empty.OrElse("fallback"))
}

func TestOptionalJSON(t *testing.T) {
	type payload struct {
		System Optional[string] `json:"system"`
		JobID  Optional[string] `json:"jobid"`
	}

	data, err := json.Marshal(payload{System: Some("daint:gpu")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"system": "daint:gpu", "jobid": null}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"system": null, "jobid": "42"}`), &decoded))
	assert.False(t, decoded.System.IsSet())
	assert.Equal(t, Some("42"), decoded.JobID)
}

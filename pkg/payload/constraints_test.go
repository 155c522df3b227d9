package payload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payloadkit/pkg/payload"
	"github.com/dmitrymomot/payloadkit/pkg/rule"
)

func TestDefaultPipelineIgnoresConstraints(t *testing.T) {
	t.Parallel()

	// type and allowed values are declared but only presence is checked by default
	raw := []byte(`{"name":42,"description":true,"team_type":"pirates","members":"nobody"}`)
	_, err := payload.Validate(raw, teamsRule())
	require.NoError(t, err)
}

func TestEnforceConstraints(t *testing.T) {
	t.Parallel()

	r := rule.Rule{
		Fields: map[string]rule.FieldSpec{
			"name":      {Required: true, Type: rule.TypeString},
			"team_type": {Type: rule.TypeString, AllowedValues: []any{"tech", "business"}},
			"size":      {Type: rule.TypeInteger},
			"score":     {Type: rule.TypeNumber, AllowedValues: []any{1, 2.5}},
			"active":    {Type: rule.TypeBoolean},
			"members":   {Type: rule.TypeList},
			"meta":      {Type: rule.TypeObject},
			"anything":  {},
			"tags":      {AllowedValues: []any{"a", "b"}},
		},
	}
	step := payload.EnforceConstraints(r)

	tests := []struct {
		name   string
		body   string
		detail string
	}{
		{name: "all valid", body: `{"name":"a","team_type":"tech","size":3,"score":2.5,"active":true,"members":[],"meta":{},"anything":null}`},
		{name: "absent optional fields skipped", body: `{"name":"a"}`},
		{name: "integer accepts integral float", body: `{"name":"a","size":3.0}`},
		{name: "number matches declared int", body: `{"name":"a","score":1}`},
		{name: "wrong string type", body: `{"name":1}`, detail: "name: must be of type string"},
		{name: "not in allowed values", body: `{"name":"a","team_type":"pirates"}`, detail: "team_type: must be one of: tech, business"},
		{name: "fractional integer", body: `{"name":"a","size":3.5}`, detail: "size: must be of type integer"},
		{name: "number not allowed", body: `{"name":"a","score":3}`, detail: "score: must be one of: 1, 2.5"},
		{name: "boolean", body: `{"name":"a","active":"yes"}`, detail: "active: must be of type boolean"},
		{name: "list", body: `{"name":"a","members":{}}`, detail: "members: must be of type list"},
		{name: "object", body: `{"name":"a","meta":[]}`, detail: "meta: must be of type object"},
		{name: "null on typed field", body: `{"name":null}`, detail: "name: must be of type string"},
		{name: "composite value never in allowed values", body: `{"name":"a","tags":["a"]}`, detail: "tags: must be one of: a, b"},
		{name: "null on untyped allowed field", body: `{"name":"a","tags":null}`, detail: "tags: must be one of: a, b"},
		{name: "first field in sorted order wins", body: `{"name":1,"active":"no"}`, detail: "active: must be of type boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := payload.Validate([]byte(tt.body), r, step)
			if tt.detail == "" {
				require.NoError(t, err)
				return
			}
			perr := requireKind(t, err, payload.KindCustom)
			assert.Equal(t, tt.detail, perr.Detail)
		})
	}
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGuidanceFromRaw_Object(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Replace the filter","steps":["buy filter","swap it"]}`)

	g, err := GuidanceFromRaw(raw)
	assert.NoError(t, err)
	assert.Equal(t, "Replace the filter", g.Summary)
	assert.Len(t, g.Steps, 2)
}

func TestGuidanceFromRaw_EncodedString(t *testing.T) {
	raw := json.RawMessage(`"{\"summary\":\"Replace the filter\",\"risks\":[\"mold\"]}"`)

	g, err := GuidanceFromRaw(raw)
	assert.NoError(t, err)
	assert.Equal(t, "Replace the filter", g.Summary)
	assert.Equal(t, []string{"mold"}, g.Risks)
}

func TestGuidanceFromRaw_Invalid(t *testing.T) {
	_, err := GuidanceFromRaw(json.RawMessage(`"not json at all"`))
	assert.Error(t, err)

	_, err = GuidanceFromRaw(nil)
	assert.Error(t, err)
}

func TestProject_Remaining(t *testing.T) {
	p := &Project{
		Budget: decimal.RequireFromString("12500.50"),
		Spent:  decimal.RequireFromString("4300.25"),
	}
	assert.True(t, p.Remaining().Equal(decimal.RequireFromString("8200.25")))
}

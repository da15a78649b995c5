package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

func TestClassifyTopLevel(t *testing.T) {
	sub := domain.Subcategory{ID: 5, Name: "Aviator"}
	c := Classify(sub)
	assert.True(t, c.TopLevel)
	assert.Zero(t, c.ParentID)
}

func TestClassifyAliasOrder(t *testing.T) {
	cases := []struct {
		name string
		sub  domain.Subcategory
		want int64
	}{
		{"snake", domain.Subcategory{ParentID: 7}, 7},
		{"camel", domain.Subcategory{ParentIDCamel: 8}, 8},
		{"long snake", domain.Subcategory{ParentSubcategoryID: 9}, 9},
		{"long camel", domain.Subcategory{ParentSubcatCamel: 11}, 11},
		{"snake wins over camel", domain.Subcategory{ParentID: 7, ParentIDCamel: 8}, 7},
		{"camel wins over long forms", domain.Subcategory{ParentIDCamel: 8, ParentSubcategoryID: 9}, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Classify(tc.sub)
			assert.False(t, c.TopLevel)
			assert.Equal(t, tc.want, c.ParentID)
		})
	}
}

// The backend serializes parent references inconsistently; classification
// must treat a string "3", a number 3 and a null identically to how each
// field would parse on its own.
func TestClassifyFromWirePayloads(t *testing.T) {
	cases := []struct {
		name     string
		payload  string
		topLevel bool
		parentID int64
	}{
		{"string parent_id", `{"id": 1, "parent_id": "3"}`, false, 3},
		{"numeric parentId", `{"id": 1, "parentId": 4}`, false, 4},
		{"null aliases", `{"id": 1, "parent_id": null, "parentId": null}`, true, 0},
		{"empty string", `{"id": 1, "parent_subcategory_id": ""}`, true, 0},
		{"zero is absent", `{"id": 1, "parent_id": 0}`, true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sub domain.Subcategory
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &sub))
			c := Classify(sub)
			assert.Equal(t, tc.topLevel, c.TopLevel)
			assert.Equal(t, tc.parentID, c.ParentID)
		})
	}
}

package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesFlatList(t *testing.T) {
	h := newHarness(t, catalogUpstream(t, nil))
	req := httptest.NewRequest(http.MethodGet, "/console/categories", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(h.login(t))
	resp, body := h.do(t, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	require.Len(t, out.Categories, 2)
	assert.Equal(t, "Sun Glasses", out.Categories[0].Name)
}

// ?tree=1 nests each category's subcategories and their children; a
// subcategory with a parent reference lands under that parent, not at the
// top of the branch.
func TestCategoriesTree(t *testing.T) {
	upstream := func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/categories":
			w.Write([]byte(`{"categories":[{"id":10,"name":"Sun Glasses","slug":"sun-glasses"}]}`))
		case "/categories/10/subcategories":
			// nested child already present in the flat list, parent aliased camelCase
			w.Write([]byte(`{"subcategories":[
				{"id":20,"category_id":10,"name":"Aviator"},
				{"id":21,"category_id":10,"parentId":"20","name":"Aviator Mini"}
			]}`))
		default:
			t.Errorf("unexpected upstream call %s", r.URL.Path)
		}
	}
	h := newHarness(t, upstream)

	req := httptest.NewRequest(http.MethodGet, "/console/categories?tree=1", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(h.login(t))
	resp, body := h.do(t, req)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	var out struct {
		Categories []struct {
			ID            int64 `json:"id"`
			Subcategories []struct {
				ID       int64 `json:"id"`
				Children []struct {
					ID int64 `json:"id"`
				} `json:"children"`
			} `json:"subcategories"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	require.Len(t, out.Categories, 1)
	require.Len(t, out.Categories[0].Subcategories, 1)
	assert.EqualValues(t, 20, out.Categories[0].Subcategories[0].ID)
	require.Len(t, out.Categories[0].Subcategories[0].Children, 1)
	assert.EqualValues(t, 21, out.Categories[0].Subcategories[0].Children[0].ID)
}

func TestCategoryCreateDefaultsSlug(t *testing.T) {
	var gotBody string
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/categories", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{"category":{"id":11,"name":"Eye Hygiene","slug":"eye-hygiene"}}`))
	})

	create := httptest.NewRequest(http.MethodPost, "/console/categories",
		strings.NewReader(`{"name":"Eye Hygiene"}`))
	create.Header.Set("Content-Type", "application/json")
	create.Header.Set("Accept", "application/json")
	create.AddCookie(h.login(t))

	resp, body := h.do(t, create)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	assert.Contains(t, gotBody, `"slug":"eye-hygiene"`)
}

func TestSubcategoryCreateRequiresCategory(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called")
	})
	req := httptest.NewRequest(http.MethodPost, "/console/subcategories",
		strings.NewReader(`{"name":"Aviator"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.AddCookie(h.login(t))
	resp, _ := h.do(t, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

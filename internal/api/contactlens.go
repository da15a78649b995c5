package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

// Contact-lens configurator administration.

func (c *Client) ListContactLensConfigs(ctx context.Context, q ListQuery) ([]domain.ContactLensConfig, int, error) {
	raw, err := c.get(ctx, "/admin/contact-lens-configs", q.Values())
	if err != nil {
		return nil, 0, err
	}
	out := []domain.ContactLensConfig{}
	decodeList(raw, &out, "configs", "contact_lens_configs")
	pages, _ := findInt(raw, "pages", "totalPages", "total_pages")
	return out, pages, nil
}

type ContactLensConfigInput struct {
	Name          string `json:"name"`
	CategoryID    int64  `json:"category_id"`
	SubCategoryID int64  `json:"sub_category_id,omitempty"`
	LensKind      string `json:"lens_kind"`
	PowersFrom    string `json:"powers_from"`
	PowersTo      string `json:"powers_to"`
	PowerStep     string `json:"power_step"`
	Active        bool   `json:"is_active"`
}

func (c *Client) CreateContactLensConfig(ctx context.Context, in ContactLensConfigInput) (domain.ContactLensConfig, error) {
	raw, err := c.sendJSON(ctx, http.MethodPost, "/admin/contact-lens-configs", in)
	if err != nil {
		return domain.ContactLensConfig{}, err
	}
	var out domain.ContactLensConfig
	err = decodeRecord(raw, &out, "config")
	return out, err
}

func (c *Client) UpdateContactLensConfig(ctx context.Context, id int64, in ContactLensConfigInput) (domain.ContactLensConfig, error) {
	raw, err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/admin/contact-lens-configs/%d", id), in)
	if err != nil {
		return domain.ContactLensConfig{}, err
	}
	var out domain.ContactLensConfig
	err = decodeRecord(raw, &out, "config")
	return out, err
}

func (c *Client) DeleteContactLensConfig(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/contact-lens-configs/%d", id))
}

// Prescription form definitions: kind is "spherical" or "astigmatism".

func (c *Client) GetContactLensForm(ctx context.Context, kind string) (domain.ContactLensForm, error) {
	raw, err := c.get(ctx, "/admin/contact-lens-forms/"+kind, nil)
	if err != nil {
		return domain.ContactLensForm{}, err
	}
	var out domain.ContactLensForm
	err = decodeRecord(raw, &out, "form")
	return out, err
}

func (c *Client) UpdateContactLensForm(ctx context.Context, kind string, in domain.ContactLensForm) (domain.ContactLensForm, error) {
	raw, err := c.sendJSON(ctx, http.MethodPut, "/admin/contact-lens-forms/"+kind, in)
	if err != nil {
		return domain.ContactLensForm{}, err
	}
	var out domain.ContactLensForm
	err = decodeRecord(raw, &out, "form")
	return out, err
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

func (c *Client) ListBanners(ctx context.Context, q ListQuery) ([]domain.Banner, int, error) {
	raw, err := c.get(ctx, "/admin/banners", q.Values())
	if err != nil {
		return nil, 0, err
	}
	out := []domain.Banner{}
	decodeList(raw, &out, "banners")
	pages, _ := findInt(raw, "pages", "totalPages", "total_pages")
	return out, pages, nil
}

// BannerInput carries writable banner fields; Image, when non-nil, switches
// the request to multipart.
type BannerInput struct {
	Title    string
	Subtitle string
	LinkURL  string
	Position int
	Active   bool
	Image    *Upload
}

func (in BannerInput) fields() map[string]string {
	return map[string]string{
		"title":     in.Title,
		"subtitle":  in.Subtitle,
		"link_url":  in.LinkURL,
		"position":  strconv.Itoa(in.Position),
		"is_active": boolField(in.Active),
	}
}

func (c *Client) CreateBanner(ctx context.Context, in BannerInput) (domain.Banner, error) {
	return c.saveBanner(ctx, http.MethodPost, "/admin/banners", in)
}

func (c *Client) UpdateBanner(ctx context.Context, id int64, in BannerInput) (domain.Banner, error) {
	return c.saveBanner(ctx, http.MethodPut, fmt.Sprintf("/admin/banners/%d", id), in)
}

func (c *Client) saveBanner(ctx context.Context, method, path string, in BannerInput) (domain.Banner, error) {
	var files []Upload
	if in.Image != nil {
		files = []Upload{*in.Image}
	}
	raw, err := c.sendMultipart(ctx, method, path, in.fields(), files)
	if err != nil {
		return domain.Banner{}, err
	}
	var out domain.Banner
	err = decodeRecord(raw, &out, "banner")
	return out, err
}

func (c *Client) DeleteBanner(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/banners/%d", id))
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

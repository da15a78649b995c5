package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

// Blog posts.

type BlogPostInput struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Excerpt    string `json:"excerpt"`
	Body       string `json:"body"`
	CoverImage string `json:"cover_image,omitempty"`
	Author     string `json:"author"`
	Published  bool   `json:"is_published"`
}

func (c *Client) ListBlogPosts(ctx context.Context, q ListQuery) ([]domain.BlogPost, int, error) {
	raw, err := c.get(ctx, "/admin/blog-posts", q.Values())
	if err != nil {
		return nil, 0, err
	}
	out := []domain.BlogPost{}
	decodeList(raw, &out, "blog_posts", "blogPosts", "posts")
	pages, _ := findInt(raw, "pages", "totalPages", "total_pages")
	return out, pages, nil
}

func (c *Client) CreateBlogPost(ctx context.Context, in BlogPostInput) (domain.BlogPost, error) {
	raw, err := c.sendJSON(ctx, http.MethodPost, "/admin/blog-posts", in)
	if err != nil {
		return domain.BlogPost{}, err
	}
	var out domain.BlogPost
	err = decodeRecord(raw, &out, "blog_post", "post")
	return out, err
}

func (c *Client) UpdateBlogPost(ctx context.Context, id int64, in BlogPostInput) (domain.BlogPost, error) {
	raw, err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/admin/blog-posts/%d", id), in)
	if err != nil {
		return domain.BlogPost{}, err
	}
	var out domain.BlogPost
	err = decodeRecord(raw, &out, "blog_post", "post")
	return out, err
}

func (c *Client) DeleteBlogPost(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/blog-posts/%d", id))
}

// FAQs.

type FAQInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
	Active   bool   `json:"is_active"`
}

func (c *Client) ListFAQs(ctx context.Context, q ListQuery) ([]domain.FAQ, int, error) {
	raw, err := c.get(ctx, "/admin/faqs", q.Values())
	if err != nil {
		return nil, 0, err
	}
	out := []domain.FAQ{}
	decodeList(raw, &out, "faqs")
	pages, _ := findInt(raw, "pages", "totalPages", "total_pages")
	return out, pages, nil
}

func (c *Client) CreateFAQ(ctx context.Context, in FAQInput) (domain.FAQ, error) {
	raw, err := c.sendJSON(ctx, http.MethodPost, "/admin/faqs", in)
	if err != nil {
		return domain.FAQ{}, err
	}
	var out domain.FAQ
	err = decodeRecord(raw, &out, "faq")
	return out, err
}

func (c *Client) UpdateFAQ(ctx context.Context, id int64, in FAQInput) (domain.FAQ, error) {
	raw, err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/admin/faqs/%d", id), in)
	if err != nil {
		return domain.FAQ{}, err
	}
	var out domain.FAQ
	err = decodeRecord(raw, &out, "faq")
	return out, err
}

func (c *Client) DeleteFAQ(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/faqs/%d", id))
}

// Static pages.

type PageInput struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Body    string `json:"body"`
	MetaTag string `json:"meta_tag,omitempty"`
	Active  bool   `json:"is_active"`
}

func (c *Client) ListPages(ctx context.Context, q ListQuery) ([]domain.Page, int, error) {
	raw, err := c.get(ctx, "/admin/pages", q.Values())
	if err != nil {
		return nil, 0, err
	}
	out := []domain.Page{}
	decodeList(raw, &out, "pages_list", "pages")
	pages, _ := findInt(raw, "total_pages", "totalPages")
	return out, pages, nil
}

func (c *Client) CreatePage(ctx context.Context, in PageInput) (domain.Page, error) {
	raw, err := c.sendJSON(ctx, http.MethodPost, "/admin/pages", in)
	if err != nil {
		return domain.Page{}, err
	}
	var out domain.Page
	err = decodeRecord(raw, &out, "page")
	return out, err
}

func (c *Client) UpdatePage(ctx context.Context, id int64, in PageInput) (domain.Page, error) {
	raw, err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/admin/pages/%d", id), in)
	if err != nil {
		return domain.Page{}, err
	}
	var out domain.Page
	err = decodeRecord(raw, &out, "page")
	return out, err
}

func (c *Client) DeletePage(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/pages/%d", id))
}

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

// MeCache short-circuits repeated /auth/me calls; the backend rate-limits
// that endpoint, so verified results are reused for ten minutes.
type MeCache interface {
	Get() (domain.Profile, bool)
	Put(domain.Profile)
}

// MeCacheTTL is how long a cached auth-check result stays valid.
const MeCacheTTL = 10 * time.Minute

type loginResult struct {
	Token string         `json:"token"`
	User  domain.Profile `json:"user"`
}

// Login exchanges credentials for an admin bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, domain.Profile, error) {
	raw, err := c.sendJSON(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", domain.Profile{}, err
	}
	var res loginResult
	if derr := decodeRecord(raw, &res, "data"); derr != nil {
		return "", domain.Profile{}, derr
	}
	return res.Token, res.User, nil
}

// Me verifies the current token against /auth/me, consulting the cache first.
func (c *Client) Me(ctx context.Context) (domain.Profile, error) {
	if c.me != nil {
		if p, ok := c.me.Get(); ok {
			return p, nil
		}
	}
	raw, err := c.get(ctx, "/auth/me", nil)
	if err != nil {
		return domain.Profile{}, err
	}
	var p domain.Profile
	if derr := decodeRecord(raw, &p, "user", "profile"); derr != nil {
		return domain.Profile{}, derr
	}
	if c.me != nil {
		c.me.Put(p)
	}
	return p, nil
}

// TokenExpiry reads the exp claim out of a bearer token without verifying the
// signature (the backend owns verification; the console only wants to know
// when to prompt for a fresh login).
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

package state

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

const (
	keyToken   = "auth.token"
	keyMeCache = "auth.me"
	keyPage    = "page."    // + screen name
	keySession = "session." // + sid
)

// Console layers typed accessors over a raw Store.
type Console struct {
	S Store
}

func NewConsole(s Store) *Console { return &Console{S: s} }

// Token implements api.TokenSource.
func (c *Console) Token() string {
	v, ok, err := c.S.Get(keyToken)
	if err != nil || !ok {
		return ""
	}
	return v
}

func (c *Console) SetToken(token string) error { return c.S.Set(keyToken, token) }

func (c *Console) ClearToken() error {
	_ = c.S.Delete(keyMeCache)
	return c.S.Delete(keyToken)
}

// PageState is one screen's persisted UI state. TableVersion pins the
// section pattern table the state was saved under; stale state is discarded.
type PageState struct {
	Section       string `json:"section"`
	CategoryID    int64  `json:"category_id,omitempty"`
	SubCategoryID int64  `json:"sub_category_id,omitempty"`
	Search        string `json:"search,omitempty"`
	Page          int    `json:"page,omitempty"`
	TableVersion  int    `json:"table_version"`
}

func (c *Console) PageState(screen string) (PageState, bool) {
	v, ok, err := c.S.Get(keyPage + screen)
	if err != nil || !ok {
		return PageState{}, false
	}
	var st PageState
	if json.Unmarshal([]byte(v), &st) != nil {
		return PageState{}, false
	}
	return st, true
}

func (c *Console) SavePageState(screen string, st PageState) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return c.S.Set(keyPage+screen, string(b))
}

// MeCache implements api.MeCache on the store with the client's TTL.
type MeCache struct {
	S Store
}

func (m MeCache) Get() (domain.Profile, bool) {
	v, ok, err := m.S.Get(keyMeCache)
	if err != nil || !ok {
		return domain.Profile{}, false
	}
	var p domain.Profile
	if json.Unmarshal([]byte(v), &p) != nil {
		return domain.Profile{}, false
	}
	return p, true
}

func (m MeCache) Put(p domain.Profile) {
	b, err := json.Marshal(p)
	if err != nil {
		return
	}
	_ = m.S.SetTTL(keyMeCache, string(b), api.MeCacheTTL)
}

// Console login sessions (sid cookie).

func (c *Console) CreateSession(ttl time.Duration) (string, error) {
	sid := uuid.NewString()
	if err := c.S.SetTTL(keySession+sid, time.Now().UTC().Format(time.RFC3339), ttl); err != nil {
		return "", err
	}
	return sid, nil
}

func (c *Console) SessionValid(sid string) bool {
	if sid == "" {
		return false
	}
	_, ok, err := c.S.Get(keySession + sid)
	return err == nil && ok
}

func (c *Console) DeleteSession(sid string) error {
	return c.S.Delete(keySession + sid)
}

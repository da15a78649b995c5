package handlers

import (
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/catalog"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/config"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/state"
)

type Deps struct {
	AuthHandler         *AuthHandler
	DashboardHandler    *DashboardHandler
	ProductsHandler     *ProductsHandler
	CategoriesHandler   *CategoriesHandler
	BannersHandler      *BannersHandler
	BlogHandler         *BlogHandler
	FAQsHandler         *FAQsHandler
	PagesHandler        *PagesHandler
	TestimonialsHandler *TestimonialsHandler
	OrdersHandler       *OrdersHandler
	UsersHandler        *UsersHandler
	RequestsHandler     *RequestsHandler
	ContactLensHandler  *ContactLensHandler
}

func NewDeps(client *api.Client, console *state.Console, cfg config.Config) *Deps {
	resolver := &catalog.Resolver{
		Query: &catalog.QueryBuilder{
			Products: client,
			Subs:     &catalog.Aggregator{Fetch: client},
		},
	}

	return &Deps{
		AuthHandler:         &AuthHandler{Client: client, Console: console, Cfg: cfg},
		DashboardHandler:    &DashboardHandler{Client: client, Console: console},
		ProductsHandler:     &ProductsHandler{Client: client, Console: console, Resolver: resolver},
		CategoriesHandler:   &CategoriesHandler{Client: client},
		BannersHandler:      &BannersHandler{Client: client},
		BlogHandler:         &BlogHandler{Client: client},
		FAQsHandler:         &FAQsHandler{Client: client},
		PagesHandler:        &PagesHandler{Client: client},
		TestimonialsHandler: &TestimonialsHandler{Client: client},
		OrdersHandler:       &OrdersHandler{Client: client},
		UsersHandler:        &UsersHandler{Client: client},
		RequestsHandler:     &RequestsHandler{Client: client},
		ContactLensHandler:  &ContactLensHandler{Client: client},
	}
}

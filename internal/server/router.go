package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	catalogctrl "storefront/internal/catalog/controller"
	orderctrl "storefront/internal/order/controller"
)

func NewCatalogRouter(products *catalogctrl.ProductController) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", products.GetProducts)
		r.Get("/{id}", products.GetProductByID)
	})

	return r
}

func NewOrderRouter(orders *orderctrl.OrderController) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orders.PlaceOrder)
		r.Get("/", orders.GetOrders)
		r.Get("/{orderId}", orders.GetOrderByID)
	})

	return r
}

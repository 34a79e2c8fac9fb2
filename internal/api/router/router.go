package router

import (
	"github.com/RoyceAzure/lab/schoolshop/internal/api"
	m "github.com/RoyceAzure/lab/schoolshop/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Post("/session", server.CartHandler.BeginSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", server.CartHandler.GetCart)
				r.Delete("/", server.CartHandler.ClearCart)
				r.Post("/items", server.CartHandler.AddItem)
				r.Patch("/items", server.CartHandler.UpdateQuantity)
				r.Delete("/items", server.CartHandler.RemoveItem)
				r.Post("/checkout", server.CartHandler.Checkout)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", server.OrderHandler.GetOrders)
			r.Get("/overview", server.OrderHandler.GetProductOverview)
			r.Get("/overview/schools", server.OrderHandler.GetSchoolFilterValues)
			r.Route("/{orderID}", func(r chi.Router) {
				r.Get("/", server.OrderHandler.GetOrder)
				r.Delete("/", server.OrderHandler.DeleteOrder)
				r.Put("/items", server.OrderHandler.UpdateLineItems)
				r.Patch("/status", server.OrderHandler.UpdateStatus)
			})
		})

		r.Route("/schools", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.GetSchools)
			r.Post("/", server.CatalogHandler.CreateSchool)
			r.Route("/{schoolID}", func(r chi.Router) {
				r.Get("/", server.CatalogHandler.GetSchool)
				r.Put("/", server.CatalogHandler.UpdateSchool)
				r.Delete("/", server.CatalogHandler.DeleteSchool)
				r.Get("/products", server.CatalogHandler.GetSchoolProducts)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.GetProducts)
			r.Post("/", server.CatalogHandler.CreateProduct)
			r.Route("/{productID}", func(r chi.Router) {
				r.Get("/", server.CatalogHandler.GetProduct)
				r.Put("/", server.CatalogHandler.UpdateProduct)
				r.Delete("/", server.CatalogHandler.DeleteProduct)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.GetCategories)
			r.Post("/", server.CatalogHandler.CreateCategory)
			r.Delete("/{categoryID}", server.CatalogHandler.DeleteCategory)
		})

		r.Route("/sizes", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.GetSizes)
			r.Post("/", server.CatalogHandler.CreateSize)
			r.Delete("/{sizeID}", server.CatalogHandler.DeleteSize)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.GetUsers)
			r.Post("/", server.CatalogHandler.CreateUser)
			r.Put("/{userID}", server.CatalogHandler.UpdateUser)
			r.Delete("/{userID}", server.CatalogHandler.DeleteUser)
		})
	})

	return r
}

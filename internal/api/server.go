package api

import (
	"github.com/RoyceAzure/lab/schoolshop/internal/api/handler"
)

type Server struct {
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	CatalogHandler *handler.CatalogHandler
}

func NewServer(cartHandler *handler.CartHandler, orderHandler *handler.OrderHandler, catalogHandler *handler.CatalogHandler) *Server {
	return &Server{
		CartHandler:    cartHandler,
		OrderHandler:   orderHandler,
		CatalogHandler: catalogHandler,
	}
}

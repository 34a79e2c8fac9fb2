package dto

import (
	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/RoyceAzure/lab/schoolshop/internal/service"
)

type CheckoutRequest struct {
	CustomerName string `json:"customer_name"`
	ParentName   string `json:"parent_name"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	School       string `json:"school"`
}

func (r CheckoutRequest) ToCheckoutInfo() service.CheckoutInfo {
	return service.CheckoutInfo{
		CustomerName: r.CustomerName,
		ParentName:   r.ParentName,
		Phone:        r.Phone,
		Street:       r.Street,
		City:         r.City,
		PostalCode:   r.PostalCode,
		School:       r.School,
	}
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

type UpdateOrderLineItemsRequest struct {
	LineItems []model.OrderLineItem `json:"line_items"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

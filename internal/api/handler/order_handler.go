package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/schoolshop/internal/api/dto"
	"github.com/RoyceAzure/lab/schoolshop/internal/overview"
	"github.com/RoyceAzure/lab/schoolshop/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderService    service.IOrderService
	overviewService service.IOverviewService
}

func NewOrderHandler(orderService service.IOrderService, overviewService service.IOverviewService) *OrderHandler {
	return &OrderHandler{orderService: orderService, overviewService: overviewService}
}

// GetOrders GET /api/v1/orders?school=
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	school := r.URL.Query().Get("school")

	if school != "" && school != overview.AllSchools {
		orders, err := h.orderService.GetOrdersBySchool(r.Context(), school)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, orders)
		return
	}

	orders, err := h.orderService.GetAllOrders(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrder GET /api/v1/orders/{orderID}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetOrder(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// UpdateLineItems PUT /api/v1/orders/{orderID}/items
func (h *OrderHandler) UpdateLineItems(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateOrderLineItemsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	order, err := h.orderService.UpdateOrderLineItems(r.Context(), chi.URLParam(r, "orderID"), req.LineItems)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus PATCH /api/v1/orders/{orderID}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateOrderStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.orderService.UpdateOrderStatus(r.Context(), chi.URLParam(r, "orderID"), req.Status); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteOrder DELETE /api/v1/orders/{orderID}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.DeleteOrder(r.Context(), chi.URLParam(r, "orderID")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetProductOverview GET /api/v1/orders/overview?school=&q=&sort=&dir=
// 後台生產計畫檢視，每個商品的尺寸數量彙總
func (h *OrderHandler) GetProductOverview(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	school := query.Get("school")
	if school == "" {
		school = overview.AllSchools
	}

	var sortCfg *overview.SortConfig
	if field, ok := parseSortField(query.Get("sort")); ok {
		direction := overview.Ascending
		if query.Get("dir") == "desc" {
			direction = overview.Descending
		}
		sortCfg = &overview.SortConfig{Field: field, Direction: direction}
	}

	aggregates, err := h.overviewService.GetProductOverview(r.Context(), school, query.Get("q"), sortCfg)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, aggregates)
}

// GetSchoolFilterValues GET /api/v1/orders/overview/schools
func (h *OrderHandler) GetSchoolFilterValues(w http.ResponseWriter, r *http.Request) {
	schools, err := h.overviewService.GetSchoolFilterValues(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, schools)
}

func parseSortField(s string) (overview.SortField, bool) {
	switch s {
	case "name":
		return overview.SortByProductName, true
	case "school":
		return overview.SortBySchool, true
	case "categories":
		return overview.SortByCategories, true
	case "sizes":
		return overview.SortBySizes, true
	case "total":
		return overview.SortByTotalQuantity, true
	default:
		return 0, false
	}
}

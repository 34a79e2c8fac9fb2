package handler

import (
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/schoolshop/internal/api/dto"
	"github.com/RoyceAzure/lab/schoolshop/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var errInvalidSessionID = errors.New("invalid session id")

type CartHandler struct {
	cartService  service.ICartService
	orderService service.IOrderService
}

func NewCartHandler(cartService service.ICartService, orderService service.IOrderService) *CartHandler {
	return &CartHandler{cartService: cartService, orderService: orderService}
}

func sessionIDFromPath(r *http.Request) (uuid.UUID, error) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		return uuid.UUID{}, errInvalidSessionID
	}
	return sessionID, nil
}

// BeginSession POST /api/v1/cart/session
func (h *CartHandler) BeginSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.cartService.BeginSession(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.BeginSessionResponse{SessionID: sessionID.String()})
}

// GetCart GET /api/v1/cart/{sessionID}
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	items, err := h.cartService.GetItems(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	count, err := h.cartService.GetTotalItemCount(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	subtotal, err := h.cartService.GetSubtotal(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CartResponse{
		SessionID:      sessionID.String(),
		Items:          items,
		TotalItemCount: count,
		Subtotal:       subtotal,
	})
}

// AddItem POST /api/v1/cart/{sessionID}/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req dto.AddItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.cartService.AddItem(r.Context(), sessionID, req.ToCartItem()); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateQuantity PATCH /api/v1/cart/{sessionID}/items
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req dto.UpdateQuantityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.cartService.UpdateQuantity(r.Context(), sessionID, req.ProductID, req.VariantKey, req.Delta); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveItem DELETE /api/v1/cart/{sessionID}/items?product_id=&variant_key=
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	productID := r.URL.Query().Get("product_id")
	variantKey := r.URL.Query().Get("variant_key")
	if err := h.cartService.RemoveItem(r.Context(), sessionID, productID, variantKey); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearCart DELETE /api/v1/cart/{sessionID}
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.cartService.ClearCart(r.Context(), sessionID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Checkout POST /api/v1/cart/{sessionID}/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req dto.CheckoutRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	order, err := h.orderService.Checkout(r.Context(), sessionID, req.ToCheckoutInfo())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

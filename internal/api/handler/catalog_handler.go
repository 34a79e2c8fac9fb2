package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/RoyceAzure/lab/schoolshop/internal/service"
	"github.com/go-chi/chi/v5"
)

var errInvalidID = errors.New("invalid id")

type CatalogHandler struct {
	catalogService service.ICatalogService
	userService    service.IUserService
}

func NewCatalogHandler(catalogService service.ICatalogService, userService service.IUserService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, userService: userService}
}

func idFromPath(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// ---- schools ----

func (h *CatalogHandler) GetSchools(w http.ResponseWriter, r *http.Request) {
	schools, err := h.catalogService.GetSchools(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, schools)
}

func (h *CatalogHandler) GetSchool(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, "schoolID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	school, err := h.catalogService.GetSchool(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, school)
}

func (h *CatalogHandler) CreateSchool(w http.ResponseWriter, r *http.Request) {
	var school model.School
	if err := decodeBody(r, &school); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.catalogService.CreateSchool(r.Context(), &school); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, school)
}

func (h *CatalogHandler) UpdateSchool(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, "schoolID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var school model.School
	if err := decodeBody(r, &school); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	school.SchoolID = id
	if err := h.catalogService.UpdateSchool(r.Context(), &school); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, school)
}

func (h *CatalogHandler) DeleteSchool(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, "schoolID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.catalogService.DeleteSchool(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSchoolProducts GET /api/v1/schools/{schoolID}/products 商店頁
func (h *CatalogHandler) GetSchoolProducts(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, "schoolID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	products, err := h.catalogService.GetProductsBySchool(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// ---- products ----

func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.GetProducts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, "productID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := decodeBody(r, &product); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.catalogService.CreateProduct(r.Context(), &product); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, "productID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var product model.Product
	if err := decodeBody(r, &product); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	product.ProductID = id
	if err := h.catalogService.UpdateProduct(r.Context(), &product); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, "productID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.catalogService.DeleteProduct(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- master data ----

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.GetCategories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category model.Category
	if err := decodeBody(r, &category); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.catalogService.CreateCategory(r.Context(), &category); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, "categoryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.catalogService.DeleteCategory(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) GetSizes(w http.ResponseWriter, r *http.Request) {
	sizes, err := h.catalogService.GetSizes(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sizes)
}

func (h *CatalogHandler) CreateSize(w http.ResponseWriter, r *http.Request) {
	var size model.Size
	if err := decodeBody(r, &size); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.catalogService.CreateSize(r.Context(), &size); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, size)
}

func (h *CatalogHandler) DeleteSize(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, "sizeID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.catalogService.DeleteSize(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- users ----

func (h *CatalogHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *CatalogHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := decodeBody(r, &user); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.userService.CreateUser(r.Context(), &user); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *CatalogHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var user model.User
	if err := decodeBody(r, &user); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	user.UserID = id
	if err := h.userService.UpdateUser(r.Context(), &user); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *CatalogHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

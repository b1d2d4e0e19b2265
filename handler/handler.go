package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"shopping-cart/service"
	"shopping-cart/store"
)

// Handler is the HTTP layer that talks to service.Service
type Handler struct {
	svc service.ServiceInterface
}

// NewHandler returns a Handler instance
func NewHandler(s service.ServiceInterface) *Handler {
	return &Handler{svc: s}
}

// RegisterRoutes registers all routes on the provided router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	// Products
	r.HandleFunc("/products", h.CreateProduct).Methods("POST")
	r.HandleFunc("/products/list", h.ListProducts).Methods("GET")
	r.HandleFunc("/products/stock", h.UpdateStock).Methods("POST")

	// Cart
	r.HandleFunc("/cart/add", h.AddToCart).Methods("POST")
	r.HandleFunc("/cart/remove", h.RemoveFromCart).Methods("POST")
	r.HandleFunc("/cart/list", h.ListCart).Methods("GET")
	r.HandleFunc("/cart/clear", h.ClearCart).Methods("POST")
}

// --- request / response shapes ---
type createProductReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

type updateStockReq struct {
	ProductID int64 `json:"product_id"`
	NewStock  int   `json:"new_stock"`
}

type addRemoveCartReq struct {
	UserID    string `json:"user_id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity,omitempty"` // optional for remove: 0 drops the line
}

type userReq struct {
	UserID string `json:"user_id"`
}

// --- helpers ---
func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeSvcErr maps service and store errors to status codes.
func writeSvcErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrUserRequired),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrNegativePrice),
		errors.Is(err, store.ErrNegativeStock):
		writeErr(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, sql.ErrNoRows):
		writeErr(w, http.StatusNotFound, "product not found")
	case errors.Is(err, store.ErrInsufficientStock):
		writeErr(w, http.StatusConflict, err.Error())
	default:
		logFrom(r).WithError(err).Error("request failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
	}
}

// --- Handler ---

// CreateProduct handles POST /products
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	id, err := h.svc.CreateProduct(req.Name, req.Description, req.Price, req.Stock)
	if err != nil {
		writeSvcErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// ListProducts handles GET /products/list
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ps, err := h.svc.ListProducts()
	if err != nil {
		writeSvcErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

// UpdateStock handles POST /products/stock
// body: { "product_id": 1, "new_stock": 10 }
func (h *Handler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req updateStockReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductID == 0 {
		writeErr(w, http.StatusBadRequest, "product_id required")
		return
	}
	if err := h.svc.UpdateStock(req.ProductID, req.NewStock); err != nil {
		writeSvcErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AddToCart handles POST /cart/add
// body: { "user_id": "...", "product_id": 1, "quantity": 2 }
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addRemoveCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.svc.AddToCart(req.UserID, req.ProductID, req.Quantity); err != nil {
		writeSvcErr(w, r, err)
		return
	}
	logFrom(r).WithField("user_id", req.UserID).WithField("product_id", req.ProductID).Debug("item added")
	writeJSON(w, http.StatusOK, map[string]string{"status": "added"})
}

// RemoveFromCart handles POST /cart/remove
// body: { "user_id": "...", "product_id": 1, "quantity": 1 }
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	var req addRemoveCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.svc.RemoveFromCart(req.UserID, req.ProductID, req.Quantity); err != nil {
		writeSvcErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// ListCart handles GET /cart/list?user_id=...
func (h *Handler) ListCart(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	items, err := h.svc.GetCart(userID)
	if err != nil {
		writeSvcErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"user_id": userID, "items": items})
}

// ClearCart handles POST /cart/clear
// body: { "user_id": "..." }
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	var req userReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.svc.ClearCart(req.UserID); err != nil {
		writeSvcErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

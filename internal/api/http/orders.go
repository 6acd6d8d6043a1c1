package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"orderflow/internal/domain"
	"orderflow/internal/order"
)

type OrderHandler struct {
	Orders order.ServiceInterface
}

func NewOrderHandler(orders order.ServiceInterface) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

func (h *OrderHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/restaurants/{restaurantId}/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders/status", h.bulkUpdateStatus).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders/{orderId}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders/{orderId}/status", h.transition).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders/{orderId}/history", h.getHistory).Methods("GET")
}

func (h *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	var payload struct {
		TableID int               `json:"table_id"`
		Notes   string            `json:"notes"`
		Items   []domain.CartItem `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.Orders.Create(r.Context(), restaurantID, payload.TableID, payload.Items, payload.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])

	found, err := h.Orders.Get(r.Context(), restaurantID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	var status *domain.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := domain.ParseStatus(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		status = &parsed
	}

	orders, err := h.Orders.List(r.Context(), restaurantID, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) getHistory(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])

	history, err := h.Orders.History(r.Context(), restaurantID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *OrderHandler) transition(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])

	var payload struct {
		Status string `json:"status"`
		Actor  string `json:"actor"`
		Notes  string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	target, err := domain.ParseStatus(payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.Orders.Transition(r.Context(), restaurantID, orderID, target, payload.Actor, payload.Notes)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"order":   result.Order,
		"applied": result.Applied,
	})
}

func (h *OrderHandler) bulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	var payload struct {
		OrderIDs []int  `json:"order_ids"`
		Status   string `json:"status"`
		Actor    string `json:"actor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(payload.OrderIDs) == 0 {
		http.Error(w, "order_ids is required", http.StatusBadRequest)
		return
	}

	target, err := domain.ParseStatus(payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	results := h.Orders.UpdateStatus(r.Context(), restaurantID, payload.OrderIDs, target, payload.Actor)

	updated := 0
	for _, res := range results {
		if res.Status == "ok" {
			updated++
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"processed": results,
		"updated":   updated,
		"failed":    len(results) - updated,
	})
}

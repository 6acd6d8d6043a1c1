package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"orderflow/internal/domain"
	"orderflow/internal/menu"
)

type MenuHandler struct {
	Menu menu.ServiceInterface
}

func NewMenuHandler(m menu.ServiceInterface) *MenuHandler {
	return &MenuHandler{Menu: m}
}

func (h *MenuHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}", h.deleteRestaurant).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes", h.listDishes).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.getDish).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.updateDish).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.deleteDish).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/tables", h.createTable).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/tables", h.listTables).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/tables/{tableId}/qrcode", h.tableQRCode).Methods("GET")
}

func (h *MenuHandler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Menu.CreateRestaurant(r.Context(), &rest); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *MenuHandler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Menu.ListRestaurants(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *MenuHandler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	rest, err := h.Menu.GetRestaurant(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *MenuHandler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest.ID = id
	if err := h.Menu.UpdateRestaurant(r.Context(), &rest); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *MenuHandler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	if err := h.Menu.DeleteRestaurant(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MenuHandler) createDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.RestaurantID = restaurantID
	if err := h.Menu.CreateDish(r.Context(), &dish); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *MenuHandler) listDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	dishes, err := h.Menu.ListDishes(r.Context(), restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *MenuHandler) getDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	dish, err := h.Menu.GetDish(r.Context(), restaurantID, dishID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *MenuHandler) updateDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.ID = dishID
	dish.RestaurantID = restaurantID
	if err := h.Menu.UpdateDish(r.Context(), &dish); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *MenuHandler) deleteDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	if err := h.Menu.DeleteDish(r.Context(), restaurantID, dishID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MenuHandler) createTable(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	var table domain.Table
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	table.RestaurantID = restaurantID
	if err := h.Menu.CreateTable(r.Context(), &table); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *MenuHandler) listTables(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	tables, err := h.Menu.ListTables(r.Context(), restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *MenuHandler) tableQRCode(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	tableID, _ := strconv.Atoi(mux.Vars(r)["tableId"])

	qr, err := h.Menu.TableQRCode(r.Context(), restaurantID, tableID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}

package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"orderflow/internal/domain"
	"orderflow/internal/review"
)

type ReviewHandler struct {
	Reviews review.ServiceInterface
}

func NewReviewHandler(reviews review.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

func (h *ReviewHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/restaurants/{restaurantId}/ratings", h.createRating).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/ratings/bulk", h.createBulkRatings).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/ratings/summary", h.summary).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/ratings/{target}/{targetId}", h.listRatings).Methods("GET")
}

func (h *ReviewHandler) createRating(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	var event domain.RatingEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	event.RestaurantID = restaurantID

	if err := h.Reviews.CreateOrUpdate(r.Context(), &event); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *ReviewHandler) createBulkRatings(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	var payload struct {
		OrderID int `json:"order_id"`
		Ratings []struct {
			Target   domain.RatingTarget `json:"target"`
			TargetID int                 `json:"target_id"`
			Rating   int                 `json:"rating"`
			Comment  string              `json:"comment"`
		} `json:"ratings"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if payload.OrderID == 0 || len(payload.Ratings) == 0 {
		http.Error(w, "Missing order_id or ratings", http.StatusBadRequest)
		return
	}

	type ratingResult struct {
		Target   domain.RatingTarget `json:"target"`
		TargetID int                 `json:"target_id"`
		Status   string              `json:"status"`
		Message  string              `json:"message,omitempty"`
	}

	results := make([]ratingResult, 0, len(payload.Ratings))
	successCount := 0

	for _, incoming := range payload.Ratings {
		event := domain.RatingEvent{
			RestaurantID: restaurantID,
			OrderID:      payload.OrderID,
			Target:       incoming.Target,
			TargetID:     incoming.TargetID,
			Rating:       incoming.Rating,
			Comment:      incoming.Comment,
		}

		if err := h.Reviews.CreateOrUpdate(r.Context(), &event); err != nil {
			results = append(results, ratingResult{
				Target:   incoming.Target,
				TargetID: incoming.TargetID,
				Status:   "error",
				Message:  err.Error(),
			})
			continue
		}

		successCount++
		results = append(results, ratingResult{
			Target:   incoming.Target,
			TargetID: incoming.TargetID,
			Status:   "ok",
		})
	}

	status := http.StatusCreated
	if successCount == 0 {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]interface{}{
		"processed": results,
		"created":   successCount,
		"failed":    len(results) - successCount,
	})
}

func (h *ReviewHandler) listRatings(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	target := domain.RatingTarget(mux.Vars(r)["target"])
	targetID, _ := strconv.Atoi(mux.Vars(r)["targetId"])

	events, err := h.Reviews.List(r.Context(), restaurantID, target, targetID)
	if err != nil {
		writeError(w, err)
		return
	}
	if events == nil {
		events = []domain.RatingEvent{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *ReviewHandler) summary(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	summary, err := h.Reviews.Summary(r.Context(), restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

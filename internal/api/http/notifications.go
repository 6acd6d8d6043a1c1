package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"orderflow/internal/domain"
	"orderflow/internal/notify"
)

type NotificationHandler struct {
	Notifications notify.ServiceInterface
}

func NewNotificationHandler(notifications notify.ServiceInterface) *NotificationHandler {
	return &NotificationHandler{Notifications: notifications}
}

func (h *NotificationHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/restaurants/{restaurantId}/notifications/{audience}", h.list).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/notifications/{audience}/unread-count", h.unreadCount).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/notifications/{audience}/read-all", h.markAllRead).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/notifications/{audience}/feed-version", h.feedVersion).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/notifications/{audience}/{notificationId}/read", h.markRead).Methods("POST")
}

func (h *NotificationHandler) list(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	audience := domain.Audience(mux.Vars(r)["audience"])
	onlyUnread := r.URL.Query().Get("unread") == "true"

	notifications, err := h.Notifications.List(r.Context(), restaurantID, audience, onlyUnread)
	if err != nil {
		writeError(w, err)
		return
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) unreadCount(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	audience := domain.Audience(mux.Vars(r)["audience"])

	count, err := h.Notifications.UnreadCount(r.Context(), restaurantID, audience)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"unread": count})
}

func (h *NotificationHandler) markRead(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	notificationID, _ := strconv.Atoi(mux.Vars(r)["notificationId"])

	if err := h.Notifications.MarkRead(r.Context(), restaurantID, notificationID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *NotificationHandler) markAllRead(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	audience := domain.Audience(mux.Vars(r)["audience"])

	updated, err := h.Notifications.MarkAllRead(r.Context(), restaurantID, audience)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": updated})
}

func (h *NotificationHandler) feedVersion(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	audience := domain.Audience(mux.Vars(r)["audience"])

	version, err := h.Notifications.FeedVersion(r.Context(), restaurantID, audience)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"version": version})
}

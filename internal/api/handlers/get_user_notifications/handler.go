package get_user_notifications

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
)

const (
	msgInvalidUserID = "некорректный идентификатор пользователя"
	msgAccessDenied  = "доступ к чужим уведомлениям запрещен"
	msgUnauthorized  = "требуется аутентификация"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// NotificationResponse HTTP response model
type NotificationResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	Message   string  `json:"message"`
	Type      string  `json:"type"`
	Read      bool    `json:"read"`
	Link      *string `json:"link,omitempty"`
	BookingID *int64  `json:"bookingId,omitempty"`
	PaymentID *int64  `json:"paymentId,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// NotificationsListResponse HTTP response model со списком уведомлений
type NotificationsListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// Handle GET /api/v1/users/{userId}/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil || userID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if requesterID != userID && !middleware.IsAdminFromContext(r.Context()) {
		h.logger.Warn("GET /users/{id}/notifications - Access denied: user_id=%d, requester_id=%d",
			userID, requesterID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	list, err := h.service.GetUserNotifications(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{id}/notifications - Failed to get notifications: user_id=%d, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := NotificationsListResponse{Notifications: make([]NotificationResponse, 0, len(list))}
	for _, n := range list {
		response.Notifications = append(response.Notifications, NotificationResponse{
			ID:        n.ID,
			UserID:    n.UserID,
			Message:   n.Message,
			Type:      string(n.Type),
			Read:      n.Read,
			Link:      n.Link,
			BookingID: n.BookingID,
			PaymentID: n.PaymentID,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

package mark_all_notifications_read

import (
	"net/http"
	"strconv"

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

// MarkAllReadResponse HTTP response model
type MarkAllReadResponse struct {
	UserID int64 `json:"userId"`
	Read   bool  `json:"read"`
}

// Handle POST /api/v1/users/{userId}/notifications/read-all
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
		h.logger.Warn("POST /users/{id}/notifications/read-all - Access denied: user_id=%d, requester_id=%d",
			userID, requesterID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	if err := h.service.MarkAllRead(r.Context(), userID); err != nil {
		h.logger.Error("POST /users/{id}/notifications/read-all - Failed to mark all read: user_id=%d, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, MarkAllReadResponse{UserID: userID, Read: true})
}

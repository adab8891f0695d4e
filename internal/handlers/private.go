package handlers

import (
	"GophSession/internal/middleware"
	"GophSession/internal/service"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// PrivateHandler отдаёт сообщение только авторизованным пользователям.
type PrivateHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

func NewPrivateHandler(userService *service.UserService, logger *zap.SugaredLogger) *PrivateHandler {
	return &PrivateHandler{UserService: userService, Logger: logger}
}

type messageResponse struct {
	Message string `json:"message"`
}

// Private отвечает 200 {message}, 401 без валидного токена
// и 403, если пользователь токена больше не существует.
func (h *PrivateHandler) Private(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}

	user, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusForbidden, "user no longer exists")
			return
		}
		h.Logger.Errorw("Private: service error", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Hello, %s! This message is only visible with a valid token.", user.Login),
	})
}

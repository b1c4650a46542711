package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DayBoard/internal/api/handlers"
	"github.com/m04kA/SMC-DayBoard/internal/integrations/userservice"
)

const (
	msgForbiddenDate      = "нет прав на изменение расписания этой даты"
	msgUserServiceOffline = "сервис пользователей недоступен"
)

// PermissionsClient источник прав пользователя
type PermissionsClient interface {
	GetPermissions(ctx context.Context, userID int64) (*userservice.Permissions, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DateAccess пропускает запрос, только если пользователь может менять дату из {date}
// Должен стоять после Auth
func DateAccess(client PermissionsClient, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			date, err := handlers.ParseDate(mux.Vars(r)["date"])
			if err != nil {
				handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
				return
			}

			permissions, err := client.GetPermissions(r.Context(), userID)
			if err != nil {
				switch {
				case errors.Is(err, userservice.ErrUserNotFound):
					logger.Warn("DateAccess - Unknown user: user_id=%d", userID)
					handlers.RespondForbidden(w, msgForbiddenDate)
				case errors.Is(err, userservice.ErrUnavailable):
					logger.Error("DateAccess - UserService unavailable: user_id=%d, error=%v", userID, err)
					handlers.RespondServiceUnavailable(w, msgUserServiceOffline)
				default:
					logger.Error("DateAccess - Failed to get permissions: user_id=%d, error=%v", userID, err)
					handlers.RespondInternalError(w)
				}
				return
			}

			if !permissions.CanEditDate(date) {
				logger.Warn("DateAccess - Forbidden: user_id=%d, date=%s", userID, mux.Vars(r)["date"])
				handlers.RespondForbidden(w, msgForbiddenDate)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package todo

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"todo-backend/internal/shared/response"
)

var (
	ErrTodoNotFound = errors.New("todo item not found")
	ErrForbidden    = errors.New("todo item belongs to another user")
)

var todoErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrTodoNotFound: {
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: "The requested todo item does not exist",
	},
	ErrForbidden: {
		Status:  http.StatusForbidden,
		Code:    "FORBIDDEN",
		Message: "You do not have access to this todo item",
	},
}

// HandleTodoError translates a service error into an HTTP response.
// Returns false when err is nil so handlers can use it as a guard.
func HandleTodoError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, cfg := range todoErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	// Store failures and anything unrecognized surface as 500.
	log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("todo operation failed")
	response.InternalServerError(c, "Internal server error")
	return true
}

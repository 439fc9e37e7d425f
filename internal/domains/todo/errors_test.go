package todo

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func handleErr(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleTodoError(c, err)
	return w
}

func TestHandleTodoError(t *testing.T) {
	t.Run("nil error is not handled", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.False(t, HandleTodoError(c, nil))
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, handleErr(ErrTodoNotFound).Code)
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, handleErr(ErrForbidden).Code)
	})

	t.Run("wrapped sentinels still map", func(t *testing.T) {
		err := fmt.Errorf("authorize: %w", ErrTodoNotFound)
		assert.Equal(t, http.StatusNotFound, handleErr(err).Code)
	})

	t.Run("unknown errors map to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, handleErr(assert.AnError).Code)
	})
}

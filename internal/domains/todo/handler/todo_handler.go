package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-backend/internal/domains/todo"
	"todo-backend/internal/shared/middleware"
	"todo-backend/internal/shared/response"
)

type TodoHandler struct {
	svc todo.Service
}

func NewTodoHandler(svc todo.Service) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// GetTodos lists the caller's items.
// GET /todos?search=<substring>
func (h *TodoHandler) GetTodos(c *gin.Context) {
	userID := middleware.UserID(c)
	search := c.Query("search")

	items, err := h.svc.GetTodos(c.Request.Context(), userID, search)
	if todo.HandleTodoError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, items)
}

// GetSortedTodos lists the caller's items in the requested order.
// GET /todos/sorted?sortField=<name|dueDate>&sortDirection=<asc|desc>
func (h *TodoHandler) GetSortedTodos(c *gin.Context) {
	userID := middleware.UserID(c)
	sortField := c.Query("sortField")
	sortDirection := c.Query("sortDirection")

	items, err := h.svc.GetSortedTodos(c.Request.Context(), userID, sortField, sortDirection)
	if todo.HandleTodoError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, items)
}

// CreateTodo creates a new item for the caller.
// POST /todos
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	userID := middleware.UserID(c)

	var req todo.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	item, err := h.svc.CreateTodo(c.Request.Context(), userID, req)
	if todo.HandleTodoError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// UpdateTodo replaces the mutable fields of the caller's item.
// PATCH /todos/:todoId
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	userID := middleware.UserID(c)
	todoID := c.Param("todoId")

	var req todo.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	if err := h.svc.UpdateTodo(c.Request.Context(), userID, todoID, req); todo.HandleTodoError(c, err) {
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTodo permanently removes the caller's item.
// DELETE /todos/:todoId
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	userID := middleware.UserID(c)
	todoID := c.Param("todoId")

	if err := h.svc.DeleteTodo(c.Request.Context(), userID, todoID); todo.HandleTodoError(c, err) {
		return
	}

	c.Status(http.StatusNoContent)
}

// GenerateUploadURL mints a presigned attachment upload URL for the item.
// POST /todos/:todoId/attachment
func (h *TodoHandler) GenerateUploadURL(c *gin.Context) {
	todoID := c.Param("todoId")

	url, err := h.svc.GenerateUploadURL(c.Request.Context(), todoID)
	if todo.HandleTodoError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, todo.GenerateUploadURLResponse{UploadURL: url})
}

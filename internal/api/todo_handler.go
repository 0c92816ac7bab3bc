package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard-service/internal/entity"
	"taskboard-service/internal/service"
)

type TodoHandler struct {
	todoService *service.TodoService
}

func NewTodoHandler(todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// CreateTodo --> POST /boards/:boardId/todos
func (h *TodoHandler) CreateTodo(c echo.Context) error {
	boardID, err := entity.ParseID(c.Param("boardId"))
	if err != nil {
		return writeError(c, err)
	}

	req := struct {
		Content *string `json:"content"`
		Status  string  `json:"status"`
	}{}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.Content == nil {
		return errorJSON(c, http.StatusBadRequest, "content is required")
	}

	todo, err := h.todoService.Create(c.Request().Context(), currentUser(c), boardID, *req.Content, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, todo)
}

// ListTodos --> GET /boards/:boardId/todos
func (h *TodoHandler) ListTodos(c echo.Context) error {
	boardID, err := entity.ParseID(c.Param("boardId"))
	if err != nil {
		return writeError(c, err)
	}

	todos, err := h.todoService.ListForBoard(c.Request().Context(), currentUser(c), boardID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// UpdateTodo applies a partial update --> PUT /todos/:todoId
func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	todoID, err := entity.ParseID(c.Param("todoId"))
	if err != nil {
		return writeError(c, err)
	}

	var patch entity.TodoPatch
	if err := c.Bind(&patch); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request payload")
	}

	todo, err := h.todoService.Update(c.Request().Context(), currentUser(c), todoID, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, todo)
}

// DeleteTodo --> DELETE /todos/:todoId
func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	todoID, err := entity.ParseID(c.Param("todoId"))
	if err != nil {
		return writeError(c, err)
	}

	if err := h.todoService.Delete(c.Request().Context(), currentUser(c), todoID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Todo deleted"})
}

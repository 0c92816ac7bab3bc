package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard-service/internal/entity"
	"taskboard-service/internal/service"
)

type BoardHandler struct {
	boardService *service.BoardService
}

func NewBoardHandler(boardService *service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// CreateBoard --> POST /boards
func (h *BoardHandler) CreateBoard(c echo.Context) error {
	req := struct {
		Title *string `json:"title"`
	}{}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.Title == nil {
		return errorJSON(c, http.StatusBadRequest, "title is required")
	}

	board, err := h.boardService.Create(c.Request().Context(), currentUser(c), *req.Title)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, board)
}

// ListBoards --> GET /boards
func (h *BoardHandler) ListBoards(c echo.Context) error {
	boards, err := h.boardService.ListForOwner(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, boards)
}

// DeleteBoard --> DELETE /boards/:boardId
func (h *BoardHandler) DeleteBoard(c echo.Context) error {
	boardID, err := entity.ParseID(c.Param("boardId"))
	if err != nil {
		return writeError(c, err)
	}

	if err := h.boardService.Delete(c.Request().Context(), currentUser(c), boardID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Board deleted"})
}

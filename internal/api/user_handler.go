package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard-service/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates an account --> POST /register
func (h *UserHandler) Register(c echo.Context) error {
	req := struct {
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}{}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request payload")
	}
	if req.Email == nil || req.Password == nil {
		return errorJSON(c, http.StatusBadRequest, "email and password are required")
	}

	if _, err := h.userService.Register(c.Request().Context(), *req.Email, *req.Password); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "User created successfully"})
}

// Token exchanges form credentials for a bearer token --> POST /token
func (h *UserHandler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" {
		return errorJSON(c, http.StatusBadRequest, "username and password are required")
	}

	token, err := h.userService.Login(c.Request().Context(), username, password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

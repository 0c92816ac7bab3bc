package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskboard-service/internal/auth"
)

// Handlers groups the route handlers served by NewServer.
type Handlers struct {
	Users  *UserHandler
	Boards *BoardHandler
	Todos  *TodoHandler
}

// NewServer builds the echo instance with middleware and routes registered.
func NewServer(h Handlers, guard *auth.Guard, allowedOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpErrorHandler

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit("1M"))

	// Routes
	e.POST("/register", h.Users.Register)
	e.POST("/token", h.Users.Token)

	requireUser := RequireUser(guard)
	e.POST("/boards", h.Boards.CreateBoard, requireUser)
	e.GET("/boards", h.Boards.ListBoards, requireUser)
	e.DELETE("/boards/:boardId", h.Boards.DeleteBoard, requireUser)
	e.POST("/boards/:boardId/todos", h.Todos.CreateTodo, requireUser)
	e.GET("/boards/:boardId/todos", h.Todos.ListTodos, requireUser)
	e.PUT("/todos/:todoId", h.Todos.UpdateTodo, requireUser)
	e.DELETE("/todos/:todoId", h.Todos.DeleteTodo, requireUser)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": "taskboard-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	return e
}

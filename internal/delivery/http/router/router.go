// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CourseHandler  *handler.CourseHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	courseHandler  *handler.CourseHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		courseHandler:  params.CourseHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// POST and PUT on courses authenticate inside the handler, after body validation.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	users := api.Group("/users")
	{
		users.POST("", r.userHandler.Register)
		users.GET("", r.userHandler.Current, r.authMiddleware.Authenticate)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", r.courseHandler.List)
		courses.GET("/:id", r.courseHandler.Get)
		courses.GET("/:id/qrcode", r.courseHandler.QRCode)
		courses.POST("", r.courseHandler.Create)
		courses.PUT("/:id", r.courseHandler.Update)
		courses.DELETE("/:id", r.courseHandler.Delete, r.authMiddleware.Authenticate)
	}
}

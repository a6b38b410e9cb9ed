// Package handler implements the catalog's HTTP endpoints.
package handler

import (
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/delivery/http/response"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves /api/users.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// Register handles POST /api/users.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     req.Password,
	})
	if err != nil {
		return err
	}

	return response.Created(c, "/")
}

// Current handles GET /api/users. It runs behind AuthMiddleware.Authenticate.
func (h *UserHandler) Current(c echo.Context) error {
	user, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrInvalidCredentials
	}

	return response.JSON(c, map[string]*UserResponse{"user": toUserResponse(user)})
}

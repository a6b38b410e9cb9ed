package context

import (
	"catalog/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the echo.Context key of the authenticated user.
const KeyIdentity ContextKey = "identity"

// SetIdentity records the user proved by the request's credentials.
func SetIdentity(c echo.Context, user *entity.User) {
	c.Set(string(KeyIdentity), user)
}

// GetIdentity returns the authenticated user, if any.
func GetIdentity(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyIdentity)).(*entity.User)

	return user, ok && user != nil
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Me answers GET /api/auth/me with the identity asserted by the bearer
// token. It exists to give token consumers a verification endpoint; the
// auth middleware has already validated the token and injected the
// claims by the time this runs.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func Me(c echo.Context) error {
	userID, _ := c.Get("userId").(string)
	role, _ := c.Get("role").(string)
	return c.JSON(http.StatusOK, map[string]string{
		"userId": userID,
		"role":   role,
	})
}

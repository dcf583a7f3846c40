package auth

import (
	"HireHub-backend/internal/store"
	"HireHub-backend/internal/utilities"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// LogoutController handles user logout by blacklisting JWT tokens and
// clearing the store's mirrored profile.
type LogoutController struct {
	Store          *store.Store
	BlacklistStore JwtBlacklistStore
}

// NewLogoutController creates a new instance of LogoutController.
func NewLogoutController(st *store.Store, blacklistStore JwtBlacklistStore) *LogoutController {
	return &LogoutController{
		Store:          st,
		BlacklistStore: blacklistStore,
	}
}

// LogoutHandler blacklists the presented access token for the rest of
// its lifetime.
// @Summary Log out by invalidating the presented access token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.MessageResponse "Logout success"
// @Failure 401 {object} utilities.ErrorResponse "Missing or invalid token"
// @Router /auth/logout [post]
func (lc *LogoutController) LogoutHandler(c *gin.Context) {

	tokenString, err := utilities.ExtractBearerToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	claims, err := extractClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	err = lc.BlacklistStore.AddToBlacklist(tokenString, claims.ExpiresAt.Time)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to logout"})
		return
	}

	lc.Store.SetCurrentUser(nil)

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Successfully logged out"})
}

func extractClaims(c *gin.Context) (*jwt.RegisteredClaims, error) {
	claims, ok := c.Get("claims")
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	realClaims, okCast := claims.(*jwt.RegisteredClaims)
	if !okCast {
		return nil, fmt.Errorf("invalid token claims type")
	}
	return realClaims, nil
}

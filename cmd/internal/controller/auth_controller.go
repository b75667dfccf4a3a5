package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intervia-backend/internal/service"
	"intervia-backend/utilities"
)

type AuthController struct {
	UserService service.UserService
}

func NewAuthController(userService service.UserService) *AuthController {
	return &AuthController{UserService: userService}
}

// IssueToken handles POST /auth/token. The identity provider has already
// authenticated the caller on the frontend; this exchanges the mirrored
// user id for a local token pair. Unknown ids are rejected, so tokens only
// exist for users the webhook sync has seen.
func (ac *AuthController) IssueToken(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	user, err := ac.UserService.GetUserByID(req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, refreshToken, err := utilities.GenerateTokens(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          user,
	})
}

// RefreshToken handles POST /auth/refresh
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	accessToken, refreshToken, err := utilities.RefreshTokens(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

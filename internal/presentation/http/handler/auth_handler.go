package handler

import (
	"net/http"

	"github.com/gestionpyme/ventas-console/internal/infrastructure/memstore"
	"github.com/gestionpyme/ventas-console/internal/presentation/http/dto/request"
	"github.com/gestionpyme/ventas-console/internal/presentation/http/dto/response"
	"github.com/gestionpyme/ventas-console/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles operator authentication
type AuthHandler struct {
	store      *memstore.Store
	jwtManager *utils.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store *memstore.Store, jwtManager *utils.JWTManager) *AuthHandler {
	return &AuthHandler{store: store, jwtManager: jwtManager}
}

// Login verifies credentials and issues an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	user, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasmonteiro/occurrence-api/internal/constants"
	"github.com/lucasmonteiro/occurrence-api/internal/dto"
	apierrors "github.com/lucasmonteiro/occurrence-api/internal/errors"
	"github.com/lucasmonteiro/occurrence-api/internal/services"
)

// UserHandler coordinates user directory HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Seed ensures the default user exists.
func (h *UserHandler) Seed(c *gin.Context) {
	user, err := h.userService.SeedDefaultUser()
	if err != nil {
		apierrors.InternalError(c, "Failed to seed default user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Default user ready",
		"user":    dto.ToUserDTO(*user),
	})
}

// Login authenticates a user by matricula and password.
func (h *UserHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Matricula string `json:"matricula" binding:"required"`
		Password  string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Authenticate(services.LoginInput{
		Matricula: req.Matricula,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Profile returns the default user's profile.
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.userService.GetProfile(constants.DefaultUserMatricula)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

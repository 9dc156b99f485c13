package handlers

import (
	"errors"
	"net/http"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type LoginRequest struct {
	IsAdmin  bool   `json:"is_admin"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles both customer and admin logins, mirroring the single login
// form with its admin toggle.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.IsAdmin {
		user, err := h.userService.LoginAdmin(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user)
		return
	}

	user, err := h.userService.LoginCustomer(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid email address"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.userService.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Me returns the current user, or role "guest" when nobody is logged in.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.userService.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"role": "guest"})
		return
	}
	c.JSON(http.StatusOK, user)
}

package handlers

import (
	"net/http"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/models"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/services"

	"github.com/gin-gonic/gin"
)

// RequireAdmin guards the dashboard routes. The role claim comes from the
// user service; anything else is rejected.
func RequireAdmin(userService services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userService.Current(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if user == nil || user.Role != string(models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

package handlers

import (
	"ideahub/internal/authz"
	"ideahub/internal/middleware"
	"ideahub/internal/models"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// currentPrincipal returns the authenticated caller as the policy layer sees
// it. ok is false for anonymous requests.
func currentPrincipal(c *gin.Context) (authz.Principal, *models.User, bool) {
	v, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		return authz.Principal{}, nil, false
	}
	user := v.(*models.User)
	return authz.Principal{ID: user.ID, Role: authz.Normalize(user.Role)}, user, true
}

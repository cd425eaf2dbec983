package handlers

import (
	"net/http"

	"ideahub/internal/authz"
	"ideahub/internal/db"
	"ideahub/internal/models"
	"ideahub/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

func (h *AdminHandler) Users(c *gin.Context) {
	principal, _, _ := currentPrincipal(c)
	if !authz.Authorize(principal, authz.ActionManageUsers, nil) {
		RenderError(c, http.StatusForbidden, "Access denied - Admins only")
		return
	}

	var users []models.User
	db.DB.Order("user_id ASC").Find(&users)

	Render(c, http.StatusOK, "admin/users.html", gin.H{
		"Title": "Users",
		"Users": users,
	})
}

func (h *AdminHandler) ChangeRole(c *gin.Context) {
	principal, _, _ := currentPrincipal(c)
	if !authz.Authorize(principal, authz.ActionManageUsers, nil) {
		RenderError(c, http.StatusForbidden, "Access denied - Admins only")
		return
	}

	userID := uint(utils.StringToInt(c.Param("id")))
	newRole, ok := authz.ParseRole(c.PostForm("new_role"))
	if !ok {
		RenderError(c, http.StatusBadRequest, "Unknown role")
		return
	}

	if err := db.DB.Model(&models.User{}).Where("user_id = ?", userID).Update("role", string(newRole)).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to change role")
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// DeleteUser removes the account but keeps their ideas and comments; the
// schema nulls the owning references.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	principal, _, _ := currentPrincipal(c)
	if !authz.Authorize(principal, authz.ActionManageUsers, nil) {
		RenderError(c, http.StatusForbidden, "Access denied - Admins only")
		return
	}

	userID := uint(utils.StringToInt(c.Param("id")))

	if err := db.DB.Delete(&models.User{}, userID).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

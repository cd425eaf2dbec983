package handlers

import (
	"errors"
	"net/http"
	"strings"

	"ideahub/internal/authz"
	"ideahub/internal/services"
	"ideahub/internal/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categories *services.CategoryService
}

func NewCategoryHandler(categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) ShowAdd(c *gin.Context) {
	principal, _, _ := currentPrincipal(c)
	if !authz.Authorize(principal, authz.ActionAddCategory, nil) {
		RenderError(c, http.StatusForbidden, "Reviewers cannot add categories.")
		return
	}

	Render(c, http.StatusOK, "category/add.html", gin.H{
		"Title":  "Add Category",
		"Origin": c.Query("origin"),
	})
}

// Add creates a category. When the request came from the submit form detour
// the user goes back to /submit, where their staged draft is waiting.
func (h *CategoryHandler) Add(c *gin.Context) {
	principal, _, _ := currentPrincipal(c)
	if !authz.Authorize(principal, authz.ActionAddCategory, nil) {
		RenderError(c, http.StatusForbidden, "Reviewers cannot add categories.")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	origin := c.PostForm("origin")

	if name == "" {
		Render(c, http.StatusBadRequest, "category/add.html", gin.H{
			"Error":  "Name required",
			"Origin": origin,
		})
		return
	}

	if _, err := h.categories.Create(name); err != nil {
		message := "Failed to add category."
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrDuplicateName) {
			message = "Category already exists!"
			status = http.StatusConflict
		}
		Render(c, status, "category/add.html", gin.H{
			"Error":  message,
			"Origin": origin,
			"Name":   name,
		})
		return
	}

	if origin == "submit" {
		c.Redirect(http.StatusFound, "/submit")
		return
	}
	c.Redirect(http.StatusFound, "/manage_categories")
}

func (h *CategoryHandler) Manage(c *gin.Context) {
	principal, _, _ := currentPrincipal(c)
	if !authz.Authorize(principal, authz.ActionManageCategories, nil) {
		RenderError(c, http.StatusForbidden, "Access denied - Admins only")
		return
	}

	categories, err := h.categories.List()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load categories")
		return
	}

	Render(c, http.StatusOK, "category/manage.html", gin.H{
		"Title":      "Manage Categories",
		"Categories": categories,
	})
}

func (h *CategoryHandler) ShowEdit(c *gin.Context) {
	principal, _, _ := currentPrincipal(c)
	if !authz.Authorize(principal, authz.ActionManageCategories, nil) {
		RenderError(c, http.StatusForbidden, "Access denied - Admins only")
		return
	}

	id := uint(utils.StringToInt(c.Param("id")))
	category, err := h.categories.Get(id)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Category not found")
		return
	}

	Render(c, http.StatusOK, "category/edit.html", gin.H{
		"Title":    "Edit Category",
		"Category": category,
	})
}

func (h *CategoryHandler) Edit(c *gin.Context) {
	principal, _, _ := currentPrincipal(c)
	if !authz.Authorize(principal, authz.ActionManageCategories, nil) {
		RenderError(c, http.StatusForbidden, "Access denied - Admins only")
		return
	}

	id := uint(utils.StringToInt(c.Param("id")))
	name := strings.TrimSpace(c.PostForm("name"))

	err := h.categories.Rename(id, name)
	switch {
	case errors.Is(err, services.ErrNotFound):
		RenderError(c, http.StatusNotFound, "Category not found")
	case errors.Is(err, services.ErrDuplicateName):
		RenderError(c, http.StatusConflict, "Category name already exists!")
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Failed to save category")
	default:
		c.Redirect(http.StatusFound, "/manage_categories")
	}
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	principal, _, _ := currentPrincipal(c)
	if !authz.Authorize(principal, authz.ActionManageCategories, nil) {
		RenderError(c, http.StatusForbidden, "Access denied - Admins only")
		return
	}

	id := uint(utils.StringToInt(c.Param("id")))

	err := h.categories.Delete(id)
	switch {
	case errors.Is(err, services.ErrCategoryInUse):
		categories, _ := h.categories.List()
		Render(c, http.StatusConflict, "category/manage.html", gin.H{
			"Title":      "Manage Categories",
			"Categories": categories,
			"Error":      "This category is used by an idea and cannot be deleted.",
		})
	case errors.Is(err, services.ErrNotFound):
		RenderError(c, http.StatusNotFound, "Category not found")
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Failed to delete category")
	default:
		c.Redirect(http.StatusFound, "/manage_categories")
	}
}

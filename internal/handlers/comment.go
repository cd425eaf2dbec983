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

type CommentHandler struct {
	threads *services.ThreadService
}

func NewCommentHandler(threads *services.ThreadService) *CommentHandler {
	return &CommentHandler{threads: threads}
}

func (h *CommentHandler) Create(c *gin.Context) {
	principal, _, ok := currentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if !authz.Authorize(principal, authz.ActionComment, nil) {
		RenderError(c, http.StatusForbidden, "You cannot comment.")
		return
	}

	ideaID := uint(utils.StringToInt(c.Param("id")))
	content := strings.TrimSpace(c.PostForm("content"))
	parentID := utils.StringToUint(c.PostForm("parent_id"))

	if content == "" {
		c.Redirect(http.StatusFound, "/ideas/"+utils.UintToString(ideaID))
		return
	}

	_, err := h.threads.AddComment(ideaID, principal.ID, content, parentID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		RenderError(c, http.StatusNotFound, "Idea not found")
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Failed to post comment")
	default:
		c.Redirect(http.StatusFound, "/ideas/"+utils.UintToString(ideaID))
	}
}

func (h *CommentHandler) Delete(c *gin.Context) {
	principal, _, ok := currentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	commentID := uint(utils.StringToInt(c.Param("id")))

	err := h.threads.DeleteComment(commentID, principal)
	switch {
	case errors.Is(err, services.ErrNotFound):
		RenderError(c, http.StatusNotFound, "Comment not found")
	case errors.Is(err, services.ErrForbidden):
		RenderError(c, http.StatusForbidden, "You can delete only your own comments.")
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Failed to delete comment")
	default:
		back := c.GetHeader("Referer")
		if back == "" {
			back = "/ideas"
		}
		c.Redirect(http.StatusFound, back)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"ideahub/internal/authz"
	"ideahub/internal/services"
	"ideahub/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voting *services.VotingService
}

func NewVoteHandler(voting *services.VotingService) *VoteHandler {
	return &VoteHandler{voting: voting}
}

// Vote applies one toggle step for the caller on an idea or a comment and
// sends them back where they came from.
func (h *VoteHandler) Vote(c *gin.Context) {
	principal, _, ok := currentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	itemType := c.Param("type") // "idea" or "comment"
	id := uint(utils.StringToInt(c.Param("id")))
	direction := c.Param("action")

	back := c.GetHeader("Referer")
	if back == "" {
		back = "/ideas"
	}

	var err error
	switch itemType {
	case "idea":
		if !authz.Authorize(principal, authz.ActionVoteIdea, nil) {
			RenderError(c, http.StatusForbidden, "Your role cannot vote on ideas.")
			return
		}
		err = h.voting.CastIdeaVote(id, principal.ID, direction)
	case "comment":
		if !authz.Authorize(principal, authz.ActionVoteComment, nil) {
			RenderError(c, http.StatusForbidden, "You cannot vote on comments.")
			return
		}
		err = h.voting.CastCommentVote(id, principal.ID, direction)
	default:
		c.Status(http.StatusBadRequest)
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidDirection):
		// Bogus direction token: ignore and re-render the original view.
		c.Redirect(http.StatusFound, back)
	case errors.Is(err, services.ErrNotFound):
		RenderError(c, http.StatusNotFound, "Nothing to vote on here.")
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Vote failed")
	default:
		c.Redirect(http.StatusFound, back)
	}
}

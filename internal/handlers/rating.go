package handlers

import (
	"errors"
	"net/http"

	"ideahub/internal/authz"
	"ideahub/internal/services"
	"ideahub/internal/utils"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	rating *services.RatingService
}

func NewRatingHandler(rating *services.RatingService) *RatingHandler {
	return &RatingHandler{rating: rating}
}

// Rate sets the caller's star rating on an idea.
func (h *RatingHandler) Rate(c *gin.Context) {
	principal, _, ok := currentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if !authz.Authorize(principal, authz.ActionRate, nil) {
		RenderError(c, http.StatusForbidden, "You cannot rate ideas.")
		return
	}

	ideaID := uint(utils.StringToInt(c.Param("id")))
	stars := utils.StringToInt(c.Param("stars"))

	err := h.rating.SetRating(ideaID, principal.ID, stars)
	switch {
	case errors.Is(err, services.ErrInvalidRange):
		RenderError(c, http.StatusBadRequest, "Invalid rating value!")
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Rating failed")
	default:
		c.Redirect(http.StatusFound, "/ideas/"+utils.UintToString(ideaID))
	}
}

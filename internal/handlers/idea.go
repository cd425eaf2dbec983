package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"ideahub/internal/authz"
	"ideahub/internal/services"
	"ideahub/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type IdeaHandler struct {
	ideas         *services.IdeaService
	voting        *services.VotingService
	rating        *services.RatingService
	threads       *services.ThreadService
	categories    *services.CategoryService
	draftTTL      time.Duration
	displayOffset time.Duration
}

func NewIdeaHandler(ideas *services.IdeaService, voting *services.VotingService, rating *services.RatingService,
	threads *services.ThreadService, categories *services.CategoryService,
	draftTTL, displayOffset time.Duration) *IdeaHandler {
	return &IdeaHandler{
		ideas:         ideas,
		voting:        voting,
		rating:        rating,
		threads:       threads,
		categories:    categories,
		draftTTL:      draftTTL,
		displayOffset: displayOffset,
	}
}

func (h *IdeaHandler) List(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))

	summaries, err := h.ideas.List(search)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load ideas")
		return
	}

	Render(c, http.StatusOK, "idea/list.html", gin.H{
		"Ideas":  summaries,
		"Search": search,
		"Title":  "Ideas",
	})
}

// ThreadView wraps a thread comment with its rendered body.
type ThreadView struct {
	services.ThreadComment
	ContentHTML template.HTML
}

func (h *IdeaHandler) Detail(c *gin.Context) {
	id := uint(utils.StringToInt(c.Param("id")))

	idea, err := h.ideas.Get(id)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Idea not found")
		return
	}

	score, err := h.voting.IdeaScore(id)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load idea")
		return
	}

	avgStars, err := h.rating.AverageStars(id)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load idea")
		return
	}

	userStars := 0
	if principal, _, ok := currentPrincipal(c); ok {
		userStars, err = h.rating.UserStars(id, principal.ID)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "Failed to load idea")
			return
		}
	}

	thread, err := h.threads.BuildThread(id)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load comments")
		return
	}
	comments := make([]ThreadView, len(thread))
	for i, comment := range thread {
		comments[i] = ThreadView{
			ThreadComment: comment,
			ContentHTML:   utils.RenderMarkdown(comment.Content),
		}
	}

	Render(c, http.StatusOK, "idea/detail.html", gin.H{
		"Idea":           idea,
		"IdeaContent":    utils.RenderMarkdown(idea.Description),
		"SubmissionTime": idea.SubmissionDate.Add(h.displayOffset),
		"Score":          score,
		"AvgStars":       avgStars,
		"UserStars":      userStars,
		"Comments":       comments,
		"Title":          idea.Title,
	})
}

func (h *IdeaHandler) ShowCreate(c *gin.Context) {
	principal, _, _ := currentPrincipal(c)
	if !authz.Authorize(principal, authz.ActionSubmitIdea, nil) {
		RenderError(c, http.StatusForbidden, "Reviewers cannot submit ideas.")
		return
	}

	categories, _ := h.categories.List()
	draft := services.PeekDraft(sessions.Default(c))

	Render(c, http.StatusOK, "idea/create.html", gin.H{
		"Title":      "Submit Idea",
		"Categories": categories,
		"Draft":      draft,
	})
}

func (h *IdeaHandler) Create(c *gin.Context) {
	principal, _, _ := currentPrincipal(c)
	if !authz.Authorize(principal, authz.ActionSubmitIdea, nil) {
		RenderError(c, http.StatusForbidden, "Reviewers cannot submit ideas.")
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	categoryID := utils.StringToUint(c.PostForm("category_id"))

	if title == "" || description == "" {
		categories, _ := h.categories.List()
		Render(c, http.StatusBadRequest, "idea/create.html", gin.H{
			"Error":      "Title and description are required.",
			"Categories": categories,
			"Draft":      services.SubmitDraft{Title: title, Description: description, CategoryID: c.PostForm("category_id")},
		})
		return
	}

	idea, err := h.ideas.Create(principal.ID, title, description, categoryID)
	if err != nil {
		categories, _ := h.categories.List()
		message := "Failed to submit idea."
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrDuplicateTitle) {
			message = "This idea already exists!"
			status = http.StatusConflict
		}
		Render(c, status, "idea/create.html", gin.H{
			"Error":      message,
			"Categories": categories,
			"Draft":      services.SubmitDraft{Title: title, Description: description, CategoryID: c.PostForm("category_id")},
		})
		return
	}

	if err := services.ClearDraft(sessions.Default(c)); err != nil {
		log.Printf("Failed to clear submit draft: %v", err)
	}
	c.Redirect(http.StatusFound, "/ideas/"+utils.UintToString(idea.ID))
}

// RememberDraft stages the submit form before the add-category detour, so
// the user comes back to a pre-filled form.
func (h *IdeaHandler) RememberDraft(c *gin.Context) {
	draft := services.SubmitDraft{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		CategoryID:  c.PostForm("category_id"),
	}
	if err := services.SaveDraft(sessions.Default(c), draft, h.draftTTL); err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to save your draft")
		return
	}
	c.Redirect(http.StatusFound, "/add_category?origin=submit")
}

func (h *IdeaHandler) ShowEdit(c *gin.Context) {
	principal, _, _ := currentPrincipal(c)
	id := uint(utils.StringToInt(c.Param("id")))

	idea, err := h.ideas.Get(id)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Idea not found")
		return
	}

	if !authz.Authorize(principal, authz.ActionEditIdea, idea.SubmitterID) {
		RenderError(c, http.StatusForbidden, "You can edit only your own ideas.")
		return
	}

	categories, _ := h.categories.List()
	Render(c, http.StatusOK, "idea/edit.html", gin.H{
		"Title":      "Edit Idea",
		"Idea":       idea,
		"Categories": categories,
	})
}

func (h *IdeaHandler) Update(c *gin.Context) {
	principal, _, _ := currentPrincipal(c)
	id := uint(utils.StringToInt(c.Param("id")))

	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	categoryID := utils.StringToUint(c.PostForm("category_id"))

	if title == "" || description == "" {
		RenderError(c, http.StatusBadRequest, "Title and description are required.")
		return
	}

	err := h.ideas.Update(principal, id, title, description, categoryID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		RenderError(c, http.StatusNotFound, "Idea not found")
	case errors.Is(err, services.ErrForbidden):
		RenderError(c, http.StatusForbidden, "You can edit only your own ideas.")
	case errors.Is(err, services.ErrDuplicateTitle):
		RenderError(c, http.StatusConflict, "This idea already exists!")
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Failed to save idea")
	default:
		c.Redirect(http.StatusFound, "/ideas/"+utils.UintToString(id))
	}
}

func (h *IdeaHandler) Delete(c *gin.Context) {
	principal, _, _ := currentPrincipal(c)
	id := uint(utils.StringToInt(c.Param("id")))

	err := h.ideas.Delete(principal, id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		RenderError(c, http.StatusNotFound, "Idea not found")
	case errors.Is(err, services.ErrForbidden):
		RenderError(c, http.StatusForbidden, "You can delete only your own ideas.")
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Failed to delete idea")
	default:
		c.Redirect(http.StatusFound, "/ideas")
	}
}

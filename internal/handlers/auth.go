package handlers

import (
	"net/http"
	"strings"

	"ideahub/internal/db"
	"ideahub/internal/models"
	"ideahub/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := c.PostForm("password")

	if username == "" || email == "" {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Error":    "Username and email are required.",
			"Username": username,
			"Email":    email,
		})
		return
	}

	if weak := utils.PasswordStrength(password); weak != "" {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Error":    weak,
			"Username": username,
			"Email":    email,
		})
		return
	}

	var count int64
	db.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		Render(c, http.StatusConflict, "auth/register.html", gin.H{
			"Error":    "This email is already registered.",
			"Username": username,
			"Email":    email,
		})
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     "submitter",
	}
	if err := db.DB.Create(&user).Error; err != nil {
		Render(c, http.StatusConflict, "auth/register.html", gin.H{
			"Error":    "This email is already registered.",
			"Username": username,
			"Email":    email,
		})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := c.PostForm("password")

	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "Invalid email or password.", "Email": email})
		return
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "Invalid email or password.", "Email": email})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/ideas")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}

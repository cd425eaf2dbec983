package main

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"ideahub/internal/db"
	"ideahub/internal/handlers"
	"ideahub/internal/middleware"
	"ideahub/internal/services"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("ideahub_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.LoadUser())

	// Services
	votingService := services.NewVotingService(db.DB)
	ratingService := services.NewRatingService(db.DB)
	ideaService := services.NewIdeaService(db.DB, votingService, ratingService)
	threadService := services.NewThreadService(db.DB, envDuration("DISPLAY_TIME_OFFSET", 0))
	categoryService := services.NewCategoryService(db.DB)

	// Handlers
	authHandler := handlers.NewAuthHandler()
	ideaHandler := handlers.NewIdeaHandler(
		ideaService, votingService, ratingService, threadService, categoryService,
		envDuration("DRAFT_TTL", 15*time.Minute),
		envDuration("DISPLAY_TIME_OFFSET", 0),
	)
	voteHandler := handlers.NewVoteHandler(votingService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	commentHandler := handlers.NewCommentHandler(threadService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	adminHandler := handlers.NewAdminHandler()

	// Public Routes
	r.GET("/", func(c *gin.Context) { c.Redirect(302, "/ideas") })
	r.GET("/ideas", ideaHandler.List)
	r.GET("/ideas/:id", ideaHandler.Detail)

	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/submit", ideaHandler.ShowCreate)
		authorized.POST("/submit", ideaHandler.Create)
		authorized.POST("/submit/remember", ideaHandler.RememberDraft)
		authorized.GET("/ideas/:id/edit", ideaHandler.ShowEdit)
		authorized.POST("/ideas/:id/edit", ideaHandler.Update)
		authorized.POST("/ideas/:id/delete", ideaHandler.Delete)

		authorized.POST("/vote/:type/:id/:action", voteHandler.Vote)
		authorized.POST("/rate/:id/:stars", ratingHandler.Rate)

		authorized.POST("/ideas/:id/comment", commentHandler.Create)
		authorized.POST("/comment/:id/delete", commentHandler.Delete)

		authorized.GET("/add_category", categoryHandler.ShowAdd)
		authorized.POST("/add_category", categoryHandler.Add)
		authorized.GET("/manage_categories", categoryHandler.Manage)
		authorized.GET("/edit_category/:id", categoryHandler.ShowEdit)
		authorized.POST("/edit_category/:id", categoryHandler.Edit)
		authorized.POST("/delete_category/:id", categoryHandler.Delete)

		authorized.GET("/admin", adminHandler.Users)
		authorized.POST("/admin/users/:id/role", adminHandler.ChangeRole)
		authorized.POST("/admin/users/:id/delete", adminHandler.DeleteUser)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("IdeaHub server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// envDuration parses a duration env var, e.g. DISPLAY_TIME_OFFSET=1h.
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default", key, v)
		return fallback
	}
	return d
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	// FuncMap
	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"add": func(a, b int) int {
			return a + b
		},
		"seq": func(n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = i + 1
			}
			return s
		},
		"deref": func(p *uint) uint {
			if p == nil {
				return 0
			}
			return *p
		},
		"fmtTime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04:05")
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	// Manual registration to ensure keys match handler expectation
	// Auth
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)
	r.AddFromFilesFuncs("auth/register.html", funcMap, assemble(templatesDir+"/views/auth/register.html")...)

	// Idea
	r.AddFromFilesFuncs("idea/list.html", funcMap, assemble(templatesDir+"/views/idea/list.html")...)
	r.AddFromFilesFuncs("idea/detail.html", funcMap, assemble(templatesDir+"/views/idea/detail.html")...)
	r.AddFromFilesFuncs("idea/create.html", funcMap, assemble(templatesDir+"/views/idea/create.html")...)
	r.AddFromFilesFuncs("idea/edit.html", funcMap, assemble(templatesDir+"/views/idea/edit.html")...)

	// Category
	r.AddFromFilesFuncs("category/add.html", funcMap, assemble(templatesDir+"/views/category/add.html")...)
	r.AddFromFilesFuncs("category/manage.html", funcMap, assemble(templatesDir+"/views/category/manage.html")...)
	r.AddFromFilesFuncs("category/edit.html", funcMap, assemble(templatesDir+"/views/category/edit.html")...)

	// Admin
	r.AddFromFilesFuncs("admin/users.html", funcMap, assemble(templatesDir+"/views/admin/users.html")...)

	// Error
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}

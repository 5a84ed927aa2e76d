package router

import (
	"github.com/gin-gonic/gin"

	"github.com/officinaverde/blog-api/internal/app/middleware"
	article_handler "github.com/officinaverde/blog-api/pkg/handler/article"
	auth_handler "github.com/officinaverde/blog-api/pkg/handler/auth"
	category_handler "github.com/officinaverde/blog-api/pkg/handler/category"
	contact_handler "github.com/officinaverde/blog-api/pkg/handler/contact"
	tag_handler "github.com/officinaverde/blog-api/pkg/handler/tag"
)

// Handlers aggregates every HTTP handler the router mounts.
type Handlers struct {
	Article  *article_handler.Handler
	Auth     *auth_handler.Handler
	Tag      *tag_handler.Handler
	Category *category_handler.Handler
	Contact  *contact_handler.Handler
}

// Setup mounts the full API surface on the engine.
//
//	/api/public — anonymous read endpoints plus the contact form
//	/api/auth   — account lifecycle
//	/api/admin  — JWT + admin gate, full CRUD
func Setup(engine *gin.Engine, h *Handlers, mw *middleware.Middleware, allowedOrigins string) {
	engine.Use(middleware.Cors(allowedOrigins))

	api := engine.Group("/api")

	public := api.Group("/public")
	{
		public.GET("/articles", h.Article.ListPublic)
		public.GET("/articles/:slug", h.Article.GetPublicBySlug)
		public.GET("/archive", h.Article.Archive)
		public.GET("/categories", h.Category.List)
		public.GET("/tags", h.Tag.List)
		public.POST("/contact", h.Contact.Submit)
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/logout", h.Auth.Logout)
		authGroup.POST("/refresh", h.Auth.Refresh)
		authGroup.GET("/me", mw.JWTAuth(), h.Auth.Me)
	}

	admin := api.Group("/admin", mw.JWTAuth(), mw.AdminRequired())
	{
		admin.GET("/articles", h.Article.List)
		admin.GET("/articles/:id", h.Article.Get)
		admin.POST("/articles", h.Article.Create)
		admin.PUT("/articles/:id", h.Article.Update)
		admin.DELETE("/articles/:id", h.Article.Delete)

		admin.GET("/tags", h.Tag.List)
		admin.GET("/tags/:id", h.Tag.Get)
		admin.POST("/tags", h.Tag.Create)
		admin.PUT("/tags/:id", h.Tag.Update)
		admin.DELETE("/tags/:id", h.Tag.Delete)

		admin.GET("/categories", h.Category.List)
		admin.GET("/categories/:id", h.Category.Get)
		admin.POST("/categories", h.Category.Create)
		admin.PUT("/categories/:id", h.Category.Update)
		admin.DELETE("/categories/:id", h.Category.Delete)

		admin.GET("/contact-messages", h.Contact.List)
	}
}

package app

import (
	authHandler "github.com/WINZED31/Baladeya/internal/handlers/auth"
	pagesHandler "github.com/WINZED31/Baladeya/internal/handlers/pages"
	"github.com/WINZED31/Baladeya/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthHandler       *authHandler.Handler
	PagesHandler      *pagesHandler.Handler
	SessionMiddleware *middleware.SessionMiddleware
	Registry          *prometheus.Registry
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	// ==================== Health & Metrics ====================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.Registry, promhttp.HandlerOpts{})))

	// ==================== Public Pages ====================
	r.GET("/", h.PagesHandler.Home)
	r.GET("/faq", h.PagesHandler.FAQ)
	r.GET("/login", h.AuthHandler.LoginPage)
	r.POST("/login", h.AuthHandler.Login)
	r.POST("/signup", h.AuthHandler.Signup)
	r.POST("/logout", h.AuthHandler.Logout)
	r.POST("/language", h.AuthHandler.Language)

	// ==================== Citizen Pages ====================
	citizen := r.Group("/")
	citizen.Use(h.SessionMiddleware.RequireAuth())
	{
		citizen.GET("/complaints/new", h.PagesHandler.ComplaintForm)
		citizen.POST("/complaints", h.PagesHandler.SubmitComplaint)
		citizen.GET("/complaints", h.PagesHandler.Tracker)
		citizen.GET("/complaints/:id", h.PagesHandler.ComplaintDetails)
		citizen.GET("/profile", h.PagesHandler.Profile)
	}

	// ==================== Admin Pages ====================
	admin := r.Group("/admin")
	admin.Use(h.SessionMiddleware.RequireAuth(), h.SessionMiddleware.RequireAdmin())
	{
		admin.GET("", h.PagesHandler.Admin)
		admin.POST("/complaints/:id/status", h.PagesHandler.UpdateStatus)
		admin.GET("/analytics", h.PagesHandler.Analytics)
		admin.GET("/analytics/data", h.PagesHandler.AnalyticsData)
	}
}

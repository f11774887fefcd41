package handlers

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/ratelimit"
)

type Handlers struct {
	Jobs         *JobHandler
	Applications *ApplicationHandler
	Blog         *BlogHandler
	Companies    *CompanyHandler
	Contact      *ContactHandler
	Uploads      *UploadHandler
	DB           Pinger
}

type RouterOptions struct {
	AllowedOrigins []string
	// Leave a limiter nil to disable throttling of that route.
	ContactLimiter ratelimit.Limiter
	ApplyLimiter   ratelimit.Limiter
	Logger         *log.Logger
}

// RecoveryMiddleware turns panics into a logged 500.
func RecoveryMiddleware(logger *log.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Printf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	return config
}

func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), RecoveryMiddleware(opts.Logger))
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck(h.DB))

		// Job Routes
		api.GET("/jobs", h.Jobs.ListJobs)
		api.GET("/jobs/featured", h.Jobs.FeaturedJobs)
		api.GET("/jobs/:id", h.Jobs.GetJob)
		api.POST("/jobs/:id/apply", ratelimit.Middleware(opts.ApplyLimiter, opts.Logger), h.Applications.Apply)

		api.GET("/uploads/:filename", h.Uploads.ServeUpload)

		api.GET("/blog", h.Blog.ListPosts)
		api.GET("/blog/:slug", h.Blog.GetPost)

		api.GET("/companies", h.Companies.ListCompanies)
		api.GET("/companies/:id", h.Companies.GetCompany)

		api.POST("/contact", ratelimit.Middleware(opts.ContactLimiter, opts.Logger), h.Contact.CreateMessage)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	return r
}

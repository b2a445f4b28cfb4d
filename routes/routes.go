package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-wavecleanup/analysis"
	"go-wavecleanup/db"
	"go-wavecleanup/geocode"
	"go-wavecleanup/handlers"
	"go-wavecleanup/logging"
	"go-wavecleanup/mission"
	"go-wavecleanup/web"
)

// Deps is everything the handlers need.
type Deps struct {
	Store    db.Store
	Mission  *mission.Service
	Analyzer analysis.Analyzer
	Locator  *geocode.Locator // optional
	Logger   *zap.Logger
	Now      func() time.Time
}

func SetupRouter(d Deps) (*gin.Engine, error) {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	contact := d.Mission.ContactSubmitter()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	r := gin.New()
	r.Use(logging.GinMiddleware(d.Logger), gin.Recovery())
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))

	r.GET("/healthz", handlers.Health)

	// pages
	r.GET("/", handlers.Home)
	r.POST("/join", func(c *gin.Context) {
		handlers.Join(c, d.Mission, d.Logger)
	})
	r.GET("/dashboard", func(c *gin.Context) {
		handlers.Dashboard(c, d.Now())
	})
	r.GET("/workflow", handlers.Workflow)
	r.GET("/upload", handlers.Upload)
	r.POST("/upload", func(c *gin.Context) {
		handlers.UploadAnalyze(c, d.Analyzer, d.Locator, d.Logger)
	})
	r.GET("/partner", handlers.Partner)
	r.POST("/partner", func(c *gin.Context) {
		handlers.PartnerApply(c, d.Mission, d.Logger)
	})
	r.GET("/about", handlers.About)
	r.GET("/contact", handlers.Contact)
	r.POST("/contact", func(c *gin.Context) {
		handlers.ContactSubmit(c, contact, d.Logger)
	})

	// api routes
	api := r.Group("/api")
	{
		api.POST("/users", func(c *gin.Context) {
			handlers.CreateUser(c, d.Mission, d.Logger)
		})
		api.GET("/users/:id", func(c *gin.Context) {
			handlers.GetUser(c, d.Store, d.Logger)
		})
		api.POST("/contact", func(c *gin.Context) {
			handlers.CreateContactMessage(c, d.Mission, d.Logger)
		})
		api.POST("/partners/applications", func(c *gin.Context) {
			handlers.CreatePartnerApplication(c, d.Mission, d.Logger)
		})
		api.POST("/analyze", func(c *gin.Context) {
			handlers.AnalyzeImage(c, d.Analyzer, d.Locator, d.Logger)
		})
		api.GET("/hotspots", handlers.GetHotspots)
		api.GET("/hotspots/:id", handlers.GetHotspot)
		api.GET("/waste-locations", handlers.GetWasteLocations)
		api.GET("/dashboard", func(c *gin.Context) {
			handlers.GetDashboard(c, d.Store, d.Now(), d.Logger)
		})
		api.GET("/digests/latest", func(c *gin.Context) {
			handlers.GetLatestDigest(c, d.Store, d.Logger)
		})
	}

	return r, nil
}

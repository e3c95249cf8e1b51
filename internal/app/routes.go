package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wandererhq/wanderer-core/internal/middleware"
	"github.com/wandererhq/wanderer-core/internal/modules/admin"
	"github.com/wandererhq/wanderer-core/internal/modules/auth"
	"github.com/wandererhq/wanderer-core/internal/modules/catalog/accommodation"
	"github.com/wandererhq/wanderer-core/internal/modules/catalog/category"
	"github.com/wandererhq/wanderer-core/internal/modules/catalog/event"
	"github.com/wandererhq/wanderer-core/internal/modules/catalog/restaurant"
	"github.com/wandererhq/wanderer-core/internal/modules/catalog/spot"
	"github.com/wandererhq/wanderer-core/internal/modules/favorite"
	"github.com/wandererhq/wanderer-core/internal/modules/importer"
	"github.com/wandererhq/wanderer-core/internal/modules/itinerary"
	"github.com/wandererhq/wanderer-core/internal/modules/onboarding"
	"github.com/wandererhq/wanderer-core/internal/modules/recommend"
	"github.com/wandererhq/wanderer-core/internal/modules/review"
	"github.com/wandererhq/wanderer-core/internal/modules/user"
	pkgredis "github.com/wandererhq/wanderer-core/internal/pkg/redis"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
	"github.com/wandererhq/wanderer-core/internal/pkg/taskqueue"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)
	adminMW := []gin.HandlerFunc{authMW, middleware.RequireAdmin(db)}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":    "wanderer-core",
		"version": "1.0.0",
	}

	// Rate limiting runs on every route (requires Redis).
	r.Use(middleware.RateLimit(rc.Raw()))

	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth(db))
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{
		TTL:       15 * time.Second,
		Disable:   a.cfg.IsDev(),
		SkipPaths: httpCacheSkipPaths(apiPrefix),
	}))

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		uptimeMs := time.Since(a.startTime()).Milliseconds()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": uptimeMs,
			"humanize":  humanizeDuration(time.Duration(uptimeMs) * time.Millisecond),
		})
	})

	// Auth & profile
	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)
	user.NewHandler(user.NewService(db)).RegisterRoutes(api, authMW)
	onboarding.NewHandler(db).RegisterRoutes(api, authMW)

	// Catalog: public reads, admin writes
	spot.NewHandler(spot.NewService(db)).RegisterRoutes(api, adminMW...)
	accommodation.NewHandler(accommodation.NewService(db)).RegisterRoutes(api, adminMW...)
	restaurant.NewHandler(db).RegisterRoutes(api, adminMW...)
	event.NewHandler(db).RegisterRoutes(api, adminMW...)
	category.NewHandler(category.NewService(db)).RegisterRoutes(api, adminMW...)

	// Recommendations
	recommend.NewHandler(recommend.NewService(db)).RegisterRoutes(api, authMW)

	// Trip planning
	itinerary.NewHandler(itinerary.NewService(db)).RegisterRoutes(api, authMW)
	favorite.NewHandler(favorite.NewService(db)).RegisterRoutes(api, authMW)

	// Reviews
	review.NewHandler(review.NewService(db)).RegisterRoutes(api, authMW)

	// Admin: user management, jobs, cache
	admin.NewHandler(admin.NewService(db), a.sched, rc).RegisterRoutes(api, adminMW...)

	// CSV bulk import, admin only
	taskSvc := taskqueue.NewService(rc)
	importGrp := api.Group("", adminMW...)
	importer.NewHandler(importer.NewService(db, a.logger), taskSvc, a.logger).RegisterRoutes(importGrp)
}

func httpCacheSkipPaths(prefix string) []string {
	p := strings.TrimSuffix(strings.TrimSpace(prefix), "/")
	if p == "" {
		p = apiPrefix
	}
	return []string{
		p + "/uptime",
		p + "/auth/*",
		p + "/recommendations/*",
		p + "/import",
		p + "/import/*",
		p + "/admin/*",
	}
}

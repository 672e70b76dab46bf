package http

import (
	"sync"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/home"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/nav"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// SnapshotRenderer is the rendering collaborator backing the HTTP
// adapter: it keeps the latest page snapshot for GET /view. The lock is
// for readers only; all Render calls come from the single dispatch path.
type SnapshotRenderer struct {
	mu   sync.RWMutex
	view models.View
}

func (r *SnapshotRenderer) Render(view models.View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view = view
}

func (r *SnapshotRenderer) Latest() models.View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.view
}

type RestfulServer struct {
	Server           *gin.Engine
	Dispatcher       *nav.Dispatcher
	Snapshot         *SnapshotRenderer
	RateLimiterStore *home.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(username string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(username)
	}
}

// CheckUserLimiter rate-limits interaction commands per logged-in user;
// pre-login commands share the anonymous bucket.
func (rs *RestfulServer) CheckUserLimiter() bool {
	limiter := rs.GetLimiter(rs.currentUser())
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(username string, userRate float64, userBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(username, rate.Limit(userRate), userBurst)
}

func (rs *RestfulServer) currentUser() string {
	session := rs.Dispatcher.Home.Session.Current()
	if !session.LoggedIn() {
		return "anonymous"
	}
	return session.Username
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/view", rs.GetView)

	rs.Server.POST("/session/login", rs.PostLogin)

	devices := rs.Server.Group("/devices/:device_id")
	{
		devices.POST("/toggle", rs.PostToggleDevice)
		devices.POST("/level", rs.PostDeviceLevel)
	}

	rs.Server.POST("/rules/:rule_id/toggle", rs.PostToggleRule)
	rs.Server.POST("/notifications/clear", rs.PostClearNotifications)

	rs.Server.POST("/navigate", rs.PostNavigate)
	rs.Server.POST("/back", rs.PostBack)
	rs.Server.POST("/theme/toggle", rs.PostToggleTheme)

	statistics := rs.Server.Group("/statistics")
	{
		statistics.POST("/filters", rs.PostLogFilters)
		statistics.POST("/export", rs.PostExportLog)
	}

	rs.Server.POST("/users/:username/limiter", rs.PostLimiter)
}

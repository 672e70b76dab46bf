package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/home"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/nav"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// statusFor maps the model's recoverable error taxonomy onto HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, home.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, home.ErrNotFound), errors.Is(err, home.ErrUnknownDevice):
		return http.StatusNotFound
	case errors.Is(err, home.ErrInvalidOperation), errors.Is(err, home.ErrOutOfRange):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (rs *RestfulServer) dispatch(c *gin.Context, cmd nav.Command) {
	if err := rs.Dispatcher.Dispatch(cmd); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Snapshot.Latest())
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Required(),
	"Password": z.String().Required(),
})

func (rs *RestfulServer) PostLogin(c *gin.Context) {
	if !rs.CheckUserLimiter() {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.dispatch(c, nav.Login{Username: req.Username, Password: req.Password})
}

func (rs *RestfulServer) PostToggleDevice(c *gin.Context) {
	if !rs.CheckUserLimiter() {
		c.Status(http.StatusTooManyRequests)
		return
	}

	rs.dispatch(c, nav.ToggleDevice{DeviceID: c.Param("device_id")})
}

type LevelRequest struct {
	Value float64 `json:"value"`
}

var levelRequestSchema = z.Struct(z.Shape{
	"Value": z.Float64().Required(),
})

func (rs *RestfulServer) PostDeviceLevel(c *gin.Context) {
	if !rs.CheckUserLimiter() {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req LevelRequest
	if err := levelRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.dispatch(c, nav.SetDeviceLevel{DeviceID: c.Param("device_id"), Value: req.Value})
}

func (rs *RestfulServer) PostToggleRule(c *gin.Context) {
	if !rs.CheckUserLimiter() {
		c.Status(http.StatusTooManyRequests)
		return
	}

	ruleID, err := strconv.Atoi(c.Param("rule_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rule_id must be an integer"})
		return
	}

	rs.dispatch(c, nav.ToggleRule{RuleID: ruleID})
}

func (rs *RestfulServer) PostClearNotifications(c *gin.Context) {
	if !rs.CheckUserLimiter() {
		c.Status(http.StatusTooManyRequests)
		return
	}

	rs.dispatch(c, nav.ClearNotifications{})
}

type NavigateRequest struct {
	Page   string `json:"page"`
	Room   string `json:"room"`
	Device string `json:"device"`
}

var navigateRequestSchema = z.Struct(z.Shape{
	"Page":   z.String().Required(),
	"Room":   z.String(),
	"Device": z.String(),
})

func (rs *RestfulServer) PostNavigate(c *gin.Context) {
	if !rs.CheckUserLimiter() {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req NavigateRequest
	if err := navigateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	switch models.PageID(req.Page) {
	case models.PageRoomDetail:
		rs.dispatch(c, nav.ViewRoom{Room: req.Room})
	case models.PageDeviceDetail:
		rs.dispatch(c, nav.ViewDevice{DeviceID: req.Device})
	default:
		rs.dispatch(c, nav.Navigate{Page: models.PageID(req.Page)})
	}
}

func (rs *RestfulServer) PostBack(c *gin.Context) {
	if !rs.CheckUserLimiter() {
		c.Status(http.StatusTooManyRequests)
		return
	}

	rs.dispatch(c, nav.Back{})
}

func (rs *RestfulServer) PostToggleTheme(c *gin.Context) {
	if !rs.CheckUserLimiter() {
		c.Status(http.StatusTooManyRequests)
		return
	}

	rs.dispatch(c, nav.ToggleTheme{})
}

type LogFiltersRequest struct {
	Device string `json:"device"`
	Room   string `json:"room"`
	User   string `json:"user"`
}

var logFiltersRequestSchema = z.Struct(z.Shape{
	"Device": z.String(),
	"Room":   z.String(),
	"User":   z.String(),
})

func (rs *RestfulServer) PostLogFilters(c *gin.Context) {
	if !rs.CheckUserLimiter() {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req LogFiltersRequest
	if err := logFiltersRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.dispatch(c, nav.ApplyLogFilters{Filters: models.LogFilters{
		DeviceID: req.Device,
		Room:     req.Room,
		User:     req.User,
	}})
}

func (rs *RestfulServer) PostExportLog(c *gin.Context) {
	if !rs.CheckUserLimiter() {
		c.Status(http.StatusTooManyRequests)
		return
	}

	rs.dispatch(c, nav.ExportLog{})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(c.Param("username"), req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

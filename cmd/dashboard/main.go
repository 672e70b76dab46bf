package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/common"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/config"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/db"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/home"
	dashHttp "github.com/Adebola11/Smart-Home-Controller-Pro/pkg/http"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/nav"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultRate  = 5.0
	defaultBurst = 10
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing with process environment")
	}

	var dbInstance *db.DB
	dashDbType := os.Getenv(common.EnvKeyDashDBType)
	switch dashDbType {
	case "", "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	default:
		log.Fatal("Unknown DASH_DB_TYPE: " + dashDbType)
	}

	logger := common.GetLogger()

	clock := home.SystemClock{}

	seed, err := config.LoadSeed(os.Getenv(common.EnvKeyDashSeedFile), clock.Now())
	if err != nil {
		log.Fatalf("Invalid seed: %v", err)
	}

	homeCore, err := home.New(*dbInstance, clock, seed)
	if err != nil {
		log.Fatalf("Failed to build home state: %v", err)
	}
	homeCore.WithServices(home.ServiceOpts{
		Devices: homeCore.GetIDeviceRegistry(),
		Log:     homeCore.GetIActionLog(),
		Feed:    homeCore.GetINotificationFeed(),
		Rules:   homeCore.GetIRuleStore(),
		Session: homeCore.GetISession(),
		Stats:   homeCore.GetIStats(),
	})

	limiterRate := defaultRate
	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyDashDefaultRate)); raw != "" {
		if limiterRate, err = strconv.ParseFloat(raw, 64); err != nil {
			log.Fatal("Invalid DASH_DEFAULT_RATE, should be a float64 value")
		}
	}

	limiterBurst := defaultBurst
	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyDashDefaultBurst)); raw != "" {
		var burst int64
		if burst, err = strconv.ParseInt(raw, 10, 64); err != nil {
			log.Fatal("Invalid DASH_DEFAULT_BURST, should be an int value")
		}
		limiterBurst = int(burst)
	}

	snapshot := &dashHttp.SnapshotRenderer{}
	navigator := nav.New(homeCore, snapshot)
	dispatcher := &nav.Dispatcher{
		Home:      homeCore,
		Nav:       navigator,
		ExportDir: os.Getenv(common.EnvKeyDashExportDir),
	}

	// First render, so GET /view has a login page before any interaction.
	if err := navigator.Refresh(); err != nil {
		log.Fatalf("Failed to render initial view: %v", err)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyDashHttpHostPort))
	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &dashHttp.RestfulServer{
		Server:           gin.Default(),
		Dispatcher:       dispatcher,
		Snapshot:         snapshot,
		RateLimiterStore: home.NewRateLimiterStore(rate.Limit(limiterRate), limiterBurst),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Float64("default_rate", limiterRate),
		zap.Int("default_burst", limiterBurst))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}

package nav

import (
	"testing"
	"time"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/db"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/home"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func seedOf(devices ...models.Device) home.Seed {
	return home.Seed{
		Devices: devices,
		Users: map[string]models.Credential{
			"admin": {Password: "admin123", Role: models.RoleAdmin},
		},
	}
}

// newTestHome wires a fully real Home over the shared in-memory
// database. Tests isolate their log rows with uuid device ids.
func newTestHome(t *testing.T, seed home.Seed) *home.Home {
	t.Helper()
	dbInstance := db.GetInstance(db.UseMemorySqliteDialector())
	h, err := home.New(*dbInstance, fixedClock{now: testNow}, seed)
	require.NoError(t, err)
	h.WithServices(home.ServiceOpts{
		Devices: h.GetIDeviceRegistry(),
		Log:     h.GetIActionLog(),
		Feed:    h.GetINotificationFeed(),
		Rules:   h.GetIRuleStore(),
		Session: h.GetISession(),
		Stats:   h.GetIStats(),
	})
	return h
}

// discardRenderer is for tests that exercise navigation state without
// asserting on rendered snapshots.
var discardRenderer = RenderFunc(func(models.View) {})

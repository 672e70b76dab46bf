package home

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/db"
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

// GetTestHomeWithMemorySqliteDialector builds a fully wired Home over
// the shared in-memory database. Tests isolate their rows with uuid
// device ids or delta assertions.
func GetTestHomeWithMemorySqliteDialector(t *testing.T, seed Seed, clock Clock) *Home {
	t.Helper()

	dbInstance := db.GetInstance(db.UseMemorySqliteDialector())

	h, err := New(*dbInstance, clock, seed)
	require.NoError(t, err)

	h.WithServices(ServiceOpts{
		Devices: h.GetIDeviceRegistry(),
		Log:     h.GetIActionLog(),
		Feed:    h.GetINotificationFeed(),
		Rules:   h.GetIRuleStore(),
		Session: h.GetISession(),
		Stats:   h.GetIStats(),
	})

	return h
}

func seedOf(devices ...models.Device) Seed {
	return Seed{
		Devices: devices,
		Users: map[string]models.Credential{
			"admin": {Password: "admin123", Role: models.RoleAdmin},
		},
	}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

package home

import (
	"math/rand"
	"time"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
)

// Seed is the fixed process-start state: devices, rules, credential
// table, 24 hourly energy samples, and any pre-existing log entries.
type Seed struct {
	Devices    []models.Device
	Rules      []models.AutomationRule
	Users      map[string]models.Credential
	Energy     []int
	LogEntries []models.ActionEntry
}

const (
	energyMinWatts = 50
	energyMaxWatts = 200
	energyHours    = 24
)

// RandomEnergySeries simulates 24 hourly consumption samples. Seeded
// once per process; there is no live metering behind it.
func RandomEnergySeries() []int {
	series := make([]int, energyHours)
	for i := range series {
		series[i] = energyMinWatts + rand.Intn(energyMaxWatts-energyMinWatts+1)
	}
	return series
}

// DefaultSeed is the demo household. now anchors the pre-seeded log entry.
func DefaultSeed(now time.Time) Seed {
	return Seed{
		Devices: []models.Device{
			{ID: "light1", Name: "Living Room Light", Type: models.DeviceTypeLight, Room: "Living Room", PowerW: 60},
			{ID: "light2", Name: "Bedroom Light", Type: models.DeviceTypeLight, Room: "Bedroom", PowerW: 40},
			{ID: "door1", Name: "Front Door", Type: models.DeviceTypeDoor, Room: "Entrance", PowerW: 5, State: true},
			{ID: "camera1", Name: "Front Camera", Type: models.DeviceTypeCamera, Room: "Entrance", PowerW: 10, State: true},
			{ID: "fan1", Name: "Bedroom Fan", Type: models.DeviceTypeFan, Room: "Bedroom", PowerW: 75},
			{ID: "thermostat1", Name: "Living Room Thermostat", Type: models.DeviceTypeThermostat, Room: "Living Room", PowerW: 150, Value: 22.0},
		},
		Rules: []models.AutomationRule{
			{ID: 1, Name: "Evening Lights", Time: "18:00", DeviceID: "light1", Action: "Turn ON", Enabled: true},
			{ID: 2, Name: "Night Mode", Time: "22:00", DeviceID: "light1", Action: "Turn OFF", Enabled: true},
		},
		Users: map[string]models.Credential{
			"admin": {Password: "admin123", Role: models.RoleAdmin},
			"user":  {Password: "user123", Role: models.RoleUser},
			"guest": {Password: "guest123", Role: models.RoleGuest},
		},
		Energy: RandomEnergySeries(),
		LogEntries: []models.ActionEntry{
			{
				Timestamp: now.Add(-2 * time.Hour),
				DeviceID:  "light1",
				Action:    "Turn ON",
				User:      "admin",
				Room:      "Living Room",
			},
		},
	}
}

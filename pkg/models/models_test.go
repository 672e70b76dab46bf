package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToggleAction(t *testing.T) {
	assert.Equal(t, "Turn ON", ToggleAction(DeviceTypeLight, true))
	assert.Equal(t, "Turn OFF", ToggleAction(DeviceTypeLight, false))
	assert.Equal(t, "Lock", ToggleAction(DeviceTypeDoor, true))
	assert.Equal(t, "Unlock", ToggleAction(DeviceTypeDoor, false))
	assert.Equal(t, "Enable", ToggleAction(DeviceTypeCamera, true))
	assert.Equal(t, "Disable", ToggleAction(DeviceTypeCamera, false))
}

func TestLevelAction(t *testing.T) {
	assert.Equal(t, "Set to 21.5°C", LevelAction(DeviceTypeThermostat, 21.5))
	assert.Equal(t, "Set to 30.0°C", LevelAction(DeviceTypeThermostat, 30))
	assert.Equal(t, "Set speed to 2", LevelAction(DeviceTypeFan, 2))
}

func TestDeviceActive(t *testing.T) {
	assert.True(t, Device{Type: DeviceTypeLight, State: true}.Active())
	assert.False(t, Device{Type: DeviceTypeLight}.Active())
	assert.True(t, Device{Type: DeviceTypeFan, Value: 1}.Active())
	assert.False(t, Device{Type: DeviceTypeThermostat, Value: 0}.Active())
}

func TestDomain(t *testing.T) {
	min, max, step := DeviceTypeFan.Domain()
	assert.Equal(t, []float64{0, 3, 1}, []float64{min, max, step})

	min, max, step = DeviceTypeThermostat.Domain()
	assert.Equal(t, []float64{15, 30, 0.5}, []float64{min, max, step})
}

func TestExported(t *testing.T) {
	entry := ActionEntry{
		Timestamp: time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
		DeviceID:  "light1",
		Action:    "Turn ON",
		User:      "admin",
		Room:      "Living Room",
	}

	assert.Equal(t, ExportedAction{
		Time:   "2024-06-15 10:30:00",
		Device: "light1",
		Action: "Turn ON",
		User:   "admin",
		Room:   "Living Room",
	}, entry.Exported())
}

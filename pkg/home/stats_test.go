package home

import (
	"testing"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/common"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
	_ "github.com/Adebola11/Smart-Home-Controller-Pro/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalActivePower(t *testing.T) {
	common.SetTestLoggerNop()

	lightOnID := uuid.NewString()
	lightOffID := uuid.NewString()
	fanID := uuid.NewString()
	thermostatID := uuid.NewString()
	h := GetTestHomeWithMemorySqliteDialector(t, seedOf(
		models.Device{ID: lightOnID, Name: "On Light", Type: models.DeviceTypeLight, Room: "A", PowerW: 60, State: true},
		models.Device{ID: lightOffID, Name: "Off Light", Type: models.DeviceTypeLight, Room: "A", PowerW: 40},
		models.Device{ID: fanID, Name: "Fan", Type: models.DeviceTypeFan, Room: "B", PowerW: 75, Value: 2},
		models.Device{ID: thermostatID, Name: "Thermostat", Type: models.DeviceTypeThermostat, Room: "B", PowerW: 150, Value: 15},
	), fixedClock{now: testNow})

	// 60 (light on) + 75*2/3 (fan) + 150*15/30 (thermostat) = 185.
	assert.InDelta(t, 185.0, h.Stats.TotalActivePower(), 1e-9)
	assert.Equal(t, 3, h.Stats.ActiveDeviceCount())
}

func TestTotalActivePowerAllIdle(t *testing.T) {
	common.SetTestLoggerNop()

	h := GetTestHomeWithMemorySqliteDialector(t, seedOf(
		models.Device{ID: uuid.NewString(), Name: "Off Light", Type: models.DeviceTypeLight, Room: "A", PowerW: 60},
		models.Device{ID: uuid.NewString(), Name: "Idle Fan", Type: models.DeviceTypeFan, Room: "B", PowerW: 75},
	), fixedClock{now: testNow})

	assert.Equal(t, 0.0, h.Stats.TotalActivePower())
	assert.Equal(t, 0, h.Stats.ActiveDeviceCount())
}

func TestEnergySummary(t *testing.T) {
	common.SetTestLoggerNop()

	seed := seedOf()
	seed.Energy = []int{100, 200, 150, 50}
	h := GetTestHomeWithMemorySqliteDialector(t, seed, fixedClock{now: testNow})

	summary := h.Stats.Summary()
	assert.InDelta(t, 0.5, summary.TotalEnergyKwh, 1e-9)
	assert.InDelta(t, 125.0, summary.AveragePowerW, 1e-9)
	assert.Equal(t, 200, summary.PeakPowerW)

	series := h.Stats.EnergySeries()
	assert.Equal(t, seed.Energy, series)

	// The returned series is a copy.
	series[0] = 0
	assert.Equal(t, 100, h.Stats.EnergySeries()[0])
}

func TestEnergySummaryEmptySeries(t *testing.T) {
	common.SetTestLoggerNop()

	h := GetTestHomeWithMemorySqliteDialector(t, seedOf(), fixedClock{now: testNow})

	assert.Equal(t, models.EnergySummary{}, h.Stats.Summary())
	assert.Empty(t, h.Stats.EnergySeries())
}

func TestFilteredLog(t *testing.T) {
	common.SetTestLoggerNop()

	lightID := uuid.NewString()
	h := GetTestHomeWithMemorySqliteDialector(t, seedOf(
		models.Device{ID: lightID, Name: "Test Light", Type: models.DeviceTypeLight, Room: "Study", PowerW: 60},
	), fixedClock{now: testNow})

	require.NoError(t, h.Log.Record(&models.ActionEntry{DeviceID: lightID, Action: "Turn ON", User: "admin", Room: "Study"}))

	entries, err := h.Stats.FilteredLog(models.LogFilters{DeviceID: lightID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Turn ON", entries[0].Action)
}

package nav

import (
	"testing"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/common"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
	_ "github.com/Adebola11/Smart-Home-Controller-Pro/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderedView(t *testing.T, n *Navigator) models.View {
	t.Helper()
	var rendered models.View
	n.renderer = RenderFunc(func(v models.View) { rendered = v })
	require.NoError(t, n.Refresh())
	return rendered
}

func TestBuildOverview(t *testing.T) {
	common.SetTestLoggerNop()

	lightID := uuid.NewString()
	fanID := uuid.NewString()
	h := newTestHome(t, seedOf(
		models.Device{ID: lightID, Name: "Test Light", Type: models.DeviceTypeLight, Room: "A", PowerW: 60, State: true},
		models.Device{ID: fanID, Name: "Test Fan", Type: models.DeviceTypeFan, Room: "B", PowerW: 75},
	))
	n := New(h, discardRenderer)
	n.NavigateTo(models.PageOverview)

	view := renderedView(t, n)
	assert.Equal(t, mainPages, view.NavTargets)
	require.NotNil(t, view.Overview)
	assert.Equal(t, 1, view.Overview.ActiveDevices)
	assert.Equal(t, 2, view.Overview.TotalDevices)
	assert.Equal(t, 60.0, view.Overview.TotalPowerW)
	require.Len(t, view.Overview.Devices, 2)
	assert.Equal(t, lightID, view.Overview.Devices[0].ID)
}

func TestBuildRooms(t *testing.T) {
	common.SetTestLoggerNop()

	h := newTestHome(t, seedOf(
		models.Device{ID: uuid.NewString(), Name: "L1", Type: models.DeviceTypeLight, Room: "A", PowerW: 60, State: true},
		models.Device{ID: uuid.NewString(), Name: "L2", Type: models.DeviceTypeLight, Room: "A", PowerW: 40},
		models.Device{ID: uuid.NewString(), Name: "D1", Type: models.DeviceTypeDoor, Room: "B", PowerW: 5},
	))
	n := New(h, discardRenderer)
	n.NavigateTo(models.PageRooms)

	view := renderedView(t, n)
	require.NotNil(t, view.Rooms)
	require.Len(t, view.Rooms.Rooms, 2)
	assert.Equal(t, models.RoomSummary{Name: "A", DeviceCount: 2, ActiveCount: 1}, view.Rooms.Rooms[0])
	assert.Equal(t, models.RoomSummary{Name: "B", DeviceCount: 1, ActiveCount: 0}, view.Rooms.Rooms[1])
}

func TestBuildRoomDetail(t *testing.T) {
	common.SetTestLoggerNop()

	lightID := uuid.NewString()
	h := newTestHome(t, seedOf(
		models.Device{ID: lightID, Name: "L1", Type: models.DeviceTypeLight, Room: "A", PowerW: 60},
		models.Device{ID: uuid.NewString(), Name: "D1", Type: models.DeviceTypeDoor, Room: "B", PowerW: 5},
	))
	n := New(h, discardRenderer)
	n.ViewRoom("A")

	view := renderedView(t, n)
	require.NotNil(t, view.RoomDetail)
	assert.Equal(t, "A", view.RoomDetail.Room)
	require.Len(t, view.RoomDetail.Devices, 1)
	assert.Equal(t, lightID, view.RoomDetail.Devices[0].ID)
}

func TestBuildStatistics(t *testing.T) {
	common.SetTestLoggerNop()

	lightID := uuid.NewString()
	room := "Room-" + uuid.NewString()
	seed := seedOf(
		models.Device{ID: lightID, Name: "Test Light", Type: models.DeviceTypeLight, Room: room, PowerW: 60},
	)
	seed.Energy = []int{100, 200}
	h := newTestHome(t, seed)
	require.NoError(t, h.Log.Record(&models.ActionEntry{DeviceID: lightID, Action: "Turn ON", User: "admin", Room: room}))

	n := New(h, discardRenderer)
	n.NavigateTo(models.PageStatistics)
	n.SetFilters(models.LogFilters{DeviceID: lightID})

	view := renderedView(t, n)
	require.NotNil(t, view.Statistics)
	stats := view.Statistics

	assert.Equal(t, models.LogFilters{DeviceID: lightID}, stats.Filters)
	require.Len(t, stats.Entries, 1)
	assert.Equal(t, "Turn ON", stats.Entries[0].Action)

	require.Len(t, stats.Series, 2)
	assert.Equal(t, models.HourlySample{Hour: "00:00", Watts: 100}, stats.Series[0])
	assert.Equal(t, models.HourlySample{Hour: "01:00", Watts: 200}, stats.Series[1])
	assert.InDelta(t, 0.3, stats.Summary.TotalEnergyKwh, 1e-9)

	assert.Equal(t, []string{lightID}, stats.DeviceOptions)
	assert.Equal(t, []string{room}, stats.RoomOptions)
	assert.Contains(t, stats.UserOptions, "admin")
}

func TestBuildDeviceDetail(t *testing.T) {
	common.SetTestLoggerNop()

	lightID := uuid.NewString()
	h := newTestHome(t, seedOf(
		models.Device{ID: lightID, Name: "Test Light", Type: models.DeviceTypeLight, Room: "A", PowerW: 60},
	))
	require.NoError(t, h.Log.Record(&models.ActionEntry{DeviceID: lightID, Action: "Turn ON", User: "admin", Room: "A"}))
	require.NoError(t, h.Log.Record(&models.ActionEntry{DeviceID: lightID, Action: "Turn OFF", User: "admin", Room: "A"}))

	n := New(h, discardRenderer)
	n.ViewDevice(lightID)

	view := renderedView(t, n)
	require.NotNil(t, view.DeviceDetail)
	assert.Equal(t, lightID, view.DeviceDetail.Device.ID)
	require.Len(t, view.DeviceDetail.RecentActions, 2)
	assert.Equal(t, "Turn OFF", view.DeviceDetail.RecentActions[0].Action)
}

func TestBuildDeviceDetailCapsActions(t *testing.T) {
	common.SetTestLoggerNop()

	lightID := uuid.NewString()
	h := newTestHome(t, seedOf(
		models.Device{ID: lightID, Name: "Test Light", Type: models.DeviceTypeLight, Room: "A", PowerW: 60},
	))
	for i := 0; i < deviceDetailActions+5; i++ {
		require.NoError(t, h.Log.Record(&models.ActionEntry{DeviceID: lightID, Action: "Turn ON", User: "admin", Room: "A"}))
	}

	n := New(h, discardRenderer)
	n.ViewDevice(lightID)

	view := renderedView(t, n)
	require.NotNil(t, view.DeviceDetail)
	assert.Len(t, view.DeviceDetail.RecentActions, deviceDetailActions)
}

func TestBuildDeviceDetailUnknownDevice(t *testing.T) {
	common.SetTestLoggerNop()

	n := New(newTestHome(t, seedOf()), discardRenderer)
	n.ViewDevice(uuid.NewString())

	assert.Error(t, n.Refresh())
}

func TestBuildAutomationAndNotifications(t *testing.T) {
	common.SetTestLoggerNop()

	seed := seedOf()
	seed.Rules = []models.AutomationRule{
		{ID: 1, Name: "Evening Lights", Time: "18:00", DeviceID: uuid.NewString(), Action: "Turn ON", Enabled: true},
	}
	h := newTestHome(t, seed)
	h.Feed.Post("hello", models.SeverityInfo)

	n := New(h, discardRenderer)

	n.NavigateTo(models.PageAutomation)
	view := renderedView(t, n)
	require.NotNil(t, view.Automation)
	require.Len(t, view.Automation.Rules, 1)
	assert.Equal(t, "Evening Lights", view.Automation.Rules[0].Name)

	n.NavigateTo(models.PageNotifications)
	view = renderedView(t, n)
	require.NotNil(t, view.Notifications)
	require.Len(t, view.Notifications.Items, 1)
	assert.Equal(t, "hello", view.Notifications.Items[0].Message)
}

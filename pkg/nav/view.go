package nav

import (
	"fmt"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/common"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
)

// statisticsLogRows caps the rows shown on the statistics page; the
// device detail page shows the last few actions only.
const (
	statisticsLogRows   = 50
	deviceDetailActions = 10
)

func (n *Navigator) buildView() (models.View, error) {
	view := models.View{
		Page:  n.page,
		Theme: n.theme,
		User:  n.home.Session.Current().Username,
	}
	if n.page.ID != models.PageLogin {
		view.NavTargets = append([]models.PageID(nil), mainPages...)
	}

	var err error
	switch n.page.ID {
	case models.PageLogin:
		view.Login = &models.LoginView{Error: n.loginError}
	case models.PageOverview:
		view.Overview = n.buildOverview()
	case models.PageRooms:
		view.Rooms = n.buildRooms()
	case models.PageRoomDetail:
		view.RoomDetail = n.buildRoomDetail(n.page.Room)
	case models.PageStatistics:
		view.Statistics, err = n.buildStatistics(n.page.Filters)
	case models.PageAutomation:
		view.Automation = &models.AutomationView{Rules: n.home.Rules.List()}
	case models.PageNotifications:
		view.Notifications = &models.NotificationsView{Items: n.home.Feed.List()}
	case models.PageDeviceDetail:
		view.DeviceDetail, err = n.buildDeviceDetail(n.page.DeviceID)
	}
	if err != nil {
		return models.View{}, err
	}

	return view, nil
}

func (n *Navigator) buildOverview() *models.OverviewView {
	devices := n.home.Devices.List()
	return &models.OverviewView{
		ActiveDevices: n.home.Stats.ActiveDeviceCount(),
		TotalPowerW:   n.home.Stats.TotalActivePower(),
		TotalDevices:  len(devices),
		Devices:       devices,
	}
}

func (n *Navigator) buildRooms() *models.RoomsView {
	devices := n.home.Devices.List()

	summaries := common.Mapper(n.home.Devices.Rooms(), func(room string) models.RoomSummary {
		summary := models.RoomSummary{Name: room}
		for _, device := range devices {
			if device.Room != room {
				continue
			}
			summary.DeviceCount++
			if device.Active() {
				summary.ActiveCount++
			}
		}
		return summary
	})

	return &models.RoomsView{Rooms: summaries}
}

func (n *Navigator) buildRoomDetail(room string) *models.RoomDetailView {
	detail := &models.RoomDetailView{Room: room}
	for _, device := range n.home.Devices.List() {
		if device.Room == room {
			detail.Devices = append(detail.Devices, device)
		}
	}
	return detail
}

func (n *Navigator) buildStatistics(filters models.LogFilters) (*models.StatisticsView, error) {
	entries, err := n.home.Stats.FilteredLog(filters)
	if err != nil {
		return nil, err
	}
	if len(entries) > statisticsLogRows {
		entries = entries[:statisticsLogRows]
	}

	series := n.home.Stats.EnergySeries()
	samples := make([]models.HourlySample, len(series))
	for i, watts := range series {
		samples[i] = models.HourlySample{
			Hour:  fmt.Sprintf("%02d:00", i),
			Watts: watts,
		}
	}

	return &models.StatisticsView{
		Summary:       n.home.Stats.Summary(),
		Series:        samples,
		Filters:       filters,
		DeviceOptions: common.Mapper(n.home.Devices.List(), func(d models.Device) string { return d.ID }),
		RoomOptions:   n.home.Devices.Rooms(),
		UserOptions:   n.logUsers(),
		Entries:       entries,
	}, nil
}

// logUsers lists the distinct acting users present in the log, in
// first-seen (newest entry first) order.
func (n *Navigator) logUsers() []string {
	entries, err := n.home.Log.Query(models.LogFilters{})
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var users []string
	for _, entry := range entries {
		if !seen[entry.User] {
			seen[entry.User] = true
			users = append(users, entry.User)
		}
	}
	return users
}

func (n *Navigator) buildDeviceDetail(deviceID string) (*models.DeviceDetailView, error) {
	device, err := n.home.Devices.Get(deviceID)
	if err != nil {
		return nil, err
	}

	actions, err := n.home.Log.Query(models.LogFilters{DeviceID: deviceID})
	if err != nil {
		return nil, err
	}
	if len(actions) > deviceDetailActions {
		actions = actions[:deviceDetailActions]
	}

	return &models.DeviceDetailView{
		Device:        device,
		RecentActions: actions,
	}, nil
}

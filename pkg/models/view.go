package models

type PageID string

const (
	PageLogin         PageID = "login"
	PageOverview      PageID = "overview"
	PageRooms         PageID = "rooms"
	PageRoomDetail    PageID = "room"
	PageStatistics    PageID = "statistics"
	PageAutomation    PageID = "automation"
	PageNotifications PageID = "notifications"
	PageDeviceDetail  PageID = "device"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Page identifies the active view. Room is set only for PageRoomDetail and
// DeviceID only for PageDeviceDetail; Filters belong to PageStatistics.
type Page struct {
	ID       PageID
	Room     string
	DeviceID string
	Filters  LogFilters
}

// View is the immutable render description handed to the rendering
// collaborator. Exactly one of the page payload pointers is non-nil,
// matching Page.ID.
type View struct {
	Page       Page
	Theme      Theme
	User       string
	NavTargets []PageID

	Login         *LoginView         `json:",omitempty"`
	Overview      *OverviewView      `json:",omitempty"`
	Rooms         *RoomsView         `json:",omitempty"`
	RoomDetail    *RoomDetailView    `json:",omitempty"`
	Statistics    *StatisticsView    `json:",omitempty"`
	Automation    *AutomationView    `json:",omitempty"`
	Notifications *NotificationsView `json:",omitempty"`
	DeviceDetail  *DeviceDetailView  `json:",omitempty"`
}

type LoginView struct {
	Error string
}

type OverviewView struct {
	ActiveDevices int
	TotalPowerW   float64
	TotalDevices  int
	Devices       []Device
}

type RoomSummary struct {
	Name        string
	DeviceCount int
	ActiveCount int
}

type RoomsView struct {
	Rooms []RoomSummary
}

type RoomDetailView struct {
	Room    string
	Devices []Device
}

type HourlySample struct {
	Hour  string // "HH:00"
	Watts int
}

type EnergySummary struct {
	TotalEnergyKwh float64
	AveragePowerW  float64
	PeakPowerW     int
}

type StatisticsView struct {
	Summary EnergySummary
	Series  []HourlySample

	Filters       LogFilters
	DeviceOptions []string
	RoomOptions   []string
	UserOptions   []string
	Entries       []ActionEntry
}

type AutomationView struct {
	Rules []AutomationRule
}

type NotificationsView struct {
	Items []Notification
}

type DeviceDetailView struct {
	Device        Device
	RecentActions []ActionEntry
}

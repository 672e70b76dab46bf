package home

import (
	"fmt"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/db"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
)

type IDeviceRegistry interface {
	List() []models.Device
	Get(id string) (models.Device, error)
	Toggle(id string) (bool, error)
	SetLevel(id string, value float64) (float64, error)
	Rooms() []string
}

type IActionLog interface {
	Record(entry *models.ActionEntry) error
	Query(filters models.LogFilters) ([]models.ActionEntry, error)
	ExportSnapshot(filters models.LogFilters) ([]models.ExportedAction, error)
	WriteExportFile(dir string, filters models.LogFilters) (string, error)
}

type INotificationFeed interface {
	Post(message string, severity models.Severity)
	List() []models.Notification
	ClearAll()
}

type IRuleStore interface {
	List() []models.AutomationRule
	Toggle(id int) (models.AutomationRule, error)
}

type ISession interface {
	Login(username, password string) (models.Session, error)
	Current() models.Session
}

type IStats interface {
	TotalActivePower() float64
	ActiveDeviceCount() int
	EnergySeries() []int
	Summary() models.EnergySummary
	FilteredLog(filters models.LogFilters) ([]models.ActionEntry, error)
}

// Home owns all dashboard state: the device registry, the notification
// feed, the automation rules, the session, and the energy series. The
// action log lives in Db. All mutations run on the single interaction
// path, so Home itself takes no locks.
type Home struct {
	Db    db.DB
	Clock Clock

	Devices IDeviceRegistry
	Log     IActionLog
	Feed    INotificationFeed
	Rules   IRuleStore
	Session ISession
	Stats   IStats

	devices     map[string]*models.Device
	deviceOrder []string
	feed        []models.Notification
	rules       []models.AutomationRule
	creds       map[string]models.Credential
	session     models.Session
	energy      []int
}

type ServiceOpts struct {
	Devices IDeviceRegistry
	Log     IActionLog
	Feed    INotificationFeed
	Rules   IRuleStore
	Session ISession
	Stats   IStats
}

func (h *Home) WithServices(opts ServiceOpts) *Home {
	if opts.Devices != nil {
		h.Devices = opts.Devices
	}
	if opts.Log != nil {
		h.Log = opts.Log
	}
	if opts.Feed != nil {
		h.Feed = opts.Feed
	}
	if opts.Rules != nil {
		h.Rules = opts.Rules
	}
	if opts.Session != nil {
		h.Session = opts.Session
	}
	if opts.Stats != nil {
		h.Stats = opts.Stats
	}
	return h
}

// New builds a Home from a seed and applies the seeded action log
// entries to the database. Service fields still need WithServices.
func New(dbInstance db.DB, clock Clock, seed Seed) (*Home, error) {
	h := &Home{
		Db:      dbInstance,
		Clock:   clock,
		devices: make(map[string]*models.Device, len(seed.Devices)),
		creds:   make(map[string]models.Credential, len(seed.Users)),
	}

	for _, d := range seed.Devices {
		if _, exists := h.devices[d.ID]; exists {
			return nil, fmt.Errorf("seed device %q: duplicate id", d.ID)
		}
		device := d
		h.devices[d.ID] = &device
		h.deviceOrder = append(h.deviceOrder, d.ID)
	}

	h.rules = append(h.rules, seed.Rules...)
	h.energy = append(h.energy, seed.Energy...)
	for username, cred := range seed.Users {
		h.creds[username] = cred
	}

	for _, entry := range seed.LogEntries {
		if _, ok := h.devices[entry.DeviceID]; !ok {
			return nil, fmt.Errorf("seed log entry: %w: %s", ErrUnknownDevice, entry.DeviceID)
		}
		record := entry
		if err := h.Db.Conn.Create(&record).Error; err != nil {
			return nil, fmt.Errorf("seed log entry: %w", err)
		}
	}

	return h, nil
}

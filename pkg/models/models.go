package models

import (
	"fmt"
	"time"
)

type DeviceType string

const (
	DeviceTypeLight      DeviceType = "light"
	DeviceTypeDoor       DeviceType = "door"
	DeviceTypeCamera     DeviceType = "camera"
	DeviceTypeFan        DeviceType = "fan"
	DeviceTypeThermostat DeviceType = "thermostat"
)

// IsBoolean reports whether the device type carries an on/off state.
func (t DeviceType) IsBoolean() bool {
	switch t {
	case DeviceTypeLight, DeviceTypeDoor, DeviceTypeCamera:
		return true
	case DeviceTypeFan, DeviceTypeThermostat:
		return false
	}
	return false
}

// IsContinuous reports whether the device type carries a stepped level.
func (t DeviceType) IsContinuous() bool {
	switch t {
	case DeviceTypeFan, DeviceTypeThermostat:
		return true
	case DeviceTypeLight, DeviceTypeDoor, DeviceTypeCamera:
		return false
	}
	return false
}

// Domain returns the closed value range and quantization step for a
// continuous device type. Boolean types return zeros.
func (t DeviceType) Domain() (min, max, step float64) {
	switch t {
	case DeviceTypeFan:
		return 0, 3, 1
	case DeviceTypeThermostat:
		return 15, 30, 0.5
	}
	return 0, 0, 0
}

type Device struct {
	ID     string
	Name   string
	Type   DeviceType
	Room   string
	PowerW float64

	// State is meaningful only for boolean types, Value only for
	// continuous types.
	State bool
	Value float64
}

// Active reports whether the device currently draws power.
func (d Device) Active() bool {
	if d.Type.IsBoolean() {
		return d.State
	}
	return d.Value > 0
}

// ToggleAction is the log label for a boolean device entering newState.
func ToggleAction(t DeviceType, newState bool) string {
	switch t {
	case DeviceTypeLight:
		if newState {
			return "Turn ON"
		}
		return "Turn OFF"
	case DeviceTypeDoor:
		if newState {
			return "Lock"
		}
		return "Unlock"
	case DeviceTypeCamera:
		if newState {
			return "Enable"
		}
		return "Disable"
	}
	return ""
}

// LevelAction is the log label for a continuous device set to value.
func LevelAction(t DeviceType, value float64) string {
	if t == DeviceTypeThermostat {
		return fmt.Sprintf("Set to %.1f°C", value)
	}
	return fmt.Sprintf("Set speed to %d", int(value))
}

// ActionEntry is one row of the user action history, stored newest-first.
type ActionEntry struct {
	ID        uint   `gorm:"primaryKey"`
	Timestamp time.Time
	DeviceID  string `gorm:"index"`
	Action    string
	User      string
	Room      string
}

// ExportTimeLayout is the timestamp format used by the log export file.
const ExportTimeLayout = "2006-01-02 15:04:05"

// ExportedAction is the serialized form of an ActionEntry.
type ExportedAction struct {
	Time   string `json:"time"`
	Device string `json:"device"`
	Action string `json:"action"`
	User   string `json:"user"`
	Room   string `json:"room"`
}

func (e ActionEntry) Exported() ExportedAction {
	return ExportedAction{
		Time:   e.Timestamp.Format(ExportTimeLayout),
		Device: e.DeviceID,
		Action: e.Action,
		User:   e.User,
		Room:   e.Room,
	}
}

// LogFilters selects action entries; empty fields match everything,
// set fields combine with AND semantics.
type LogFilters struct {
	DeviceID string
	Room     string
	User     string
}

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

type Notification struct {
	Timestamp time.Time
	Message   string
	Severity  Severity
}

type AutomationRule struct {
	ID       int
	Name     string
	Time     string // "HH:MM", display only, never evaluated
	DeviceID string
	Action   string
	Enabled  bool
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

type Session struct {
	Username string
	Role     Role
}

// LoggedIn reports whether a successful login has happened.
func (s Session) LoggedIn() bool {
	return s.Username != ""
}

// Credential is one row of the static credential table.
type Credential struct {
	Password string
	Role     Role
}

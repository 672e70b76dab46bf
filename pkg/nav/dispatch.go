package nav

import (
	"fmt"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/common"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/home"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
	"go.uber.org/zap"
)

// Command is one user interaction. Commands are dispatched to a single
// state-update function; nothing else mutates the model.
type Command interface {
	isCommand()
}

type ToggleDevice struct {
	DeviceID string
}

type SetDeviceLevel struct {
	DeviceID string
	Value    float64
}

type ToggleRule struct {
	RuleID int
}

type ClearNotifications struct{}

type Login struct {
	Username string
	Password string
}

type Navigate struct {
	Page models.PageID
}

type ViewRoom struct {
	Room string
}

type ViewDevice struct {
	DeviceID string
}

type Back struct{}

type ApplyLogFilters struct {
	Filters models.LogFilters
}

type ExportLog struct{}

type ToggleTheme struct{}

func (ToggleDevice) isCommand()       {}
func (SetDeviceLevel) isCommand()     {}
func (ToggleRule) isCommand()         {}
func (ClearNotifications) isCommand() {}
func (Login) isCommand()              {}
func (Navigate) isCommand()           {}
func (ViewRoom) isCommand()           {}
func (ViewDevice) isCommand()         {}
func (Back) isCommand()               {}
func (ApplyLogFilters) isCommand()    {}
func (ExportLog) isCommand()          {}
func (ToggleTheme) isCommand()        {}

// Dispatcher is the single writer. Each successful mutation applies its
// side effects (action log entry, notification) and then re-renders the
// active page; failed commands leave the model untouched.
type Dispatcher struct {
	Home *home.Home
	Nav  *Navigator

	// ExportDir receives action log export files; empty means the
	// working directory.
	ExportDir string
}

func (d *Dispatcher) Dispatch(cmd Command) error {
	logger := common.GetLoggerWith(
		common.LoggerNameDashCore,
		zap.String(common.LoggerFieldDashCategory, common.LoggerCategoryNav),
	)
	logger.Info("Dispatching command", zap.Reflect("command", cmd))

	switch c := cmd.(type) {
	case ToggleDevice:
		return d.toggleDevice(c)
	case SetDeviceLevel:
		return d.setDeviceLevel(c)
	case ToggleRule:
		return d.toggleRule(c)
	case ClearNotifications:
		return d.clearNotifications()
	case Login:
		return d.login(c)
	case Navigate:
		return d.navigate(c)
	case ViewRoom:
		d.Nav.ViewRoom(c.Room)
		return d.Nav.Refresh()
	case ViewDevice:
		return d.viewDevice(c)
	case Back:
		d.Nav.Back()
		return d.Nav.Refresh()
	case ApplyLogFilters:
		d.Nav.SetFilters(c.Filters)
		return d.Nav.Refresh()
	case ExportLog:
		return d.exportLog()
	case ToggleTheme:
		d.Nav.ToggleTheme()
		return d.Nav.Refresh()
	}

	return fmt.Errorf("dispatch %T: %w", cmd, home.ErrInvalidOperation)
}

func (d *Dispatcher) toggleDevice(cmd ToggleDevice) error {
	newState, err := d.Home.Devices.Toggle(cmd.DeviceID)
	if err != nil {
		return err
	}

	device, err := d.Home.Devices.Get(cmd.DeviceID)
	if err != nil {
		return err
	}

	action := models.ToggleAction(device.Type, newState)
	if err := d.logAndNotify(device, action); err != nil {
		return err
	}

	return d.Nav.Refresh()
}

func (d *Dispatcher) setDeviceLevel(cmd SetDeviceLevel) error {
	accepted, err := d.Home.Devices.SetLevel(cmd.DeviceID, cmd.Value)
	if err != nil {
		return err
	}

	device, err := d.Home.Devices.Get(cmd.DeviceID)
	if err != nil {
		return err
	}

	action := models.LevelAction(device.Type, accepted)
	if err := d.logAndNotify(device, action); err != nil {
		return err
	}

	return d.Nav.Refresh()
}

// logAndNotify applies the two side effects every device mutation
// carries: exactly one action log entry and one notification.
func (d *Dispatcher) logAndNotify(device models.Device, action string) error {
	entry := &models.ActionEntry{
		DeviceID: device.ID,
		Action:   action,
		User:     d.Home.Session.Current().Username,
		Room:     device.Room,
	}
	if err := d.Home.Log.Record(entry); err != nil {
		return err
	}

	d.Home.Feed.Post(fmt.Sprintf("%s: %s", device.Name, action), models.SeverityInfo)
	return nil
}

func (d *Dispatcher) toggleRule(cmd ToggleRule) error {
	rule, err := d.Home.Rules.Toggle(cmd.RuleID)
	if err != nil {
		return err
	}

	state := "disabled"
	if rule.Enabled {
		state = "enabled"
	}
	d.Home.Feed.Post(fmt.Sprintf("Rule '%s' %s", rule.Name, state), models.SeverityInfo)

	return d.Nav.Refresh()
}

// clearNotifications empties the feed and then posts one informational
// notification, so a re-querying view never sees a stale feed.
func (d *Dispatcher) clearNotifications() error {
	d.Home.Feed.ClearAll()
	d.Home.Feed.Post("All notifications cleared", models.SeverityInfo)
	return d.Nav.Refresh()
}

func (d *Dispatcher) login(cmd Login) error {
	session, err := d.Home.Session.Login(cmd.Username, cmd.Password)
	if err != nil {
		d.Nav.SetLoginError("Invalid username or password")
		if refreshErr := d.Nav.Refresh(); refreshErr != nil {
			return refreshErr
		}
		return err
	}

	d.Nav.SetLoginError("")
	d.Home.Feed.Post(fmt.Sprintf("Welcome back, %s!", session.Username), models.SeveritySuccess)
	d.Nav.NavigateTo(models.PageOverview)
	return d.Nav.Refresh()
}

func (d *Dispatcher) navigate(cmd Navigate) error {
	// The navigation bar does not exist on the login page; the only way
	// off it is a successful login.
	if d.Home.Session.Current().LoggedIn() {
		d.Nav.NavigateTo(cmd.Page)
	}
	return d.Nav.Refresh()
}

func (d *Dispatcher) viewDevice(cmd ViewDevice) error {
	if _, err := d.Home.Devices.Get(cmd.DeviceID); err != nil {
		return err
	}
	d.Nav.ViewDevice(cmd.DeviceID)
	return d.Nav.Refresh()
}

// exportLog writes the currently filtered log to a file. A failed write
// surfaces as a warning notification, never as a session-ending error.
func (d *Dispatcher) exportLog() error {
	filters := d.Nav.Current().Filters

	path, err := d.Home.Log.WriteExportFile(d.ExportDir, filters)
	if err != nil {
		d.Home.Feed.Post(fmt.Sprintf("Log export failed: %v", err), models.SeverityWarning)
		return d.Nav.Refresh()
	}

	d.Home.Feed.Post(fmt.Sprintf("Logs exported to %s", path), models.SeveritySuccess)
	return d.Nav.Refresh()
}

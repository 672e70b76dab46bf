package nav

import (
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/common"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/home"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
	"go.uber.org/zap"
)

// Renderer is the external UI-collaborator. It receives an immutable
// page snapshot after every mutation and owns everything visual.
type Renderer interface {
	Render(view models.View)
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(view models.View)

func (f RenderFunc) Render(view models.View) {
	f(view)
}

// mainPages are reachable from the navigation bar, which is present on
// every page except login.
var mainPages = []models.PageID{
	models.PageOverview,
	models.PageRooms,
	models.PageStatistics,
	models.PageAutomation,
	models.PageNotifications,
}

// Navigator is the page state machine. Exactly one page is active;
// transitions happen through the named intents below, and Refresh
// rebuilds the active page's snapshot for the renderer.
type Navigator struct {
	home     *home.Home
	renderer Renderer

	page       models.Page
	theme      models.Theme
	loginError string
}

func New(h *home.Home, renderer Renderer) *Navigator {
	return &Navigator{
		home:     h,
		renderer: renderer,
		page:     models.Page{ID: models.PageLogin},
		theme:    models.ThemeLight,
	}
}

func (n *Navigator) Current() models.Page {
	return n.page
}

func (n *Navigator) Theme() models.Theme {
	return n.theme
}

// NavigateTo activates one of the navigation-bar pages. Re-entering the
// active page is a no-op apart from the re-render the caller triggers.
func (n *Navigator) NavigateTo(id models.PageID) {
	for _, candidate := range mainPages {
		if candidate != id {
			continue
		}
		n.setPage(models.Page{ID: id})
		return
	}
}

func (n *Navigator) ViewRoom(room string) {
	n.setPage(models.Page{ID: models.PageRoomDetail, Room: room})
}

func (n *Navigator) ViewDevice(deviceID string) {
	n.setPage(models.Page{ID: models.PageDeviceDetail, DeviceID: deviceID})
}

// Back has two defined edges: room detail returns to rooms, device
// detail returns to overview. Anywhere else it stays put.
func (n *Navigator) Back() {
	switch n.page.ID {
	case models.PageRoomDetail:
		n.setPage(models.Page{ID: models.PageRooms})
	case models.PageDeviceDetail:
		n.setPage(models.Page{ID: models.PageOverview})
	}
}

// Reset returns to the login page, clearing any inline error.
func (n *Navigator) Reset() {
	n.loginError = ""
	n.setPage(models.Page{ID: models.PageLogin})
}

func (n *Navigator) SetLoginError(message string) {
	n.loginError = message
}

// SetFilters updates the statistics page's log filters. Filters are
// view state; they only exist while the statistics page is active.
func (n *Navigator) SetFilters(filters models.LogFilters) {
	if n.page.ID != models.PageStatistics {
		return
	}
	n.page.Filters = filters
}

func (n *Navigator) ToggleTheme() models.Theme {
	if n.theme == models.ThemeLight {
		n.theme = models.ThemeDark
	} else {
		n.theme = models.ThemeLight
	}
	return n.theme
}

func (n *Navigator) setPage(page models.Page) {
	logger := common.GetLoggerWith(
		common.LoggerNameDashCore,
		zap.String(common.LoggerFieldDashCategory, common.LoggerCategoryNav),
	)

	n.page = page

	logger.Info("Navigated",
		zap.String("page", string(page.ID)),
		zap.String("room", page.Room),
		zap.String("device_id", page.DeviceID))
}

// Refresh rebuilds the snapshot for the active page and hands it to the
// renderer. Every mutation path ends here.
func (n *Navigator) Refresh() error {
	view, err := n.buildView()
	if err != nil {
		return err
	}
	n.renderer.Render(view)
	return nil
}

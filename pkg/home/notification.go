package home

import (
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/common"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
	"go.uber.org/zap"
)

// FeedCapacity bounds the notification feed; the oldest entry is
// evicted once the cap would be exceeded.
const FeedCapacity = 50

func (h *Home) postNotification(message string, severity models.Severity) {
	logger := common.GetLoggerWith(
		common.LoggerNameDashCore,
		zap.String(common.LoggerFieldDashCategory, common.LoggerCategoryFeed),
	)

	notification := models.Notification{
		Timestamp: h.Clock.Now(),
		Message:   message,
		Severity:  severity,
	}

	h.feed = append([]models.Notification{notification}, h.feed...)
	if len(h.feed) > FeedCapacity {
		h.feed = h.feed[:FeedCapacity]
	}

	logger.Info("Posted notification", zap.Reflect("notification", notification))
}

func (h *Home) listNotifications() []models.Notification {
	feed := make([]models.Notification, len(h.feed))
	copy(feed, h.feed)
	return feed
}

func (h *Home) clearNotifications() {
	logger := common.GetLoggerWith(
		common.LoggerNameDashCore,
		zap.String(common.LoggerFieldDashCategory, common.LoggerCategoryFeed),
	)

	cleared := len(h.feed)
	h.feed = nil

	logger.Info("Cleared notifications", zap.Int("cleared", cleared))
}

type INotificationFeedImpl struct {
	home *Home
}

func (in *INotificationFeedImpl) Post(message string, severity models.Severity) {
	in.home.postNotification(message, severity)
}

func (in *INotificationFeedImpl) List() []models.Notification {
	return in.home.listNotifications()
}

func (in *INotificationFeedImpl) ClearAll() {
	in.home.clearNotifications()
}

func (h *Home) GetINotificationFeed() INotificationFeed {
	return &INotificationFeedImpl{home: h}
}

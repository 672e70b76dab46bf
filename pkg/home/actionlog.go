package home

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/common"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
	"go.uber.org/zap"
)

// ExportFileTimeLayout names export files: action_log_<YYYYMMDD_HHMMSS>.json.
const ExportFileTimeLayout = "20060102_150405"

func (h *Home) recordAction(entry *models.ActionEntry) error {
	logger := common.GetLoggerWith(
		common.LoggerNameDashCore,
		zap.String(common.LoggerFieldDashCategory, common.LoggerCategoryActionLog),
	)

	if _, ok := h.devices[entry.DeviceID]; !ok {
		return fmt.Errorf("record action for %q: %w", entry.DeviceID, ErrUnknownDevice)
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = h.Clock.Now()
	}

	if err := h.Db.Conn.Create(entry).Error; err != nil {
		return err
	}

	logger.Info("Recorded action", zap.Reflect("entry", entry))
	return nil
}

// queryLog returns entries newest-first. The primary key is monotonic,
// so "id desc" keeps insertion order stable even when timestamps collide.
func (h *Home) queryLog(filters models.LogFilters) ([]models.ActionEntry, error) {
	q := h.Db.Conn.Model(&models.ActionEntry{})
	if filters.DeviceID != "" {
		q = q.Where("device_id = ?", filters.DeviceID)
	}
	if filters.Room != "" {
		q = q.Where("room = ?", filters.Room)
	}
	if filters.User != "" {
		q = q.Where(`"user" = ?`, filters.User)
	}

	var entries []models.ActionEntry
	err := q.Order("id desc").Find(&entries).Error
	return entries, err
}

func (h *Home) exportSnapshot(filters models.LogFilters) ([]models.ExportedAction, error) {
	entries, err := h.queryLog(filters)
	if err != nil {
		return nil, err
	}
	return common.Mapper(entries, models.ActionEntry.Exported), nil
}

func (h *Home) writeExportFile(dir string, filters models.LogFilters) (string, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameDashCore,
		zap.String(common.LoggerFieldDashCategory, common.LoggerCategoryExport),
	)

	snapshot, err := h.exportSnapshot(filters)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("action_log_%s.json", h.Clock.Now().Format(ExportFileTimeLayout))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	logger.Info("Exported action log",
		zap.String("path", path),
		zap.Int("entries", len(snapshot)))

	return path, nil
}

type IActionLogImpl struct {
	home *Home
}

func (il *IActionLogImpl) Record(entry *models.ActionEntry) error {
	return il.home.recordAction(entry)
}

func (il *IActionLogImpl) Query(filters models.LogFilters) ([]models.ActionEntry, error) {
	return il.home.queryLog(filters)
}

func (il *IActionLogImpl) ExportSnapshot(filters models.LogFilters) ([]models.ExportedAction, error) {
	return il.home.exportSnapshot(filters)
}

func (il *IActionLogImpl) WriteExportFile(dir string, filters models.LogFilters) (string, error) {
	return il.home.writeExportFile(dir, filters)
}

func (h *Home) GetIActionLog() IActionLog {
	return &IActionLogImpl{home: h}
}

package home

import (
	"fmt"
	"math"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/common"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
	"go.uber.org/zap"
)

func (h *Home) listDevices() []models.Device {
	devices := make([]models.Device, 0, len(h.deviceOrder))
	for _, id := range h.deviceOrder {
		devices = append(devices, *h.devices[id])
	}
	return devices
}

func (h *Home) getDevice(id string) (models.Device, error) {
	device, ok := h.devices[id]
	if !ok {
		return models.Device{}, fmt.Errorf("device %q: %w", id, ErrNotFound)
	}
	return *device, nil
}

func (h *Home) toggleDevice(id string) (bool, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameDashCore,
		zap.String(common.LoggerFieldDashCategory, common.LoggerCategoryDevice),
	)

	device, ok := h.devices[id]
	if !ok {
		return false, fmt.Errorf("device %q: %w", id, ErrNotFound)
	}
	if !device.Type.IsBoolean() {
		return false, fmt.Errorf("toggle device %q of type %s: %w", id, device.Type, ErrInvalidOperation)
	}

	device.State = !device.State

	logger.Info("Toggled device",
		zap.String("device_id", id),
		zap.Bool("state", device.State))

	return device.State, nil
}

func (h *Home) setDeviceLevel(id string, value float64) (float64, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameDashCore,
		zap.String(common.LoggerFieldDashCategory, common.LoggerCategoryDevice),
	)

	device, ok := h.devices[id]
	if !ok {
		return 0, fmt.Errorf("device %q: %w", id, ErrNotFound)
	}
	if !device.Type.IsContinuous() {
		return 0, fmt.Errorf("set level on device %q of type %s: %w", id, device.Type, ErrInvalidOperation)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("set level on device %q to %v: %w", id, value, ErrOutOfRange)
	}

	// Marginal input is quantized, not rejected: clamp to the domain,
	// then snap to the nearest step.
	min, max, step := device.Type.Domain()
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	value = min + math.Round((value-min)/step)*step
	if value > max {
		value = max
	}

	device.Value = value

	logger.Info("Set device level",
		zap.String("device_id", id),
		zap.Float64("value", device.Value))

	return device.Value, nil
}

func (h *Home) deviceRooms() []string {
	seen := make(map[string]bool)
	var rooms []string
	for _, id := range h.deviceOrder {
		room := h.devices[id].Room
		if !seen[room] {
			seen[room] = true
			rooms = append(rooms, room)
		}
	}
	return rooms
}

type IDeviceRegistryImpl struct {
	home *Home
}

func (ir *IDeviceRegistryImpl) List() []models.Device {
	return ir.home.listDevices()
}

func (ir *IDeviceRegistryImpl) Get(id string) (models.Device, error) {
	return ir.home.getDevice(id)
}

func (ir *IDeviceRegistryImpl) Toggle(id string) (bool, error) {
	return ir.home.toggleDevice(id)
}

func (ir *IDeviceRegistryImpl) SetLevel(id string, value float64) (float64, error) {
	return ir.home.setDeviceLevel(id, value)
}

func (ir *IDeviceRegistryImpl) Rooms() []string {
	return ir.home.deviceRooms()
}

func (h *Home) GetIDeviceRegistry() IDeviceRegistry {
	return &IDeviceRegistryImpl{home: h}
}

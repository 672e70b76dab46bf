package home

import (
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/common"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
)

// All aggregation here is read-only projection over registry, energy
// series, and action log state.

func (h *Home) totalActivePower() float64 {
	var total float64
	for _, id := range h.deviceOrder {
		device := h.devices[id]
		if device.Type.IsBoolean() {
			if device.State {
				total += device.PowerW
			}
			continue
		}
		if device.Value > 0 {
			_, max, _ := device.Type.Domain()
			total += device.PowerW * (device.Value / max)
		}
	}
	return total
}

func (h *Home) activeDeviceCount() int {
	count := 0
	for _, id := range h.deviceOrder {
		if h.devices[id].Active() {
			count++
		}
	}
	return count
}

func (h *Home) energySeries() []int {
	series := make([]int, len(h.energy))
	copy(series, h.energy)
	return series
}

func (h *Home) energySummary() models.EnergySummary {
	if len(h.energy) == 0 {
		return models.EnergySummary{}
	}

	sum := common.Reducer(h.energy, func(acc int, w int) int { return acc + w }, 0)
	peak := common.Reducer(h.energy, func(acc int, w int) int {
		if w > acc {
			return w
		}
		return acc
	}, h.energy[0])

	return models.EnergySummary{
		TotalEnergyKwh: float64(sum) / 1000,
		AveragePowerW:  float64(sum) / float64(len(h.energy)),
		PeakPowerW:     peak,
	}
}

type IStatsImpl struct {
	home *Home
}

func (is *IStatsImpl) TotalActivePower() float64 {
	return is.home.totalActivePower()
}

func (is *IStatsImpl) ActiveDeviceCount() int {
	return is.home.activeDeviceCount()
}

func (is *IStatsImpl) EnergySeries() []int {
	return is.home.energySeries()
}

func (is *IStatsImpl) Summary() models.EnergySummary {
	return is.home.energySummary()
}

func (is *IStatsImpl) FilteredLog(filters models.LogFilters) ([]models.ActionEntry, error) {
	return is.home.queryLog(filters)
}

func (h *Home) GetIStats() IStats {
	return &IStatsImpl{home: h}
}

package home

import (
	"fmt"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/common"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
	"go.uber.org/zap"
)

// Rule schedules are display-only data. Nothing evaluates them against
// a clock; toggling the enabled flag is the only supported mutation.

func (h *Home) listRules() []models.AutomationRule {
	rules := make([]models.AutomationRule, len(h.rules))
	copy(rules, h.rules)
	return rules
}

func (h *Home) toggleRule(id int) (models.AutomationRule, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameDashCore,
		zap.String(common.LoggerFieldDashCategory, common.LoggerCategoryRule),
	)

	for i := range h.rules {
		if h.rules[i].ID != id {
			continue
		}
		h.rules[i].Enabled = !h.rules[i].Enabled

		logger.Info("Toggled rule",
			zap.Int("rule_id", id),
			zap.Bool("enabled", h.rules[i].Enabled))

		return h.rules[i], nil
	}

	return models.AutomationRule{}, fmt.Errorf("rule %d: %w", id, ErrNotFound)
}

type IRuleStoreImpl struct {
	home *Home
}

func (ir *IRuleStoreImpl) List() []models.AutomationRule {
	return ir.home.listRules()
}

func (ir *IRuleStoreImpl) Toggle(id int) (models.AutomationRule, error) {
	return ir.home.toggleRule(id)
}

func (h *Home) GetIRuleStore() IRuleStore {
	return &IRuleStoreImpl{home: h}
}

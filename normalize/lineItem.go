package normalize

import (
	"bitbucket.org/mmdatafocus/console_backend/models"
	"bitbucket.org/mmdatafocus/console_backend/utils"
)

// LineItem derives the utilization percent and band from the amount
// strings. A zero or unparseable allocated amount yields exactly 0 percent.
func LineItem(raw RawRecord) models.LineItem {
	allocated := raw.Amount("allocated_amount", "allocated", "budgeted_amount")
	utilized := raw.Amount("utilized_amount", "utilized", "actual_amount", "spent_amount")
	percent := utils.CalculateUtilizationPercent(allocated, utilized)

	return models.LineItem{
		CommonFields: reconcileCommon(raw),
		Budget: raw.Ref(
			[]string{"budget_id", "budget.id"},
			[]string{"budget_name", "budget.name"},
		),
		Category: raw.Ref(
			[]string{"category_id", "category.id"},
			[]string{"category_name", "category.name"},
		),
		Description:     raw.String("description", "name"),
		AllocatedAmount: allocated,
		UtilizedAmount:  utilized,

		UtilizationPercent: percent,
		UtilizationBand:    models.UtilizationBandFor(percent),
	}
}

func LineItems(raws []RawRecord) []models.LineItem {
	out := make([]models.LineItem, 0, len(raws))
	for _, raw := range raws {
		warnMissingId("line_item", raw)
		out = append(out, LineItem(raw))
	}
	return out
}

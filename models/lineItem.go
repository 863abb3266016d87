package models

import "github.com/shopspring/decimal"

// LineItem is one budget line: an allocated amount and what has been
// utilized against it. Amount strings are source of truth; the percent and
// band are derived and ephemeral.
type LineItem struct {
	CommonFields
	Budget          Ref    `json:"budget"`
	Category        Ref    `json:"category"`
	Description     string `json:"description"`
	AllocatedAmount string `json:"allocatedAmount"`
	UtilizedAmount  string `json:"utilizedAmount"`

	UtilizationPercent decimal.Decimal `json:"utilizationPercent"`
	UtilizationBand    UtilizationBand `json:"utilizationBand"`
}

type LineItemPayload struct {
	BudgetId        string `json:"budget_id" validate:"required"`
	CategoryId      string `json:"category_id"`
	Description     string `json:"description" validate:"required"`
	AllocatedAmount string `json:"allocated_amount" validate:"required"`
	UtilizedAmount  string `json:"utilized_amount"`
}

func (li LineItem) ToPayload() LineItemPayload {
	return LineItemPayload{
		BudgetId:        li.Budget.Id,
		CategoryId:      li.Category.Id,
		Description:     li.Description,
		AllocatedAmount: li.AllocatedAmount,
		UtilizedAmount:  li.UtilizedAmount,
	}
}

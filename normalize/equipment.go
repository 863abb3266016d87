package normalize

import (
	"bitbucket.org/mmdatafocus/console_backend/models"
)

func Equipment(raw RawRecord, lookup EmployeeLookup) models.Equipment {
	assignedTo := raw.Ref(
		[]string{"assigned_to_id", "assigned_to", "assignee.id"},
		[]string{"assigned_to_name", "assignee.full_name", "assignee.name"},
	)
	assignedTo = resolveEmployeeRef(assignedTo, lookup)

	return models.Equipment{
		CommonFields: reconcileCommon(raw),
		Name:         raw.String("name", "equipment_name"),
		SerialNumber: raw.String("serial_number", "serial"),
		Category: raw.Ref(
			[]string{"category_id", "category.id"},
			[]string{"category_name", "category.name"},
		),
		Status:       models.RecordStatusFromString(raw.String("status", "state")),
		AssignedTo:   assignedTo,
		PurchaseDate: raw.String("purchase_date", "purchased_at"),
		Cost:         raw.Amount("cost", "purchase_cost", "price"),
	}
}

func Equipments(raws []RawRecord, lookup EmployeeLookup) []models.Equipment {
	out := make([]models.Equipment, 0, len(raws))
	for _, raw := range raws {
		warnMissingId("equipment", raw)
		out = append(out, Equipment(raw, lookup))
	}
	return out
}

package models

type Equipment struct {
	CommonFields
	Name         string       `json:"name"`
	SerialNumber string       `json:"serialNumber"`
	Category     Ref          `json:"category"`
	Status       RecordStatus `json:"status"`
	AssignedTo   Ref          `json:"assignedTo"`
	PurchaseDate string       `json:"purchaseDate"`
	Cost         string       `json:"cost"`
}

type EquipmentPayload struct {
	Name         string `json:"name" validate:"required"`
	SerialNumber string `json:"serial_number"`
	CategoryId   string `json:"category_id"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive archived"`
	AssignedToId string `json:"assigned_to_id"`
	PurchaseDate string `json:"purchase_date"`
	Cost         string `json:"cost"`
}

func (e Equipment) ToPayload() EquipmentPayload {
	return EquipmentPayload{
		Name:         e.Name,
		SerialNumber: e.SerialNumber,
		CategoryId:   e.Category.Id,
		Status:       string(e.Status),
		AssignedToId: e.AssignedTo.Id,
		PurchaseDate: e.PurchaseDate,
		Cost:         e.Cost,
	}
}

package models

type RevenueClient struct {
	CommonFields
	Name           string       `json:"name"`
	Code           string       `json:"code"`
	Industry       string       `json:"industry"`
	ContactEmail   string       `json:"contactEmail"`
	ContactPhone   string       `json:"contactPhone"`
	Status         RecordStatus `json:"status"`
	TotalRevenue   string       `json:"totalRevenue"`
	AccountManager Ref          `json:"accountManager"`
}

type RevenueClientPayload struct {
	Name             string `json:"name" validate:"required"`
	Code             string `json:"code"`
	Industry         string `json:"industry"`
	ContactEmail     string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone     string `json:"contact_phone" validate:"omitempty,phone"`
	Status           string `json:"status" validate:"omitempty,oneof=active inactive archived"`
	TotalRevenue     string `json:"total_revenue"`
	AccountManagerId string `json:"account_manager_id"`
}

func (rc RevenueClient) ToPayload() RevenueClientPayload {
	return RevenueClientPayload{
		Name:             rc.Name,
		Code:             rc.Code,
		Industry:         rc.Industry,
		ContactEmail:     rc.ContactEmail,
		ContactPhone:     rc.ContactPhone,
		Status:           string(rc.Status),
		TotalRevenue:     rc.TotalRevenue,
		AccountManagerId: rc.AccountManager.Id,
	}
}

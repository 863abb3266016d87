package normalize

import (
	"bitbucket.org/mmdatafocus/console_backend/models"
)

func RevenueClient(raw RawRecord, lookup EmployeeLookup) models.RevenueClient {
	accountManager := raw.Ref(
		[]string{"account_manager_id", "account_manager", "account_manager.id"},
		[]string{"account_manager_name", "account_manager.full_name", "account_manager.name"},
	)
	accountManager = resolveEmployeeRef(accountManager, lookup)

	return models.RevenueClient{
		CommonFields:   reconcileCommon(raw),
		Name:           raw.String("name", "client_name", "company_name"),
		Code:           raw.String("code", "client_code"),
		Industry:       raw.String("industry", "sector"),
		ContactEmail:   raw.String("contact_email", "email"),
		ContactPhone:   raw.String("contact_phone", "phone"),
		Status:         models.RecordStatusFromString(raw.String("status", "state")),
		TotalRevenue:   raw.Amount("total_revenue", "revenue", "lifetime_revenue"),
		AccountManager: accountManager,
	}
}

func RevenueClients(raws []RawRecord, lookup EmployeeLookup) []models.RevenueClient {
	out := make([]models.RevenueClient, 0, len(raws))
	for _, raw := range raws {
		warnMissingId("revenue_client", raw)
		out = append(out, RevenueClient(raw, lookup))
	}
	return out
}

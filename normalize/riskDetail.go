package normalize

import (
	"bitbucket.org/mmdatafocus/console_backend/models"
)

func RiskDetail(raw RawRecord, lookup EmployeeLookup) models.RiskDetail {
	owner := raw.Ref(
		[]string{"owner_id", "owner", "owner.id"},
		[]string{"owner_name", "owner.full_name", "owner.name"},
	)
	owner = resolveEmployeeRef(owner, lookup)

	return models.RiskDetail{
		CommonFields: reconcileCommon(raw),
		Project: raw.Ref(
			[]string{"project_id", "project.id"},
			[]string{"project_name", "project.name"},
		),
		Title:          raw.String("title", "name"),
		Description:    raw.String("description"),
		Severity:       models.RiskSeverityFromString(raw.String("severity", "risk_level")),
		Probability:    raw.Amount("probability", "likelihood"),
		Impact:         raw.Amount("impact", "impact_score"),
		Status:         models.RecordStatusFromString(raw.String("status", "state")),
		Owner:          owner,
		MitigationPlan: raw.String("mitigation_plan", "mitigation"),
	}
}

func RiskDetails(raws []RawRecord, lookup EmployeeLookup) []models.RiskDetail {
	out := make([]models.RiskDetail, 0, len(raws))
	for _, raw := range raws {
		warnMissingId("risk_detail", raw)
		out = append(out, RiskDetail(raw, lookup))
	}
	return out
}

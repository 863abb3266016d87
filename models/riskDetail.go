package models

type RiskDetail struct {
	CommonFields
	Project        Ref          `json:"project"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Severity       RiskSeverity `json:"severity"`
	Probability    string       `json:"probability"`
	Impact         string       `json:"impact"`
	Status         RecordStatus `json:"status"`
	Owner          Ref          `json:"owner"`
	MitigationPlan string       `json:"mitigationPlan"`
}

type RiskDetailPayload struct {
	ProjectId      string `json:"project_id" validate:"required"`
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description"`
	Severity       string `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	Probability    string `json:"probability"`
	Impact         string `json:"impact"`
	Status         string `json:"status" validate:"omitempty,oneof=active inactive archived"`
	OwnerId        string `json:"owner_id"`
	MitigationPlan string `json:"mitigation_plan"`
}

func (rd RiskDetail) ToPayload() RiskDetailPayload {
	return RiskDetailPayload{
		ProjectId:      rd.Project.Id,
		Title:          rd.Title,
		Description:    rd.Description,
		Severity:       string(rd.Severity),
		Probability:    rd.Probability,
		Impact:         rd.Impact,
		Status:         string(rd.Status),
		OwnerId:        rd.Owner.Id,
		MitigationPlan: rd.MitigationPlan,
	}
}

package models

type ProjectPhase struct {
	CommonFields
	Project           Ref          `json:"project"`
	Name              string       `json:"name"`
	Sequence          int          `json:"sequence"`
	StartDate         string       `json:"startDate"`
	EndDate           string       `json:"endDate"`
	Status            RecordStatus `json:"status"`
	CompletionPercent string       `json:"completionPercent"`
}

type ProjectPhasePayload struct {
	ProjectId         string `json:"project_id" validate:"required"`
	Name              string `json:"name" validate:"required"`
	Sequence          int    `json:"sequence" validate:"min=0"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	Status            string `json:"status" validate:"omitempty,oneof=active inactive archived"`
	CompletionPercent string `json:"completion_percent"`
}

func (pp ProjectPhase) ToPayload() ProjectPhasePayload {
	return ProjectPhasePayload{
		ProjectId:         pp.Project.Id,
		Name:              pp.Name,
		Sequence:          pp.Sequence,
		StartDate:         pp.StartDate,
		EndDate:           pp.EndDate,
		Status:            string(pp.Status),
		CompletionPercent: pp.CompletionPercent,
	}
}

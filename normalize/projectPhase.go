package normalize

import (
	"bitbucket.org/mmdatafocus/console_backend/models"
)

func ProjectPhase(raw RawRecord) models.ProjectPhase {
	return models.ProjectPhase{
		CommonFields: reconcileCommon(raw),
		Project: raw.Ref(
			[]string{"project_id", "project.id"},
			[]string{"project_name", "project.name"},
		),
		Name:              raw.String("name", "phase_name", "title"),
		Sequence:          raw.Int("sequence", "order", "phase_number"),
		StartDate:         raw.String("start_date", "from_date"),
		EndDate:           raw.String("end_date", "to_date"),
		Status:            models.RecordStatusFromString(raw.String("status", "state")),
		CompletionPercent: raw.Amount("completion_percent", "completion", "progress"),
	}
}

func ProjectPhases(raws []RawRecord) []models.ProjectPhase {
	out := make([]models.ProjectPhase, 0, len(raws))
	for _, raw := range raws {
		warnMissingId("project_phase", raw)
		out = append(out, ProjectPhase(raw))
	}
	return out
}

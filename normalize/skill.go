package normalize

import (
	"bitbucket.org/mmdatafocus/console_backend/models"
)

func Skill(raw RawRecord) models.Skill {
	return models.Skill{
		CommonFields: reconcileCommon(raw),
		Name:         raw.String("name", "skill_name"),
		Category:     raw.String("category", "skill_category", "category.name"),
		Description:  raw.String("description"),
	}
}

func Skills(raws []RawRecord) []models.Skill {
	out := make([]models.Skill, 0, len(raws))
	for _, raw := range raws {
		warnMissingId("skill", raw)
		out = append(out, Skill(raw))
	}
	return out
}

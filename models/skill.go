package models

type Skill struct {
	CommonFields
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type SkillPayload struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (s Skill) ToPayload() SkillPayload {
	return SkillPayload{
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
	}
}

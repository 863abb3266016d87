package models

// EmployeeSkill links an employee to a skill at a graded level.
type EmployeeSkill struct {
	CommonFields
	Employee Ref `json:"employee"`
	Skill    Ref `json:"skill"`
	// Level is the upstream's 1..4 integer; Proficiency is the derived
	// label the console renders.
	Level           int              `json:"level"`
	Proficiency     ProficiencyLabel `json:"proficiency"`
	YearsExperience string           `json:"yearsExperience"`
	CertifiedAt     string           `json:"certifiedAt"`
}

type EmployeeSkillPayload struct {
	EmployeeId      string `json:"employee_id" validate:"required"`
	SkillId         string `json:"skill_id" validate:"required"`
	Level           int    `json:"level" validate:"min=1,max=4"`
	YearsExperience string `json:"years_experience"`
	CertifiedAt     string `json:"certified_at"`
}

func (es EmployeeSkill) ToPayload() EmployeeSkillPayload {
	return EmployeeSkillPayload{
		EmployeeId:      es.Employee.Id,
		SkillId:         es.Skill.Id,
		Level:           es.Level,
		YearsExperience: es.YearsExperience,
		CertifiedAt:     es.CertifiedAt,
	}
}

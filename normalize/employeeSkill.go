package normalize

import (
	"bitbucket.org/mmdatafocus/console_backend/models"
)

// EmployeeSkill source priority:
//
//	employee id:   employee_id > employee (flat id string) > employee.id
//	employee name: employee_name > employee.full_name > side-collection lookup
//	skill id:      skill_id > skill (flat id string) > skill.id
//	level:         level > proficiency_level > proficiency (numeric)
//
// The integer level maps onto the proficiency label; out-of-range or
// missing levels are beginner by policy.
func EmployeeSkill(raw RawRecord, lookup EmployeeLookup) models.EmployeeSkill {
	level := raw.Int("level", "proficiency_level", "proficiency")

	employee := raw.Ref(
		[]string{"employee_id", "employee", "employee.id"},
		[]string{"employee_name", "employee.full_name", "employee.name"},
	)
	employee = resolveEmployeeRef(employee, lookup)

	return models.EmployeeSkill{
		CommonFields: reconcileCommon(raw),
		Employee:     employee,
		Skill: raw.Ref(
			[]string{"skill_id", "skill", "skill.id"},
			[]string{"skill_name", "skill.name"},
		),
		Level:           level,
		Proficiency:     models.ProficiencyFromLevel(level),
		YearsExperience: raw.Amount("years_experience", "years"),
		CertifiedAt:     raw.String("certified_at", "certification_date"),
	}
}

func EmployeeSkills(raws []RawRecord, lookup EmployeeLookup) []models.EmployeeSkill {
	out := make([]models.EmployeeSkill, 0, len(raws))
	for _, raw := range raws {
		warnMissingId("employee_skill", raw)
		out = append(out, EmployeeSkill(raw, lookup))
	}
	return out
}

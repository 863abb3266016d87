package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/console_backend/dispatch"
	"bitbucket.org/mmdatafocus/console_backend/exports"
	"bitbucket.org/mmdatafocus/console_backend/middlewares"
	"bitbucket.org/mmdatafocus/console_backend/models"
	"bitbucket.org/mmdatafocus/console_backend/normalize"
	"bitbucket.org/mmdatafocus/console_backend/query"
)

// RegisterRoutes wires every entity's standard route set plus the export
// downloads. Route names double as upstream resource paths.
func RegisterRoutes(router gin.IRouter, env *Env) {
	departments := newResource[models.Department, models.DepartmentPayload](
		env, "departments", query.DepartmentFields(),
		func(ctx context.Context, raws []normalize.RawRecord) []models.Department {
			return normalize.Departments(raws, middlewares.DepartmentLookupFor(ctx))
		})
	departments.register(router)
	registerExport(router, departments, exports.DepartmentColumns())

	employees := newResource[models.Employee, models.EmployeePayload](
		env, "employees", query.EmployeeFields(),
		func(ctx context.Context, raws []normalize.RawRecord) []models.Employee {
			return normalize.Employees(raws, middlewares.DepartmentLookupFor(ctx))
		})
	employees.register(router)
	registerExport(router, employees, exports.EmployeeColumns())

	skills := newResource[models.Skill, models.SkillPayload](
		env, "skills", query.SkillFields(),
		func(ctx context.Context, raws []normalize.RawRecord) []models.Skill {
			return normalize.Skills(raws)
		})
	skills.register(router)

	employeeSkills := newResource[models.EmployeeSkill, models.EmployeeSkillPayload](
		env, "employee-skills", query.EmployeeSkillFields(),
		func(ctx context.Context, raws []normalize.RawRecord) []models.EmployeeSkill {
			return normalize.EmployeeSkills(raws, middlewares.EmployeeLookupFor(ctx))
		})
	employeeSkills.register(router)

	lineItems := newResource[models.LineItem, models.LineItemPayload](
		env, "line-items", query.LineItemFields(),
		func(ctx context.Context, raws []normalize.RawRecord) []models.LineItem {
			return normalize.LineItems(raws)
		})
	lineItems.register(router)
	registerExport(router, lineItems, exports.LineItemColumns())

	allocations := newResource[models.ResourceAllocation, models.ResourceAllocationPayload](
		env, "allocations", query.ResourceAllocationFields(),
		func(ctx context.Context, raws []normalize.RawRecord) []models.ResourceAllocation {
			return normalize.ResourceAllocations(raws, middlewares.EmployeeLookupFor(ctx))
		})
	allocations.register(router)

	equipment := newResource[models.Equipment, models.EquipmentPayload](
		env, "equipment", query.EquipmentFields(),
		func(ctx context.Context, raws []normalize.RawRecord) []models.Equipment {
			return normalize.Equipments(raws, middlewares.EmployeeLookupFor(ctx))
		})
	equipment.register(router)

	leaveRequests := newResource[models.LeaveRequest, models.LeaveRequestPayload](
		env, "leave-requests", query.LeaveRequestFields(),
		func(ctx context.Context, raws []normalize.RawRecord) []models.LeaveRequest {
			return normalize.LeaveRequests(raws, middlewares.EmployeeLookupFor(ctx))
		})
	leaveRequests.register(router)

	projectPhases := newResource[models.ProjectPhase, models.ProjectPhasePayload](
		env, "project-phases", query.ProjectPhaseFields(),
		func(ctx context.Context, raws []normalize.RawRecord) []models.ProjectPhase {
			return normalize.ProjectPhases(raws)
		})
	projectPhases.register(router)

	timesheets := newResource[models.Timesheet, models.TimesheetPayload](
		env, "timesheets", query.TimesheetFields(),
		func(ctx context.Context, raws []normalize.RawRecord) []models.Timesheet {
			return normalize.Timesheets(raws, middlewares.EmployeeLookupFor(ctx))
		})
	timesheets.register(router)

	risks := newResource[models.RiskDetail, models.RiskDetailPayload](
		env, "risks", query.RiskDetailFields(),
		func(ctx context.Context, raws []normalize.RawRecord) []models.RiskDetail {
			return normalize.RiskDetails(raws, middlewares.EmployeeLookupFor(ctx))
		})
	risks.register(router)

	revenueClients := newResource[models.RevenueClient, models.RevenueClientPayload](
		env, "revenue-clients", query.RevenueClientFields(),
		func(ctx context.Context, raws []normalize.RawRecord) []models.RevenueClient {
			return normalize.RevenueClients(raws, middlewares.EmployeeLookupFor(ctx))
		})
	revenueClients.register(router)

	documents := newResource[models.Document, models.DocumentPayload](
		env, "documents", query.DocumentFields(),
		func(ctx context.Context, raws []normalize.RawRecord) []models.Document {
			return normalize.Documents(raws, middlewares.EmployeeLookupFor(ctx))
		})
	documents.register(router)
}

// registerExport serves the current filtered collection as an .xlsx
// download, applying the same predicate parameters as the list endpoint.
func registerExport[T any, P any](router gin.IRouter, r *resource[T, P], columns []exports.Column[T]) {
	router.GET("/"+r.name+"/export", func(c *gin.Context) {
		ctx := c.Request.Context()
		records, err := r.collection(ctx)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"notification": dispatch.Notification{
					Level:   dispatch.LevelError,
					Message: "Loading the list failed",
				},
			})
			return
		}
		filtered := query.Apply(records, r.predicate(c), r.fields)

		c.Header("Content-Type", exports.ContentType)
		c.Header("Content-Disposition", exports.Disposition(r.name))
		if err := exports.WriteCollection(c.Writer, columns, filtered); err != nil {
			c.Status(http.StatusInternalServerError)
		}
	})
}

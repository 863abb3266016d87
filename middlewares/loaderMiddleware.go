package middlewares

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/dataloader/v7"

	"bitbucket.org/mmdatafocus/console_backend/models"
	"bitbucket.org/mmdatafocus/console_backend/normalize"
	"bitbucket.org/mmdatafocus/console_backend/upstream"
)

type ctxKey string

const (
	loadersKey = ctxKey("dataloaders")
)

// Loaders batch the side-collection lookups the reconcilers need to fill
// display-name fallbacks (employee and department refs carried as bare ids
// by some endpoints). One set per request.
type Loaders struct {
	employeeLoader   *dataloader.Loader[string, *models.Employee]
	departmentLoader *dataloader.Loader[string, *models.Department]
}

func NewLoaders(client *upstream.Client) *Loaders {
	employeeReader := &employeeReader{client: client}
	departmentReader := &departmentReader{client: client}
	return &Loaders{
		employeeLoader:   dataloader.NewBatchedLoader(employeeReader.getEmployees),
		departmentLoader: dataloader.NewBatchedLoader(departmentReader.getDepartments),
	}
}

// LoaderMiddleware injects a fresh Loaders set into the request context.
func LoaderMiddleware(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		loaders := NewLoaders(client)
		ctx := context.WithValue(c.Request.Context(), loadersKey, loaders)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// For returns the request's loaders; nil outside LoaderMiddleware.
func For(ctx context.Context) *Loaders {
	loaders, _ := ctx.Value(loadersKey).(*Loaders)
	return loaders
}

// EmployeeLookupFor adapts the request's employee loader into the lookup
// the reconcilers take. Lookup misses (including fetch errors) resolve to
// not-found; the reconciler then falls back to its explicit sentinel.
func EmployeeLookupFor(ctx context.Context) normalize.EmployeeLookup {
	loaders := For(ctx)
	if loaders == nil {
		return nil
	}
	return func(id string) (models.Employee, bool) {
		emp, err := loaders.employeeLoader.Load(ctx, id)()
		if err != nil || emp == nil {
			return models.Employee{}, false
		}
		return *emp, true
	}
}

// DepartmentLookupFor is the department twin of EmployeeLookupFor, filling
// parent-department and employee-department display names.
func DepartmentLookupFor(ctx context.Context) normalize.DepartmentLookup {
	loaders := For(ctx)
	if loaders == nil {
		return nil
	}
	return func(id string) (models.Department, bool) {
		dept, err := loaders.departmentLoader.Load(ctx, id)()
		if err != nil || dept == nil {
			return models.Department{}, false
		}
		return *dept, true
	}
}

func handleError[T any](itemsLength int, err error) []*dataloader.Result[T] {
	result := make([]*dataloader.Result[T], itemsLength)
	for i := 0; i < itemsLength; i++ {
		result[i] = &dataloader.Result[T]{Error: err}
	}
	return result
}

package middlewares

import (
	"context"
	"net/url"
	"strings"

	"github.com/graph-gophers/dataloader/v7"

	"bitbucket.org/mmdatafocus/console_backend/models"
	"bitbucket.org/mmdatafocus/console_backend/normalize"
	"bitbucket.org/mmdatafocus/console_backend/upstream"
	"bitbucket.org/mmdatafocus/console_backend/utils"
)

type employeeReader struct {
	client *upstream.Client
}

func (r *employeeReader) getEmployees(ctx context.Context, ids []string) []*dataloader.Result[*models.Employee] {
	params := url.Values{}
	params.Set("ids", strings.Join(utils.UniqueSlice(ids), ","))
	raws, err := r.client.ListRecords(ctx, "employees", params)
	if err != nil {
		return handleError[*models.Employee](len(ids), err)
	}

	byId := make(map[string]models.Employee, len(raws))
	// Side-collection fetch: no nested department join here, the caller
	// only needs the display name.
	for _, emp := range normalize.Employees(raws, nil) {
		byId[emp.Id] = emp
	}

	results := make([]*dataloader.Result[*models.Employee], 0, len(ids))
	for _, id := range ids {
		if emp, ok := byId[id]; ok {
			e := emp
			results = append(results, &dataloader.Result[*models.Employee]{Data: &e})
		} else {
			results = append(results, &dataloader.Result[*models.Employee]{Error: utils.ErrorRecordNotFound})
		}
	}
	return results
}

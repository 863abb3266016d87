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

type departmentReader struct {
	client *upstream.Client
}

func (r *departmentReader) getDepartments(ctx context.Context, ids []string) []*dataloader.Result[*models.Department] {
	params := url.Values{}
	params.Set("ids", strings.Join(utils.UniqueSlice(ids), ","))
	raws, err := r.client.ListRecords(ctx, "departments", params)
	if err != nil {
		return handleError[*models.Department](len(ids), err)
	}

	byId := make(map[string]models.Department, len(raws))
	for _, dept := range normalize.Departments(raws, nil) {
		byId[dept.Id] = dept
	}

	results := make([]*dataloader.Result[*models.Department], 0, len(ids))
	for _, id := range ids {
		if dept, ok := byId[id]; ok {
			d := dept
			results = append(results, &dataloader.Result[*models.Department]{Data: &d})
		} else {
			results = append(results, &dataloader.Result[*models.Department]{Error: utils.ErrorRecordNotFound})
		}
	}
	return results
}

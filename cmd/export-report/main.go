// export-report pulls one collection from the console boundary and writes
// it to an .xlsx workbook, applying the same search/filter/sort predicate
// the list pages use. Intended for scheduled report jobs.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/console_backend/config"
	"bitbucket.org/mmdatafocus/console_backend/exports"
	"bitbucket.org/mmdatafocus/console_backend/models"
	"bitbucket.org/mmdatafocus/console_backend/normalize"
	"bitbucket.org/mmdatafocus/console_backend/query"
	"bitbucket.org/mmdatafocus/console_backend/upstream"
	"bitbucket.org/mmdatafocus/console_backend/utils"
)

func main() {
	var (
		resourceName = flag.String("resource", "departments", "collection to export: departments, employees or line-items")
		outPath      = flag.String("out", "", "output file path (default <resource>.xlsx)")
		search       = flag.String("search", "", "free-text search applied before export")
		filters      = flag.String("filter", "", "comma separated key=value exact filters")
		sortKey      = flag.String("sort", "", "sort key")
		order        = flag.String("order", "asc", "sort order: asc or desc")
		timeout      = flag.Duration("timeout", 2*time.Minute, "overall fetch timeout")
	)
	flag.Parse()

	logger := config.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if token := os.Getenv("CONSOLE_API_TOKEN"); token != "" {
		ctx = utils.SetTokenInContext(ctx, token)
	}

	predicate := query.Predicate{
		Search:    *search,
		Filters:   parseFilters(*filters),
		SortKey:   *sortKey,
		Direction: query.Direction(*order),
	}

	path := *outPath
	if path == "" {
		path = *resourceName + ".xlsx"
	}
	out, err := os.Create(path)
	if err != nil {
		logger.Fatalf("creating %s: %v", path, err)
	}
	defer out.Close()

	client := upstream.NewClient(config.GetUpstreamConfig())
	defer client.Close()

	var count int
	switch *resourceName {
	case "departments":
		count, err = export(ctx, client, out, "departments", predicate,
			query.DepartmentFields(), exports.DepartmentColumns(),
			func(raws []normalize.RawRecord) []models.Department {
				return normalize.Departments(raws, nil)
			})
	case "employees":
		count, err = export(ctx, client, out, "employees", predicate,
			query.EmployeeFields(), exports.EmployeeColumns(),
			func(raws []normalize.RawRecord) []models.Employee {
				return normalize.Employees(raws, nil)
			})
	case "line-items":
		count, err = export(ctx, client, out, "line-items", predicate,
			query.LineItemFields(), exports.LineItemColumns(), normalize.LineItems)
	default:
		logger.Fatalf("unsupported resource %q", *resourceName)
	}
	if err != nil {
		logger.Fatalf("exporting %s: %v", *resourceName, err)
	}
	logger.Infof("wrote %d rows to %s", count, path)
}

func export[T any](ctx context.Context, client *upstream.Client, out *os.File, resource string, predicate query.Predicate, fields query.FieldSet[T], columns []exports.Column[T], reconcile func([]normalize.RawRecord) []T) (int, error) {
	raws, err := client.ListRecords(ctx, resource, nil)
	if err != nil {
		return 0, err
	}
	records := query.Apply(reconcile(raws), predicate, fields)
	if err := exports.WriteCollection(out, columns, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

func parseFilters(raw string) map[string]string {
	filters := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found {
			fmt.Fprintf(os.Stderr, "ignoring malformed filter %q\n", pair)
			continue
		}
		filters[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return filters
}

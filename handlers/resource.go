// Package handlers exposes the normalized collections and mutations over
// HTTP for the console pages. Read failures never surface as transport
// errors: the page gets an empty collection plus an error notification and
// renders its empty state.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/console_backend/config"
	"bitbucket.org/mmdatafocus/console_backend/dispatch"
	"bitbucket.org/mmdatafocus/console_backend/normalize"
	"bitbucket.org/mmdatafocus/console_backend/pagestate"
	"bitbucket.org/mmdatafocus/console_backend/query"
	"bitbucket.org/mmdatafocus/console_backend/upstream"
	"bitbucket.org/mmdatafocus/console_backend/utils"
)

type Env struct {
	Client     *upstream.Client
	Dispatcher *dispatch.Dispatcher
}

// resource ties one entity's reconciler, field configuration and page store
// together behind the standard route set.
type resource[T any, P any] struct {
	env  *Env
	name string
	// reconcileList turns raw upstream records into canonical ones; the
	// context carries the request's dataloaders for side-collection joins.
	reconcileList func(ctx context.Context, raws []normalize.RawRecord) []T
	fields        query.FieldSet[T]
	store         *pagestate.Store[T]
}

func newResource[T any, P any](env *Env, name string, fields query.FieldSet[T], reconcileList func(ctx context.Context, raws []normalize.RawRecord) []T) *resource[T, P] {
	return &resource[T, P]{
		env:           env,
		name:          name,
		reconcileList: reconcileList,
		fields:        fields,
		store:         pagestate.NewStore[T](name),
	}
}

func (r *resource[T, P]) register(router gin.IRouter) {
	group := router.Group("/" + r.name)
	group.GET("", r.list)
	group.GET("/:id", r.get)
	group.POST("", r.create)
	group.PUT("/:id", r.update)
	group.DELETE("/:id", r.delete)
}

func (r *resource[T, P]) predicate(c *gin.Context) query.Predicate {
	filters := make(map[string]string)
	for key := range r.fields.Filterable {
		if v := c.Query(key); v != "" {
			filters[key] = v
		}
	}
	direction := query.Ascending
	if c.Query("order") == string(query.Descending) {
		direction = query.Descending
	}
	return query.Predicate{
		Search:    c.Query("search"),
		Filters:   filters,
		SortKey:   c.Query("sort_by"),
		Direction: direction,
	}
}

// collection returns the reconciled full collection, via the redis cache
// when enabled for this entity.
func (r *resource[T, P]) collection(ctx context.Context) ([]T, error) {
	if cached, err := utils.RetrieveCollection[T](r.name); err == nil && cached != nil {
		return cached, nil
	}

	err := r.store.Refetch(ctx, func(ctx context.Context) ([]T, error) {
		raws, err := r.env.Client.ListRecords(ctx, r.name, nil)
		if err != nil {
			return nil, err
		}
		return r.reconcileList(ctx, raws), nil
	})
	if err != nil {
		return nil, err
	}

	records := r.store.Records()
	if err := utils.StoreCollection(r.name, records); err != nil {
		config.LogError(config.GetLogger(), "handlers", "collection", r.name, nil, err)
	}
	return records, nil
}

func (r *resource[T, P]) refetch(ctx context.Context) error {
	if err := utils.InvalidateCollection[T](r.name); err != nil {
		config.LogError(config.GetLogger(), "handlers", "refetch", r.name, nil, err)
	}
	return r.store.Refetch(ctx, func(ctx context.Context) ([]T, error) {
		raws, err := r.env.Client.ListRecords(ctx, r.name, nil)
		if err != nil {
			return nil, err
		}
		return r.reconcileList(ctx, raws), nil
	})
}

func (r *resource[T, P]) list(c *gin.Context) {
	ctx := c.Request.Context()
	records, err := r.collection(ctx)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"results": []T{},
			"total":   0,
			"notification": dispatch.Notification{
				Level:   dispatch.LevelError,
				Message: "Loading the list failed",
			},
		})
		return
	}

	filtered := query.Apply(records, r.predicate(c), r.fields)
	c.JSON(http.StatusOK, gin.H{
		"results": filtered,
		"total":   len(filtered),
	})
}

func (r *resource[T, P]) get(c *gin.Context) {
	ctx := c.Request.Context()
	raw, err := r.env.Client.GetRecord(ctx, r.name, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"result": nil,
			"notification": dispatch.Notification{
				Level:   dispatch.LevelError,
				Message: "Loading the record failed",
			},
		})
		return
	}
	records := r.reconcileList(ctx, []normalize.RawRecord{raw})
	c.JSON(http.StatusOK, gin.H{"result": records[0]})
}

func (r *resource[T, P]) create(c *gin.Context) {
	var payload P
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	result := r.env.Dispatcher.Create(c.Request.Context(), r.name, r.name, payload, r.refetch)
	respondMutation(c, result, "Record created")
}

func (r *resource[T, P]) update(c *gin.Context) {
	var payload P
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	result := r.env.Dispatcher.Update(c.Request.Context(), r.name, r.name, c.Param("id"), payload, r.refetch)
	respondMutation(c, result, "Record updated")
}

func (r *resource[T, P]) delete(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	result := r.env.Dispatcher.Delete(c.Request.Context(), r.name, r.name, c.Param("id"), confirmed, r.refetch)
	respondMutation(c, result, "Record deleted")
}

func respondMutation(c *gin.Context, result dispatch.Result, successMessage string) {
	switch {
	case result.Cancelled:
		c.JSON(http.StatusOK, result)
	case len(result.FieldErrors) > 0:
		c.JSON(http.StatusUnprocessableEntity, result)
	case !result.Ok:
		c.JSON(http.StatusBadGateway, gin.H{
			"ok": false,
			"notification": dispatch.Notification{
				Level:   dispatch.LevelError,
				Message: result.Message,
			},
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"ok": true,
			"notification": dispatch.Notification{
				Level:   dispatch.LevelSuccess,
				Message: successMessage,
			},
		})
	}
}

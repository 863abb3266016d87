// Package dispatch performs single create/update/delete mutations against
// the upstream boundary. There is no optimistic patching: a successful
// mutation triggers the owning page's full-collection refetch, a failed one
// leaves every piece of in-memory state untouched.
package dispatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/go-playground/validator/v10"

	"bitbucket.org/mmdatafocus/console_backend/config"
	"bitbucket.org/mmdatafocus/console_backend/upstream"
	"bitbucket.org/mmdatafocus/console_backend/utils"
)

// Boundary is the slice of the upstream client the dispatcher needs.
type Boundary interface {
	CreateRecord(ctx context.Context, resource string, payload interface{}) error
	UpdateRecord(ctx context.Context, resource, id string, payload interface{}) error
	DeleteRecord(ctx context.Context, resource, id string) error
}

// Result is what the page renders after a dispatch attempt.
type Result struct {
	Ok bool `json:"ok"`
	// Cancelled marks a declined delete confirmation: no network call was
	// made and no notification is shown.
	Cancelled bool `json:"cancelled,omitempty"`
	// FieldErrors are the persistent inline validation messages; when set,
	// the request was never sent.
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Message     string            `json:"message,omitempty"`
}

const submitLockTTL = 10 * time.Second

type Dispatcher struct {
	boundary Boundary
	notifier Notifier
	validate *validator.Validate

	mu        sync.Mutex
	inFlight  map[string]bool
	locksHeld map[string]*redislock.Lock
}

func NewDispatcher(boundary Boundary, notifier Notifier) *Dispatcher {
	validate := validator.New()
	// The console validates phone fields before dispatch, same default
	// region as the rest of the product.
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return utils.ValidatePhoneNumber(fl.Field().String(), utils.CountryCode) == nil
	})
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Dispatcher{
		boundary:  boundary,
		notifier:  notifier,
		validate:  validate,
		inFlight:  make(map[string]bool),
		locksHeld: make(map[string]*redislock.Lock),
	}
}

// Create validates payload and posts it. page keys the double-submission
// guard (one in-flight mutation per page instance).
func (d *Dispatcher) Create(ctx context.Context, page, resource string, payload interface{}, refetch func(context.Context) error) Result {
	page = pageKey(ctx, page)
	if result, blocked := d.acquire(ctx, page); blocked {
		return result
	}
	defer d.release(page)

	if result, invalid := d.validatePayload(ctx, payload); invalid {
		return result
	}
	if err := d.boundary.CreateRecord(ctx, resource, payload); err != nil {
		return d.failed(ctx, err)
	}
	return d.succeeded(ctx, "Record created", refetch)
}

func (d *Dispatcher) Update(ctx context.Context, page, resource, id string, payload interface{}, refetch func(context.Context) error) Result {
	page = pageKey(ctx, page)
	if result, blocked := d.acquire(ctx, page); blocked {
		return result
	}
	defer d.release(page)

	if result, invalid := d.validatePayload(ctx, payload); invalid {
		return result
	}
	if err := d.boundary.UpdateRecord(ctx, resource, id, payload); err != nil {
		return d.failed(ctx, err)
	}
	return d.succeeded(ctx, "Record updated", refetch)
}

// Delete is confirmation-gated: confirmed=false is a no-op with zero
// network calls and an unchanged collection.
func (d *Dispatcher) Delete(ctx context.Context, page, resource, id string, confirmed bool, refetch func(context.Context) error) Result {
	if !confirmed {
		return Result{Cancelled: true}
	}
	page = pageKey(ctx, page)
	if result, blocked := d.acquire(ctx, page); blocked {
		return result
	}
	defer d.release(page)

	if err := d.boundary.DeleteRecord(ctx, resource, id); err != nil {
		return d.failed(ctx, err)
	}
	return d.succeeded(ctx, "Record deleted", refetch)
}

// pageKey scopes the submit guard to the page instance that issued the
// request. Two browser tabs over the same resource carry distinct page ids
// and must not block each other.
func pageKey(ctx context.Context, page string) string {
	if id, ok := utils.GetPageIdFromContext(ctx); ok && id != "" {
		return page + ":" + id
	}
	return page
}

// acquire takes the per-page submit guard: an in-process flag, plus a redis
// lock when configured so two gateway replicas cannot double-submit the
// same page's form.
func (d *Dispatcher) acquire(ctx context.Context, page string) (Result, bool) {
	d.mu.Lock()
	if d.inFlight[page] {
		d.mu.Unlock()
		return Result{Message: utils.ErrorSubmitInFlight.Error()}, true
	}
	d.inFlight[page] = true
	d.mu.Unlock()

	if locker := config.GetRedisLock(); locker != nil {
		lock, err := locker.Obtain(ctx, "submit:"+page, submitLockTTL, nil)
		if err != nil {
			d.release(page)
			if errors.Is(err, redislock.ErrNotObtained) {
				return Result{Message: utils.ErrorSubmitInFlight.Error()}, true
			}
			return d.failed(ctx, err), true
		}
		d.mu.Lock()
		d.locksHeld[page] = lock
		d.mu.Unlock()
	}
	return Result{}, false
}

func (d *Dispatcher) release(page string) {
	d.mu.Lock()
	delete(d.inFlight, page)
	lock := d.locksHeld[page]
	delete(d.locksHeld, page)
	d.mu.Unlock()
	if lock != nil {
		_ = lock.Release(context.Background())
	}
}

func (d *Dispatcher) validatePayload(ctx context.Context, payload interface{}) (Result, bool) {
	if payload == nil {
		return Result{}, false
	}
	err := d.validate.Struct(payload)
	if err == nil {
		return Result{}, false
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return Result{FieldErrors: utils.ProcessValidationErrors(err)}, true
	}
	return d.failed(ctx, err), true
}

func (d *Dispatcher) failed(ctx context.Context, err error) Result {
	message := "The request could not be completed"
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		message = apiErr.Detail
	}
	d.notifier.Notify(Notification{Level: LevelError, Message: message})
	config.LogError(config.GetLogger(), "dispatch", "failed", "mutation", actingUser(ctx), err)
	return Result{Message: message}
}

// actingUser pulls the caller's identity off the context for the failure
// log line, when the auth middleware put one there.
func actingUser(ctx context.Context) interface{} {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil
	}
	user := map[string]string{"userId": userId}
	if userName, ok := utils.GetUserNameFromContext(ctx); ok && userName != "" {
		user["userName"] = userName
	}
	return user
}

func (d *Dispatcher) succeeded(ctx context.Context, message string, refetch func(context.Context) error) Result {
	d.notifier.Notify(Notification{Level: LevelSuccess, Message: message})
	if refetch != nil {
		if err := refetch(ctx); err != nil {
			// The mutation stands; the stale collection simply shows until
			// the next successful pull.
			d.notifier.Notify(Notification{Level: LevelError, Message: "Refreshing the list failed"})
		}
	}
	return Result{Ok: true, Message: message}
}

package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bitbucket.org/mmdatafocus/console_backend/models"
	"bitbucket.org/mmdatafocus/console_backend/upstream"
	"bitbucket.org/mmdatafocus/console_backend/utils"
)

type fakeBoundary struct {
	mu      sync.Mutex
	creates int
	updates int
	deletes int
	err     error
	// block, when set, holds the mutation open until released; started is
	// closed once the boundary call begins. blockFirst restricts the hold to
	// the first create so later ones run through.
	block      chan struct{}
	blockFirst bool
	started    chan struct{}
	once       sync.Once
}

func (f *fakeBoundary) CreateRecord(ctx context.Context, resource string, payload interface{}) error {
	f.mu.Lock()
	f.creates++
	block := f.block
	if f.blockFirst && f.creates > 1 {
		block = nil
	}
	f.mu.Unlock()
	if f.started != nil {
		f.once.Do(func() { close(f.started) })
	}
	if block != nil {
		<-block
	}
	return f.err
}

func (f *fakeBoundary) UpdateRecord(ctx context.Context, resource, id string, payload interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	return f.err
}

func (f *fakeBoundary) DeleteRecord(ctx context.Context, resource, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	return f.err
}

func (f *fakeBoundary) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creates + f.updates + f.deletes
}

type recordingNotifier struct {
	mu            sync.Mutex
	notifications []Notification
}

func (r *recordingNotifier) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recordingNotifier) all() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.notifications...)
}

// A declined confirmation is a full stop: no network call, no refetch, no
// notification, collection unchanged.
func TestDelete_DeclinedConfirmationMakesNoCalls(t *testing.T) {
	boundary := &fakeBoundary{}
	notifier := &recordingNotifier{}
	d := NewDispatcher(boundary, notifier)

	refetched := false
	result := d.Delete(context.Background(), "departments", "departments", "d1", false, func(context.Context) error {
		refetched = true
		return nil
	})

	if !result.Cancelled {
		t.Fatalf("expected cancelled result, got %+v", result)
	}
	if result.Ok {
		t.Fatal("cancelled delete must not read as ok")
	}
	if boundary.calls() != 0 {
		t.Fatalf("expected zero boundary calls, got %d", boundary.calls())
	}
	if refetched {
		t.Fatal("cancelled delete must not refetch")
	}
	if len(notifier.all()) != 0 {
		t.Fatalf("cancelled delete must not notify, got %v", notifier.all())
	}
}

func TestDelete_ConfirmedDeletesAndRefetches(t *testing.T) {
	boundary := &fakeBoundary{}
	notifier := &recordingNotifier{}
	d := NewDispatcher(boundary, notifier)

	refetched := false
	result := d.Delete(context.Background(), "departments", "departments", "d1", true, func(context.Context) error {
		refetched = true
		return nil
	})

	if !result.Ok {
		t.Fatalf("expected ok, got %+v", result)
	}
	if boundary.deletes != 1 {
		t.Fatalf("expected 1 delete, got %d", boundary.deletes)
	}
	if !refetched {
		t.Fatal("successful delete must refetch")
	}
	got := notifier.all()
	if len(got) != 1 || got[0].Level != LevelSuccess {
		t.Fatalf("expected one success notification, got %v", got)
	}
}

// Validation failures never reach the boundary; the page renders the
// per-field messages instead of a toast.
func TestCreate_ValidationBlocksDispatch(t *testing.T) {
	boundary := &fakeBoundary{}
	notifier := &recordingNotifier{}
	d := NewDispatcher(boundary, notifier)

	payload := models.DepartmentPayload{Code: "ENG"} // missing required name
	result := d.Create(context.Background(), "departments", "departments", payload, nil)

	if result.Ok || result.Cancelled {
		t.Fatalf("expected validation failure, got %+v", result)
	}
	if tag, ok := result.FieldErrors["Name"]; !ok || tag != "required" {
		t.Fatalf("expected Name:required, got %v", result.FieldErrors)
	}
	if boundary.calls() != 0 {
		t.Fatalf("invalid payload must not be sent, got %d calls", boundary.calls())
	}
	if len(notifier.all()) != 0 {
		t.Fatalf("validation failure is inline, not a toast: %v", notifier.all())
	}
}

func TestCreate_ValidPayloadDispatches(t *testing.T) {
	boundary := &fakeBoundary{}
	d := NewDispatcher(boundary, &recordingNotifier{})

	payload := models.DepartmentPayload{Name: "Engineering", Code: "ENG"}
	result := d.Create(context.Background(), "departments", "departments", payload, nil)
	if !result.Ok {
		t.Fatalf("expected ok, got %+v", result)
	}
	if boundary.creates != 1 {
		t.Fatalf("expected 1 create, got %d", boundary.creates)
	}
}

// The failure message comes from the backend's error payload when it sent
// one, not a generic string.
func TestUpdate_SurfacesBackendDetail(t *testing.T) {
	boundary := &fakeBoundary{err: &upstream.APIError{Status: 409, Detail: "code already in use"}}
	notifier := &recordingNotifier{}
	d := NewDispatcher(boundary, notifier)

	refetched := false
	payload := models.DepartmentPayload{Name: "Engineering", Code: "ENG"}
	result := d.Update(context.Background(), "departments", "departments", "d1", payload, func(context.Context) error {
		refetched = true
		return nil
	})

	if result.Ok {
		t.Fatalf("expected failure, got %+v", result)
	}
	if result.Message != "code already in use" {
		t.Fatalf("expected backend detail, got %q", result.Message)
	}
	if refetched {
		t.Fatal("failed mutation must not refetch")
	}
	got := notifier.all()
	if len(got) != 1 || got[0].Level != LevelError || got[0].Message != "code already in use" {
		t.Fatalf("expected one error notification with detail, got %v", got)
	}
}

func TestUpdate_GenericMessageWithoutDetail(t *testing.T) {
	boundary := &fakeBoundary{err: errors.New("connection refused")}
	d := NewDispatcher(boundary, &recordingNotifier{})

	payload := models.DepartmentPayload{Name: "Engineering", Code: "ENG"}
	result := d.Update(context.Background(), "departments", "departments", "d1", payload, nil)
	if result.Ok {
		t.Fatalf("expected failure, got %+v", result)
	}
	if result.Message != "The request could not be completed" {
		t.Fatalf("expected generic message, got %q", result.Message)
	}
}

// One in-flight mutation per page: a second submit while the first is still
// running is rejected without reaching the boundary.
func TestDispatch_DoubleSubmitGuard(t *testing.T) {
	block := make(chan struct{})
	boundary := &fakeBoundary{block: block, started: make(chan struct{})}
	d := NewDispatcher(boundary, &recordingNotifier{})

	payload := models.DepartmentPayload{Name: "Engineering", Code: "ENG"}

	firstDone := make(chan Result, 1)
	go func() {
		firstDone <- d.Create(context.Background(), "departments", "departments", payload, nil)
	}()

	// Wait for the first submit to be inside the boundary call.
	<-boundary.started

	second := d.Create(context.Background(), "departments", "departments", payload, nil)
	if second.Ok || second.Cancelled {
		t.Fatalf("expected blocked result, got %+v", second)
	}
	if second.Message == "" {
		t.Fatal("blocked submit should carry a message")
	}
	if boundary.calls() != 1 {
		t.Fatalf("second submit must not reach the boundary, got %d calls", boundary.calls())
	}

	close(block)
	if first := <-firstDone; !first.Ok {
		t.Fatalf("first submit expected ok, got %+v", first)
	}

	// The guard releases once the first submit settles.
	boundary.block = nil
	third := d.Create(context.Background(), "departments", "departments", payload, nil)
	if !third.Ok {
		t.Fatalf("expected guard released, got %+v", third)
	}
}

// The guard is scoped to the page instance: two tabs over the same resource
// carry distinct page ids and submit independently.
func TestDispatch_SubmitGuardScopedToPageInstance(t *testing.T) {
	block := make(chan struct{})
	boundary := &fakeBoundary{block: block, blockFirst: true, started: make(chan struct{})}
	d := NewDispatcher(boundary, &recordingNotifier{})

	payload := models.DepartmentPayload{Name: "Engineering", Code: "ENG"}
	tabOne := utils.SetPageIdInContext(context.Background(), "tab-1")
	tabTwo := utils.SetPageIdInContext(context.Background(), "tab-2")

	firstDone := make(chan Result, 1)
	go func() {
		firstDone <- d.Create(tabOne, "departments", "departments", payload, nil)
	}()
	<-boundary.started

	// Same page, same tab: still one in-flight mutation.
	dup := d.Create(tabOne, "departments", "departments", payload, nil)
	if dup.Ok {
		t.Fatalf("expected same-tab submit blocked, got %+v", dup)
	}

	// Same page, different tab: its own guard, goes straight through.
	other := d.Create(tabTwo, "departments", "departments", payload, nil)
	if !other.Ok {
		t.Fatalf("expected other tab to dispatch, got %+v", other)
	}

	close(block)
	if first := <-firstDone; !first.Ok {
		t.Fatalf("first submit expected ok, got %+v", first)
	}
}

// A refetch failure after a successful mutation surfaces as a toast but the
// mutation itself still reads as ok.
func TestSucceeded_RefetchFailureKeepsOk(t *testing.T) {
	boundary := &fakeBoundary{}
	notifier := &recordingNotifier{}
	d := NewDispatcher(boundary, notifier)

	result := d.Delete(context.Background(), "departments", "departments", "d1", true, func(context.Context) error {
		return errors.New("boundary down")
	})
	if !result.Ok {
		t.Fatalf("mutation stands even if refresh fails, got %+v", result)
	}
	got := notifier.all()
	if len(got) != 2 {
		t.Fatalf("expected success then error notification, got %v", got)
	}
	if got[0].Level != LevelSuccess || got[1].Level != LevelError {
		t.Fatalf("unexpected notification order: %v", got)
	}
}

// Package controller owns the in-memory state behind one CRUD page: the
// record list, the edit session, the pending delete target and the last
// notice. State transitions are synchronous; network work is handed back to
// the caller as an Effect to run, and its Outcome is folded in via Apply.
// The phase enum makes illegal combinations (confirming a delete while a
// submit is in flight, overlapping list loads) unrepresentable, and every
// issued call carries a sequence number so stale responses are discarded.
package controller

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ipa-agro/agromanager/internal/domain/models"
)

// Phase is the page's exclusive top-level state.
type Phase int

const (
	// PhaseIdle shows the list with no call outstanding.
	PhaseIdle Phase = iota
	// PhaseLoading has a list fetch or a delete in flight.
	PhaseLoading
	// PhaseEditing has the create/edit form open with a draft.
	PhaseEditing
	// PhaseSubmitting has a create or update call in flight.
	PhaseSubmitting
	// PhaseConfirmingDelete awaits the user's delete confirmation.
	PhaseConfirmingDelete
)

// NoticeKind distinguishes success banners from error banners.
type NoticeKind int

const (
	// NoticeSuccess reports a completed mutation.
	NoticeSuccess NoticeKind = iota
	// NoticeError reports a failed call or a rejected draft.
	NoticeError
)

// Notice is the single user-facing message a page shows at a time.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Service is the slice of the resource service the controller drives.
type Service[K comparable, R any] interface {
	List(ctx context.Context) ([]R, error)
	Create(ctx context.Context, draft R) (R, error)
	Update(ctx context.Context, key K, record R) (R, error)
	Delete(ctx context.Context, key K) error
}

type callKind int

const (
	callList callKind = iota
	callSave
	callDelete
)

// Outcome is the result of one completed Effect, opaque to callers.
type Outcome[K comparable, R any] struct {
	seq     uint64
	kind    callKind
	records []R
	updated bool
	err     error
}

// Effect is a network call the caller runs, typically off the UI goroutine,
// feeding the result back through Apply.
type Effect[K comparable, R any] func(ctx context.Context) Outcome[K, R]

// Controller is the state machine behind one CRUD page. It is the sole owner
// of its list and edit session; callers read state and issue intents from a
// single goroutine.
type Controller[K comparable, R any] struct {
	svc      Service[K, R]
	entity   string
	key      func(R) (K, bool)
	newDraft func() R
	validate func(R) []models.FieldViolation
	logger   *zap.Logger

	phase        Phase
	records      []R
	draft        R
	editing      *K
	deleteTarget *R
	notice       *Notice
	seq          uint64
}

// Options fixes the per-entity pieces of a controller.
type Options[K comparable, R any] struct {
	// Entity is the human-readable singular name used in notices.
	Entity string
	// Key extracts a record's persisted key; ok is false for drafts.
	Key func(R) (K, bool)
	// NewDraft produces the default draft for the create form.
	NewDraft func() R
	// Validate checks a draft before submission.
	Validate func(R) []models.FieldViolation
	Logger   *zap.Logger
}

// New builds a controller over the given resource service.
func New[K comparable, R any](svc Service[K, R], opts Options[K, R]) *Controller[K, R] {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller[K, R]{
		svc:      svc,
		entity:   opts.Entity,
		key:      opts.Key,
		newDraft: opts.NewDraft,
		validate: opts.Validate,
		logger:   logger,
	}
	c.draft = c.newDraft()
	return c
}

// Phase returns the current page phase.
func (c *Controller[K, R]) Phase() Phase { return c.phase }

// Records returns the last-known-good record list.
func (c *Controller[K, R]) Records() []R { return c.records }

// Draft returns the current draft values.
func (c *Controller[K, R]) Draft() R { return c.draft }

// Editing reports the key under edit; ok is false in create mode.
func (c *Controller[K, R]) Editing() (K, bool) {
	var zero K
	if c.editing == nil {
		return zero, false
	}
	return *c.editing, true
}

// DeleteTarget returns the record awaiting delete confirmation.
func (c *Controller[K, R]) DeleteTarget() (R, bool) {
	var zero R
	if c.deleteTarget == nil {
		return zero, false
	}
	return *c.deleteTarget, true
}

// Notice returns the current banner, if any.
func (c *Controller[K, R]) Notice() *Notice { return c.notice }

// ClearNotice dismisses the banner.
func (c *Controller[K, R]) ClearNotice() { c.notice = nil }

// Busy reports whether a network call is outstanding. Callers disable the
// triggering controls while this holds.
func (c *Controller[K, R]) Busy() bool {
	return c.phase == PhaseLoading || c.phase == PhaseSubmitting
}

// Refresh starts a list fetch. It is a no-op unless the page is idle: a
// submit in flight is never overlapped by a load, and a second refresh is
// not issued while one is outstanding.
func (c *Controller[K, R]) Refresh() Effect[K, R] {
	if c.phase != PhaseIdle {
		return nil
	}

	c.phase = PhaseLoading
	c.seq++
	seq := c.seq

	return func(ctx context.Context) Outcome[K, R] {
		records, err := c.svc.List(ctx)
		return Outcome[K, R]{seq: seq, kind: callList, records: records, err: err}
	}
}

// OpenCreate opens the form with a default draft.
func (c *Controller[K, R]) OpenCreate() {
	if c.phase != PhaseIdle {
		return
	}
	c.draft = c.newDraft()
	c.editing = nil
	c.notice = nil
	c.phase = PhaseEditing
}

// OpenEdit opens the form pre-filled with a copy of the record under key.
func (c *Controller[K, R]) OpenEdit(key K) {
	if c.phase != PhaseIdle {
		return
	}
	for _, record := range c.records {
		if k, ok := c.key(record); ok && k == key {
			c.draft = record
			keyCopy := key
			c.editing = &keyCopy
			c.notice = nil
			c.phase = PhaseEditing
			return
		}
	}
}

// SetDraft replaces the draft with the form's current values. Field-level
// coercion from text input happens in the form, not here.
func (c *Controller[K, R]) SetDraft(draft R) {
	if c.phase != PhaseEditing {
		return
	}
	c.draft = draft
}

// CancelEdit discards the draft and closes the form. Never touches the
// network.
func (c *Controller[K, R]) CancelEdit() {
	if c.phase != PhaseEditing {
		return
	}
	c.draft = c.newDraft()
	c.editing = nil
	c.phase = PhaseIdle
}

// Submit validates the draft and starts the create or update call.
// Violations block submission and keep the form open; a submit already in
// flight makes this a no-op, so a double press cannot issue two calls.
func (c *Controller[K, R]) Submit() Effect[K, R] {
	if c.phase != PhaseEditing {
		return nil
	}

	if violations := c.validate(c.draft); len(violations) > 0 {
		c.notice = &Notice{Kind: NoticeError, Text: models.ViolationSummary(violations)}
		return nil
	}

	c.phase = PhaseSubmitting
	c.notice = nil
	c.seq++
	seq := c.seq

	draft := c.draft
	editing := c.editing

	return func(ctx context.Context) Outcome[K, R] {
		if editing != nil {
			_, err := c.svc.Update(ctx, *editing, draft)
			return Outcome[K, R]{seq: seq, kind: callSave, updated: true, err: err}
		}
		_, err := c.svc.Create(ctx, draft)
		return Outcome[K, R]{seq: seq, kind: callSave, err: err}
	}
}

// RequestDelete asks for confirmation before deleting the record under key.
// No network call is made yet.
func (c *Controller[K, R]) RequestDelete(key K) {
	if c.phase != PhaseIdle {
		return
	}
	for _, record := range c.records {
		if k, ok := c.key(record); ok && k == key {
			target := record
			c.deleteTarget = &target
			c.phase = PhaseConfirmingDelete
			return
		}
	}
}

// ConfirmDelete leaves the confirmation state and starts the delete call.
func (c *Controller[K, R]) ConfirmDelete() Effect[K, R] {
	if c.phase != PhaseConfirmingDelete || c.deleteTarget == nil {
		return nil
	}

	key, ok := c.key(*c.deleteTarget)
	c.deleteTarget = nil
	if !ok {
		c.phase = PhaseIdle
		return nil
	}

	c.phase = PhaseLoading
	c.seq++
	seq := c.seq

	return func(ctx context.Context) Outcome[K, R] {
		err := c.svc.Delete(ctx, key)
		return Outcome[K, R]{seq: seq, kind: callDelete, err: err}
	}
}

// CancelDelete drops the pending target without calling the backend.
func (c *Controller[K, R]) CancelDelete() {
	if c.phase != PhaseConfirmingDelete {
		return
	}
	c.deleteTarget = nil
	c.phase = PhaseIdle
}

// Apply folds a completed call back into the page state. Outcomes older than
// the latest issued call are discarded. The returned Effect, when non-nil, is
// the list refresh chained strictly after a successful mutation; the caller
// runs it like any other.
func (c *Controller[K, R]) Apply(o Outcome[K, R]) Effect[K, R] {
	if o.seq != c.seq {
		c.logger.Debug("discarding stale outcome",
			zap.Uint64("outcome_seq", o.seq), zap.Uint64("current_seq", c.seq))
		return nil
	}

	switch o.kind {
	case callList:
		c.phase = PhaseIdle
		if o.err != nil {
			c.logger.Warn("list failed", zap.Error(o.err))
			c.notice = &Notice{Kind: NoticeError, Text: fmt.Sprintf("failed to load %s list: %v", c.entity, o.err)}
			return nil
		}
		c.records = o.records
		// A successful load clears a lingering error but keeps the success
		// banner from the mutation that triggered it.
		if c.notice != nil && c.notice.Kind == NoticeError {
			c.notice = nil
		}

	case callSave:
		if o.err != nil {
			// The draft survives a failed submit untouched.
			c.phase = PhaseEditing
			c.logger.Warn("save failed", zap.Error(o.err))
			c.notice = &Notice{Kind: NoticeError, Text: fmt.Sprintf("failed to save %s: %v", c.entity, o.err)}
			return nil
		}
		c.phase = PhaseIdle
		c.editing = nil
		c.draft = c.newDraft()
		if o.updated {
			c.notice = &Notice{Kind: NoticeSuccess, Text: fmt.Sprintf("%s updated", c.entity)}
		} else {
			c.notice = &Notice{Kind: NoticeSuccess, Text: fmt.Sprintf("%s created", c.entity)}
		}
		return c.Refresh()

	case callDelete:
		c.phase = PhaseIdle
		if o.err != nil {
			c.logger.Warn("delete failed", zap.Error(o.err))
			c.notice = &Notice{Kind: NoticeError, Text: fmt.Sprintf("failed to delete %s: %v", c.entity, o.err)}
			return nil
		}
		c.notice = &Notice{Kind: NoticeSuccess, Text: fmt.Sprintf("%s deleted", c.entity)}
		return c.Refresh()
	}

	return nil
}

package submission

import (
	"context"
	"log/slog"
	"sync"

	"github.com/JoyOffere/linear-regression-model/internal/model"
)

// Phase is the lifecycle position of a prediction session.
type Phase int

// Controller phases.
const (
	PhaseIdle Phase = iota
	PhaseInvalid
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

// String returns the phase name for logs and tests.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInvalid:
		return "invalid"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the controller, handed to the
// presentation layer on every transition. Payload fields follow Phase:
// FieldErrors for Invalid, Request for Submitting onward, RatePercent
// for Succeeded, Outcome for Failed.
type State struct {
	FieldErrors model.FieldErrors
	Request     *model.PredictionRequest
	Outcome     *model.Outcome
	Input       model.Input
	RatePercent float64
	Phase       Phase
}

// Predictor resolves one prediction attempt. Satisfied by
// *predictor.Client.
type Predictor interface {
	Predict(ctx context.Context, request model.PredictionRequest) model.Outcome
}

// Config holds the controller's collaborators and session defaults.
type Config struct {
	Predictor  Predictor
	OnChange   func(State)
	Countries  []string
	STEMFields []string
	Defaults   model.Input
}

// Controller owns one prediction session: the raw input, the lifecycle
// state, and the single in-flight attempt. All mutation goes through
// its methods; the transport layer only ever hands back an outcome.
type Controller struct {
	predictor  Predictor
	validator  *Validator
	onChange   func(State)
	defaults   model.Input
	input      model.Input
	state      State
	mu         sync.Mutex
	generation int
	closed     bool
}

// NewController creates a controller in the Idle phase with the
// configured default input.
func NewController(cfg Config) *Controller {
	c := &Controller{
		predictor: cfg.Predictor,
		validator: NewValidator(cfg.Countries, cfg.STEMFields),
		onChange:  cfg.OnChange,
		defaults:  cfg.Defaults,
		input:     cfg.Defaults,
	}
	c.state = State{Phase: PhaseIdle, Input: c.input}
	return c
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Input returns a copy of the raw input.
func (c *Controller) Input() model.Input {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// SetYear updates the raw year value.
func (c *Controller) SetYear(value string) {
	c.edit(func(in *model.Input) { in.Year = value })
}

// SetFemaleEnrollmentPercent updates the raw enrollment value.
func (c *Controller) SetFemaleEnrollmentPercent(value string) {
	c.edit(func(in *model.Input) { in.FemaleEnrollmentPercent = value })
}

// SetGenderGapIndex updates the raw gender-gap-index value.
func (c *Controller) SetGenderGapIndex(value string) {
	c.edit(func(in *model.Input) { in.GenderGapIndex = value })
}

// SetCountry updates the selected country.
func (c *Controller) SetCountry(value string) {
	c.edit(func(in *model.Input) { in.Country = value })
}

// SetSTEMField updates the selected STEM field.
func (c *Controller) SetSTEMField(value string) {
	c.edit(func(in *model.Input) { in.STEMField = value })
}

// edit applies one input mutation. Input is read-only while a request
// is in flight; an edit in the Invalid phase returns the machine to
// Idle so the user can resubmit.
func (c *Controller) edit(apply func(*model.Input)) {
	c.mu.Lock()
	if c.closed || c.state.Phase == PhaseSubmitting {
		c.mu.Unlock()
		return
	}

	apply(&c.input)
	if c.state.Phase == PhaseInvalid {
		c.state = State{Phase: PhaseIdle, Input: c.input}
	} else {
		c.state.Input = c.input
	}
	snapshot := c.state
	c.mu.Unlock()

	c.notify(snapshot)
}

// Submit validates the current input and, if it passes, starts the
// single in-flight attempt. A submit while already Submitting is a
// no-op, which keeps at most one network call per controller. From
// Succeeded or Failed it behaves as a fresh submission.
func (c *Controller) Submit(ctx context.Context) State {
	c.mu.Lock()
	if c.closed || c.state.Phase == PhaseSubmitting {
		snapshot := c.state
		c.mu.Unlock()
		return snapshot
	}

	request, fieldErrs := c.validator.Validate(c.input)
	if len(fieldErrs) > 0 {
		c.state = State{Phase: PhaseInvalid, Input: c.input, FieldErrors: fieldErrs}
		snapshot := c.state
		c.mu.Unlock()
		c.notify(snapshot)
		return snapshot
	}

	c.generation++
	generation := c.generation
	c.state = State{Phase: PhaseSubmitting, Input: c.input, Request: &request}
	snapshot := c.state
	c.mu.Unlock()

	c.notify(snapshot)
	go c.resolve(ctx, generation, request)
	return snapshot
}

// Reset returns the session to Idle, restoring the default input and
// discarding any outcome. An attempt still in flight is orphaned; its
// resolution will no longer match the current generation.
func (c *Controller) Reset() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.generation++
	c.input = c.defaults
	c.state = State{Phase: PhaseIdle, Input: c.input}
	snapshot := c.state
	c.mu.Unlock()

	c.notify(snapshot)
}

// Close marks the session as disposed. Late resolutions after Close
// are discarded without touching state or notifying anyone.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.generation++
	c.mu.Unlock()
}

func (c *Controller) resolve(ctx context.Context, generation int, request model.PredictionRequest) {
	outcome := c.predictor.Predict(ctx, request)
	c.apply(generation, outcome)
}

// apply installs the resolution of attempt generation, unless the
// session was closed or superseded in the meantime.
func (c *Controller) apply(generation int, outcome model.Outcome) {
	c.mu.Lock()
	if c.closed || generation != c.generation || c.state.Phase != PhaseSubmitting {
		c.mu.Unlock()
		slog.Debug("Discarding stale prediction resolution", "generation", generation)
		return
	}

	request := c.state.Request
	if outcome.OK() {
		c.state = State{
			Phase:       PhaseSucceeded,
			Input:       c.input,
			Request:     request,
			RatePercent: outcome.RatePercent,
			Outcome:     &outcome,
		}
	} else {
		c.state = State{
			Phase:   PhaseFailed,
			Input:   c.input,
			Request: request,
			Outcome: &outcome,
		}
	}
	snapshot := c.state
	c.mu.Unlock()

	c.notify(snapshot)
}

func (c *Controller) notify(snapshot State) {
	if c.onChange != nil {
		c.onChange(snapshot)
	}
}

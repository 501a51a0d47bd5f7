package stage

import (
	"fmt"
	"sync"
)

// TransitionKind says which operation moved the controller.
type TransitionKind string

const (
	KindGoTo    TransitionKind = "goto"
	KindAdvance TransitionKind = "advance"
	KindRetreat TransitionKind = "retreat"
	KindRestart TransitionKind = "restart"
)

// Transition describes one successful move between stages.
type Transition struct {
	Kind TransitionKind
	From Stage
	To   Stage
}

// Observer is notified after every successful transition.
type Observer func(Transition)

// ControllerOption customizes a Controller.
type ControllerOption func(*Controller)

// WithObserver registers an observer. Nil observers are ignored.
func WithObserver(obs Observer) ControllerOption {
	return func(c *Controller) {
		if obs != nil {
			c.observers = append(c.observers, obs)
		}
	}
}

// Controller owns the current stage of a single session.
type Controller struct {
	mu        sync.RWMutex
	registry  *Registry
	current   Stage
	observers []Observer
}

// NewController starts a controller at the registry's first stage.
func NewController(reg *Registry, opts ...ControllerOption) *Controller {
	if reg == nil {
		reg = Default()
	}
	c := &Controller{
		registry: reg,
		current:  reg.First(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Registry returns the registry the controller navigates.
func (c *Controller) Registry() *Registry {
	return c.registry
}

// Current returns the active stage.
func (c *Controller) Current() Stage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Progress returns (order+1)/total for the active stage.
func (c *Controller) Progress() float64 {
	return c.Current().Progress()
}

// CanAdvance reports whether Advance would succeed.
func (c *Controller) CanAdvance() bool {
	return !c.Current().IsLast()
}

// CanRetreat reports whether Retreat would succeed.
func (c *Controller) CanRetreat() bool {
	return !c.Current().IsFirst()
}

// GoTo makes id the current stage.
func (c *Controller) GoTo(id ID) error {
	return c.move(KindGoTo, id)
}

// Advance moves to the next stage. At the last stage it returns ErrNoNextStage.
func (c *Controller) Advance() error {
	cur := c.Current()
	next, ok, err := c.registry.Next(cur.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("advance from %s: %w", cur.ID, ErrNoNextStage)
	}
	return c.move(KindAdvance, next)
}

// Retreat moves to the previous stage. At the first stage it returns ErrNoPreviousStage.
func (c *Controller) Retreat() error {
	cur := c.Current()
	prev, ok, err := c.registry.Previous(cur.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("retreat from %s: %w", cur.ID, ErrNoPreviousStage)
	}
	return c.move(KindRetreat, prev)
}

// Restart returns to the first stage. It is legal from every stage.
func (c *Controller) Restart() {
	// the first stage is always registered
	_ = c.move(KindRestart, c.registry.First().ID)
}

func (c *Controller) move(kind TransitionKind, id ID) error {
	target, err := c.registry.Lookup(id)
	if err != nil {
		return err
	}
	c.mu.Lock()
	from := c.current
	c.current = target
	observers := c.observers
	c.mu.Unlock()

	t := Transition{Kind: kind, From: from, To: target}
	for _, obs := range observers {
		obs(t)
	}
	return nil
}

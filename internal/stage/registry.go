// internal/stage/registry.go
//
// The registry is the closed, ordered set of screens in the journey.
// Order is fixed at construction; adjacency in that order is the only
// thing that decides where Continue and Back lead.

package stage

import (
	"fmt"
	"strings"
)

// ID names a stage.
type ID string

// Stage identifiers for the Dashboard Mayhem journey.
const (
	Intro   ID = "intro"
	Level1  ID = "level1"
	Level2  ID = "level2"
	Level3  ID = "level3"
	Level4  ID = "level4"
	Level5  ID = "level5"
	Level6  ID = "level6"
	Summary ID = "summary"
)

// Descriptor declares one registry entry.
type Descriptor struct {
	ID    ID
	Title string
}

// Stage is a registered stage with its position in the journey.
type Stage struct {
	ID    ID
	Title string
	Order int
	Total int
}

// Progress returns (Order+1)/Total.
func (s Stage) Progress() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Order+1) / float64(s.Total)
}

// IsFirst reports whether the stage opens the journey.
func (s Stage) IsFirst() bool {
	return s.Order == 0
}

// IsLast reports whether the stage is terminal.
func (s Stage) IsLast() bool {
	return s.Total > 0 && s.Order == s.Total-1
}

// Label returns "Title (n/total)" for status lines.
func (s Stage) Label() string {
	return fmt.Sprintf("%s (%d/%d)", s.Title, s.Order+1, s.Total)
}

// Registry is an immutable ordered list of stages.
type Registry struct {
	stages []Stage
	index  map[ID]int
}

// NewRegistry builds a registry from descriptors in journey order.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("stage: registry needs at least one stage")
	}
	reg := &Registry{
		stages: make([]Stage, 0, len(descriptors)),
		index:  make(map[ID]int, len(descriptors)),
	}
	for i, d := range descriptors {
		id := ID(strings.TrimSpace(string(d.ID)))
		if id == "" {
			return nil, fmt.Errorf("stage: descriptor %d has an empty id", i)
		}
		if _, dup := reg.index[id]; dup {
			return nil, fmt.Errorf("stage: duplicate id %q", string(id))
		}
		title := strings.TrimSpace(d.Title)
		if title == "" {
			title = string(id)
		}
		reg.index[id] = i
		reg.stages = append(reg.stages, Stage{
			ID:    id,
			Title: title,
			Order: i,
			Total: len(descriptors),
		})
	}
	return reg, nil
}

// MustRegistry panics if the descriptors are malformed.
func MustRegistry(descriptors ...Descriptor) *Registry {
	reg, err := NewRegistry(descriptors...)
	if err != nil {
		panic(err)
	}
	return reg
}

var defaultDescriptors = []Descriptor{
	{ID: Intro, Title: "Dashboard Mayhem"},
	{ID: Level1, Title: "Ask Better Questions"},
	{ID: Level2, Title: "Collect Data from the Right Sources"},
	{ID: Level3, Title: "Clean Dirty Data"},
	{ID: Level4, Title: "Analyze the Data"},
	{ID: Level5, Title: "Visualize the Data"},
	{ID: Level6, Title: "Predict with Machine Learning"},
	{ID: Summary, Title: "Mission Complete"},
}

// Default returns the eight-stage Dashboard Mayhem journey.
func Default() *Registry {
	return MustRegistry(defaultDescriptors...)
}

// Stages returns every stage in order. The slice is a copy.
func (r *Registry) Stages() []Stage {
	out := make([]Stage, len(r.stages))
	copy(out, r.stages)
	return out
}

// Len returns the number of stages.
func (r *Registry) Len() int {
	return len(r.stages)
}

// First returns the opening stage.
func (r *Registry) First() Stage {
	return r.stages[0]
}

// Last returns the terminal stage.
func (r *Registry) Last() Stage {
	return r.stages[len(r.stages)-1]
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id ID) bool {
	_, ok := r.index[id]
	return ok
}

// Lookup returns the stage registered under id.
func (r *Registry) Lookup(id ID) (Stage, error) {
	idx, ok := r.index[id]
	if !ok {
		return Stage{}, &InvalidStageError{ID: id}
	}
	return r.stages[idx], nil
}

// Next returns the successor of id. ok is false when id is the last stage.
func (r *Registry) Next(id ID) (next ID, ok bool, err error) {
	idx, found := r.index[id]
	if !found {
		return "", false, &InvalidStageError{ID: id}
	}
	if idx+1 >= len(r.stages) {
		return "", false, nil
	}
	return r.stages[idx+1].ID, true, nil
}

// Previous returns the predecessor of id. ok is false when id is the first stage.
func (r *Registry) Previous(id ID) (prev ID, ok bool, err error) {
	idx, found := r.index[id]
	if !found {
		return "", false, &InvalidStageError{ID: id}
	}
	if idx == 0 {
		return "", false, nil
	}
	return r.stages[idx-1].ID, true, nil
}

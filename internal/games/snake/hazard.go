package snake

import (
	"slices"
	"time"
)

// Phase is the lifecycle stage of a live hazard.
type Phase int

const (
	PhaseGood    Phase = iota // Edible: eating it shrinks the snake
	PhaseBomb                 // Dangerous: eating it only disarms it
	PhaseExpired              // Overdue: removed with a growth penalty
)

func (p Phase) String() string {
	switch p {
	case PhaseGood:
		return "good"
	case PhaseBomb:
		return "bomb"
	case PhaseExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// GroupID identifies the hazards dropped after one meal.
type GroupID int

// Hazard is a live hazard on the grid.
type Hazard struct {
	Pos         Point
	Group       GroupID
	Phase       Phase
	ActivatedAt time.Time

	punished bool
}

// Seed is a dropped hazard still waiting for the snake to uncover its cell.
type Seed struct {
	Pos   Point
	Group GroupID
}

// Penalty is emitted once for every hazard that expired.
type Penalty struct {
	Pos   Point
	Group GroupID
}

// Outcome describes a consumed hazard.
type Outcome struct {
	Pos           Point
	Phase         Phase
	Group         GroupID
	GroupComplete bool // This consumption ate the last Good member of its group
}

type group struct {
	remaining int  // Good consumptions still needed to complete
	dropped   int  // Seeds received so far
	alive     int  // Seeds and live hazards still on the field
	sealed    bool // No more seeds will be dropped
}

// HazardField owns seeds, live hazards and group bookkeeping.
type HazardField struct {
	goodWindow time.Duration
	bombWindow time.Duration
	groupSize  int

	seeds     []Seed
	live      []*Hazard
	groups    map[GroupID]*group
	nextGroup GroupID
}

// NewHazardField creates an empty field with the given phase windows.
func NewHazardField(goodWindow, bombWindow time.Duration, groupSize int) *HazardField {
	return &HazardField{
		goodWindow: goodWindow,
		bombWindow: bombWindow,
		groupSize:  groupSize,
		groups:     make(map[GroupID]*group),
		nextGroup:  1,
	}
}

// Reset clears the field. Group ids keep increasing.
func (f *HazardField) Reset() {
	f.seeds = nil
	f.live = nil
	clear(f.groups)
}

// PhaseAt returns the phase of a hazard of the given age.
// Intervals are half-open: Good [0, good), Bomb [good, good+bomb), Expired after.
func (f *HazardField) PhaseAt(age time.Duration) Phase {
	switch {
	case age < f.goodWindow:
		return PhaseGood
	case age < f.goodWindow+f.bombWindow:
		return PhaseBomb
	default:
		return PhaseExpired
	}
}

// Progress returns how far a hazard is through its current phase, in [0, 1].
func (f *HazardField) Progress(h Hazard, now time.Time) float64 {
	age := now.Sub(h.ActivatedAt)
	var start, span time.Duration
	switch h.Phase {
	case PhaseGood:
		span = f.goodWindow
	case PhaseBomb:
		start, span = f.goodWindow, f.bombWindow
	default:
		return 1
	}
	if span <= 0 {
		return 1
	}
	p := float64(age-start) / float64(span)
	return min(max(p, 0), 1)
}

// AdvancePhases recomputes the phase of every live hazard.
func (f *HazardField) AdvancePhases(now time.Time) {
	for _, h := range f.live {
		if p := f.PhaseAt(now.Sub(h.ActivatedAt)); p > h.Phase {
			h.Phase = p
		}
	}
}

// ExpireOverdue removes expired hazards and returns one penalty for each
// hazard that had not been punished yet.
func (f *HazardField) ExpireOverdue(now time.Time) []Penalty {
	f.AdvancePhases(now)

	var penalties []Penalty
	kept := f.live[:0]
	for _, h := range f.live {
		if h.Phase != PhaseExpired {
			kept = append(kept, h)
			continue
		}
		if !h.punished {
			h.punished = true
			penalties = append(penalties, Penalty{Pos: h.Pos, Group: h.Group})
		}
		f.release(h.Group)
	}
	clear(f.live[len(kept):])
	f.live = kept
	return penalties
}

// ActivateSeeds turns uncovered seeds into Good hazards stamped now.
// Seeds under the snake, or on a cell that already holds a live hazard, stay pending.
func (f *HazardField) ActivateSeeds(occupied func(Point) bool, now time.Time) {
	pending := f.seeds[:0]
	for _, s := range f.seeds {
		if occupied(s.Pos) || f.liveAt(s.Pos) != nil {
			pending = append(pending, s)
			continue
		}
		f.live = append(f.live, &Hazard{
			Pos:         s.Pos,
			Group:       s.Group,
			Phase:       PhaseGood,
			ActivatedAt: now,
		})
	}
	f.seeds = pending
}

// ConsumeAt removes the live hazard at p, if any.
func (f *HazardField) ConsumeAt(p Point) (Outcome, bool) {
	idx := slices.IndexFunc(f.live, func(h *Hazard) bool {
		return h.Pos == p && h.Phase != PhaseExpired
	})
	if idx < 0 {
		return Outcome{}, false
	}
	h := f.live[idx]
	f.live = slices.Delete(f.live, idx, idx+1)

	out := Outcome{Pos: h.Pos, Phase: h.Phase, Group: h.Group}
	if g, ok := f.groups[h.Group]; ok && h.Phase == PhaseGood {
		g.remaining--
		if g.remaining == 0 {
			out.GroupComplete = true
			delete(f.groups, h.Group)
			return out, true
		}
	}
	f.release(h.Group)
	return out, true
}

// ScheduleGroup allocates a group expecting groupSize Good consumptions.
func (f *HazardField) ScheduleGroup() GroupID {
	id := f.nextGroup
	f.nextGroup++
	f.groups[id] = &group{remaining: f.groupSize}
	return id
}

// Drop queues a seed at p for the given group.
// The group is sealed once it has received groupSize seeds.
func (f *HazardField) Drop(p Point, id GroupID) {
	f.seeds = append(f.seeds, Seed{Pos: p, Group: id})
	g, ok := f.groups[id]
	if !ok {
		return
	}
	g.dropped++
	g.alive++
	if g.dropped >= f.groupSize {
		g.sealed = true
	}
}

// Seal marks a group as receiving no more seeds, e.g. when a new meal
// interrupts its drop window.
func (f *HazardField) Seal(id GroupID) {
	g, ok := f.groups[id]
	if !ok {
		return
	}
	g.sealed = true
	f.prune(id, g)
}

// release accounts for a group member leaving the field without completing it.
func (f *HazardField) release(id GroupID) {
	g, ok := f.groups[id]
	if !ok {
		return
	}
	g.alive--
	f.prune(id, g)
}

func (f *HazardField) prune(id GroupID, g *group) {
	if g.sealed && g.alive <= 0 {
		delete(f.groups, id)
	}
}

func (f *HazardField) liveAt(p Point) *Hazard {
	for _, h := range f.live {
		if h.Pos == p {
			return h
		}
	}
	return nil
}

// Occupied reports whether p holds a seed or a live hazard.
func (f *HazardField) Occupied(p Point) bool {
	if f.liveAt(p) != nil {
		return true
	}
	return slices.ContainsFunc(f.seeds, func(s Seed) bool { return s.Pos == p })
}

// Live returns a copy of the live hazards in activation order.
func (f *HazardField) Live() []Hazard {
	out := make([]Hazard, len(f.live))
	for i, h := range f.live {
		out[i] = *h
	}
	return out
}

// Seeds returns a copy of the pending seeds.
func (f *HazardField) Seeds() []Seed {
	return slices.Clone(f.seeds)
}

// GroupCount returns the number of tracked groups.
func (f *HazardField) GroupCount() int {
	return len(f.groups)
}

// Package sensors tracks hand and ball overlap on a resolv space. Hands are
// not physical bodies: they follow the arm rig and only report when they start
// or stop touching a ball.
package sensors

import (
	"math"
	"sort"

	"github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/shared/contact"
	"github.com/automoto/dunkball/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

type sensor struct {
	id     contact.BodyID
	radius float64
}

type pair struct {
	hand, ball contact.BodyID
}

// Layer is a resolv space holding hand and ball sensors. World coordinates
// are y-up; the space is y-down with its origin at the court's top-left.
type Layer struct {
	space *resolv.Space
	left  float64
	top   float64

	hands   []*resolv.Object
	objects map[contact.BodyID]*resolv.Object
	touched map[pair]struct{}
}

// New creates an empty layer covering the court bounds.
func New(c config.CourtConfig) *Layer {
	cell := c.SensorCell
	if cell <= 0 {
		cell = 8
	}
	return &Layer{
		space:   resolv.NewSpace(c.Width, c.Height, cell, cell),
		left:    c.Left,
		top:     c.Top,
		objects: make(map[contact.BodyID]*resolv.Object),
		touched: make(map[pair]struct{}),
	}
}

// AddHand registers a hand sensor centred on p.
func (l *Layer) AddHand(id contact.BodyID, p dmath.Vec2, radius float64) {
	obj := l.add(id, p, radius, tags.ResolvHand)
	l.hands = append(l.hands, obj)
}

// AddBall registers a ball sensor centred on p.
func (l *Layer) AddBall(id contact.BodyID, p dmath.Vec2, radius float64) {
	l.add(id, p, radius, tags.ResolvBall)
}

func (l *Layer) add(id contact.BodyID, p dmath.Vec2, radius float64, tag string) *resolv.Object {
	l.Remove(id)

	x, y := l.toSpace(p)
	obj := resolv.NewObject(x-radius, y-radius, 2*radius, 2*radius, tag)
	obj.Data = &sensor{id: id, radius: radius}
	l.space.Add(obj)
	l.objects[id] = obj
	return obj
}

// Remove drops a sensor. Overlaps it had end silently.
func (l *Layer) Remove(id contact.BodyID) {
	obj, ok := l.objects[id]
	if !ok {
		return
	}
	l.space.Remove(obj)
	delete(l.objects, id)

	for i, h := range l.hands {
		if h == obj {
			l.hands = append(l.hands[:i], l.hands[i+1:]...)
			break
		}
	}
	for p := range l.touched {
		if p.hand == id || p.ball == id {
			delete(l.touched, p)
		}
	}
}

// Move recentres a sensor on p.
func (l *Layer) Move(id contact.BodyID, p dmath.Vec2) {
	obj, ok := l.objects[id]
	if !ok {
		return
	}
	s := obj.Data.(*sensor)
	x, y := l.toSpace(p)
	obj.X = x - s.radius
	obj.Y = y - s.radius
	obj.Update()
}

// Step compares current overlaps with the previous step's and returns a
// Begin for each new hand/ball overlap and an End for each one that stopped.
// Events are ordered by hand id, then ball id, with Ends first.
func (l *Layer) Step() []contact.Event {
	now := make(map[pair]struct{}, len(l.touched))

	for _, hand := range l.hands {
		check := hand.Check(0, 0, tags.ResolvBall)
		if check == nil {
			continue
		}
		hs := hand.Data.(*sensor)
		for _, ball := range check.ObjectsByTags(tags.ResolvBall) {
			bs := ball.Data.(*sensor)
			if overlaps(hand, ball) {
				now[pair{hand: hs.id, ball: bs.id}] = struct{}{}
			}
		}
	}

	var ended, began []pair
	for p := range l.touched {
		if _, ok := now[p]; !ok {
			ended = append(ended, p)
		}
	}
	for p := range now {
		if _, ok := l.touched[p]; !ok {
			began = append(began, p)
		}
	}
	l.touched = now

	sortPairs(ended)
	sortPairs(began)

	events := make([]contact.Event, 0, len(ended)+len(began))
	for _, p := range ended {
		events = append(events, contact.Event{A: p.hand, B: p.ball, Phase: contact.End})
	}
	for _, p := range began {
		events = append(events, contact.Event{A: p.hand, B: p.ball, Phase: contact.Begin})
	}
	return events
}

// Touching reports whether a hand currently overlaps a ball.
func (l *Layer) Touching(hand, ball contact.BodyID) bool {
	_, ok := l.touched[pair{hand: hand, ball: ball}]
	return ok
}

func (l *Layer) toSpace(p dmath.Vec2) (float64, float64) {
	return p.X - l.left, l.top - p.Y
}

// overlaps tests the two sensors as circles; resolv's cell check is only a
// broad phase.
func overlaps(a, b *resolv.Object) bool {
	sa := a.Data.(*sensor)
	sb := b.Data.(*sensor)
	dx := (a.X + a.W/2) - (b.X + b.W/2)
	dy := (a.Y + a.H/2) - (b.Y + b.H/2)
	return math.Hypot(dx, dy) < sa.radius+sb.radius
}

func sortPairs(ps []pair) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].hand != ps[j].hand {
			return ps[i].hand < ps[j].hand
		}
		return ps[i].ball < ps[j].ball
	})
}

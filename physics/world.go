// Package physics wraps a box2d world behind contact.BodyID handles. Callers
// work in pixels and radians with y pointing up; box2d works in meters.
// Impulses and torques are passed through unchanged, in box2d units.
package physics

import (
	"sort"

	"github.com/ByteArena/box2d"
	"github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/shared/contact"
	dmath "github.com/yohamta/donburi/features/math"
)

// Kind selects how a body takes part in the simulation.
type Kind int

const (
	Static Kind = iota
	Dynamic
)

// Material holds per-body tuning. Zero values are valid.
type Material struct {
	Density        float64
	Friction       float64
	Restitution    float64
	LinearDamping  float64
	AngularDamping float64
	GravityScale   float64
}

// World is one box2d world plus the registry mapping ids to bodies.
type World struct {
	b2     *box2d.B2World
	ppm    float64
	velIt  int
	posIt  int
	bodies map[contact.BodyID]*box2d.B2Body
	nextID contact.BodyID
	rec    *recorder
}

// New creates an empty world with gravity pointing down.
func New(c config.PhysicsConfig) *World {
	gravity := box2d.MakeB2Vec2(0, -c.Gravity)
	b2 := box2d.MakeB2World(gravity)

	w := &World{
		b2:     &b2,
		ppm:    c.PixelsPerMeter,
		velIt:  c.VelocityIterations,
		posIt:  c.PositionIterations,
		bodies: make(map[contact.BodyID]*box2d.B2Body),
		rec:    &recorder{},
	}
	if w.ppm <= 0 {
		w.ppm = 1
	}
	w.b2.SetContactListener(w.rec)
	return w
}

// Reserve hands out an id that no body in this world uses, for colliders
// that live outside box2d.
func (w *World) Reserve() contact.BodyID {
	w.nextID++
	return w.nextID
}

// AddBox creates a rectangle centred on (x, y) with the given half extents.
func (w *World) AddBox(kind Kind, x, y, halfW, halfH float64, m Material) contact.BodyID {
	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(w.meters(halfW), w.meters(halfH))
	return w.add(kind, x, y, &shape, m)
}

// AddCircle creates a circle centred on (x, y).
func (w *World) AddCircle(kind Kind, x, y, radius float64, m Material) contact.BodyID {
	shape := box2d.MakeB2CircleShape()
	shape.M_radius = w.meters(radius)
	return w.add(kind, x, y, &shape, m)
}

func (w *World) add(kind Kind, x, y float64, shape box2d.B2ShapeInterface, m Material) contact.BodyID {
	id := w.Reserve()

	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_staticBody
	if kind == Dynamic {
		def.Type = box2d.B2BodyType.B2_dynamicBody
	}
	def.Position = w.toWorld(dmath.Vec2{X: x, Y: y})
	def.LinearDamping = m.LinearDamping
	def.AngularDamping = m.AngularDamping
	def.GravityScale = m.GravityScale
	def.UserData = id

	body := w.b2.CreateBody(&def)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = shape
	fd.Density = m.Density
	fd.Friction = m.Friction
	fd.Restitution = m.Restitution
	body.CreateFixtureFromDef(&fd)

	w.bodies[id] = body
	return id
}

// Remove destroys a body. Unknown ids are ignored.
func (w *World) Remove(id contact.BodyID) {
	body, ok := w.bodies[id]
	if !ok {
		return
	}
	w.b2.DestroyBody(body)
	delete(w.bodies, id)
}

// Has reports whether id names a live body.
func (w *World) Has(id contact.BodyID) bool {
	_, ok := w.bodies[id]
	return ok
}

// Step advances the world by dt seconds and returns the contacts that began
// or ended during it, ordered by body ids.
func (w *World) Step(dt float64) []contact.Event {
	w.b2.Step(dt, w.velIt, w.posIt)

	events := w.rec.drain()
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].A != events[j].A {
			return events[i].A < events[j].A
		}
		return events[i].B < events[j].B
	})
	return events
}

// Position returns a body's centre in pixels.
func (w *World) Position(id contact.BodyID) dmath.Vec2 {
	body, ok := w.bodies[id]
	if !ok {
		return dmath.Vec2{}
	}
	return w.fromWorld(body.GetPosition())
}

// SetPosition teleports a body, keeping its angle.
func (w *World) SetPosition(id contact.BodyID, p dmath.Vec2) {
	body, ok := w.bodies[id]
	if !ok {
		return
	}
	body.SetTransform(w.toWorld(p), body.GetAngle())
}

// Angle returns a body's rotation in radians, counter-clockwise.
func (w *World) Angle(id contact.BodyID) float64 {
	body, ok := w.bodies[id]
	if !ok {
		return 0
	}
	return body.GetAngle()
}

// SetAngle rotates a body in place.
func (w *World) SetAngle(id contact.BodyID, angle float64) {
	body, ok := w.bodies[id]
	if !ok {
		return
	}
	body.SetTransform(body.GetPosition(), angle)
}

// Velocity returns a body's linear velocity in pixels per second.
func (w *World) Velocity(id contact.BodyID) dmath.Vec2 {
	body, ok := w.bodies[id]
	if !ok {
		return dmath.Vec2{}
	}
	v := body.GetLinearVelocity()
	return dmath.Vec2{X: v.X * w.ppm, Y: v.Y * w.ppm}
}

// SetVelocity overwrites a body's linear velocity, given in pixels per second.
func (w *World) SetVelocity(id contact.BodyID, v dmath.Vec2) {
	body, ok := w.bodies[id]
	if !ok {
		return
	}
	body.SetLinearVelocity(box2d.MakeB2Vec2(w.meters(v.X), w.meters(v.Y)))
	body.SetAwake(true)
}

// AngularVelocity returns a body's spin in radians per second.
func (w *World) AngularVelocity(id contact.BodyID) float64 {
	body, ok := w.bodies[id]
	if !ok {
		return 0
	}
	return body.GetAngularVelocity()
}

// ApplyAngularImpulse changes a body's spin by impulse / inertia.
func (w *World) ApplyAngularImpulse(id contact.BodyID, impulse float64) {
	body, ok := w.bodies[id]
	if !ok {
		return
	}
	body.ApplyAngularImpulse(impulse, true)
}

// ApplyLinearImpulse pushes a body through its centre of mass.
func (w *World) ApplyLinearImpulse(id contact.BodyID, impulse dmath.Vec2) {
	body, ok := w.bodies[id]
	if !ok {
		return
	}
	body.ApplyLinearImpulse(box2d.MakeB2Vec2(impulse.X, impulse.Y), body.GetWorldCenter(), true)
}

// ApplyTorque adds a torque for the next step only.
func (w *World) ApplyTorque(id contact.BodyID, torque float64) {
	body, ok := w.bodies[id]
	if !ok {
		return
	}
	body.ApplyTorque(torque, true)
}

// SetKinematic switches a dynamic body to kinematic and back. A kinematic body
// is also made non-solid: it goes wherever it is put and pushes nothing, while
// still reporting contacts.
func (w *World) SetKinematic(id contact.BodyID, on bool) {
	body, ok := w.bodies[id]
	if !ok {
		return
	}

	kind := box2d.B2BodyType.B2_dynamicBody
	if on {
		kind = box2d.B2BodyType.B2_kinematicBody
	}
	if body.GetType() == kind {
		return
	}

	body.SetType(kind)
	for f := body.GetFixtureList(); f != nil; f = f.GetNext() {
		f.SetSensor(on)
	}
	if on {
		body.SetLinearVelocity(box2d.MakeB2Vec2(0, 0))
		body.SetAngularVelocity(0)
	}
	body.SetAwake(true)
}

// Kinematic reports whether a body is currently kinematic.
func (w *World) Kinematic(id contact.BodyID) bool {
	body, ok := w.bodies[id]
	return ok && body.GetType() == box2d.B2BodyType.B2_kinematicBody
}

// Mass returns a body's mass in kilograms.
func (w *World) Mass(id contact.BodyID) float64 {
	body, ok := w.bodies[id]
	if !ok {
		return 0
	}
	return body.GetMass()
}

func (w *World) meters(px float64) float64 {
	return px / w.ppm
}

func (w *World) toWorld(p dmath.Vec2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(p.X/w.ppm, p.Y/w.ppm)
}

func (w *World) fromWorld(v box2d.B2Vec2) dmath.Vec2 {
	return dmath.Vec2{X: v.X * w.ppm, Y: v.Y * w.ppm}
}

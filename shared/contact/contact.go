package contact

// BodyID is an opaque handle for a simulated body. The physics backend and the
// sensor layer both report contacts in terms of BodyID.
type BodyID uint64

// None is never assigned to a body.
const None BodyID = 0

// Phase tells whether two bodies started or stopped touching.
type Phase int

const (
	Begin Phase = iota
	End
)

func (p Phase) String() string {
	if p == Begin {
		return "begin"
	}
	return "end"
}

// Event is an unordered pair of bodies plus a phase, as reported by the backend
// during one step.
type Event struct {
	A, B  BodyID
	Phase Phase
}

// Capability is a bit set describing what a body can take part in.
type Capability uint8

const (
	Ground Capability = 1 << iota
	Dynamic
	Hand
	Ball
)

// CapabilitySet answers which capabilities a body carries.
type CapabilitySet interface {
	Has(id BodyID, c Capability) bool
}

// Capabilities is a map-backed CapabilitySet.
type Capabilities map[BodyID]Capability

func (cs Capabilities) Has(id BodyID, c Capability) bool {
	return cs[id]&c == c
}

// Kind is the semantic label of a contact pair.
type Kind int

const (
	Unrecognized Kind = iota
	GroundBody
	HandBall
	BodyBody
)

func (k Kind) String() string {
	switch k {
	case GroundBody:
		return "ground-body"
	case HandBall:
		return "hand-ball"
	case BodyBody:
		return "body-body"
	default:
		return "unrecognized"
	}
}

// pairing is one rule of the classifier: First must carry one capability and
// Second the other. Rules are tried in order.
type pairing struct {
	kind          Kind
	first, second Capability
}

var pairings = [...]pairing{
	{GroundBody, Ground, Dynamic},
	{HandBall, Hand, Ball},
	{BodyBody, Dynamic, Dynamic},
}

// Classify labels the pair (a, b). The result does not depend on argument order.
func Classify(a, b BodyID, caps CapabilitySet) Kind {
	kind, _, _ := match(a, b, caps)
	return kind
}

// Labeled is an Event with its Kind. For GroundBody and HandBall, First is the
// ground (resp. hand) and Second the body (resp. ball). For BodyBody and
// Unrecognized the original order is kept.
type Labeled struct {
	Kind          Kind
	Phase         Phase
	First, Second BodyID
}

// Label classifies ev and orders its bodies by role.
func Label(ev Event, caps CapabilitySet) Labeled {
	kind, first, second := match(ev.A, ev.B, caps)
	return Labeled{Kind: kind, Phase: ev.Phase, First: first, Second: second}
}

// LabelAll labels a whole step batch, keeping batch order.
func LabelAll(batch []Event, caps CapabilitySet) []Labeled {
	out := make([]Labeled, 0, len(batch))
	for _, ev := range batch {
		out = append(out, Label(ev, caps))
	}
	return out
}

func match(a, b BodyID, caps CapabilitySet) (Kind, BodyID, BodyID) {
	if a == b {
		return Unrecognized, a, b
	}
	for _, p := range pairings {
		if caps.Has(a, p.first) && caps.Has(b, p.second) {
			return p.kind, a, b
		}
		if caps.Has(b, p.first) && caps.Has(a, p.second) {
			return p.kind, b, a
		}
	}
	return Unrecognized, a, b
}

package scenes

import (
	"sync"

	cfg "github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/systems"
	"github.com/automoto/dunkball/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// stepMu serialises steps across scenes. donburi component types keep one
// query cache shared by every world, so two worlds must not be iterated at
// the same time.
var stepMu sync.Mutex

// System is one stage of a fixed step.
type System func(w donburi.World)

// CourtScene owns one match: a donburi world with the court spawned into it
// and the ordered systems that advance it by one fixed step per Update.
type CourtScene struct {
	ID uuid.UUID

	world   donburi.World
	input   systems.InputSource
	systems []System
	steps   int
	once    sync.Once
	log     *zap.SugaredLogger
}

// NewCourtScene creates a scene reading player actions from input. A nil
// input leaves every player idle.
func NewCourtScene(input systems.InputSource) *CourtScene {
	id := uuid.New()
	return &CourtScene{
		ID:    id,
		input: input,
		log:   zap.S().With("scene", id.String()),
	}
}

// Update advances the match by one fixed step.
func (cs *CourtScene) Update() {
	stepMu.Lock()
	defer stepMu.Unlock()
	cs.once.Do(cs.configure)

	for _, system := range cs.systems {
		system(cs.world)
	}
	cs.steps++
}

// World exposes the scene's entities for rendering and inspection.
func (cs *CourtScene) World() donburi.World {
	stepMu.Lock()
	defer stepMu.Unlock()
	cs.once.Do(cs.configure)
	return cs.world
}

// Steps is the number of fixed steps run so far.
func (cs *CourtScene) Steps() int {
	return cs.steps
}

func (cs *CourtScene) configure() {
	cs.world = donburi.NewWorld()
	factory.CreateCourt(cs.world)

	// Order matters: input is sampled once, forces are applied before the
	// physics step, contact consumers run after it and the batch is
	// dropped last.
	cs.systems = []System{
		func(w donburi.World) { systems.UpdateInput(w, cs.input) },
		systems.UpdateArms,
		systems.UpdateUpright,
		systems.UpdateJump,
		systems.UpdatePhysics,
		systems.UpdateContacts,
		systems.UpdateGrounding,
		systems.UpdatePossession,
		systems.ClearContacts,
	}

	cs.log.Infow("court ready",
		"players", len(cfg.Player.Spawns),
		"hoops", len(cfg.Court.Hoops),
		"tick_rate", cfg.Physics.TickRate,
	)
}

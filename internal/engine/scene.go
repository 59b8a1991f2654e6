package engine

import (
	"Gopher2D/internal/behaviour"
	"Gopher2D/internal/config"
	"Gopher2D/internal/input"
	"Gopher2D/internal/logger"
	"Gopher2D/internal/movement"
	"Gopher2D/internal/physics"

	"go.uber.org/zap"
)

// Scene is a single player object wired into a loop.
type Scene struct {
	Loop     *Loop
	Player   *behaviour.GameObject
	Body     *physics.Rigidbody2D
	Movement *movement.PlayerMovement2D
}

// NewPlayerScene builds a player with a Rigidbody2D and a PlayerMovement2D
// fed by source, using the configured speed.
func NewPlayerScene(cfg *config.Config, source input.Source) *Scene {
	cm := behaviour.NewComponentManager()
	world := physics.NewWorld()

	player := behaviour.NewGameObject("Player")
	body := physics.NewRigidbody2D()
	player.AddComponent(body)

	mover := movement.New(body, source)
	mover.Speed = cfg.Movement.Speed
	player.AddComponent(mover)

	cm.RegisterGameObject(player)
	world.AddGameObject(player)

	logger.Log.Info("Scene ready",
		zap.String("player", player.Name),
		zap.Float32("speed", mover.Speed),
		zap.Float64("fixedStep", cfg.Physics.FixedStep))

	return &Scene{
		Loop:     NewLoop(cfg, cm, world),
		Player:   player,
		Body:     body,
		Movement: mover,
	}
}

// Close destroys every object in the scene. Components get OnDisable then
// OnDestroy, which releases the player's input controls.
func (s *Scene) Close() {
	count := len(s.Loop.Components.GetAllGameObjects())
	for _, obj := range s.Loop.Components.GetAllGameObjects() {
		for _, rb := range behaviour.GetComponents[*physics.Rigidbody2D](obj) {
			s.Loop.World.Remove(rb)
		}
	}
	s.Loop.Components.Clear()
	logger.Log.Debug("Scene closed", zap.Int("objects", count))
}

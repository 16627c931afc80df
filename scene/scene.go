// Package scene runs the platformer: it builds the world on mount, drives the
// systems once per tick and tears everything down on unmount.
package scene

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/diamondfall/assets"
	"github.com/milk9111/diamondfall/common"
	"github.com/milk9111/diamondfall/config"
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
	"github.com/milk9111/diamondfall/ecs/entity"
	"github.com/milk9111/diamondfall/ecs/system"
	"github.com/milk9111/diamondfall/prefabs"
	"github.com/milk9111/diamondfall/score"
)

// ErrInvalidState is returned when Mount is called on a controller that has
// already been mounted.
var ErrInvalidState = errors.New("scene: invalid state")

// State is the controller lifecycle stage.
type State int

const (
	Unmounted State = iota
	Initializing
	Running
	TornDown
)

func (s State) String() string {
	switch s {
	case Unmounted:
		return "unmounted"
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case TornDown:
		return "torn down"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ImageNames are the logical assets the scene needs before it can run.
var ImageNames = []string{"sky", "platform", "diamond", "dude"}

// PrefabNames are the prefabs the scene builds entities from.
var PrefabNames = []string{"background.yaml", "platform.yaml", "collectible.yaml", "player.yaml"}

// Options configures a Controller. Only Config is required.
type Options struct {
	Config config.Config
	// Images may be nil for headless runs; sprites are then built without pixels.
	Images assets.ImageSource
	Keys   system.KeySource
	Rand   *rand.Rand
	Logger *log.Logger
	// Keeper is the score owner shared with the host UI. It is reset on every
	// mount; nil gives the scene a private keeper.
	Keeper *score.Keeper
	Debug  bool
}

// Controller owns one scene from mount to teardown.
type Controller struct {
	opts   Options
	cfg    config.Config
	log    *log.Logger
	rng    *rand.Rand
	state  State
	frames int

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *system.RenderSystem
	keeper    *score.Keeper
	unsubs    []func()

	player  ecs.Entity
	spawned int
}

// NewController returns an Unmounted controller.
func NewController(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = common.Discard()
	}
	rng := opts.Rand
	if rng == nil {
		rng = common.NewRand(0)
	}
	return &Controller{
		opts:  opts,
		cfg:   opts.Config,
		log:   logger.With("component", "scene"),
		rng:   rng,
		state: Unmounted,
	}
}

func (c *Controller) State() State {
	return c.state
}

// Frames returns the number of ticks that ran systems.
func (c *Controller) Frames() int {
	return c.frames
}

// Spawned returns how many collectibles the timer has created.
func (c *Controller) Spawned() int {
	return c.spawned
}

// Score returns the current score snapshot. It is zero before mount.
func (c *Controller) Score() score.Snapshot {
	if c.keeper == nil {
		return score.NewKeeper().Snapshot()
	}
	return c.keeper.Snapshot()
}

// World exposes the live world; nil unless Running.
func (c *Controller) World() *ecs.World {
	return c.world
}

func (c *Controller) Player() ecs.Entity {
	return c.player
}

// Mount loads assets and prefabs and builds the scene. On failure the
// controller returns to Unmounted and may be mounted again.
func (c *Controller) Mount() error {
	if c.state != Unmounted {
		return fmt.Errorf("%w: mount while %s", ErrInvalidState, c.state)
	}
	c.setState(Initializing)

	if err := c.preload(); err != nil {
		c.setState(Unmounted)
		return err
	}
	if err := c.create(); err != nil {
		c.release()
		c.setState(Unmounted)
		return err
	}

	c.setState(Running)
	return nil
}

func (c *Controller) preload() error {
	if err := c.cfg.Validate(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if c.opts.Images != nil {
		if err := assets.Preload(c.opts.Images, ImageNames...); err != nil {
			return fmt.Errorf("scene: %w", err)
		}
	}
	for _, name := range PrefabNames {
		if _, err := prefabs.LoadEntityBuildSpec(name); err != nil {
			return fmt.Errorf("scene: load prefab %q: %w", name, err)
		}
	}
	return nil
}

func (c *Controller) create() error {
	cfg := c.cfg
	images := c.opts.Images
	w := ecs.NewWorld()
	c.world = w
	if c.opts.Keeper != nil {
		c.keeper = c.opts.Keeper
		c.keeper.Reset()
	} else {
		c.keeper = score.NewKeeper()
	}

	if _, err := entity.NewBackground(w, images, cfg.Background.X, cfg.Background.Y); err != nil {
		return fmt.Errorf("scene: create: %w", err)
	}
	if _, err := entity.NewLevelBounds(w, cfg.World.Width, cfg.World.Height); err != nil {
		return fmt.Errorf("scene: create: %w", err)
	}
	if _, err := entity.NewPlatforms(w, images, cfg.Platforms); err != nil {
		return fmt.Errorf("scene: create: %w", err)
	}
	player, err := entity.NewPlayerAt(w, images, cfg.Player)
	if err != nil {
		return fmt.Errorf("scene: create: %w", err)
	}
	c.player = player
	if _, err := entity.NewCollectibleRow(w, images, cfg.Collectibles); err != nil {
		return fmt.Errorf("scene: create: %w", err)
	}
	if _, err := entity.NewSpawnTimer(w, cfg.Spawn); err != nil {
		return fmt.Errorf("scene: create: %w", err)
	}
	hud, err := entity.NewScoreText(w, cfg.HUD)
	if err != nil {
		return fmt.Errorf("scene: create: %w", err)
	}

	hudText, _ := ecs.Get(w, hud, component.ScoreTextComponent.Kind())
	c.unsubs = append(c.unsubs, c.keeper.Subscribe(func(s score.Snapshot) {
		hudText.Text = s.Text
	}))
	c.unsubs = append(c.unsubs, c.keeper.Subscribe(func(s score.Snapshot) {
		if s.Score > 0 {
			c.log.Debug("collected", "score", s.Score)
		}
	}))

	c.physics = system.NewPhysicsSystem(cfg.World.Gravity, cfg.TPS)
	c.render = system.NewRenderSystem()
	c.scheduler = ecs.NewScheduler(
		system.NewInputSystem(c.opts.Keys),
		system.NewPlayerControllerSystem(),
		c.physics,
		system.NewCollectSystem(),
		system.NewScoreSystem(c.keeper),
		system.NewRecycleSystem(system.RecycleRule{
			FallBound:   cfg.Collectibles.FallBound,
			MinX:        cfg.Collectibles.RespawnMinX,
			MaxX:        cfg.Collectibles.RespawnMaxX,
			RefallSpeed: cfg.Collectibles.RefallSpeed,
		}, c.rng),
		system.NewSpawnSystem(cfg.FrameDuration(), c.spawnCollectible),
		system.NewAnimationSystem(cfg.TPS),
	)

	c.log.Info("scene created", "entities", w.Len(), "platforms", len(cfg.Platforms), "collectibles", cfg.Collectibles.InitialCount)
	return nil
}

func (c *Controller) spawnCollectible(w *ecs.World) error {
	cc := c.cfg.Collectibles
	x := float64(common.Between(c.rng, int(cc.RespawnMinX), int(cc.RespawnMaxX)))
	bounce := common.FloatBetween(c.rng, cc.BounceMin, cc.BounceMax)
	e, err := entity.NewCollectibleAt(w, c.opts.Images, x, 0, bounce)
	if err != nil {
		return err
	}
	if col, ok := ecs.Get(w, e, component.CollectibleComponent.Kind()); ok && cc.Points > 0 {
		col.Points = cc.Points
	}
	c.spawned++
	c.log.Debug("spawned collectible", "entity", e, "x", x, "bounce", bounce)
	return nil
}

// Update runs one tick. It does nothing unless the scene is Running.
func (c *Controller) Update() error {
	if c.state != Running {
		return nil
	}
	c.frames++
	c.scheduler.Update(c.world)
	return nil
}

// Draw renders the scene into screen, which is the game container.
func (c *Controller) Draw(screen *ebiten.Image) {
	if c.state != Running {
		return
	}
	c.render.Draw(c.world, screen)
	if c.opts.Debug {
		system.DrawPhysicsDebug(c.physics.Space(), screen)
		system.DrawPlayerDebug(c.world, screen)
	}
}

// Unmount destroys the physics space and the world. Subsequent Update calls
// run no systems, so the spawn timer never fires again.
func (c *Controller) Unmount() {
	if c.state == TornDown {
		return
	}
	c.release()
	c.setState(TornDown)
}

func (c *Controller) release() {
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
	if c.physics != nil {
		c.physics.Destroy()
	}
	c.physics = nil
	c.scheduler = nil
	c.world = nil
	c.player = 0
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	c.log.Info("scene state", "from", c.state, "to", s)
	c.state = s
}

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/diamondfall/assets"
	"github.com/milk9111/diamondfall/common"
	"github.com/milk9111/diamondfall/config"
	"github.com/milk9111/diamondfall/ecs/system"
	"github.com/milk9111/diamondfall/prefabs"
	"github.com/milk9111/diamondfall/scene"
	"github.com/milk9111/diamondfall/score"
	"github.com/milk9111/diamondfall/ui"
)

type appOptions struct {
	configPath string
	seed       uint64
	debug      bool
	watch      bool
}

// App hosts the game container above the host bar and owns the scene's
// mount lifecycle.
type App struct {
	cfg    config.Config
	opts   appOptions
	log    *log.Logger
	images assets.ImageSource

	scene     *scene.Controller
	keeper    *score.Keeper
	container *ebiten.Image
	counter   *ui.Counter
	bar       *ui.HostBar
	watcher   *prefabs.Watcher
}

func NewApp(cfg config.Config, opts appOptions, logger *log.Logger) (*App, error) {
	a := &App{
		cfg:       cfg,
		opts:      opts,
		log:       logger.With("component", "app"),
		images:    assets.NewEmbedded(),
		container: ebiten.NewImage(common.BaseWidth, common.BaseHeight),
		counter:   &ui.Counter{},
		keeper:    score.NewKeeper(),
	}
	a.bar = ui.NewHostBar(a.counter, common.BaseWidth, common.HostBarHeight, a.toggleScene)
	a.keeper.Subscribe(a.bar.SetScore)

	if opts.watch {
		paths := []string{prefabs.Dir}
		if opts.configPath != "" {
			paths = append(paths, opts.configPath)
		}
		w, err := prefabs.NewWatcher(paths...)
		if err != nil {
			a.log.Warn("hot reload disabled", "err", err)
		} else {
			a.watcher = w
		}
	}

	if err := a.mountScene(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) mountScene() error {
	c := scene.NewController(scene.Options{
		Config: a.cfg,
		Images: a.images,
		Keys:   system.EbitenKeys{},
		Rand:   common.NewRand(a.opts.seed),
		Logger: a.log,
		Keeper: a.keeper,
		Debug:  a.opts.debug,
	})
	if err := c.Mount(); err != nil {
		return fmt.Errorf("app: mount scene: %w", err)
	}
	a.scene = c
	a.bar.SetRunning(true)
	return nil
}

func (a *App) unmountScene() {
	if a.scene == nil {
		return
	}
	a.scene.Unmount()
	a.scene = nil
	a.bar.SetRunning(false)
}

// toggleScene backs the host bar button and reports whether a scene is
// running afterwards.
func (a *App) toggleScene() bool {
	if a.scene != nil {
		a.unmountScene()
		return false
	}
	if err := a.mountScene(); err != nil {
		a.log.Error("mount failed", "err", err)
		return false
	}
	return true
}

// reload re-reads the configuration and remounts a running scene. Errors keep
// the current scene.
func (a *App) reload(path string) {
	cfg, source, err := config.Load(a.opts.configPath)
	if err != nil {
		a.log.Error("reload failed", "changed", path, "err", err)
		return
	}
	a.cfg = cfg
	a.log.Info("reloaded", "changed", path, "config", source)
	if a.scene == nil {
		return
	}
	a.unmountScene()
	if err := a.mountScene(); err != nil {
		a.log.Error("remount failed", "err", err)
	}
}

func (a *App) pollWatcher() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-a.watcher.Events:
			if !ok {
				a.watcher = nil
				return
			}
			a.reload(path)
		case err, ok := <-a.watcher.Errors:
			if !ok {
				a.watcher = nil
				return
			}
			a.log.Warn("watcher", "err", err)
		default:
			return
		}
	}
}

func (a *App) Update() error {
	a.pollWatcher()
	if a.scene != nil {
		if err := a.scene.Update(); err != nil {
			return err
		}
	}
	a.bar.UI.Update()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.container.Clear()
	if a.scene != nil {
		a.scene.Draw(a.container)
	}
	screen.DrawImage(a.container, nil)
	a.bar.UI.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight + common.HostBarHeight
}

// Close unmounts the scene and stops the watcher.
func (a *App) Close() {
	a.unmountScene()
	if a.watcher != nil {
		_ = a.watcher.Close()
		a.watcher = nil
	}
}

// spsa previews the player's sprite-sheet animations as the prefab declares
// them. Left/Right/Down switch between left, right and turn.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/diamondfall/assets"
	"github.com/milk9111/diamondfall/common"
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
	"github.com/milk9111/diamondfall/ecs/entity"
	"github.com/milk9111/diamondfall/ecs/system"
	"github.com/spf13/cobra"
)

const previewSize = 256

var errNoAnimation = errors.New("prefab has no animation component")

type previewGame struct {
	world  *ecs.World
	player ecs.Entity
	anim   *system.AnimationSystem
	scale  float64
}

func (g *previewGame) Update() error {
	a, ok := ecs.Get(g.world, g.player, component.AnimationComponent.Kind())
	if !ok {
		return nil
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		a.Play("left", true)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		a.Play("right", true)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		a.Play("turn", false)
	}
	g.anim.Update(g.world)
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})
	s, ok := ecs.Get(g.world, g.player, component.SpriteComponent.Kind())
	a, _ := ecs.Get(g.world, g.player, component.AnimationComponent.Kind())
	if !ok || a == nil || a.Sheet == nil {
		return
	}
	frame := a.Sheet.SubImage(s.Source).(*ebiten.Image)
	fw, fh := float64(s.Source.Dx()), float64(s.Source.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate((previewSize-fw*g.scale)/2, (previewSize-fh*g.scale)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)

	names := make([]string, 0, len(a.Defs))
	for name := range a.Defs {
		names = append(names, name)
	}
	sort.Strings(names)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s frame %d\n%v", a.Current, a.Frame, names))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		prefab string
		scale  float64
	)
	cmd := &cobra.Command{
		Use:   "spsa",
		Short: "Preview a prefab's sprite-sheet animations",
		Long: `spsa builds one prefab and plays its animations.

Controls:
  Left/Right  - Play left or right
  Down        - Play turn`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newPreviewGame(assets.NewEmbedded(), prefab, scale)
			if err != nil {
				return err
			}
			logger := common.NewLogger(os.Stderr, "info")
			logger.Info("previewing", "prefab", prefab, "scale", scale)

			ebiten.SetWindowSize(previewSize*2, previewSize*2)
			ebiten.SetWindowTitle("diamondfall animation preview")
			return ebiten.RunGame(g)
		},
	}
	cmd.Flags().StringVar(&prefab, "prefab", "player.yaml", "Prefab with an animation component")
	cmd.Flags().Float64Var(&scale, "scale", 4, "Preview scale")
	return cmd
}

func newPreviewGame(images assets.ImageSource, prefab string, scale float64) (*previewGame, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("spsa: scale must be positive, got %v", scale)
	}
	w := ecs.NewWorld()
	player, err := entity.BuildEntity(w, images, prefab)
	if err != nil {
		return nil, fmt.Errorf("spsa: %w", err)
	}
	if !ecs.Has(w, player, component.AnimationComponent.Kind()) {
		return nil, fmt.Errorf("spsa: %q: %w", prefab, errNoAnimation)
	}
	return &previewGame{world: w, player: player, anim: system.NewAnimationSystem(60), scale: scale}, nil
}

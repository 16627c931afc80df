package system

import (
	"bytes"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/ecs/component"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type RenderSystem struct {
	fontSource *text.GoTextFaceSource
	fallback   text.Face
}

func NewRenderSystem() *RenderSystem {
	r := &RenderSystem{fallback: text.NewGoXFace(basicfont.Face7x13)}
	if src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err == nil {
		r.fontSource = src
	}
	return r
}

// DrawOrder returns the visible sprite entities sorted by render layer, then
// by entity id.
func DrawOrder(w *ecs.World) []ecs.Entity {
	entities := ecs.Query(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	visible := entities[:0]
	for _, e := range entities {
		if !ecs.Has(w, e, component.DisabledComponent.Kind()) {
			visible = append(visible, e)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return layerOf(w, visible[i]) < layerOf(w, visible[j])
	})
	return visible
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	for _, e := range DrawOrder(w) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Image == nil {
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)

		screen.DrawImage(img, op)
	}

	r.drawText(w, screen)
}

// drawText renders ScoreText labels anchored at their transform's top-left.
func (r *RenderSystem) drawText(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach2(w, component.ScoreTextComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, st *component.ScoreText, t *component.Transform) {
		if st.Text == "" {
			return
		}
		var face text.Face = r.fallback
		if r.fontSource != nil {
			face = &text.GoTextFace{Source: r.fontSource, Size: st.Size}
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(t.X, t.Y)
		if st.Color != nil {
			op.ColorScale.ScaleWithColor(st.Color)
		}
		text.Draw(screen, st.Text, face, op)
	})
}

package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/diamondfall/ui"
	"golang.org/x/image/colornames"
)

const (
	counterWidth  = 480
	counterHeight = 160
)

// CounterApp shows the counter widget on its own.
type CounterApp struct {
	ui *ebitenui.UI
}

func NewCounterApp(counter *ui.Counter) *CounterApp {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	w := ui.NewCounterWidget(counter, ui.Face(24))
	w.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	root.AddChild(w)
	return &CounterApp{ui: &ebitenui.UI{Container: root}}
}

func (c *CounterApp) Update() error {
	c.ui.Update()
	return nil
}

func (c *CounterApp) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	c.ui.Draw(screen)
}

func (c *CounterApp) Layout(outsideWidth, outsideHeight int) (int, int) {
	return counterWidth, counterHeight
}

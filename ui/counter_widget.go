package ui

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewCounterWidget builds a label and a "Click me" button bound to counter.
// Each click increments the count and re-renders the label.
func NewCounterWidget(counter *Counter, face text.Face) *widget.Container {
	label := widget.NewText(
		widget.TextOpts.Text(counter.Label(), &face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	button := widget.NewButton(
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Click me", &face, buttonTextColor()),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			counter.Click()
			label.Label = counter.Label()
		}),
	)

	c := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	c.AddChild(button)
	c.AddChild(label)
	return c
}

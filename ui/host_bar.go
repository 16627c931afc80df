package ui

import (
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/diamondfall/score"
)

// HostBar is the strip under the game container: counter widget, the
// bridged score label and a button that mounts or unmounts the scene.
type HostBar struct {
	UI *ebitenui.UI

	counter    *Counter
	scoreLabel *widget.Text
	toggle     *widget.Button
}

// NewHostBar builds the bar anchored to the bottom of a width×height window.
// onToggle is called when the mount button is clicked and reports whether the
// scene is running afterwards.
func NewHostBar(counter *Counter, width, height int, onToggle func() bool) *HostBar {
	face := Face(18)
	hb := &HostBar{counter: counter}

	hb.scoreLabel = widget.NewText(
		widget.TextOpts.Text(score.Format(0), &face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	hb.toggle = widget.NewButton(
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(ToggleLabel(true), &face, buttonTextColor()),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onToggle != nil {
				hb.SetRunning(onToggle())
			}
		}),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(barColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(24),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, height),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)
	if counter != nil {
		bar.AddChild(NewCounterWidget(counter, face))
	}
	bar.AddChild(hb.scoreLabel)
	bar.AddChild(hb.toggle)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(bar)

	hb.UI = &ebitenui.UI{Container: root}
	return hb
}

// SetScore mirrors a score snapshot.
func (hb *HostBar) SetScore(s score.Snapshot) {
	hb.scoreLabel.Label = s.Text
}

func (hb *HostBar) ScoreText() string {
	return hb.scoreLabel.Label
}

// SetRunning updates the toggle to offer the opposite action.
func (hb *HostBar) SetRunning(running bool) {
	hb.toggle.Text().Label = ToggleLabel(running)
}

// ToggleLabel returns the mount button caption for the current state.
func ToggleLabel(running bool) string {
	if running {
		return "Stop"
	}
	return "Start"
}

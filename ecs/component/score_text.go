package component

import "image/color"

// ScoreText is the on-screen score label owned by the scene.
type ScoreText struct {
	Text  string
	Size  float64
	Color color.Color
}

var ScoreTextComponent = NewComponent[ScoreText]()

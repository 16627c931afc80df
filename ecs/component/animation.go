package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type AnimationDef struct {
	Name       string
	Row        int
	ColStart   int // start column (frame 0)
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

type Animation struct {
	Sheet      *ebiten.Image
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
}

// Play switches to the named animation. When ignoreIfPlaying is set and the
// animation is already running it keeps its current frame.
func (a *Animation) Play(name string, ignoreIfPlaying bool) bool {
	if a == nil {
		return false
	}
	if _, ok := a.Defs[name]; !ok {
		return false
	}
	if ignoreIfPlaying && a.Current == name && a.Playing {
		return true
	}
	a.Current = name
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
	return true
}

var AnimationComponent = NewComponent[Animation]()

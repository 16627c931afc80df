package system

import (
	"github.com/milk9111/diamondfall/ecs"
	"github.com/milk9111/diamondfall/score"
)

// ScoreSystem forwards collected points to the score keeper, which fans the
// new snapshot out to every mirror.
type ScoreSystem struct {
	keeper *score.Keeper
}

func NewScoreSystem(keeper *score.Keeper) *ScoreSystem {
	return &ScoreSystem{keeper: keeper}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if s == nil || s.keeper == nil || w == nil {
		return
	}
	w.Events().Each(ecs.EventCollected, func(evt ecs.Event) {
		if ce, ok := evt.Data.(ecs.CollectedEvent); ok {
			s.keeper.Collect(ce.Points)
		}
	})
}

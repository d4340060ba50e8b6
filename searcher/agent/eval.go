package agent

import (
	"context"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"
)

type evaluationAgent struct {
	mc *searcher.MonteCarlo
}

// NewEvaluationAgent plays the action with the best Monte-Carlo win rate.
func NewEvaluationAgent(mc *searcher.MonteCarlo) Agent {
	return evaluationAgent{mc: mc}
}

func (a evaluationAgent) FindAction(ctx context.Context, b *game.Board, p game.Player) (game.Action, metrics.SearchMetric, error) {
	action, _, metric, err := a.mc.Evaluate(ctx, b, p)
	return action, metric, err
}

// Package perft counts the nodes of the legal move tree, the standard way of
// checking a move generator against published totals.
package perft

import (
	"context"
	"fmt"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// MoveCount is the number of leaf nodes below one root move.
type MoveCount struct {
	Move  engine.Move
	Nodes uint64
}

// Perft returns the number of leaf nodes depth plies below p.
// Each promotion counts once, with the side's configured promotion role.
func Perft(p *engine.Position, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves := p.AllLegalMoves()
	if depth == 1 {
		return uint64(len(moves)), nil
	}
	var nodes uint64
	for _, m := range moves {
		child, err := p.Successor(m)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", m, err)
		}
		n, err := Perft(child, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Divide counts the subtree of every root move on its own worker and
// returns the counts in move generation order together with their total.
func Divide(ctx context.Context, p *engine.Position, depth, workers int) ([]MoveCount, uint64, error) {
	if depth < 1 {
		return nil, 0, fmt.Errorf("depth %d: %w", depth, chesserrors.ErrInvalidConfig)
	}
	moves := p.AllLegalMoves()

	pool := worker.NewPool(countSubtree, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start(ctx)
	go func() {
		defer pool.Close()
		for i, m := range moves {
			item := worker.WorkItem{Position: p, Move: m, Depth: depth - 1, Index: i}
			if err := pool.Submit(ctx, item); err != nil {
				return
			}
		}
	}()

	results := make([]worker.ProcessResult, 0, len(moves))
	var firstErr error
	for res := range pool.Results() {
		if res.Error != nil && firstErr == nil {
			firstErr = res.Error
			pool.Stop()
		}
		results = append(results, res)
	}
	if firstErr != nil {
		return nil, 0, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	counts := make([]MoveCount, len(results))
	var total uint64
	for i, res := range results {
		counts[i] = MoveCount{Move: res.Move, Nodes: res.Nodes}
		total += res.Nodes
	}
	return counts, total, nil
}

func countSubtree(_ context.Context, item worker.WorkItem) worker.ProcessResult {
	res := worker.ProcessResult{Move: item.Move, Index: item.Index}
	child, err := item.Position.Successor(item.Move)
	if err != nil {
		res.Error = fmt.Errorf("%s: %w", item.Move, err)
		return res
	}
	res.Nodes, res.Error = Perft(child, item.Depth)
	return res
}

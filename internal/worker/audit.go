package worker

import (
	"context"
	"fmt"
	"sort"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// Audit inspects one snapshot: status and move count for the side to move,
// its FEN, and anything that makes the position unreachable in play.
func Audit(item WorkItem) ProcessResult {
	res := ProcessResult{ID: item.ID, Index: item.Index}
	snap := item.Snapshot
	if snap == nil || snap.Board == nil {
		res.Error = fmt.Errorf("snapshot %q has no board", item.ID)
		return res
	}

	b := snap.Board
	res.ToMove = chess.Black
	if snap.WhiteTurn {
		res.ToMove = chess.White
	}
	res.Status = engine.StatusOf(b, res.ToMove)
	for _, p := range b.PiecesOf(res.ToMove) {
		res.Moves += len(engine.PossibleMoves(b, p, true))
	}
	res.FEN = engine.ToFEN(b, res.ToMove)
	res.Signature = hashing.Sign(item.ID, b, res.ToMove)

	for _, side := range []chess.Side{chess.White, chess.Black} {
		if b.KingOf(side) == nil {
			res.Issues = append(res.Issues, fmt.Sprintf("no %s King", side))
		}
	}
	if waiting := res.ToMove.Opposite(); engine.InCheck(b, waiting) {
		res.Issues = append(res.Issues, fmt.Sprintf("%s is in check but not to move", waiting))
	}
	if snap.WhiteSeconds <= 0 || snap.BlackSeconds <= 0 {
		res.Issues = append(res.Issues, "a clock has run out")
	}
	return res
}

// AuditReport is the outcome of AuditAll.
type AuditReport struct {
	Results    []ProcessResult // in submission order
	Unique     int             // distinct positions among audited snapshots
	Duplicates int             // results whose position was seen earlier
}

// AuditAll audits items on a pool of workers and returns the results in
// submission order, marking each position already seen in an earlier
// result. Cancelling ctx stops the remaining audits and returns
// ctx's error with the results gathered so far.
func AuditAll(ctx context.Context, items []WorkItem, workers int) (*AuditReport, error) {
	pool := NewPool(workers, len(items)+1, Audit)
	pool.Start()

	go func() {
		defer pool.Close()
		for i, item := range items {
			item.Index = i
			select {
			case <-ctx.Done():
				pool.Stop()
				return
			default:
			}
			pool.Submit(item)
		}
	}()

	results := make([]ProcessResult, 0, len(items))
	for res := range pool.Results() {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	dups := hashing.NewDuplicateDetector()
	for i := range results {
		if results[i].Error != nil {
			continue
		}
		if first, ok := dups.CheckAndAdd(results[i].Signature); ok {
			results[i].DuplicateOf = first
		}
	}
	report := &AuditReport{
		Results:    results,
		Unique:     dups.UniqueCount(),
		Duplicates: dups.DuplicateCount(),
	}
	return report, ctx.Err()
}

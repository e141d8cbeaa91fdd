package engine

import (
	"context"
	"sort"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// PromotionKinds are the kinds a pawn may promote to, strongest first.
var PromotionKinds = [4]chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree of the given depth.
// Each promotion choice counts as a separate move.
func Perft(board *chess.Board, colour chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range Moves(board, colour) {
		for _, child := range successors(board, m) {
			if depth == 1 {
				nodes++
				continue
			}
			nodes += Perft(child.board, colour.Opposite(), depth-1)
		}
	}
	return nodes
}

// Divide returns the perft count below each root move, sorted by move text.
func Divide(board *chess.Board, colour chess.Colour, depth int) []DivideEntry {
	var entries []DivideEntry
	for _, m := range Moves(board, colour) {
		for _, child := range successors(board, m) {
			entries = append(entries, DivideEntry{
				Move:  child.text,
				Nodes: Perft(child.board, colour.Opposite(), depth-1),
			})
		}
	}
	sortEntries(entries)
	return entries
}

// DivideParallel is Divide with the root moves counted on a worker pool.
// Every job owns a cloned board. It returns ctx.Err() if the context ends
// before all counts are in.
func DivideParallel(ctx context.Context, board *chess.Board, colour chess.Colour, depth, workers int) ([]DivideEntry, error) {
	var jobs []worker.Job
	for _, m := range Moves(board, colour) {
		for _, child := range successors(board, m) {
			jobs = append(jobs, worker.Job{
				Index: len(jobs),
				Move:  child.text,
				Board: child.board,
				Turn:  colour.Opposite(),
				Depth: depth - 1,
			})
		}
	}

	pool := worker.NewPool(countJob, worker.WithWorkers(workers), worker.WithBufferSize(len(jobs)+1))
	pool.Start()
	for _, job := range jobs {
		pool.Submit(job)
	}
	go pool.Close()

	entries := make([]DivideEntry, 0, len(jobs))
	done := ctx.Done()
	for {
		select {
		case r, ok := <-pool.Results():
			if !ok {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				sortEntries(entries)
				return entries, nil
			}
			entries = append(entries, DivideEntry{Move: r.Move, Nodes: r.Nodes})
		case <-done:
			pool.Stop()
			done = nil
		}
	}
}

func countJob(job worker.Job) worker.Result {
	return worker.Result{
		Index: job.Index,
		Move:  job.Move,
		Nodes: Perft(job.Board, job.Turn, job.Depth),
	}
}

// Total sums the node counts of a divide.
func Total(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}

func sortEntries(entries []DivideEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Move < entries[j].Move })
}

type successor struct {
	text  string
	board *chess.Board
}

// successors applies m to copies of board. A promotion yields one board per
// promotion kind, labelled with the lowercase piece letter ("e7e8q").
func successors(board *chess.Board, m Move) []successor {
	child := board.Clone()
	rec, err := Apply(child, m.From, m.To, m.Status)
	if err != nil {
		panic("engine: generated move failed to apply: " + err.Error())
	}
	if !rec.Promotion {
		return []successor{{text: m.String(), board: child}}
	}

	pawn := child.Piece(m.To).(*chess.PawnPiece)
	out := make([]successor, 0, len(PromotionKinds))
	for _, kind := range PromotionKinds {
		promoted, err := pawn.Promote(kind)
		if err != nil {
			panic("engine: " + err.Error())
		}
		next := child.Clone()
		if err := next.Replace(m.To, promoted); err != nil {
			panic("engine: " + err.Error())
		}
		out = append(out, successor{
			text:  m.String() + string(kind.Letter()+'a'-'A'),
			board: next,
		})
	}
	return out
}

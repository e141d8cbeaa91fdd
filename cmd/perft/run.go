package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/apex/log"
	"github.com/montanaflynn/stats"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// report is the outcome of one or more identical perft runs.
type report struct {
	Label   string
	Depth   int
	Nodes   uint64
	Divide  []engine.DivideEntry
	Timings []time.Duration
}

// summary holds timing statistics over the runs of a report.
type summary struct {
	Mean   time.Duration
	Median time.Duration
	P90    time.Duration
	NPS    float64 // nodes per second at the median
}

// startBoard returns the position to count from.
func startBoard(cfg *config.Config) (*chess.Board, chess.Colour, error) {
	turn := chess.White
	if cfg.Perft.BlackToMove {
		turn = chess.Black
	}
	if !cfg.Setup.EmptyBoard {
		return chess.NewStandardBoard(), turn, nil
	}
	board, err := chess.ParseLayout(cfg.Setup.Layout)
	if err != nil {
		return nil, turn, err
	}
	return board, turn, nil
}

// runPerft counts the move tree cfg.Repeat times, timing each run. All runs
// must agree on the node count.
func runPerft(ctx context.Context, cfg *config.PerftConfig, board *chess.Board, turn chess.Colour, logger log.Interface) (*report, error) {
	rep := &report{Label: cfg.Label, Depth: cfg.Depth}
	for run := 1; run <= cfg.Repeat; run++ {
		start := time.Now()
		entries, err := engine.DivideParallel(ctx, board, turn, cfg.Depth, cfg.Workers)
		if err != nil {
			return nil, err
		}
		elapsed := time.Since(start)

		nodes := engine.Total(entries)
		if run > 1 && nodes != rep.Nodes {
			return nil, fmt.Errorf("run %d counted %d nodes, run 1 counted %d", run, nodes, rep.Nodes)
		}
		rep.Nodes = nodes
		rep.Divide = entries
		rep.Timings = append(rep.Timings, elapsed)

		logger.WithFields(log.Fields{
			"run":     run,
			"depth":   cfg.Depth,
			"nodes":   nodes,
			"elapsed": elapsed.String(),
		}).Info("perft run")
	}
	return rep, nil
}

// summarize computes timing statistics for the report's runs.
func summarize(rep *report) (summary, error) {
	data := make(stats.Float64Data, 0, len(rep.Timings))
	for _, d := range rep.Timings {
		data = append(data, float64(d))
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return summary{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return summary{}, err
	}
	p90, err := stats.PercentileNearestRank(data, 90)
	if err != nil {
		return summary{}, err
	}

	s := summary{
		Mean:   time.Duration(mean),
		Median: time.Duration(median),
		P90:    time.Duration(p90),
	}
	if median > 0 {
		s.NPS = float64(rep.Nodes) / time.Duration(median).Seconds()
	}
	return s, nil
}

// writeReport prints the divide lines when asked, the node count and the
// timing summary.
func writeReport(w io.Writer, rep *report, withDivide bool) error {
	if withDivide {
		for _, e := range rep.Divide {
			if _, err := fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes); err != nil {
				return err
			}
		}
		fmt.Fprintln(w)
	}

	prefix := ""
	if rep.Label != "" {
		prefix = rep.Label + " "
	}
	if _, err := fmt.Fprintf(w, "%sdepth %d: %d nodes\n", prefix, rep.Depth, rep.Nodes); err != nil {
		return err
	}
	if len(rep.Timings) == 0 {
		return nil
	}

	s, err := summarize(rep)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d run(s): mean %v, median %v, p90 %v, %.0f nodes/s\n",
		len(rep.Timings), s.Mean.Round(time.Microsecond), s.Median.Round(time.Microsecond),
		s.P90.Round(time.Microsecond), s.NPS)
	return err
}

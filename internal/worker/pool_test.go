package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// echoJob returns a job function that reports the job depth as its node count.
func echoJob() JobFunc {
	return func(job Job) Result {
		return Result{Index: job.Index, Move: job.Move, Nodes: uint64(job.Depth)}
	}
}

// countingJob returns a job function that increments a counter.
func countingJob(counter *int32) JobFunc {
	return func(job Job) Result {
		atomic.AddInt32(counter, 1)
		return Result{Index: job.Index, Nodes: 1}
	}
}

// collect drains the result channel.
func collect(pool *Pool) []Result {
	var results []Result
	for r := range pool.Results() {
		results = append(results, r)
	}
	return results
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingJob(&processed), WithWorkers(4))
	pool.Start()

	const numJobs = 10
	go func() {
		for i := 0; i < numJobs; i++ {
			pool.Submit(Job{Index: i, Board: chess.NewStandardBoard(), Turn: chess.White, Depth: 1})
		}
		pool.Close()
	}()

	if got := len(collect(pool)); got != numJobs {
		t.Errorf("results = %d; want %d", got, numJobs)
	}
	if got := atomic.LoadInt32(&processed); got != numJobs {
		t.Errorf("processed = %d; want %d", got, numJobs)
	}
}

func TestPoolResultsCarryJobData(t *testing.T) {
	pool := NewPool(echoJob(), WithWorkers(3), WithBufferSize(4))
	pool.Start()

	moves := []string{"e2e4", "d2d4", "g1f3", "c2c4"}
	go func() {
		for i, m := range moves {
			pool.Submit(Job{Index: i, Move: m, Depth: i + 1})
		}
		pool.Close()
	}()

	seen := make(map[int]Result)
	for _, r := range collect(pool) {
		seen[r.Index] = r
	}
	for i, m := range moves {
		r, ok := seen[i]
		if !ok {
			t.Errorf("missing result for index %d", i)
			continue
		}
		if r.Move != m || r.Nodes != uint64(i+1) {
			t.Errorf("result %d = %+v; want move %s nodes %d", i, r, m, i+1)
		}
	}
}

func TestPoolStop(t *testing.T) {
	var processed int32
	slow := func(job Job) Result {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processed, 1)
		return Result{Index: job.Index}
	}

	pool := NewPool(slow, WithWorkers(2), WithBufferSize(100))
	pool.Start()
	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	const numJobs = 50
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	go pool.Close()
	collect(pool)

	if got := atomic.LoadInt32(&processed); got >= numJobs {
		t.Logf("stop did not skip any job: %d processed", got)
	}
}

func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []Option
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []Option{WithWorkers(4)}, 4, 10},
		{"with buffer size", []Option{WithBufferSize(50)}, 1, 50},
		{"both", []Option{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"zero workers ignored", []Option{WithWorkers(0)}, 1, 10},
		{"negative buffer ignored", []Option{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(echoJob(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingJob(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numJobs = 100
	go func() {
		for i := 0; i < numJobs; i++ {
			pool.Submit(Job{Index: i})
		}
		pool.Close()
	}()

	collect(pool)

	if got := atomic.LoadInt32(&counter); got != numJobs {
		t.Errorf("processed = %d; want %d", got, numJobs)
	}
}

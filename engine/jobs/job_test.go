package jobs

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/spaghettifunk/anima-math/engine/core"
)

func TestNewJobSystemRejects(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		size    int
		want    error
	}{
		{"no workers", 0, 1, ErrNoWorkers},
		{"negative channel", 1, -1, ErrNegativeChannelSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJobSystem(tt.workers, tt.size)
			if !errors.Is(err, tt.want) || !errors.Is(err, core.ErrInvalidConfig) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRunAll(t *testing.T) {
	js, err := NewJobSystem(4, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer js.Shutdown()

	var sum atomic.Int64
	tasks := make([]func() error, 100)
	for i := range tasks {
		n := int64(i + 1)
		tasks[i] = func() error {
			sum.Add(n)
			return nil
		}
	}
	if err := js.RunAll(tasks); err != nil {
		t.Fatal(err)
	}
	if got := sum.Load(); got != 5050 {
		t.Errorf("sum = %d, want 5050", got)
	}

	boom := errors.New("boom")
	err = js.RunAll([]func() error{
		func() error { return nil },
		func() error { return boom },
	})
	if !errors.Is(err, boom) {
		t.Errorf("RunAll err = %v, want boom", err)
	}
}

func TestSubmitCallbacks(t *testing.T) {
	js, err := NewJobSystem(1, 0)
	if err != nil {
		t.Fatal(err)
	}

	var completed, failed, finished atomic.Int32
	done := make(chan struct{}, 2)
	_ = js.Submit(JobTask{
		OnStart:              func() error { return nil },
		OnComplete:           func() { completed.Add(1) },
		OnFailure:            func(error) { failed.Add(1) },
		OnCompletionCallback: func() { finished.Add(1); done <- struct{}{} },
	})
	_ = js.Submit(JobTask{
		OnStart:              func() error { return errors.New("fail") },
		OnComplete:           func() { completed.Add(1) },
		OnFailure:            func(error) { failed.Add(1) },
		OnCompletionCallback: func() { finished.Add(1); done <- struct{}{} },
	})
	<-done
	<-done
	if err := js.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if err := js.Shutdown(); err != nil {
		t.Errorf("second Shutdown = %v", err)
	}

	if completed.Load() != 1 || failed.Load() != 1 || finished.Load() != 2 {
		t.Errorf("completed=%d failed=%d finished=%d", completed.Load(), failed.Load(), finished.Load())
	}
}

func TestSubmitAfterShutdown(t *testing.T) {
	js, err := NewJobSystem(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := js.Shutdown(); err != nil {
		t.Fatal(err)
	}

	if err := js.Submit(JobTask{OnStart: func() error { return nil }}); !errors.Is(err, ErrJobSystemClosed) {
		t.Errorf("Submit after Shutdown = %v, want ErrJobSystemClosed", err)
	}
	ran := false
	err = js.RunAll([]func() error{func() error { ran = true; return nil }})
	if !errors.Is(err, ErrJobSystemClosed) {
		t.Errorf("RunAll after Shutdown = %v, want ErrJobSystemClosed", err)
	}
	if ran {
		t.Error("task ran after Shutdown")
	}
}

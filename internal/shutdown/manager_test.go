package shutdown

import (
	"testing"

	"flack/internal/logger"
)

func TestShutdownReverseOrder(t *testing.T) {
	m := NewManager(logger.Nop())

	var order []string
	m.Register(Func(func() { order = append(order, "first") }))
	m.Register(Func(func() { order = append(order, "second") }))
	m.Register(Func(func() { order = append(order, "third") }))

	m.Shutdown()

	want := []string{"third", "second", "first"}
	if len(order) != len(want) {
		t.Fatalf("hooks run = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("hooks run = %v, want %v", order, want)
		}
	}
}

func TestShutdownRunsOnce(t *testing.T) {
	m := NewManager(logger.Nop())

	runs := 0
	m.Register(Func(func() { runs++ }))

	m.Shutdown()
	m.Shutdown()

	if runs != 1 {
		t.Errorf("hook ran %d times, want 1", runs)
	}
}

func TestDoneClosedAfterShutdown(t *testing.T) {
	m := NewManager(logger.Nop())

	select {
	case <-m.Done():
		t.Fatal("Done() closed before Shutdown()")
	default:
	}

	m.Shutdown()

	select {
	case <-m.Done():
	default:
		t.Error("Done() not closed after Shutdown()")
	}
}

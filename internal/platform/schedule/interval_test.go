package schedule

import (
	"testing"
	"time"
)

func TestIntervalZeroValueIsStopped(t *testing.T) {
	var iv Interval

	if iv.Running() {
		t.Error("zero Interval should not be running")
	}
	if iv.C() != nil {
		t.Error("zero Interval should have a nil channel")
	}

	// Stop on a stopped interval is a no-op
	iv.Stop()
	iv.Stop()
}

func TestIntervalTicks(t *testing.T) {
	iv := NewInterval(5 * time.Millisecond)
	defer iv.Stop()

	for i := range 3 {
		select {
		case <-iv.C():
		case <-time.After(time.Second):
			t.Fatalf("tick %d not delivered", i)
		}
	}
}

func TestIntervalStopIsIdempotent(t *testing.T) {
	iv := NewInterval(5 * time.Millisecond)

	iv.Stop()
	iv.Stop()

	if iv.Running() {
		t.Error("stopped Interval should not be running")
	}
	if iv.C() != nil {
		t.Error("stopped Interval should have a nil channel")
	}
}

func TestIntervalRestartReplacesTicker(t *testing.T) {
	iv := NewInterval(5 * time.Millisecond)
	defer iv.Stop()

	old := iv.C()
	iv.Restart(10 * time.Millisecond)

	if iv.C() == old {
		t.Fatal("Restart should create a new channel")
	}
	if iv.Period() != 10*time.Millisecond {
		t.Errorf("Period() = %v, want 10ms", iv.Period())
	}

	// The old ticker is stopped and never fires again.
	select {
	case <-old:
		t.Error("old ticker delivered a tick after Restart")
	case <-time.After(30 * time.Millisecond):
	}

	select {
	case <-iv.C():
	case <-time.After(time.Second):
		t.Fatal("new ticker not delivering")
	}
}

func TestIntervalRestartAfterStop(t *testing.T) {
	iv := NewInterval(5 * time.Millisecond)
	iv.Stop()
	iv.Restart(5 * time.Millisecond)
	defer iv.Stop()

	select {
	case <-iv.C():
	case <-time.After(time.Second):
		t.Fatal("restarted ticker not delivering")
	}
}

func TestIntervalRejectsNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Restart(0) should panic")
		}
	}()

	var iv Interval
	iv.Restart(0)
}

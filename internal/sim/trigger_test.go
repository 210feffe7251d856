package sim

import (
	"testing"
	"time"
)

// stubDefer captures grace-release callbacks so tests can run them
// deterministically instead of waiting out real timers.
type stubDefer struct {
	pending []func()
}

func (s *stubDefer) deferFunc(_ time.Duration, f func()) {
	s.pending = append(s.pending, f)
}

func (s *stubDefer) releaseAll() {
	for _, f := range s.pending {
		f()
	}
	s.pending = nil
}

func newTestMonitor(timestamps []float64) (*TriggerMonitor, *stubDefer) {
	m := NewTriggerMonitor(timestamps, 5*time.Second)
	s := &stubDefer{}
	m.deferFunc = s.deferFunc
	return m, s
}

func TestPollFiresCrossedTimestampOnce(t *testing.T) {
	m, _ := newTestMonitor([]float64{5.2})

	got := m.Poll(5.0, 5.3)
	if len(got) != 1 || got[0] != 5.2 {
		t.Fatalf("Expected exactly [5.2], got %v", got)
	}

	if got := m.Poll(5.3, 5.4); len(got) != 0 {
		t.Errorf("Expected no refire on next frame, got %v", got)
	}
}

func TestPollChecksAllTimestampsEachCall(t *testing.T) {
	m, _ := newTestMonitor([]float64{1.0, 2.0, 3.0, 9.0})

	got := m.Poll(0.5, 3.5)
	if len(got) != 3 {
		t.Fatalf("Expected 3 triggers after a jump across several timestamps, got %v", got)
	}
	for i, want := range []float64{1.0, 2.0, 3.0} {
		if got[i] != want {
			t.Errorf("Trigger %d: expected %v, got %v", i, want, got[i])
		}
	}
}

func TestExactBoundaryFires(t *testing.T) {
	m, _ := newTestMonitor([]float64{5.2})

	got := m.Poll(5.2, 5.2)
	if len(got) != 1 || got[0] != 5.2 {
		t.Errorf("Expected an exact hit on the timestamp to fire, got %v", got)
	}
}

func TestFiredSetBlocksRepeatWhileTimeSitsOnTimestamp(t *testing.T) {
	m, _ := newTestMonitor([]float64{5.2})

	if got := m.Poll(5.0, 5.2); len(got) != 1 {
		t.Fatalf("Expected initial fire, got %v", got)
	}
	if got := m.Poll(5.2, 5.25); len(got) != 0 {
		t.Errorf("Expected fired-set to block a repeat, got %v", got)
	}
}

func TestBackwardJumpRearmsAllTimestamps(t *testing.T) {
	m, _ := newTestMonitor([]float64{0, 5.2})

	if got := m.Poll(0, 0.1); len(got) != 1 || got[0] != 0 {
		t.Fatalf("Expected timestamp 0 to fire on the first pass, got %v", got)
	}
	if got := m.Poll(0.1, 5.3); len(got) != 1 || got[0] != 5.2 {
		t.Fatalf("Expected 5.2 to fire, got %v", got)
	}

	// loop/seek: playback time jumps from 40 back to 2
	if got := m.Poll(40.0, 2.0); len(got) != 0 {
		t.Fatalf("Expected nothing crossed on the jump frame itself, got %v", got)
	}

	// both timestamps are eligible again and fire when crossed
	if got := m.Poll(2.0, 5.3); len(got) != 1 || got[0] != 5.2 {
		t.Errorf("Expected 5.2 to refire after re-arm, got %v", got)
	}
	if got := m.Poll(80.0, 0.0); len(got) != 0 {
		t.Fatalf("Expected nothing on the wrap frame, got %v", got)
	}
	if got := m.Poll(0.0, 0.1); len(got) != 1 || got[0] != 0 {
		t.Errorf("Expected timestamp 0 to refire on the next pass, got %v", got)
	}
}

func TestSmallBackwardJitterNearStartDoesNotRearm(t *testing.T) {
	m, _ := newTestMonitor([]float64{0.5})

	if got := m.Poll(0.4, 0.6); len(got) != 1 {
		t.Fatalf("Expected initial fire, got %v", got)
	}
	// previous time below the 1.0 threshold: not treated as a loop
	if got := m.Poll(0.9, 0.45); len(got) != 0 {
		t.Errorf("Expected no re-arm below the jump threshold, got %v", got)
	}
}

func TestGraceReleaseRearmsSingleTimestamp(t *testing.T) {
	m, s := newTestMonitor([]float64{5.2})

	if got := m.Poll(5.0, 5.2); len(got) != 1 {
		t.Fatalf("Expected initial fire, got %v", got)
	}
	if got := m.Poll(5.1, 5.2); len(got) != 0 {
		t.Fatalf("Expected fired-set to block before grace expiry, got %v", got)
	}

	s.releaseAll()

	if got := m.Poll(5.1, 5.2); len(got) != 1 || got[0] != 5.2 {
		t.Errorf("Expected refire after grace release, got %v", got)
	}
}

func TestDuplicateTimestampsFireOnce(t *testing.T) {
	m, _ := newTestMonitor([]float64{5.2, 5.2})

	got := m.Poll(5.0, 5.3)
	if len(got) != 1 {
		t.Errorf("Expected duplicates to share one fired-set entry, got %v", got)
	}
}

func TestEmptyTimestampListNeverFires(t *testing.T) {
	m, _ := newTestMonitor(nil)

	if got := m.Poll(0, 100); len(got) != 0 {
		t.Errorf("Expected no triggers from an empty list, got %v", got)
	}
}

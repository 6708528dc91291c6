package session

import (
	"sync"
	"testing"
	"time"
)

func TestGetCreatesEmptyState(t *testing.T) {
	s := NewStore(Options{})
	state := s.Get("alice")
	if state.Brand == nil {
		t.Fatal("Brand should be initialized")
	}
	if state.Brand.HasSelectedName() {
		t.Fatal("fresh aggregate should have no selected name")
	}
	if state.PaletteStyle != "Pastel" {
		t.Fatalf("PaletteStyle = %q", state.PaletteStyle)
	}
}

func TestGetReturnsSameStatePerSession(t *testing.T) {
	s := NewStore(Options{})
	first := s.Get("alice")
	first.Brand.Names = []string{"Acme"}
	second := s.Get("alice")
	if len(second.Brand.Names) != 1 || second.Brand.Names[0] != "Acme" {
		t.Fatalf("state not shared: %+v", second.Brand.Names)
	}
	if other := s.Get("bob"); len(other.Brand.Names) != 0 {
		t.Fatal("sessions must be isolated")
	}
}

func TestAppendChatCapsHistory(t *testing.T) {
	s := NewStore(Options{MaxChat: 3})
	for i := 0; i < 5; i++ {
		s.AppendChat("alice", Message{Role: "user", Content: "m"})
	}
	if got := len(s.Get("alice").Chat); got != 3 {
		t.Fatalf("chat len = %d, want 3", got)
	}
}

func TestConcurrentAccessSameSession(t *testing.T) {
	s := NewStore(Options{MaxChat: 1000})
	const (
		workers = 8
		turns   = 25
	)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < turns; j++ {
				s.AppendChat("alice", Message{Role: "user", Content: "m"})
			}
		}()
	}
	wg.Wait()
	if got := len(s.Get("alice").Chat); got != workers*turns {
		t.Fatalf("chat len = %d, want %d", got, workers*turns)
	}
}

func TestConcurrentFirstAccessSharesState(t *testing.T) {
	s := NewStore(Options{})
	states := make([]*State, 8)
	var wg sync.WaitGroup
	for i := range states {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			states[i] = s.Get("alice")
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(states); i++ {
		if states[i] != states[0] {
			t.Fatal("concurrent first accesses must resolve to one state")
		}
	}
}

func TestReset(t *testing.T) {
	s := NewStore(Options{})
	s.Get("alice").Brand.Names = []string{"Acme"}
	s.Reset("alice")
	if len(s.Get("alice").Brand.Names) != 0 {
		t.Fatal("reset should discard state")
	}
}

func TestStateExpires(t *testing.T) {
	s := NewStore(Options{TTL: 10 * time.Millisecond, CleanupInterval: 5 * time.Millisecond})
	s.Get("alice").Brand.Names = []string{"Acme"}
	time.Sleep(30 * time.Millisecond)
	if len(s.Get("alice").Brand.Names) != 0 {
		t.Fatal("state should have expired")
	}
}

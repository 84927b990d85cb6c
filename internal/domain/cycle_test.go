package domain

import "testing"

func TestTurnCycleForwardOrder(t *testing.T) {
	c := NewTurnCycle([]int{0, 1, 2})

	if _, ok := c.Current(); ok {
		t.Fatal("Current() ok before first Advance")
	}

	want := []int{0, 1, 2, 0, 1}
	for i, w := range want {
		if got := c.Advance(); got != w {
			t.Fatalf("Advance() #%d = %d, want %d", i, got, w)
		}
	}
}

func TestTurnCycleReverseMidGame(t *testing.T) {
	c := NewTurnCycle([]int{0, 1, 2})
	c.Advance() // 0
	c.Advance() // 1
	c.Reverse()
	if got := c.Advance(); got != 0 {
		t.Fatalf("Advance() after reverse = %d, want 0", got)
	}
	if got := c.Advance(); got != 2 {
		t.Fatalf("Advance() after reverse = %d, want 2", got)
	}
	if !c.Reversed() {
		t.Fatal("Reversed() = false, want true")
	}
}

func TestTurnCycleReverseBeforeStart(t *testing.T) {
	// Reversing before the first Advance must start from the last seat.
	c := NewTurnCycle([]int{0, 1, 2})
	c.Reverse()
	if got := c.Advance(); got != 2 {
		t.Fatalf("first Advance() = %d, want 2", got)
	}
	if got := c.Advance(); got != 1 {
		t.Fatalf("second Advance() = %d, want 1", got)
	}
}

func TestTurnCycleDoubleReverse(t *testing.T) {
	c := NewTurnCycle([]int{0, 1, 2})
	c.Advance() // 0
	c.Reverse()
	c.Reverse()
	if got := c.Advance(); got != 1 {
		t.Fatalf("Advance() = %d, want 1", got)
	}
}

func TestTurnCycleTwoSeats(t *testing.T) {
	c := NewTurnCycle([]int{0, 1})
	c.Advance() // 0
	c.Reverse()
	if got := c.Advance(); got != 1 {
		t.Fatalf("Advance() after reverse = %d, want 1", got)
	}
}

package domain

// TurnCycle walks an ordered set of seats in a circle. The direction can
// be flipped at any time; flipping before the first Advance makes the
// cycle start from the last seat instead of the first, which is what lets
// a reverse card on the first discard change the opening player.
type TurnCycle struct {
	seats    []int
	pos      int
	started  bool
	reversed bool
}

// NewTurnCycle builds a cycle over the given seats in order.
func NewTurnCycle(seats []int) *TurnCycle {
	return &TurnCycle{seats: append([]int(nil), seats...)}
}

// Advance moves the cursor one step in the current direction and returns
// the new current seat. The first call positions the cursor at the first
// seat (or the last, if the cycle was reversed before any call).
func (c *TurnCycle) Advance() int {
	if !c.started {
		c.started = true
		if c.reversed {
			c.pos = len(c.seats) - 1
		} else {
			c.pos = 0
		}
		return c.seats[c.pos]
	}
	n := len(c.seats)
	if c.reversed {
		c.pos = (c.pos - 1 + n) % n
	} else {
		c.pos = (c.pos + 1) % n
	}
	return c.seats[c.pos]
}

// Reverse flips the direction without moving the cursor.
func (c *TurnCycle) Reverse() {
	c.reversed = !c.reversed
}

// Current returns the seat under the cursor. ok is false before the first
// Advance.
func (c *TurnCycle) Current() (seat int, ok bool) {
	if !c.started {
		return 0, false
	}
	return c.seats[c.pos], true
}

// Reversed reports the current direction flag.
func (c *TurnCycle) Reversed() bool {
	return c.reversed
}

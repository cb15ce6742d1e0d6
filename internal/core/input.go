package core

import "time"

// Frame is the input snapshot a front end reports once per rendered frame.
// Edge fields are true only on the frame the key went down; button fields
// stay true while the button is held.
type Frame struct {
	CloseRequested bool

	TogglePause bool
	Clear       bool
	Seed        bool

	Primary   bool
	Secondary bool
	PointerX  int
	PointerY  int

	// Delta is the time elapsed since the previous frame.
	Delta time.Duration
}

// Package protocols implements the core Wayland protocol objects wayinfo
// binds for inspection: wl_seat, wl_keyboard and wl_output. Each proxy
// embeds wl.BaseProxy and dispatches its events to registered handlers.
package protocols

import (
	"github.com/bnema/wlturbo/wl"
)

// Protocol interface names
const (
	SeatInterface     = "wl_seat"
	KeyboardInterface = "wl_keyboard"
	OutputInterface   = "wl_output"
)

// Highest interface versions this tool understands. Binds are always capped
// here; requesting more than the compositor advertised is a protocol
// violation.
const (
	SeatMaxVersion   = 9
	OutputMaxVersion = 4
)

// wl_seat capability bitmask
const (
	SeatCapabilityPointer  uint32 = 1 << 0
	SeatCapabilityKeyboard uint32 = 1 << 1
	SeatCapabilityTouch    uint32 = 1 << 2
)

// BindVersion caps an advertised version at the highest one we implement.
func BindVersion(advertised, max uint32) uint32 {
	if advertised < max {
		return advertised
	}
	return max
}

// Seat represents a wl_seat global
type Seat struct {
	wl.BaseProxy
	capabilitiesHandler func(uint32)
	nameHandler         func(string)
}

// NewSeat creates a new seat proxy
func NewSeat(ctx *wl.Context) *Seat {
	seat := &Seat{}
	seat.SetContext(ctx)
	return seat
}

// SetCapabilitiesHandler sets the handler for capability events. The mask is
// delivered raw; each event replaces the previous capability set.
func (s *Seat) SetCapabilitiesHandler(handler func(uint32)) {
	s.capabilitiesHandler = handler
}

// SetNameHandler sets the handler for name events (since version 2)
func (s *Seat) SetNameHandler(handler func(string)) {
	s.nameHandler = handler
}

// GetKeyboard creates the keyboard sub-object for this seat. Only valid
// once a capability event has reported the keyboard capability.
func (s *Seat) GetKeyboard() (*Keyboard, error) {
	keyboard := NewKeyboard(s.Context())

	// Opcode 1: get_keyboard
	const opcode = 1

	if err := s.Context().SendRequest(s, opcode, keyboard); err != nil {
		s.Context().Unregister(keyboard)
		return nil, err
	}

	return keyboard, nil
}

// Destroy destroys the seat proxy
func (s *Seat) Destroy() error {
	s.Context().Unregister(s)
	return nil
}

// Dispatch handles incoming events
func (s *Seat) Dispatch(event *wl.Event) {
	switch event.Opcode {
	case 0: // capabilities
		if s.capabilitiesHandler != nil {
			capabilities := event.Uint32()
			s.capabilitiesHandler(capabilities)
		}
	case 1: // name
		if s.nameHandler != nil {
			name := event.String()
			s.nameHandler(name)
		}
	}
}

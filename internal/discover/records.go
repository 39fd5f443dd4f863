// Package discover accumulates what the compositor advertises during one
// registry round: every global, plus seat and output detail collected from
// follow-up events on bound objects.
package discover

import (
	"fmt"

	"github.com/bnema/wayinfo/internal/protocols"
)

// GlobalInfo records one registry advertisement. Immutable once created.
type GlobalInfo struct {
	Name      uint32 `json:"-"`
	Interface string `json:"interface"`
	Version   uint32 `json:"version"`
}

// SeatInfo is the detail record for a wl_seat global. Populated
// incrementally while the event round runs; complete only once it drains.
type SeatInfo struct {
	Name         uint32   `json:"-"`
	SeatName     string   `json:"seatName"`
	Capabilities []string `json:"capabilities"`
	RepeatRate   *int32   `json:"keyboardRepeatRate"`
	RepeatDelay  *int32   `json:"keyboardRepeatDelay"`

	hasKeyboard bool
}

// setCapabilities replaces the capability set wholesale. Per wl_seat
// semantics the latest capability event wins.
func (s *SeatInfo) setCapabilities(mask uint32) {
	caps := make([]string, 0, 3)
	if mask&protocols.SeatCapabilityPointer != 0 {
		caps = append(caps, "pointer")
	}
	if mask&protocols.SeatCapabilityKeyboard != 0 {
		caps = append(caps, "keyboard")
	}
	if mask&protocols.SeatCapabilityTouch != 0 {
		caps = append(caps, "touch")
	}
	s.Capabilities = caps
	s.hasKeyboard = mask&protocols.SeatCapabilityKeyboard != 0
}

func (s *SeatInfo) setName(name string) {
	s.SeatName = name
}

func (s *SeatInfo) setRepeatInfo(rate, delay int32) {
	s.RepeatRate = &rate
	s.RepeatDelay = &delay
}

// OutputInfo is the detail record for a wl_output global.
type OutputInfo struct {
	Name                uint32 `json:"-"`
	OutputName          string `json:"outputName"`
	Description         string `json:"description"`
	X                   int32  `json:"x"`
	Y                   int32  `json:"y"`
	Scale               int32  `json:"scale"`
	PhysicalWidth       int32  `json:"physicalWidth"`
	PhysicalHeight      int32  `json:"physicalHeight"`
	Make                string `json:"make"`
	Model               string `json:"model"`
	SubpixelOrientation string `json:"subpixelOrientation"`
	OutputTransform     string `json:"outputTransform"`
	Modes               []Mode `json:"modes"`

	done bool
}

// Mode is one advertised display mode. Refresh stays in milli-hertz as
// reported; the text renderer converts to Hz.
type Mode struct {
	Width   int32    `json:"width"`
	Height  int32    `json:"height"`
	Refresh int32    `json:"refresh"`
	Flags   []string `json:"flags"`
}

func (o *OutputInfo) applyGeometry(g protocols.Geometry) {
	o.X = g.X
	o.Y = g.Y
	o.PhysicalWidth = g.PhysicalWidth
	o.PhysicalHeight = g.PhysicalHeight
	o.Make = g.Make
	o.Model = g.Model
	o.SubpixelOrientation = g.Subpixel.String()
	o.OutputTransform = g.Transform.String()
}

// appendMode records a mode in arrival order. Modes are never deduplicated
// or reordered; arrival order is how the compositor relates them to the
// current and preferred flags.
func (o *OutputInfo) appendMode(flags uint32, width, height, refresh int32) {
	modeFlags := make([]string, 0, 2)
	if flags&protocols.ModeCurrent != 0 {
		modeFlags = append(modeFlags, "current")
	}
	if flags&protocols.ModePreferred != 0 {
		modeFlags = append(modeFlags, "preferred")
	}
	o.Modes = append(o.Modes, Mode{
		Width:   width,
		Height:  height,
		Refresh: refresh,
		Flags:   modeFlags,
	})
}

// markDone records the wl_output done event, the atomic-update boundary
// after which the property set is consistent.
func (o *OutputInfo) markDone() {
	o.done = true
}

func (o *OutputInfo) setScale(factor int32) {
	o.Scale = factor
}

func (o *OutputInfo) setName(name string) {
	o.OutputName = name
}

func (o *OutputInfo) setDescription(description string) {
	o.Description = description
}

// State is the mutable collection owned by the dispatch goroutine. The
// aggregator reads it only after the event round has drained.
type State struct {
	Globals []GlobalInfo
	Seats   []*SeatInfo
	Outputs []*OutputInfo

	seatProxies []*protocols.Seat
	keyboards   []*protocols.Keyboard
}

// NewState returns an empty collection.
func NewState() *State {
	return &State{}
}

// AddGlobal records an advertisement in discovery order.
func (s *State) AddGlobal(name uint32, iface string, version uint32) {
	s.Globals = append(s.Globals, GlobalInfo{
		Name:      name,
		Interface: iface,
		Version:   version,
	})
}

// AddSeat creates the detail record for a wl_seat global. The placeholder
// display name is replaced if the seat sends a name event.
func (s *State) AddSeat(name uint32) *SeatInfo {
	seat := &SeatInfo{
		Name:         name,
		SeatName:     fmt.Sprintf("seat%d", len(s.Seats)),
		Capabilities: []string{},
	}
	s.Seats = append(s.Seats, seat)
	return seat
}

// AddOutput creates the detail record for a wl_output global.
func (s *State) AddOutput(name uint32) *OutputInfo {
	output := &OutputInfo{
		Name:       name,
		OutputName: fmt.Sprintf("output%d", len(s.Outputs)),
		Scale:      1,
		Modes:      []Mode{},
	}
	s.Outputs = append(s.Outputs, output)
	return output
}

func (s *State) seatByName(name uint32) *SeatInfo {
	for _, seat := range s.Seats {
		if seat.Name == name {
			return seat
		}
	}
	return nil
}

func (s *State) outputByName(name uint32) *OutputInfo {
	for _, output := range s.Outputs {
		if output.Name == name {
			return output
		}
	}
	return nil
}

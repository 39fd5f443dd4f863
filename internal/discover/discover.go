package discover

import (
	"fmt"

	"github.com/bnema/wayinfo/internal/logger"
	"github.com/bnema/wayinfo/internal/protocols"
	"github.com/bnema/wayinfo/internal/wlclient"
	"github.com/bnema/wlturbo/wl"
)

// settleRounds is how many extra roundtrips we run after the keyboard binds
// so every bound object has delivered its event burst.
const settleRounds = 5

// listener reacts to registry advertisements: every global is recorded, and
// wl_seat / wl_output globals are additionally bound for detail collection.
type listener struct {
	session *wlclient.Session
	state   *State
	err     error
}

// HandleRegistryGlobal implements wl.RegistryGlobalHandler
func (l *listener) HandleRegistryGlobal(event wl.RegistryGlobalEvent) {
	l.state.AddGlobal(event.Name, event.Interface, event.Version)

	switch event.Interface {
	case protocols.SeatInterface:
		l.bindSeat(event)
	case protocols.OutputInterface:
		l.bindOutput(event)
	}
}

// HandleRegistryGlobalRemove implements wl.RegistryGlobalRemoveHandler.
// The report is a point-in-time snapshot, so removals during the single
// synchronous pass are tolerated no-ops.
func (l *listener) HandleRegistryGlobalRemove(wl.RegistryGlobalRemoveEvent) {}

func (l *listener) bindSeat(event wl.RegistryGlobalEvent) {
	version, err := l.checkVersion(event)
	if err != nil {
		l.fail(err)
		return
	}

	info := l.state.AddSeat(event.Name)
	seat := protocols.NewSeat(l.session.Context())
	seat.SetCapabilitiesHandler(info.setCapabilities)
	seat.SetNameHandler(info.setName)
	// Kept in lockstep with state.Seats so keyboard binds can pair them.
	l.state.seatProxies = append(l.state.seatProxies, seat)

	if err := l.session.Bind(event.Name, event.Interface, version, seat); err != nil {
		l.fail(err)
	}
}

func (l *listener) bindOutput(event wl.RegistryGlobalEvent) {
	version, err := l.checkVersion(event)
	if err != nil {
		l.fail(err)
		return
	}

	info := l.state.AddOutput(event.Name)
	output := protocols.NewOutput(l.session.Context())
	output.SetGeometryHandler(info.applyGeometry)
	output.SetModeHandler(info.appendMode)
	output.SetDoneHandler(info.markDone)
	output.SetScaleHandler(info.setScale)
	output.SetNameHandler(info.setName)
	output.SetDescriptionHandler(info.setDescription)

	if err := l.session.Bind(event.Name, event.Interface, version, output); err != nil {
		l.fail(err)
	}
}

// checkVersion caps the bind version at what we implement. Version 0 is a
// protocol violation a conformant compositor never sends.
func (l *listener) checkVersion(event wl.RegistryGlobalEvent) (uint32, error) {
	if event.Version == 0 {
		return 0, fmt.Errorf("%w: %s advertised version 0",
			wlclient.ErrUnsupportedVersion, event.Interface)
	}
	max := uint32(protocols.OutputMaxVersion)
	if event.Interface == protocols.SeatInterface {
		max = protocols.SeatMaxVersion
	}
	return protocols.BindVersion(event.Version, max), nil
}

// fail keeps the first error; the dispatch loop cannot propagate it itself.
func (l *listener) fail(err error) {
	if l.err == nil {
		l.err = err
	}
}

// Run drives one full discovery pass: enumerate globals, bind seats and
// outputs, then conditionally bind keyboards and drain the queue to a
// quiescent point. The returned State is complete and safe to aggregate.
func Run(session *wlclient.Session) (*State, error) {
	state := NewState()
	l := &listener{session: session, state: state}

	registry := session.Registry()
	registry.AddGlobalHandler(l)
	registry.AddGlobalRemoveHandler(l)

	// First roundtrip announces every global; seat and output binds are
	// issued from inside the handler as each one arrives.
	if err := session.Roundtrip(); err != nil {
		return nil, err
	}
	// Second roundtrip delivers the initial event burst of the bound
	// objects, including seat capabilities.
	if err := session.Roundtrip(); err != nil {
		return nil, err
	}
	if l.err != nil {
		return nil, l.err
	}

	if err := bindKeyboards(state); err != nil {
		return nil, err
	}

	if err := session.Settle(settleRounds); err != nil {
		return nil, err
	}

	// Version 1 outputs never send done; anything newer that stays silent
	// may have an incomplete property set.
	for _, output := range state.Outputs {
		if !output.done {
			logger.Debugf("output %s did not signal the end of its property burst",
				output.OutputName)
		}
	}

	logger.Debugf("discovered %d globals (%d seats, %d outputs)",
		len(state.Globals), len(state.Seats), len(state.Outputs))
	return state, nil
}

// bindKeyboards creates a keyboard sub-object for every seat whose latest
// capability event included the keyboard bit. Seats that never reported it
// keep their repeat rate and delay absent.
func bindKeyboards(state *State) error {
	for i, seat := range state.Seats {
		if !seat.hasKeyboard {
			continue
		}
		keyboard, err := state.seatProxies[i].GetKeyboard()
		if err != nil {
			return fmt.Errorf("%w: get_keyboard: %v", wlclient.ErrDispatch, err)
		}
		keyboard.SetRepeatInfoHandler(seat.setRepeatInfo)
		state.keyboards = append(state.keyboards, keyboard)
	}
	return nil
}

package discover

import (
	"sort"

	"github.com/bnema/wayinfo/internal/protocols"
)

// Options selects what Finalize keeps and how it orders it.
type Options struct {
	// Protocol keeps only globals whose interface name equals it exactly.
	Protocol string
	// Sort reorders by interface name. Sorted output intentionally drops
	// the numeric name column; duplicate interfaces keep discovery order.
	Sort bool
}

// Entry pairs one global with its detail record, if any. Only wl_seat and
// wl_output globals ever carry one.
type Entry struct {
	Global GlobalInfo
	Seat   *SeatInfo
	Output *OutputInfo
}

// Report is the finalized, ordered view handed to the renderer. It is never
// mutated after Finalize returns.
type Report struct {
	Protocol string
	Sorted   bool
	Entries  []Entry
}

// Finalize applies the filter, then the optional sort, and attaches detail
// records to their owning globals. Called exactly once, after the event
// round has drained.
func (s *State) Finalize(opts Options) Report {
	entries := make([]Entry, 0, len(s.Globals))
	for _, global := range s.Globals {
		if opts.Protocol != "" && global.Interface != opts.Protocol {
			continue
		}
		entry := Entry{Global: global}
		switch global.Interface {
		case protocols.SeatInterface:
			entry.Seat = s.seatByName(global.Name)
		case protocols.OutputInterface:
			entry.Output = s.outputByName(global.Name)
		}
		entries = append(entries, entry)
	}

	if opts.Sort {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Global.Interface < entries[j].Global.Interface
		})
	}

	return Report{
		Protocol: opts.Protocol,
		Sorted:   opts.Sort,
		Entries:  entries,
	}
}

// HasDetails reports whether wayinfo implements detail collection for the
// given interface.
func HasDetails(iface string) bool {
	return iface == protocols.SeatInterface || iface == protocols.OutputInterface
}

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/wayinfo/internal/discover"
	"github.com/bnema/wayinfo/internal/ui"
)

// Column widths follow wayland-info conventions: interface names padded so
// versions line up, version right-justified.
const interfaceColumn = 45

func renderText(w io.Writer, report discover.Report, full bool, pal ui.Palette) error {
	if report.Protocol != "" && len(report.Entries) == 0 {
		_, err := fmt.Fprintf(w, "%s %s\n",
			pal.Warn.Render("Protocol not supported:"), report.Protocol)
		return err
	}

	if _, err := fmt.Fprintln(w, pal.Header.Render("Wayland Global Interfaces:")); err != nil {
		return err
	}

	for _, entry := range report.Entries {
		if err := writeGlobal(w, report, entry, pal); err != nil {
			return err
		}

		if report.Protocol != "" && !discover.HasDetails(report.Protocol) {
			note := "        [Info] wayinfo does not implement details for this protocol"
			if _, err := fmt.Fprintln(w, pal.Info.Render(note)); err != nil {
				return err
			}
			continue
		}
		if !full {
			continue
		}

		if entry.Seat != nil {
			if err := writeSeat(w, entry.Seat, pal); err != nil {
				return err
			}
		}
		if entry.Output != nil {
			if err := writeOutput(w, entry.Output, pal); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeGlobal(w io.Writer, report discover.Report, entry discover.Entry, pal ui.Palette) error {
	iface := pal.Interface.Render(fmt.Sprintf("%-*s", interfaceColumn, entry.Global.Interface))
	version := pal.Version.Render(fmt.Sprintf("%2d", entry.Global.Version))

	// Sorted output drops the name column: registry names are discovery
	// order artifacts and meaningless once reordered.
	if report.Sorted {
		_, err := fmt.Fprintf(w, "interface: %s version: %s\n", iface, version)
		return err
	}
	_, err := fmt.Fprintf(w, "name: %-4d interface: %s version: %s\n",
		entry.Global.Name, iface, version)
	return err
}

func writeSeat(w io.Writer, seat *discover.SeatInfo, pal ui.Palette) error {
	if _, err := fmt.Fprintf(w, "        name: %s\n", pal.SeatName.Render(seat.SeatName)); err != nil {
		return err
	}
	if len(seat.Capabilities) > 0 {
		if _, err := fmt.Fprintf(w, "        capabilities: %s\n",
			strings.Join(seat.Capabilities, " ")); err != nil {
			return err
		}
	}
	// Absent unless a keyboard capability event ever arrived.
	if seat.RepeatRate != nil {
		if _, err := fmt.Fprintf(w, "        keyboard repeat rate: %d\n", *seat.RepeatRate); err != nil {
			return err
		}
	}
	if seat.RepeatDelay != nil {
		if _, err := fmt.Fprintf(w, "        keyboard repeat delay: %d\n", *seat.RepeatDelay); err != nil {
			return err
		}
	}
	return nil
}

func writeOutput(w io.Writer, output *discover.OutputInfo, pal ui.Palette) error {
	if _, err := fmt.Fprintf(w, "        name: %s\n", pal.OutputName.Render(output.OutputName)); err != nil {
		return err
	}
	if output.Description != "" {
		if _, err := fmt.Fprintf(w, "        description: %s\n", output.Description); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "        x: %d, y: %d, scale: %d,\n",
		output.X, output.Y, output.Scale); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "        physical_width: %d mm, physical_height: %d mm,\n",
		output.PhysicalWidth, output.PhysicalHeight); err != nil {
		return err
	}
	if output.Make != "" {
		if _, err := fmt.Fprintf(w, "        make: '%s', model: '%s',\n",
			output.Make, output.Model); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "        subpixel_orientation: %s, output_transform: %s,\n",
		output.SubpixelOrientation, output.OutputTransform); err != nil {
		return err
	}
	for _, mode := range output.Modes {
		if _, err := fmt.Fprintf(w,
			"        mode:\n                width: %d px, height: %d px, refresh: %.3f Hz,\n                flags: %s\n",
			mode.Width, mode.Height, float64(mode.Refresh)/1000.0,
			strings.Join(mode.Flags, " ")); err != nil {
			return err
		}
	}
	return nil
}

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bnema/wayinfo/internal/discover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int32p(v int32) *int32 { return &v }

// sampleReport mirrors a small compositor: one seat with a keyboard, one
// output with two modes, plus a detail-less global.
func sampleReport() discover.Report {
	return discover.Report{
		Entries: []discover.Entry{
			{Global: discover.GlobalInfo{Name: 1, Interface: "wl_compositor", Version: 6}},
			{
				Global: discover.GlobalInfo{Name: 2, Interface: "wl_seat", Version: 9},
				Seat: &discover.SeatInfo{
					Name:         2,
					SeatName:     "seat0",
					Capabilities: []string{"pointer", "keyboard"},
					RepeatRate:   int32p(40),
					RepeatDelay:  int32p(600),
				},
			},
			{
				Global: discover.GlobalInfo{Name: 3, Interface: "wl_output", Version: 4},
				Output: &discover.OutputInfo{
					Name:                3,
					OutputName:          "DP-1",
					Description:         "Dell U2415 (DP-1)",
					X:                   0,
					Y:                   0,
					Scale:               1,
					PhysicalWidth:       518,
					PhysicalHeight:      324,
					Make:                "Dell",
					Model:               "U2415",
					SubpixelOrientation: "unknown",
					OutputTransform:     "normal",
					Modes: []discover.Mode{
						{Width: 1920, Height: 1080, Refresh: 60000, Flags: []string{"current"}},
						{Width: 1280, Height: 720, Refresh: 60000, Flags: []string{}},
					},
				},
			},
		},
	}
}

func renderString(t *testing.T, report discover.Report, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, opts))
	return buf.String()
}

func TestTextFullOutput(t *testing.T) {
	out := renderString(t, sampleReport(), Options{Full: true})

	assert.Contains(t, out, "Wayland Global Interfaces:")
	assert.Contains(t, out, "name: 1   ")
	assert.Contains(t, out, "capabilities: pointer keyboard")
	assert.Contains(t, out, "keyboard repeat rate: 40")
	assert.Contains(t, out, "keyboard repeat delay: 600")
	assert.Contains(t, out, "description: Dell U2415 (DP-1)")
	assert.Contains(t, out, "physical_width: 518 mm, physical_height: 324 mm,")
	assert.Contains(t, out, "make: 'Dell', model: 'U2415',")
	assert.Contains(t, out, "refresh: 60.000 Hz")
}

func TestTextSimpleOmitsDetailLabels(t *testing.T) {
	out := renderString(t, sampleReport(), Options{Full: false})

	assert.Contains(t, out, "wl_seat")
	assert.Contains(t, out, "wl_output")
	assert.NotContains(t, out, "capabilities:")
	assert.NotContains(t, out, "mode:")
	assert.NotContains(t, out, "keyboard repeat rate:")
	assert.NotContains(t, out, "description:")
}

func TestTextSortedDropsNameColumn(t *testing.T) {
	report := sampleReport()
	report.Sorted = true
	out := renderString(t, report, Options{Full: false})

	for _, line := range strings.Split(out, "\n") {
		assert.False(t, strings.HasPrefix(line, "name:"),
			"sorted output must not carry the name column: %q", line)
	}
	assert.Contains(t, out, "interface: wl_seat")
}

func TestTextSeatWithoutKeyboardOmitsRepeatInfo(t *testing.T) {
	report := discover.Report{
		Entries: []discover.Entry{{
			Global: discover.GlobalInfo{Name: 2, Interface: "wl_seat", Version: 9},
			Seat: &discover.SeatInfo{
				Name:         2,
				SeatName:     "seat0",
				Capabilities: []string{"pointer"},
			},
		}},
	}
	out := renderString(t, report, Options{Full: true})

	assert.Contains(t, out, "capabilities: pointer")
	assert.NotContains(t, out, "keyboard repeat rate")
	assert.NotContains(t, out, "keyboard repeat delay")
}

func TestTextModeOrderPreserved(t *testing.T) {
	out := renderString(t, sampleReport(), Options{Full: true})

	first := strings.Index(out, "width: 1920 px")
	second := strings.Index(out, "width: 1280 px")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second, "modes must render in arrival order")
	assert.Contains(t, out, "flags: current")
}

func TestTextProtocolNotSupported(t *testing.T) {
	report := discover.Report{Protocol: "xdg_wm_base"}
	out := renderString(t, report, Options{Full: true})

	assert.Equal(t, "Protocol not supported: xdg_wm_base\n", out)
}

func TestTextFilteredProtocolWithoutDetails(t *testing.T) {
	report := discover.Report{
		Protocol: "wl_shm",
		Entries: []discover.Entry{
			{Global: discover.GlobalInfo{Name: 4, Interface: "wl_shm", Version: 1}},
		},
	}
	out := renderString(t, report, Options{Full: true})

	assert.Contains(t, out, "does not implement details for this protocol")
}

func TestTextNoColorHasNoEscapeCodes(t *testing.T) {
	out := renderString(t, sampleReport(), Options{Full: true, Color: false})
	assert.NotContains(t, out, "\x1b[", "plain output must not contain ANSI escapes")
}

func TestJSONFullRoundTripsReportFields(t *testing.T) {
	out := renderString(t, sampleReport(), Options{JSON: true, Full: true})

	var doc struct {
		GenerationTimestamp int64 `json:"generationTimestamp"`
		Globals             []struct {
			Interface string `json:"interface"`
			Version   uint32 `json:"version"`
		} `json:"globals"`
		Seats []struct {
			SeatName     string   `json:"seatName"`
			Capabilities []string `json:"capabilities"`
			RepeatRate   *int32   `json:"keyboardRepeatRate"`
			RepeatDelay  *int32   `json:"keyboardRepeatDelay"`
		} `json:"seats"`
		Outputs []struct {
			OutputName string `json:"outputName"`
			Scale      int32  `json:"scale"`
			Modes      []struct {
				Width   int32    `json:"width"`
				Refresh int32    `json:"refresh"`
				Flags   []string `json:"flags"`
			} `json:"modes"`
		} `json:"outputs"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Positive(t, doc.GenerationTimestamp)
	require.Len(t, doc.Globals, 3)
	assert.Equal(t, "wl_compositor", doc.Globals[0].Interface)
	assert.Equal(t, uint32(6), doc.Globals[0].Version)

	require.Len(t, doc.Seats, 1)
	assert.Equal(t, "seat0", doc.Seats[0].SeatName)
	assert.Equal(t, []string{"pointer", "keyboard"}, doc.Seats[0].Capabilities)
	require.NotNil(t, doc.Seats[0].RepeatRate)
	assert.Equal(t, int32(40), *doc.Seats[0].RepeatRate)

	require.Len(t, doc.Outputs, 1)
	assert.Equal(t, "DP-1", doc.Outputs[0].OutputName)
	require.Len(t, doc.Outputs[0].Modes, 2)
	// JSON keeps the raw milli-hertz value the compositor reported.
	assert.Equal(t, int32(60000), doc.Outputs[0].Modes[0].Refresh)
	assert.Equal(t, []string{"current"}, doc.Outputs[0].Modes[0].Flags)
}

func TestJSONSimpleHasOnlyGlobals(t *testing.T) {
	out := renderString(t, sampleReport(), Options{JSON: true, Full: false})

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "globals")
	assert.Contains(t, doc, "generationTimestamp")
	assert.NotContains(t, doc, "seats")
	assert.NotContains(t, doc, "outputs")
}

func TestJSONNeverSerializesNumericName(t *testing.T) {
	out := renderString(t, sampleReport(), Options{JSON: true, Full: true})
	assert.NotContains(t, out, `"name"`,
		"registry names are discovery artifacts and stay out of JSON")
}

func TestJSONAbsentRepeatInfoIsNull(t *testing.T) {
	report := discover.Report{
		Entries: []discover.Entry{{
			Global: discover.GlobalInfo{Name: 2, Interface: "wl_seat", Version: 9},
			Seat:   &discover.SeatInfo{Name: 2, SeatName: "seat0", Capabilities: []string{}},
		}},
	}
	out := renderString(t, report, Options{JSON: true, Full: true})

	var doc struct {
		Seats []map[string]json.RawMessage `json:"seats"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Seats, 1)
	assert.Equal(t, "null", string(doc.Seats[0]["keyboardRepeatRate"]))
	assert.Equal(t, "null", string(doc.Seats[0]["keyboardRepeatDelay"]))
	assert.Equal(t, "[]", string(doc.Seats[0]["capabilities"]))
}

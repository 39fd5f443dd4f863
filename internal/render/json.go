package render

import (
	"encoding/json"
	"io"
	"time"

	"github.com/bnema/wayinfo/internal/discover"
)

// globalSummary is the JSON shape of one global: the numeric registry name
// is an artifact of discovery order and never serialized.
type globalSummary struct {
	Interface string `json:"interface"`
	Version   uint32 `json:"version"`
}

type document struct {
	GenerationTimestamp int64           `json:"generationTimestamp"`
	Globals             []globalSummary `json:"globals"`
}

type fullDocument struct {
	GenerationTimestamp int64                  `json:"generationTimestamp"`
	Globals             []globalSummary        `json:"globals"`
	Seats               []*discover.SeatInfo   `json:"seats"`
	Outputs             []*discover.OutputInfo `json:"outputs"`
}

func renderJSON(w io.Writer, report discover.Report, full bool) error {
	timestamp := time.Now().UnixMilli()

	globals := make([]globalSummary, 0, len(report.Entries))
	for _, entry := range report.Entries {
		globals = append(globals, globalSummary{
			Interface: entry.Global.Interface,
			Version:   entry.Global.Version,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if !full {
		return enc.Encode(document{
			GenerationTimestamp: timestamp,
			Globals:             globals,
		})
	}

	seats := make([]*discover.SeatInfo, 0)
	outputs := make([]*discover.OutputInfo, 0)
	for _, entry := range report.Entries {
		if entry.Seat != nil {
			seats = append(seats, entry.Seat)
		}
		if entry.Output != nil {
			outputs = append(outputs, entry.Output)
		}
	}

	return enc.Encode(fullDocument{
		GenerationTimestamp: timestamp,
		Globals:             globals,
		Seats:               seats,
		Outputs:             outputs,
	})
}

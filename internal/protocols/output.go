package protocols

import (
	"strconv"

	"github.com/bnema/wlturbo/wl"
)

// wl_output mode flag bitmask
const (
	ModeCurrent   uint32 = 1 << 0
	ModePreferred uint32 = 1 << 1
)

// Subpixel is the wl_output subpixel orientation enum
type Subpixel int32

const (
	SubpixelUnknown Subpixel = iota
	SubpixelNone
	SubpixelHorizontalRGB
	SubpixelHorizontalBGR
	SubpixelVerticalRGB
	SubpixelVerticalBGR
)

func (s Subpixel) String() string {
	switch s {
	case SubpixelNone:
		return "none"
	case SubpixelHorizontalRGB:
		return "horizontal_rgb"
	case SubpixelHorizontalBGR:
		return "horizontal_bgr"
	case SubpixelVerticalRGB:
		return "vertical_rgb"
	case SubpixelVerticalBGR:
		return "vertical_bgr"
	}
	return "unknown"
}

// Transform is the wl_output transform enum
type Transform int32

const (
	TransformNormal     Transform = 0
	Transform90         Transform = 1
	Transform180        Transform = 2
	Transform270        Transform = 3
	TransformFlipped    Transform = 4
	TransformFlipped90  Transform = 5
	TransformFlipped180 Transform = 6
	TransformFlipped270 Transform = 7
)

func (t Transform) String() string {
	switch t {
	case Transform90, Transform180, Transform270:
		return strconv.Itoa(int(t) * 90)
	case TransformFlipped:
		return "flipped"
	case TransformFlipped90:
		return "flipped-90"
	case TransformFlipped180:
		return "flipped-180"
	case TransformFlipped270:
		return "flipped-270"
	}
	return "normal"
}

// Geometry carries the fields of one wl_output geometry event.
type Geometry struct {
	X              int32
	Y              int32
	PhysicalWidth  int32
	PhysicalHeight int32
	Subpixel       Subpixel
	Make           string
	Model          string
	Transform      Transform
}

// Output represents a wl_output global
type Output struct {
	wl.BaseProxy
	geometryHandler    func(Geometry)
	modeHandler        func(flags uint32, width, height, refresh int32)
	doneHandler        func()
	scaleHandler       func(int32)
	nameHandler        func(string)
	descriptionHandler func(string)
}

// NewOutput creates a new output proxy
func NewOutput(ctx *wl.Context) *Output {
	output := &Output{}
	output.SetContext(ctx)
	return output
}

// SetGeometryHandler sets the handler for geometry events
func (o *Output) SetGeometryHandler(handler func(Geometry)) {
	o.geometryHandler = handler
}

// SetModeHandler sets the handler for mode events. A compositor may report
// several modes per output, one event each.
func (o *Output) SetModeHandler(handler func(flags uint32, width, height, refresh int32)) {
	o.modeHandler = handler
}

// SetDoneHandler sets the handler for done events (since version 2)
func (o *Output) SetDoneHandler(handler func()) {
	o.doneHandler = handler
}

// SetScaleHandler sets the handler for scale events (since version 2)
func (o *Output) SetScaleHandler(handler func(int32)) {
	o.scaleHandler = handler
}

// SetNameHandler sets the handler for name events (since version 4)
func (o *Output) SetNameHandler(handler func(string)) {
	o.nameHandler = handler
}

// SetDescriptionHandler sets the handler for description events
// (since version 4)
func (o *Output) SetDescriptionHandler(handler func(string)) {
	o.descriptionHandler = handler
}

// Destroy destroys the output proxy
func (o *Output) Destroy() error {
	o.Context().Unregister(o)
	return nil
}

// Dispatch handles incoming events
func (o *Output) Dispatch(event *wl.Event) {
	switch event.Opcode {
	case 0: // geometry
		if o.geometryHandler != nil {
			geometry := Geometry{
				X:              event.Int32(),
				Y:              event.Int32(),
				PhysicalWidth:  event.Int32(),
				PhysicalHeight: event.Int32(),
				Subpixel:       Subpixel(event.Int32()),
				Make:           event.String(),
				Model:          event.String(),
				Transform:      Transform(event.Int32()),
			}
			o.geometryHandler(geometry)
		}
	case 1: // mode
		if o.modeHandler != nil {
			flags := event.Uint32()
			width := event.Int32()
			height := event.Int32()
			refresh := event.Int32()
			o.modeHandler(flags, width, height, refresh)
		}
	case 2: // done
		if o.doneHandler != nil {
			o.doneHandler()
		}
	case 3: // scale
		if o.scaleHandler != nil {
			factor := event.Int32()
			o.scaleHandler(factor)
		}
	case 4: // name
		if o.nameHandler != nil {
			name := event.String()
			o.nameHandler(name)
		}
	case 5: // description
		if o.descriptionHandler != nil {
			description := event.String()
			o.descriptionHandler(description)
		}
	}
}

package protocols

import (
	"github.com/bnema/wlturbo/wl"
)

// Keyboard represents a wl_keyboard sub-object. wayinfo only cares about
// repeat_info; key, keymap and focus events are ignored.
type Keyboard struct {
	wl.BaseProxy
	repeatInfoHandler func(rate, delay int32)
}

// NewKeyboard creates a new keyboard proxy
func NewKeyboard(ctx *wl.Context) *Keyboard {
	keyboard := &Keyboard{}
	keyboard.SetContext(ctx)
	return keyboard
}

// SetRepeatInfoHandler sets the handler for repeat_info events
// (since version 4)
func (k *Keyboard) SetRepeatInfoHandler(handler func(rate, delay int32)) {
	k.repeatInfoHandler = handler
}

// Destroy destroys the keyboard proxy
func (k *Keyboard) Destroy() error {
	k.Context().Unregister(k)
	return nil
}

// Dispatch handles incoming events
func (k *Keyboard) Dispatch(event *wl.Event) {
	switch event.Opcode {
	case 5: // repeat_info
		if k.repeatInfoHandler != nil {
			rate := event.Int32()
			delay := event.Int32()
			k.repeatInfoHandler(rate, delay)
		}
	}
}

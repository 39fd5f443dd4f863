// Package wlclient owns the connection to the compositor and the
// synchronous event rounds that drive discovery.
package wlclient

import (
	"errors"
	"fmt"
	"os"

	"github.com/bnema/wayinfo/internal/logger"
	"github.com/bnema/wlturbo/wl"
)

// Error taxonomy. Connection and dispatch failures are fatal: a one-shot
// diagnostic run is never retried.
var (
	// ErrNoCompositor means the display socket is absent or refused.
	ErrNoCompositor = errors.New("no wayland compositor found")
	// ErrDispatch is a transport-level failure mid-roundtrip.
	ErrDispatch = errors.New("wayland dispatch failed")
	// ErrUnsupportedVersion flags a non-conformant version advertisement.
	ErrUnsupportedVersion = errors.New("unsupported interface version")
)

const defaultDisplay = "wayland-0"

// DisplayName resolves the target display socket name from the environment,
// falling back to wayland-0 as every Wayland client does.
func DisplayName() string {
	if name := os.Getenv("WAYLAND_DISPLAY"); name != "" {
		return name
	}
	return defaultDisplay
}

// Session is one connection to the compositor for one discovery round.
type Session struct {
	display  *wl.Display
	registry *wl.Registry
}

// Connect opens the connection named by WAYLAND_DISPLAY.
func Connect() (*Session, error) {
	if os.Getenv("WAYLAND_DISPLAY") == "" {
		logger.Warnf("WAYLAND_DISPLAY is not set, trying %q", defaultDisplay)
	}

	display, err := wl.Connect(DisplayName())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCompositor, err)
	}

	return &Session{
		display:  display,
		registry: display.Registry(),
	}, nil
}

// Registry returns the wl_registry for this connection.
func (s *Session) Registry() *wl.Registry {
	return s.registry
}

// Context returns the connection context new proxies are registered with.
func (s *Session) Context() *wl.Context {
	return s.display.Context()
}

// Bind binds a global to the given proxy at the requested version.
func (s *Session) Bind(name uint32, iface string, version uint32, proxy wl.Proxy) error {
	if err := s.registry.Bind(name, iface, version, proxy); err != nil {
		return fmt.Errorf("%w: bind %s: %v", ErrDispatch, iface, err)
	}
	return nil
}

// Roundtrip blocks until the compositor has processed everything sent so
// far and all resulting events have been dispatched.
func (s *Session) Roundtrip() error {
	if err := s.display.Roundtrip(); err != nil {
		return fmt.Errorf("%w: %v", ErrDispatch, err)
	}
	return nil
}

// Settle runs extra roundtrips to drain late events for bound objects.
// The queue is quiescent once these return without new work.
func (s *Session) Settle(rounds int) error {
	for i := 0; i < rounds; i++ {
		if err := s.Roundtrip(); err != nil {
			return err
		}
	}
	return nil
}

// Close tears down the connection.
func (s *Session) Close() error {
	return s.display.Close()
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bnema/wayinfo/cmd"
	"github.com/bnema/wayinfo/internal/wlclient"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error taxonomy to distinct exit codes so scripts can
// tell "no compositor" apart from a mid-dispatch failure.
func exitCode(err error) int {
	switch {
	case errors.Is(err, wlclient.ErrNoCompositor):
		return 2
	case errors.Is(err, wlclient.ErrDispatch),
		errors.Is(err, wlclient.ErrUnsupportedVersion):
		return 3
	}
	return 1
}

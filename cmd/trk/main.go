// Package main is the entry point for the trk CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/trkcli/trk/cmd/trk/commands"
	trkerrors "github.com/trkcli/trk/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	code := trkerrors.ExitUser
	var exitErr *trkerrors.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
	}
	os.Exit(code)
}

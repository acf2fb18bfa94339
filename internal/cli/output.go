package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// printJSON writes v as indented JSON to the command output.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal JSON: %w", err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// printUser writes one user in human or JSON form.
func printUser(cmd *cobra.Command, jsonMode bool, verb string, u types.User) error {
	if jsonMode {
		return printJSON(cmd, u)
	}
	if verb != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s user %d\n", verb, u.ID)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", u.ID, u.Name, u.Email)
	return nil
}

// parseID parses a user ID argument.
func parseID(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: %w", s, types.ErrInvalidInput)
	}
	return uint32(n), nil
}

// parseFloat parses a numeric argument.
func parseFloat(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, types.ErrInvalidInput)
	}
	return f, nil
}

// parseInt parses an integer argument.
func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, types.ErrInvalidInput)
	}
	return n, nil
}

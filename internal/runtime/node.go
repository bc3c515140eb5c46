package runtime

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNodeNotFound is returned by the version probe when node is not on PATH.
var ErrNodeNotFound = errors.New("node not found on PATH")

// NodeCheck is the outcome of comparing the local Node.js with a required range.
type NodeCheck struct {
	Required  string // engines.node range from package.json
	Installed string // `node --version` output; empty when node is missing
	Satisfied bool
}

// Message returns a one-line hint for an unsatisfied check, or "".
func (c *NodeCheck) Message() string {
	switch {
	case c == nil || c.Satisfied:
		return ""
	case c.Installed == "":
		return fmt.Sprintf("Node.js not found; this project requires node %s", c.Required)
	default:
		return fmt.Sprintf("Node.js %s does not satisfy the required range %s", c.Installed, c.Required)
	}
}

// nodeVersion runs `node --version`. Swapped in tests.
var nodeVersion = func(ctx context.Context) (string, error) {
	nodeBin, err := exec.LookPath("node")
	if err != nil {
		return "", ErrNodeNotFound
	}

	out, err := exec.CommandContext(ctx, nodeBin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running node --version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// CheckNode compares the installed Node.js against required. It returns nil
// when required is empty. A missing node binary is reported through the
// returned NodeCheck, not as an error.
func CheckNode(ctx context.Context, required string) (*NodeCheck, error) {
	if required == "" {
		return nil, nil
	}

	check := &NodeCheck{Required: required}

	installed, err := nodeVersion(ctx)
	if errors.Is(err, ErrNodeNotFound) {
		return check, nil
	}
	if err != nil {
		return nil, err
	}
	check.Installed = installed

	ok, err := Satisfies(installed, required)
	if err != nil {
		return nil, err
	}
	check.Satisfied = ok
	return check, nil
}

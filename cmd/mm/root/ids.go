package root

import (
	"context"
	"fmt"
	"strings"

	"momentum/internal/engine"
)

// shortID renders the first 8 chars of a uuid for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveGoalID accepts a full goal id or a unique prefix.
func resolveGoalID(ctx context.Context, svc *engine.Service, input string) (string, error) {
	goals, err := svc.GoalRepo().List(ctx)
	if err != nil {
		return "", err
	}
	var match string
	for _, g := range goals {
		if g.ID == input {
			return g.ID, nil
		}
		if strings.HasPrefix(g.ID, input) {
			if match != "" {
				return "", fmt.Errorf("goal id %q is ambiguous", input)
			}
			match = g.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("goal %q not found", input)
	}
	return match, nil
}

// resolveHabitID accepts a full habit id or a unique prefix.
func resolveHabitID(ctx context.Context, svc *engine.Service, input string) (string, error) {
	habits, err := svc.HabitRepo().List(ctx)
	if err != nil {
		return "", err
	}
	var match string
	for _, h := range habits {
		if h.ID == input {
			return h.ID, nil
		}
		if strings.HasPrefix(h.ID, input) {
			if match != "" {
				return "", fmt.Errorf("habit id %q is ambiguous", input)
			}
			match = h.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("habit %q not found", input)
	}
	return match, nil
}

package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/driftsync/driftsync/internal/models"
	"github.com/driftsync/driftsync/internal/resolver"
)

// runMerge выполняет трехстороннее слияние двух разошедшихся состояний
func (c *Cli) runMerge(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	baseJSON := fs.String("base", "", "Common ancestor as JSON object")
	localJSON := fs.String("local", "", "Local state as JSON object")
	remoteJSON := fs.String("remote", "", "Remote state as JSON object")
	strategy := fs.String("strategy", "merge", "Conflict strategy: local, remote, manual or merge")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if !models.Strategy(*strategy).Valid() {
		return fmt.Errorf("invalid strategy: %s", *strategy)
	}

	base, err := parseJSONObject(*baseJSON)
	if err != nil {
		return fmt.Errorf("invalid -base: %w", err)
	}
	local, err := parseJSONObject(*localJSON)
	if err != nil {
		return fmt.Errorf("invalid -local: %w", err)
	}
	remote, err := parseJSONObject(*remoteJSON)
	if err != nil {
		return fmt.Errorf("invalid -remote: %w", err)
	}

	result := resolver.Merge(resolver.Context{
		Base:     base,
		Local:    local,
		Remote:   remote,
		Strategy: models.Strategy(*strategy),
	})

	merged, err := json.MarshalIndent(result.Merged, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode merged value: %w", err)
	}
	fmt.Println(string(merged))

	if len(result.Conflicts) == 0 {
		return nil
	}

	fmt.Printf("\n%d field(s) conflicted:\n", len(result.Conflicts))
	for _, marker := range result.Conflicts {
		fmt.Printf("  %s: local=%v remote=%v base=%v (resolved: %s)\n",
			marker.Field, marker.Local, marker.Remote, marker.Base, marker.Resolution)
	}

	return nil
}

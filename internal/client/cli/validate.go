package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/driftsync/driftsync/internal/models"
	"github.com/driftsync/driftsync/internal/validator"
)

// runValidate сверяет снимок ресурса с его историей изменений
func (c *Cli) runValidate(ctx context.Context, args []string) error {
	data, err := c.loadSnapshot(ctx, args, "validate")
	if err != nil {
		return err
	}

	result := validator.Validate(data)
	if result.IsValid {
		fmt.Printf("%s is consistent (version %d, %d change(s))\n",
			data.ID, data.Version, len(data.Changes))
		return nil
	}

	fmt.Printf("=== Validation Errors (%d) ===\n", len(result.Errors))
	for _, verr := range result.Errors {
		fmt.Printf("  %-12s %s\n", verr.Field+":", verr.Message)
	}

	return fmt.Errorf("validation failed")
}

// runRepair восстанавливает состояние ресурса воспроизведением истории
func (c *Cli) runRepair(ctx context.Context, args []string) error {
	data, err := c.loadSnapshot(ctx, args, "repair")
	if err != nil {
		return err
	}

	repaired := validator.Repair(data)

	encoded, err := json.MarshalIndent(repaired.Data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode repaired data: %w", err)
	}

	fmt.Printf("Repaired %s to version %d\n", repaired.ID, repaired.Version)
	if repaired.Deleted {
		fmt.Println("Resource is deleted")
		return nil
	}

	fmt.Println(string(encoded))

	return nil
}

// loadSnapshot строит VersionedData ресурса из локальной истории
func (c *Cli) loadSnapshot(ctx context.Context, args []string, name string) (*models.VersionedData, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	resourceID := fs.String("resource", "", "Resource identifier")
	resourceType := fs.String("type", "note", "Resource type")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *resourceID == "" {
		return nil, fmt.Errorf("missing -resource flag")
	}

	history, err := c.tracker.ChangeHistory(ctx, *resourceID, *resourceType)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("no changes for %s/%s", *resourceType, *resourceID)
	}

	data, err := c.tracker.Snapshot(ctx, *resourceID, models.Replay(history), *resourceType)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot: %w", err)
	}

	return data, nil
}

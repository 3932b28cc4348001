package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/driftsync/driftsync/internal/models"
	"github.com/driftsync/driftsync/internal/tracker"
)

// runRecord фиксирует локальное изменение ресурса
func (c *Cli) runRecord(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("record", flag.ContinueOnError)
	op := fs.String("op", "update", "Operation: create, update or delete")
	resourceID := fs.String("resource", "", "Resource identifier")
	resourceType := fs.String("type", "note", "Resource type")
	valueJSON := fs.String("value", "", "New value as JSON object")
	prevJSON := fs.String("prev", "", "Previous value as JSON object")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *resourceID == "" {
		return fmt.Errorf("missing -resource flag")
	}

	operation := models.Operation(*op)
	if !operation.Valid() {
		return fmt.Errorf("invalid operation: %s", *op)
	}

	newValue, err := parseJSONObject(*valueJSON)
	if err != nil {
		return fmt.Errorf("invalid -value: %w", err)
	}
	prevValue, err := parseJSONObject(*prevJSON)
	if err != nil {
		return fmt.Errorf("invalid -prev: %w", err)
	}

	if operation != models.OpDelete && newValue == nil {
		return fmt.Errorf("missing -value flag for %s", operation)
	}

	change, err := c.tracker.RecordChange(ctx, tracker.RecordParams{
		Operation:     operation,
		ResourceID:    *resourceID,
		ResourceType:  *resourceType,
		NewValue:      newValue,
		PreviousValue: prevValue,
	})
	if err != nil {
		return fmt.Errorf("failed to record change: %w", err)
	}

	fmt.Printf("Recorded %s for %s/%s\n", change.Operation, change.ResourceType, change.ResourceID)
	fmt.Printf("  change_id: %s\n", change.ID)
	fmt.Printf("  version:   %d\n", change.Version)
	fmt.Printf("  hash:      %s\n", change.Hash)

	return nil
}

// parseJSONObject разбирает JSON объект из строки, пустая строка дает nil
func parseJSONObject(raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}

	var value map[string]any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, err
	}

	return value, nil
}

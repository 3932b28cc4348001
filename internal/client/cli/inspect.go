package cli

import (
	"context"
	"flag"
	"fmt"
	"time"
)

// runHistory выводит историю изменений ресурса в порядке записи
func (c *Cli) runHistory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	resourceID := fs.String("resource", "", "Resource identifier")
	resourceType := fs.String("type", "note", "Resource type")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *resourceID == "" {
		return fmt.Errorf("missing -resource flag")
	}

	changes, err := c.tracker.ChangeHistory(ctx, *resourceID, *resourceType)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}

	if len(changes) == 0 {
		fmt.Printf("No changes for %s/%s\n", *resourceType, *resourceID)
		return nil
	}

	fmt.Printf("=== History: %s/%s ===\n", *resourceType, *resourceID)
	for _, change := range changes {
		applied := "pending"
		if change.IsApplied() {
			applied = "applied"
		}
		fmt.Printf("%s  v%-3d %-7s %-8s %s\n",
			change.Timestamp.Format(time.RFC3339),
			change.Version,
			change.Operation,
			applied,
			change.ID)
	}

	return nil
}

// runPending выводит изменения, ожидающие отправки на сервер
func (c *Cli) runPending(ctx context.Context) error {
	changes, err := c.tracker.PendingChanges(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending changes: %w", err)
	}

	if len(changes) == 0 {
		fmt.Println("Nothing to sync")
		return nil
	}

	fmt.Printf("=== Pending Changes (%d) ===\n", len(changes))
	for _, change := range changes {
		fmt.Printf("%s  %-7s %s/%s  %s\n",
			change.Timestamp.Format(time.RFC3339),
			change.Operation,
			change.ResourceType,
			change.ResourceID,
			change.ID)
	}

	return nil
}

// runStatus выводит состояние движка синхронизации и векторные часы
func (c *Cli) runStatus(ctx context.Context) error {
	state := c.engine.State()

	fmt.Println("=== Sync Status ===")
	fmt.Printf("Status:   %s\n", state.Status)
	fmt.Printf("Online:   %t\n", state.IsOnline)
	fmt.Printf("Pending:  %d\n", state.PendingChanges)
	fmt.Printf("Synced:   %d cycles\n", state.SyncCount)

	if state.LastSync != nil {
		fmt.Printf("Last sync: %s\n", state.LastSync.Format(time.RFC3339))
	} else {
		fmt.Println("Last sync: never")
	}
	if state.SyncError != "" {
		fmt.Printf("Last error: %s\n", state.SyncError)
	}
	if state.ConflictCount > 0 {
		fmt.Printf("Conflicts: %d\n", state.ConflictCount)
	}

	fmt.Printf("Device:   %s\n", c.tracker.DeviceID())
	fmt.Println("Vector clock:")
	for deviceID, counter := range c.tracker.VectorClock() {
		fmt.Printf("  %s: %d\n", deviceID, counter)
	}

	return nil
}

package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/driftsync/driftsync/internal/engine"
	"github.com/driftsync/driftsync/internal/models"
)

// runSync выполняет один цикл синхронизации
func (c *Cli) runSync(ctx context.Context) error {
	fmt.Println("Syncing...")

	if err := c.engine.Sync(ctx); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	state := c.engine.State()
	switch state.Status {
	case engine.StatusConflict:
		fmt.Printf("Sync finished with %d conflict(s), run 'driftsync resolve' to pick a strategy\n",
			state.ConflictCount)
	default:
		fmt.Printf("Sync complete, %d change(s) pending\n", state.PendingChanges)
	}

	return nil
}

// runWatch запускает периодическую синхронизацию до прерывания
func (c *Cli) runWatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	interval := fs.Duration("interval", 30*time.Second, "Sync interval")

	if err := fs.Parse(args); err != nil {
		return err
	}

	unsubscribe := c.engine.Subscribe(func(state engine.State) {
		fmt.Printf("[%s] status=%s pending=%d conflicts=%d\n",
			time.Now().Format(time.TimeOnly),
			state.Status,
			state.PendingChanges,
			state.ConflictCount)
	})
	defer unsubscribe()

	c.engine.Start(ctx, *interval)
	defer c.engine.Stop()

	fmt.Printf("Watching, syncing every %s (Ctrl+C to stop)\n", *interval)
	<-ctx.Done()
	fmt.Println("Stopped")

	return nil
}

// runResolve разрешает конфликт выбранной стратегией
func (c *Cli) runResolve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	changeID := fs.String("change", "", "Conflicted change identifier")
	strategy := fs.String("strategy", "", "Resolution strategy: local or remote")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *changeID == "" {
		return fmt.Errorf("missing -change flag")
	}

	if err := c.engine.ResolveConflict(ctx, *changeID, models.Strategy(*strategy)); err != nil {
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}

	fmt.Printf("Conflict %s resolved with strategy %s\n", *changeID, *strategy)

	return nil
}

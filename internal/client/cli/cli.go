// Package cli реализует команды консольного клиента синхронизации.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/driftsync/driftsync/internal/engine"
	"github.com/driftsync/driftsync/internal/tracker"
)

// Cli объединяет сервисы клиента для выполнения команд
type Cli struct {
	tracker *tracker.Tracker
	engine  *engine.Engine
}

// New создает CLI поверх трекера изменений и движка синхронизации
func New(tr *tracker.Tracker, eng *engine.Engine) *Cli {
	return &Cli{
		tracker: tr,
		engine:  eng,
	}
}

// Run выполняет команду с аргументами
func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "record":
		err = c.runRecord(ctx, args)
	case "history":
		err = c.runHistory(ctx, args)
	case "pending":
		err = c.runPending(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "sync":
		err = c.runSync(ctx)
	case "watch":
		err = c.runWatch(ctx, args)
	case "resolve":
		err = c.runResolve(ctx, args)
	case "merge":
		err = c.runMerge(ctx, args)
	case "validate":
		err = c.runValidate(ctx, args)
	case "repair":
		err = c.runRepair(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// PrintUsage выводит список доступных команд
func PrintUsage() {
	fmt.Println("Usage: driftsync [flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  record    Record a local change (create, update or delete)")
	fmt.Println("  history   Show change history for a resource")
	fmt.Println("  pending   List changes waiting to be synced")
	fmt.Println("  status    Show sync status and vector clock")
	fmt.Println("  sync      Run a single sync cycle")
	fmt.Println("  watch     Sync periodically until interrupted")
	fmt.Println("  resolve   Resolve a pending conflict")
	fmt.Println("  merge     Three-way merge two divergent states")
	fmt.Println("  validate  Check resource state against its history")
	fmt.Println("  repair    Rebuild resource state from its history")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -server   Server URL")
	fmt.Println("  -db       Path to local database")
	fmt.Println("  -config   Path to YAML config file")
	fmt.Println("  -device   Device identifier")
	fmt.Println("  -user     User identifier")
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Import every report dropped into a directory",
	Long: `Import the PDF and text reports already in dir, then keep watching it and
import each new or rewritten file. Imports are throttled by the
watch.per_minute setting. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if newInbox == nil {
		return errors.New("inbox not configured")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", dir)

	var imported, failed int
	err = newInbox(dir).Run(ctx, func(ev driving.ImportEvent) {
		if ev.Err != nil {
			failed++
			cmd.Printf("  failed   %s: %v\n", ev.Path, ev.Err)
			return
		}
		imported++
		line := fmt.Sprintf("  imported %s -> report %s", ev.Path, ev.Result.ReportID)
		if ev.Result.FieldID == "" {
			line += " (no field)"
		}
		cmd.Println(line)
		for _, w := range ev.Warnings {
			cmd.Printf("           warning: %s\n", w)
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch failed: %w", err)
	}

	cmd.Printf("Stopped: %d imported, %d failed\n", imported, failed)
	return nil
}

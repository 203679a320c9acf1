package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demonstration data",
	Long:  `Create the demo field "Barlage 4" with two sample reports.`,
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if seedService == nil {
		return errors.New("seed service not configured")
	}

	result, err := seedService.Seed(context.Background())
	if errors.Is(err, domain.ErrAlreadyExists) {
		cmd.Println("Demo data already present")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}

	cmd.Printf("Created demo field: %s\n", result.FieldID)
	for _, id := range result.ReportIDs {
		cmd.Printf("  Report: %s\n", id)
	}
	return nil
}

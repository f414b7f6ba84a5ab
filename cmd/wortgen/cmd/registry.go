package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wortschatz-backend/internal/app"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect or reset generation counters",
}

var registryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show generation counters",
	Args:  cobra.NoArgs,
	RunE:  runRegistryShow,
}

var registryResetCmd = &cobra.Command{
	Use:       "reset <main|test>",
	Short:     "Reset a generation counter",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.CounterMain), string(domain.CounterTest)},
	RunE:      runRegistryReset,
}

func init() {
	rootCmd.AddCommand(registryCmd)
	registryCmd.AddCommand(registryShowCmd)
	registryCmd.AddCommand(registryResetCmd)
}

func runRegistryShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rdb, err := app.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	reg, err := app.NewRegistry(cfg, rdb).Get(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, t := range []domain.CounterType{domain.CounterMain, domain.CounterTest} {
		last := "never"
		if ts := reg.LastGenerated[t]; ts != nil {
			last = ts.Local().Format(time.DateTime)
		}
		fmt.Fprintf(out, "%-5s counter: %d, last generated: %s\n", t, reg.Counter[t], last)
	}
	return nil
}

func runRegistryReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	t := domain.CounterType(args[0])
	if !t.IsValid() {
		return fmt.Errorf("unknown counter type %q (want main or test)", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rdb, err := app.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	if err := app.NewRegistry(cfg, rdb).Reset(ctx, t); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s counter reset\n", t)
	return nil
}

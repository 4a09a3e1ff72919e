package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/detox-cli/internal/adapters/file"
	"github.com/aretw0/detox-cli/internal/adapters/redis"
	"github.com/aretw0/detox-cli/internal/environment"
	"github.com/aretw0/detox-cli/pkg/domain"
	"github.com/aretw0/detox-cli/pkg/ports"
	"github.com/spf13/cobra"
)

var failedSpecsCmd = &cobra.Command{
	Use:   "failed-specs",
	Short: "Share the last failed specs record through Redis",
	Long: `Copies the local last-failed record to Redis so that a later
"detox test --failed-specs-redis" run, possibly on another machine, retries the same specs.`,
}

var publishFailedSpecsCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the local failed specs record (clears the key when there is none)",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := environment.Default()
		if err != nil {
			return err
		}
		store, err := redisStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		return publishFailedSpecs(cmd.Context(), cmd.OutOrStdout(), file.NewFailedSpecs(paths.LastFailedTests()), store)
	},
}

var clearFailedSpecsCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the failed specs record from Redis",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := redisStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		return store.Clear(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(failedSpecsCmd)
	failedSpecsCmd.AddCommand(publishFailedSpecsCmd, clearFailedSpecsCmd)

	f := failedSpecsCmd.PersistentFlags()
	f.String("redis", "", "Redis address")
	f.String("key", redis.DefaultKey, "Redis key holding the failed specs record")
	publishFailedSpecsCmd.Flags().Duration("ttl", 0, "Expire the published record after this long (0 keeps it)")
}

func redisStore(cmd *cobra.Command) (*redis.Store, error) {
	addr, _ := cmd.Flags().GetString("redis")
	if addr == "" {
		return nil, fmt.Errorf("--redis is required")
	}
	key, _ := cmd.Flags().GetString("key")
	opts := []redis.Option{redis.WithKey(key)}
	if cmd.Flags().Lookup("ttl") != nil {
		ttl, _ := cmd.Flags().GetDuration("ttl")
		opts = append(opts, redis.WithTTL(ttl))
	}
	return redis.New(addr, "", 0, opts...), nil
}

// publishFailedSpecs copies the record from source to store. A missing or empty record
// clears the key so that no stale list is retried.
func publishFailedSpecs(ctx context.Context, out io.Writer, source ports.FailedSpecsSource, store *redis.Store) error {
	specs, err := source.ReadFailedSpecs(ctx)
	if err != nil && !errors.Is(err, domain.ErrNoFailedSpecs) {
		return err
	}
	if len(specs) == 0 {
		fmt.Fprintln(out, "No failed specs, cleared the record")
		return store.Clear(ctx)
	}

	if err := store.PublishFailedSpecs(ctx, specs); err != nil {
		return err
	}
	fmt.Fprintf(out, "Published %d failed specs\n", len(specs))
	return nil
}

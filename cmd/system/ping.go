package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/the11eximoverseas/exim_backend/config"
	"github.com/the11eximoverseas/exim_backend/pkg/database"
	redispkg "github.com/the11eximoverseas/exim_backend/pkg/redis"
)

func NewPingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check MongoDB and Redis connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			client, err := database.NewClientFromCentral(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("mongodb: %w", err)
			}
			defer client.Disconnect(context.Background())
			fmt.Println("MongoDB: ok")

			rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
			if err != nil {
				return fmt.Errorf("redis: %w", err)
			}
			defer rdb.Close()
			fmt.Println("Redis: ok")

			return nil
		},
	}

	return cmd
}

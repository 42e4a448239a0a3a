package health

import (
	"context"
	"fmt"
	"time"

	"github.com/shelfpilot/shelfpilot/internal/config"
	"github.com/shelfpilot/shelfpilot/pkg/gemini"
	"github.com/hellofresh/health-go/v5"
	healthPg "github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

func NewHealthHandler(cfg *config.Config, geminiClient gemini.Client) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "shelfpilot",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: healthPg.New(healthPg.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: true,
				Check: healthRedis.New(healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				}),
			},
			health.Config{
				Name:      "gemini",
				Timeout:   5 * time.Second,
				SkipOnErr: true,
				Check: func(ctx context.Context) error {
					if geminiClient == nil {
						return fmt.Errorf("gemini client is not initialized")
					}
					return geminiClient.Ping(ctx)
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to initialize health container: %w", err)
	}

	return h, nil
}

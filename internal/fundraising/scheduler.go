package fundraising

import (
	"context"
	"log"
	"time"

	"go.uber.org/fx"

	"github.com/Shoaib232002/Alumni-Project/internal/config"
)

// CampaignScheduler periodically deactivates campaigns whose end date has
// passed, so expired drives stop accepting donations without waiting for a
// manual toggle.
type CampaignScheduler struct {
	service  *FundraisingService
	interval time.Duration
}

func NewCampaignScheduler(service *FundraisingService, cfg *config.Config) *CampaignScheduler {
	return &CampaignScheduler{
		service:  service,
		interval: time.Duration(cfg.SweepInterval) * time.Minute,
	}
}

// StartScheduler runs the expiry sweep on a background ticker. A zero
// interval disables the sweeper entirely.
func (s *CampaignScheduler) StartScheduler(lc fx.Lifecycle) {
	if s.interval <= 0 {
		log.Println("Campaign expiry sweeper disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	done := make(chan bool)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Printf("Starting campaign expiry sweeper (every %s)...", s.interval)
			go func() {
				sweepCtx := context.Background()
				for {
					select {
					case <-ticker.C:
						count, err := s.service.DeactivateExpired(sweepCtx)
						if err != nil {
							log.Println("Campaign expiry sweep failed:", err)
							continue
						}
						if count > 0 {
							log.Printf("Deactivated %d expired campaign(s)", count)
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping campaign expiry sweeper...")
			ticker.Stop()
			done <- true
			return nil
		},
	})
}

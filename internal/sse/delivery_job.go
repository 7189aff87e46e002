package sse

import (
	"context"
	"fmt"
	"time"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/clock"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/service"
	"go.uber.org/zap"
)

// DeliveryJob drives the scheduler from the wall clock: on a fixed-interval
// tick it promotes every due entry into the inbox and pushes each delivered
// email to connected clients.
type DeliveryJob struct {
	scheduler service.SchedulerService
	manager   *Manager
	clock     clock.Clock
	logger    *zap.Logger
	interval  time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

func NewDeliveryJob(
	scheduler service.SchedulerService,
	manager *Manager,
	clk clock.Clock,
	logger *zap.Logger,
	interval time.Duration,
) *DeliveryJob {
	ctx, cancel := context.WithCancel(context.Background())

	return &DeliveryJob{
		scheduler: scheduler,
		manager:   manager,
		clock:     clk,
		logger:    logger,
		interval:  interval,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start blocks, running the delivery loop until Stop is called. Callers run
// it in a goroutine.
func (j *DeliveryJob) Start() {
	j.logger.Info("starting delivery job", zap.Duration("interval", j.interval))

	ticker := j.clock.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C():
			j.RunTick(now)
		case <-j.ctx.Done():
			j.logger.Info("delivery job stopped")
			return
		}
	}
}

// RunTick executes one delivery pass - exported for testing.
func (j *DeliveryJob) RunTick(now time.Time) {
	delivered, err := j.scheduler.Tick(j.ctx, now)
	if err != nil {
		j.logger.Error("delivery tick failed", zap.Error(err))
		return
	}
	if len(delivered) == 0 {
		return
	}

	for _, email := range delivered {
		j.manager.Broadcast("new_email", email)
	}

	summary := map[string]interface{}{
		"count":   len(delivered),
		"message": fmt.Sprintf("%d scheduled emails delivered", len(delivered)),
	}
	j.manager.Broadcast("delivery_summary", summary)

	j.logger.Info("delivered scheduled emails", zap.Int("count", len(delivered)))
}

// Stop stops the delivery loop.
func (j *DeliveryJob) Stop() {
	j.cancel()
}

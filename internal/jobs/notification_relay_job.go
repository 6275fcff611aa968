package jobs

import (
	"context"

	"travelorders/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var (
	notificationsRelayed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "travelorders_notifications_relayed_total",
		Help: "Number of status change notifications handed to the notifier.",
	})
	notificationRelayFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "travelorders_notification_relay_failures_total",
		Help: "Number of relay runs that failed before completing a batch.",
	})
)

// NotificationRelayJob periodically drains the pending notification rows and
// publishes them through the notifier. Runs every five seconds so a status
// change reaches its recipient shortly after the transaction commits.
type NotificationRelayJob struct {
	handler   commands.RelayNotificationsCommandHandler
	batchSize int
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewNotificationRelayJob creates a new job for relaying pending notifications.
func NewNotificationRelayJob(
	handler commands.RelayNotificationsCommandHandler,
	batchSize int,
	logger *zap.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With(zap.String("component", "notification_relay_job")),
	}
}

// Start begins the notification relay job on a five second interval.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRelayNotificationsCommand(j.batchSize)
		if err != nil {
			j.logger.Error("notification relay job misconfigured", zap.Error(err))
			return
		}

		dispatched, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			notificationRelayFailures.Inc()
			j.logger.Error("notification relay run failed", zap.Error(err))
			return
		}

		if dispatched > 0 {
			notificationsRelayed.Add(float64(dispatched))
			j.logger.Info("relayed notifications", zap.Int("count", dispatched))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("notification relay job started")
	return nil
}

// Stop stops the notification relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.Info("notification relay job stopped")
}

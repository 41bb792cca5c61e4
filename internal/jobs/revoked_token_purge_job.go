package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PurgeRevokedSchedule runs at minute 0 of every hour.
const PurgeRevokedSchedule = "0 * * * *"

const purgeTimeout = time.Minute

// RevokedTokenPurger deletes revocations of expired tokens.
type RevokedTokenPurger interface {
	PurgeRevoked(ctx context.Context) (int64, error)
}

// RevokedTokenPurgeJob keeps the revocation list bounded.
type RevokedTokenPurgeJob struct {
	purger RevokedTokenPurger
	cron   *cron.Cron
	logger logrus.FieldLogger
}

func NewRevokedTokenPurgeJob(purger RevokedTokenPurger, logger logrus.FieldLogger) *RevokedTokenPurgeJob {
	return &RevokedTokenPurgeJob{
		purger: purger,
		cron:   cron.New(),
		logger: logger.WithField("component", "revoked_token_purge_job"),
	}
}

// Start schedules the job hourly.
func (j *RevokedTokenPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(PurgeRevokedSchedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Revoked token purge job started (running every hour)")
	return nil
}

// Run performs one purge.
func (j *RevokedTokenPurgeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	purged, err := j.purger.PurgeRevoked(ctx)
	if err != nil {
		j.logger.WithError(err).Error("Revoked token purge failed")
		return
	}
	if purged > 0 {
		j.logger.WithField("purged", purged).Info("Expired revoked tokens purged")
	}
}

// Stop waits for a running purge to finish.
func (j *RevokedTokenPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Revoked token purge job stopped")
}

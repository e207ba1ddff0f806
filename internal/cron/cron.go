package cron

import (
	"context"
	"sync"
	"time"

	"github.com/foundershield/foundershield/config"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/tracing"
	"github.com/foundershield/foundershield/internal/utils"
	cronv3 "github.com/robfig/cron/v3"
)

// GroupDashboard serializes the dashboard maintenance jobs; both run on the
// same single-writer database.
const GroupDashboard = "dashboard"

// LOCK MANAGEMENT
var jobLocks = struct {
	sync.Mutex
	locks map[string]*sync.Mutex
}{
	locks: map[string]*sync.Mutex{
		GroupDashboard: new(sync.Mutex),
	},
}

type CronManager struct {
	cfg          *config.Config
	log          logger.Logger
	cron         *cronv3.Cron
	stopCh       chan struct{}
	jobIDs       map[string]cronv3.EntryID
	feedback     interfaces.FeedbackService
	vanityAlerts interfaces.VanityAlertRepository
}

func NewCronManager(cfg *config.Config, log logger.Logger, feedback interfaces.FeedbackService, vanityAlerts interfaces.VanityAlertRepository) *CronManager {
	return &CronManager{
		cfg:          cfg,
		log:          log,
		stopCh:       make(chan struct{}),
		jobIDs:       make(map[string]cronv3.EntryID),
		feedback:     feedback,
		vanityAlerts: vanityAlerts,
	}
}

// Start begins the scheduler. The dashboard runs as a single local process,
// so there is no leader election here.
func (cm *CronManager) Start() {
	cm.log.Info("Starting cron manager")
	// Create a new cron with seconds field enabled and panic recovery
	cronOptions := []cronv3.Option{
		cronv3.WithSeconds(),
		cronv3.WithChain(
			cronv3.SkipIfStillRunning(cronv3.DefaultLogger), // Skip if still running
			cronv3.Recover(cronv3.DefaultLogger),            // Default recovery as backup
		),
	}
	c := cronv3.New(cronOptions...)
	cm.registerJobs(c)
	c.Start()
	cm.cron = c
}

// Stop gracefully stops the cron manager
func (cm *CronManager) Stop() {
	if cm.cron != nil {
		cm.log.Info("Stopping cron manager")
		ctx := cm.cron.Stop()
		// Wait for jobs to finish
		<-ctx.Done()
	}
	close(cm.stopCh)
}

// registerJobs adds all cron jobs to the scheduler
func (cm *CronManager) registerJobs(c *cronv3.Cron) {
	cronConfig := cm.cfg.CronConfig

	if cronConfig.CronScheduleFeedbackRollup != "" {
		id, err := c.AddFunc(cronConfig.CronScheduleFeedbackRollup, func() {
			defer tracing.RecoverAndLogToJaeger(cm.log)
			jobLocks.locks[GroupDashboard].Lock()
			defer jobLocks.locks[GroupDashboard].Unlock()
			cm.rollupFeedbackStats()
		})
		if err != nil {
			cm.log.Fatalf("Could not add feedback rollup cron job: %v", err)
		}
		cm.jobIDs["feedback_rollup"] = id
		cm.log.Infof("Registered feedback rollup job with schedule: %s", cronConfig.CronScheduleFeedbackRollup)
	}

	if cronConfig.CronScheduleVanityRetention != "" {
		id, err := c.AddFunc(cronConfig.CronScheduleVanityRetention, func() {
			defer tracing.RecoverAndLogToJaeger(cm.log)
			jobLocks.locks[GroupDashboard].Lock()
			defer jobLocks.locks[GroupDashboard].Unlock()
			cm.pruneVanityAlerts()
		})
		if err != nil {
			cm.log.Fatalf("Could not add vanity retention cron job: %v", err)
		}
		cm.jobIDs["vanity_retention"] = id
		cm.log.Infof("Registered vanity retention job with schedule: %s", cronConfig.CronScheduleVanityRetention)
	}
}

// rollupFeedbackStats logs the running feedback totals so disagreement drift
// shows up in the daily log even when nobody opens the stats endpoint.
func (cm *CronManager) rollupFeedbackStats() {
	ctx := context.Background()

	span, ctx := tracing.StartTracerSpan(ctx, "CronManager.rollupFeedbackStats")
	defer span.Finish()
	tracing.TagComponentCronJob(span)

	stats, err := cm.feedback.GetFeedbackStats(ctx)
	if err != nil {
		tracing.TraceErr(span, err)
		cm.log.Errorf("Failed to roll up feedback stats: %v", err)
		return
	}

	cm.log.Infof("Feedback rollup: %d total, %d safe, %d risky, %d disagreements",
		stats.Total, stats.SafeCount, stats.RiskyCount, stats.Disagreements)
}

func (cm *CronManager) pruneVanityAlerts() {
	ctx := context.Background()

	span, ctx := tracing.StartTracerSpan(ctx, "CronManager.pruneVanityAlerts")
	defer span.Finish()
	tracing.TagComponentCronJob(span)

	retentionDays := cm.cfg.VanityConfig.RetentionDays
	if retentionDays <= 0 {
		return
	}
	cutoff := utils.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleted, err := cm.vanityAlerts.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		tracing.TraceErr(span, err)
		cm.log.Errorf("Failed to prune vanity alerts: %v", err)
		return
	}

	if deleted > 0 {
		cm.log.Infof("Pruned %d vanity alert(s) older than %d days", deleted, retentionDays)
	}
}

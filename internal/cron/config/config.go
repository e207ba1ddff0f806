package cron_config

type Config struct {
	// Feedback stats rollup, daily at midnight
	CronScheduleFeedbackRollup string `env:"CRON_SCHEDULE_FEEDBACK_ROLLUP" envDefault:"0 0 0 * * *"`
	// Vanity alert retention cleanup, daily at 03:00
	CronScheduleVanityRetention string `env:"CRON_SCHEDULE_VANITY_RETENTION" envDefault:"0 0 3 * * *"`
}

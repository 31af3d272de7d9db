package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log       LogConfig       `mapstructure:"log"       validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler" validate:"required"`
	Alerts    AlertConfig     `mapstructure:"alerts"    validate:"required"`
}

// LogConfig contains the logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// SchedulerConfig contains the scheduling settings.
type SchedulerConfig struct {
	// Strategy names the ordering strategy the scheduler starts with.
	Strategy string `mapstructure:"strategy" validate:"required,oneof=arrival priority deadline"`
}

// AlertConfig contains the alerting thresholds.
type AlertConfig struct {
	// LargePaymentThreshold is the payment amount above which an alert
	// is raised.
	LargePaymentThreshold float64 `mapstructure:"large_payment_threshold" validate:"gte=0"`
}

package rota

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/rota/calendar"
	"github.com/arloliu/rota/eligibility"
	"github.com/arloliu/rota/internal/validation"
	"github.com/arloliu/rota/publish"
	"github.com/arloliu/rota/render"
	"github.com/arloliu/rota/types"
)

// PublishConfig configures where schedules are published.
type PublishConfig struct {
	// Bucket is the NATS JetStream KV bucket holding published schedules.
	Bucket string `yaml:"bucket" validate:"notblank"`

	// KeyPrefix prefixes every schedule key ("<prefix>.<YYYY-MM>").
	KeyPrefix string `yaml:"key_prefix" validate:"notblank"`

	// OperationTimeout bounds a single publish call when the caller's
	// context has no deadline.
	OperationTimeout time.Duration `yaml:"operation_timeout" validate:"gt=0"`
}

// Config is the configuration for a Planner.
//
// Durations accept standard Go duration strings like "5s" when loaded from YAML.
type Config struct {
	// Roles is the closed role set in display order.
	// The default builder fills roles in this order for every date.
	Roles []Role `yaml:"roles" validate:"min=1,unique,dive,notblank"`

	// MeetingDays lists the recurring meeting weekdays by name
	// ("thursday", "sábado", "sat", ...).
	MeetingDays []string `yaml:"meeting_days" validate:"min=1,unique,dive,weekday"`

	// Pairing is the minors-pairing rule.
	Pairing eligibility.PairingRule `yaml:"pairing"`

	// Locale selects month naming for rendered tables (e.g. "es_ES", "en").
	Locale string `yaml:"locale" validate:"notblank"`

	// Title is the rendered table title.
	Title string `yaml:"title"`

	// DateHeader labels the date column of rendered tables.
	DateHeader string `yaml:"date_header"`

	// UnassignedLabel is displayed for slots without a resolvable assignee.
	UnassignedLabel string `yaml:"unassigned_label" validate:"notblank"`

	// Seed makes default schedules reproducible. Each month derives its own
	// seed from it. Zero means a fresh random seed per build.
	Seed uint64 `yaml:"seed"`

	// PreserveOverrides keeps manual overrides when the current month is
	// rebuilt after a profile refresh. Overrides pointing at removed profiles
	// are dropped. Selecting a different month always starts from scratch.
	PreserveOverrides bool `yaml:"preserve_overrides"`

	// Publish configures the schedule publisher.
	Publish PublishConfig `yaml:"publish"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Thursday/Saturday meetings, the four default roles, Audio/Video pairing
func DefaultConfig() Config {
	return Config{
		Roles:           types.DefaultRoles(),
		MeetingDays:     []string{"thursday", "saturday"},
		Pairing:         eligibility.DefaultPairing(),
		Locale:          render.DefaultLocale,
		Title:           render.DefaultTitle,
		DateHeader:      render.DefaultDateHeader,
		UnassignedLabel: types.DefaultUnassignedLabel,
		Publish: PublishConfig{
			Bucket:           publish.DefaultBucket,
			KeyPrefix:        publish.DefaultKeyPrefix,
			OperationTimeout: 10 * time.Second,
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if len(cfg.Roles) == 0 {
		cfg.Roles = defaults.Roles
	}
	if len(cfg.MeetingDays) == 0 {
		cfg.MeetingDays = defaults.MeetingDays
	}
	if cfg.Pairing.Roles[0] == "" && cfg.Pairing.Roles[1] == "" {
		cfg.Pairing.Roles = defaults.Pairing.Roles
	}
	if cfg.Pairing.AdultAge == 0 {
		cfg.Pairing.AdultAge = defaults.Pairing.AdultAge
	}
	if cfg.Locale == "" {
		cfg.Locale = defaults.Locale
	}
	if cfg.Title == "" {
		cfg.Title = defaults.Title
	}
	if cfg.DateHeader == "" {
		cfg.DateHeader = defaults.DateHeader
	}
	if cfg.UnassignedLabel == "" {
		cfg.UnassignedLabel = defaults.UnassignedLabel
	}
	if cfg.Publish.Bucket == "" {
		cfg.Publish.Bucket = defaults.Publish.Bucket
	}
	if cfg.Publish.KeyPrefix == "" {
		cfg.Publish.KeyPrefix = defaults.Publish.KeyPrefix
	}
	if cfg.Publish.OperationTimeout == 0 {
		cfg.Publish.OperationTimeout = defaults.Publish.OperationTimeout
	}
	// Seed 0 and PreserveOverrides false are meaningful values, left as is.
}

// Validate checks configuration constraints.
//
// Hard Validation Rules:
//   - Field rules (non-empty unique roles, known weekday names, positive timeout)
//   - Pairing roles are two distinct members of Roles
//   - Pairing.AdultAge > 0
//
// Returns:
//   - error: ErrInvalidConfig wrapping the first violated rule, nil if valid
func (cfg *Config) Validate() error {
	if err := validation.Default().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	for _, r := range cfg.Pairing.Roles {
		if !slices.Contains(cfg.Roles, r) {
			return fmt.Errorf("%w: pairing role %q is not in roles %v", ErrInvalidConfig, r, cfg.Roles)
		}
	}
	if cfg.Pairing.Roles[0] == cfg.Pairing.Roles[1] {
		return fmt.Errorf("%w: pairing roles must differ, got %q twice", ErrInvalidConfig, cfg.Pairing.Roles[0])
	}
	if cfg.Pairing.AdultAge <= 0 {
		return fmt.Errorf("%w: pairing adult age must be > 0, got %d", ErrInvalidConfig, cfg.Pairing.AdultAge)
	}

	return nil
}

// ValidateWithWarnings logs warnings for legal but unusual values.
//
// This is called after Validate() in NewPlanner() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if !render.Supported(cfg.Locale) {
		logger.Warn(
			"locale has no month names, falling back",
			"locale", cfg.Locale,
			"fallback", render.DefaultLocale,
		)
	}

	if len(cfg.MeetingDays) > 3 {
		logger.Warn(
			"many meeting days per week, schedules may run out of volunteers",
			"meeting_days", cfg.MeetingDays,
		)
	}

	if cfg.Pairing.AdultAge < 16 || cfg.Pairing.AdultAge > 21 {
		logger.Warn(
			"unusual pairing adult age",
			"adult_age", cfg.Pairing.AdultAge,
			"recommended", types.DefaultAdultAge,
		)
	}
}

// Weekdays resolves MeetingDays to time.Weekday values, preserving order and
// skipping unknown names. Call Validate first to reject unknown names.
func (cfg *Config) Weekdays() []time.Weekday {
	out := make([]time.Weekday, 0, len(cfg.MeetingDays))
	for _, name := range cfg.MeetingDays {
		if wd, ok := calendar.ParseWeekday(name); ok {
			out = append(out, wd)
		}
	}

	return out
}

// RenderOptions returns the table options matching this configuration.
func (cfg *Config) RenderOptions() render.Options {
	return render.Options{
		Locale:          cfg.Locale,
		Title:           cfg.Title,
		DateHeader:      cfg.DateHeader,
		UnassignedLabel: cfg.UnassignedLabel,
	}
}

// LoadConfig reads a YAML configuration file and applies defaults.
//
// The result is not validated; NewPlanner validates it.
//
// Parameters:
//   - path: YAML file path
//
// Returns:
//   - Config: Parsed configuration with defaults applied
//   - error: Read or parse failure
//
// Example:
//
//	cfg, err := rota.LoadConfig("rota.yaml")
//	if err != nil {
//	    return err
//	}
//	planner, err := rota.NewPlanner(&cfg, src, strategy.NewGreedyRandom())
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration and applies defaults.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	SetDefaults(&cfg)

	return cfg, nil
}

// TestConfig returns a configuration for tests: default roles and meeting days
// with a fixed seed, so default schedules are reproducible.
//
// Example:
//
//	cfg := rota.TestConfig()
//	planner, err := rota.NewPlanner(&cfg, source.NewStatic(profiles), strategy.NewGreedyRandom())
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Publish.OperationTimeout = 2 * time.Second

	return cfg
}

// IsValidationError reports whether err carries per-field validation messages.
func IsValidationError(err error) bool {
	var verr *validation.Error

	return errors.As(err, &verr)
}

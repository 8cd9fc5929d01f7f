package dateutil

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/LerianStudio/lib-chrono/chrono"
	"github.com/LerianStudio/lib-chrono/chrono/clock"
	"github.com/LerianStudio/lib-chrono/chrono/log"
	"github.com/go-playground/validator/v10"
)

const localZone = "Local"

var (
	configValidator     *validator.Validate
	configValidatorOnce sync.Once
	errConfigValidator  error
)

// Config describes a Util through environment variables.
type Config struct {
	// DefaultFormat is a format name (long-date-line) or pattern (yyyy-MM-dd HH:mm:ss).
	DefaultFormat string `env:"CHRONO_DEFAULT_FORMAT" validate:"omitempty,date_format"`
	// Timezone is an IANA zone name. Empty or "Local" selects time.Local.
	Timezone string `env:"CHRONO_TIMEZONE" validate:"omitempty,zone"`
	// ClockResolutionMS enables a cached clock refreshed at this period. Zero reads the system clock.
	ClockResolutionMS int64 `env:"CHRONO_CLOCK_RESOLUTION_MS" validate:"gte=0"`
}

// LoadConfig reads Config from the environment and fills in defaults. A set
// variable that does not parse returns ErrInvalidConfig.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := chrono.SetConfigFromEnvVars(&cfg); err != nil {
		if errors.Is(err, chrono.ErrInvalidEnvValue) {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		return Config{}, fmt.Errorf("load date utility config: %w", err)
	}

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = DefaultFormat.String()
	}

	return cfg, nil
}

// Validate checks every field without building anything. Failures name the
// environment variable that carries the bad value.
func (c Config) Validate() error {
	vld, err := getConfigValidator()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := vld.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]

			return fmt.Errorf("%w: %s=%q fails %s", ErrInvalidConfig, fe.Field(), fmt.Sprint(fe.Value()), fe.Tag())
		}

		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func getConfigValidator() (*validator.Validate, error) {
	configValidatorOnce.Do(func() {
		configValidator, errConfigValidator = initConfigValidator()
	})

	return configValidator, errConfigValidator
}

func initConfigValidator() (*validator.Validate, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	vld.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("env"); name != "" {
			return name
		}

		return field.Name
	})

	if err := vld.RegisterValidation("date_format", func(fl validator.FieldLevel) bool {
		_, err := ParseFormat(fl.Field().String())

		return err == nil
	}); err != nil {
		return nil, err
	}

	// validator's own timezone tag refuses "Local".
	if err := vld.RegisterValidation("zone", func(fl validator.FieldLevel) bool {
		_, err := loadZone(fl.Field().String())

		return err == nil
	}); err != nil {
		return nil, err
	}

	return vld, nil
}

func (c Config) format() Format {
	if c.DefaultFormat == "" {
		return DefaultFormat
	}

	f, err := ParseFormat(c.DefaultFormat)
	if err != nil {
		return DefaultFormat
	}

	return f
}

func loadZone(name string) (*time.Location, error) {
	zone := strings.TrimSpace(name)
	if zone == "" || zone == localZone {
		return time.Local, nil
	}

	return time.LoadLocation(zone)
}

// NewFromConfig validates cfg and builds a Util from it. The logger comes from
// ctx unless an option sets one; options are applied last and win over cfg.
// When a clock resolution is configured the cached clock lives until ctx is
// cancelled.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Util, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := chrono.NewLoggerFromContext(ctx)

	if err := cfg.Validate(); err != nil {
		log.SafeError(logger, ctx, "invalid date utility config", err, chrono.IsProduction())

		return nil, err
	}

	loc, err := loadZone(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	base := []Option{
		WithLogger(logger),
		WithDefaultFormat(cfg.format()),
		WithLocation(loc),
	}

	if cfg.ClockResolutionMS > 0 {
		cached, err := clock.NewCached(ctx, time.Duration(cfg.ClockResolutionMS)*time.Millisecond, logger)
		if err != nil {
			log.SafeError(logger, ctx, "failed to start cached clock", err, chrono.IsProduction())

			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		base = append(base, WithClock(cached))
	}

	u := New(append(base, opts...)...)

	u.logger.Log(ctx, log.LevelInfo, "date utility configured",
		log.String("format", u.format.String()),
		log.String("location", u.loc.String()),
		log.Int64("clock_resolution_ms", cfg.ClockResolutionMS),
	)

	return u, nil
}

// NewFromEnv loads Config from the environment and builds a Util from it.
func NewFromEnv(ctx context.Context, opts ...Option) (*Util, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	return NewFromConfig(ctx, cfg, opts...)
}

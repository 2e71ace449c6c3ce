// Package config loads geosphere settings from defaults, an optional
// geosphere.yaml file and GEOSPHERE_* environment variables.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/tidwall/geosphere"
)

// Settings holds everything a caller needs to build solvers and densifiers.
type Settings struct {
	Ellipsoid EllipsoidConfig `mapstructure:"ellipsoid"`
	Sphere    SphereConfig    `mapstructure:"sphere"`
	Densify   DensifyConfig   `mapstructure:"densify"`
	Antipodal AntipodalConfig `mapstructure:"antipodal"`
	Log       LogConfig       `mapstructure:"log"`
}

// EllipsoidConfig describes the reference ellipsoid.
type EllipsoidConfig struct {
	SemiMajorAxis float64 `mapstructure:"semi_major_axis"`
	Flattening    float64 `mapstructure:"flattening"`
}

// SphereConfig describes the sphere used by the spherical formulas.
type SphereConfig struct {
	Radius float64 `mapstructure:"radius"`
}

// DensifyConfig mirrors geosphere.DensifyConfig.
type DensifyConfig struct {
	Interval         float64 `mapstructure:"interval"`
	Adjust           bool    `mapstructure:"adjust"`
	IgnoreGeographic bool    `mapstructure:"ignore_geographic"`
	Workers          int     `mapstructure:"workers"`
}

// AntipodalConfig holds the antipodal test tolerance in degrees.
type AntipodalConfig struct {
	Tolerance float64 `mapstructure:"tolerance"`
}

// LogConfig selects the log level (debug, info, warn, error) and format
// (json, text).
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads settings. Extra search paths for geosphere.yaml may be given;
// the working directory is always searched. A missing file is not an error.
func Load(paths ...string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("ellipsoid.semi_major_axis", geosphere.WGS84SemiMajorAxis)
	v.SetDefault("ellipsoid.flattening", geosphere.WGS84Flattening)
	v.SetDefault("sphere.radius", geosphere.DefaultRadius)
	v.SetDefault("densify.interval", 1000.0)
	v.SetDefault("densify.adjust", false)
	v.SetDefault("densify.ignore_geographic", false)
	v.SetDefault("densify.workers", 1)
	v.SetDefault("antipodal.tolerance", geosphere.DefaultAntipodalTolerance)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetConfigName("geosphere")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	// GEOSPHERE_DENSIFY_INTERVAL → densify.interval
	v.SetEnvPrefix("GEOSPHERE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every value is usable.
func (s *Settings) Validate() error {
	var errs []string

	if !(s.Ellipsoid.SemiMajorAxis > 0) {
		errs = append(errs, fmt.Sprintf("ellipsoid.semi_major_axis must be positive, got %v", s.Ellipsoid.SemiMajorAxis))
	}
	if s.Ellipsoid.Flattening < 0 || s.Ellipsoid.Flattening >= 1 {
		errs = append(errs, fmt.Sprintf("ellipsoid.flattening must be in [0, 1), got %v", s.Ellipsoid.Flattening))
	}
	if !(s.Sphere.Radius > 0) {
		errs = append(errs, fmt.Sprintf("sphere.radius must be positive, got %v", s.Sphere.Radius))
	}
	if !(s.Densify.Interval > 0) {
		errs = append(errs, fmt.Sprintf("densify.interval must be positive, got %v", s.Densify.Interval))
	}
	if s.Densify.Workers < 0 {
		errs = append(errs, fmt.Sprintf("densify.workers must not be negative, got %d", s.Densify.Workers))
	}
	if !(s.Antipodal.Tolerance > 0) {
		errs = append(errs, fmt.Sprintf("antipodal.tolerance must be positive, got %v", s.Antipodal.Tolerance))
	}
	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", s.Log.Level))
	}
	switch strings.ToLower(s.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", s.Log.Format))
	}

	if len(errs) > 0 {
		return errors.Newf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Ellipsoid returns the configured reference ellipsoid.
func (s *Settings) Ellipsoid() geosphere.Ellipsoid {
	return geosphere.NewEllipsoid(s.Ellipsoid.SemiMajorAxis, s.Ellipsoid.Flattening)
}

// Sphere returns the configured sphere.
func (s *Settings) Sphere() geosphere.Sphere {
	return geosphere.Sphere{Radius: s.Sphere.Radius}
}

// DensifyConfig returns the configured densify parameters.
func (s *Settings) DensifyConfig() geosphere.DensifyConfig {
	return geosphere.DensifyConfig{
		Interval:         s.Densify.Interval,
		Adjust:           s.Densify.Adjust,
		IgnoreGeographic: s.Densify.IgnoreGeographic,
		Workers:          s.Densify.Workers,
	}
}

// Densifier returns a densifier on the configured ellipsoid.
func (s *Settings) Densifier() *geosphere.Densifier {
	return &geosphere.Densifier{Ellipsoid: s.Ellipsoid(), Config: s.DensifyConfig()}
}

// Logger returns a logger writing to stderr at the configured level and
// format. Hand it to geosphere.SetLogger to enable package logging.
func (s *Settings) Logger() *slog.Logger {
	return s.NewLogger(os.Stderr)
}

// NewLogger is Logger writing to w.
func (s *Settings) NewLogger(w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(s.Log.Level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.ToLower(s.Log.Format) == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

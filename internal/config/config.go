// Package config loads the voting settings and runtime options of the CLI.
//
// Values come from, in increasing order of precedence: built-in defaults, an optional settings
// file (yaml, json or toml), a .env file and TOKENVOTING_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/tokenvoting"
	"github.com/smartcontractkit/tokenvoting/types"
)

// EnvPrefix is the prefix of the environment variables overriding file values.
const EnvPrefix = "TOKENVOTING"

const (
	KeySupportThreshold       = "support_threshold"
	KeyParticipationThreshold = "participation_threshold"
	KeyMinDuration            = "min_duration"
	KeyLogLevel               = "log_level"
	KeyRPCURL                 = "rpc_url"
)

var keys = []string{
	KeySupportThreshold,
	KeyParticipationThreshold,
	KeyMinDuration,
	KeyLogLevel,
	KeyRPCURL,
}

// Config is the resolved configuration.
type Config struct {
	Settings tokenvoting.Settings
	LogLevel zapcore.Level
	RPCURL   string
}

// Load reads envFile (".env" when empty; a missing default file is not an error), then the
// optional settingsFile and the environment. Flags of flags named after a key, with dashes for
// underscores, take precedence when set. flags may be nil.
func Load(envFile, settingsFile string, flags *pflag.FlagSet) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	v, err := NewViper(settingsFile)
	if err != nil {
		return nil, err
	}

	if flags != nil {
		if err := BindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	return FromViper(v)
}

// BindFlags binds the flags matching a configuration key to v.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err != nil || !slices.Contains(keys, key) {
			return
		}
		err = v.BindPFlag(key, f)
	})

	return err
}

func loadEnvFile(envFile string) error {
	if envFile == "" {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}

		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	return nil
}

// NewViper creates a viper instance with the defaults, the settings file when given and the
// environment bindings.
func NewViper(settingsFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySupportThreshold, "50%")
	v.SetDefault(KeyParticipationThreshold, "15%")
	v.SetDefault(KeyMinDuration, "1h")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyRPCURL, "")

	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settingsFile, err)
		}
	}

	return v, nil
}

// FromViper resolves and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	support, err := ParsePct(v.Get(KeySupportThreshold))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeySupportThreshold, err)
	}

	participation, err := ParsePct(v.Get(KeyParticipationThreshold))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyParticipationThreshold, err)
	}

	minDuration, err := ParseSeconds(v.Get(KeyMinDuration))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyMinDuration, err)
	}

	level, err := zapcore.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}

	settings := tokenvoting.Settings{
		SupportThreshold:       support,
		ParticipationThreshold: participation,
		MinDuration:            minDuration,
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &Config{
		Settings: settings,
		LogLevel: level,
		RPCURL:   v.GetString(KeyRPCURL),
	}, nil
}

var (
	pctBase    = new(big.Rat).SetUint64(types.PctBase)
	pctPercent = new(big.Rat).SetUint64(types.PctBase / 100)
	maxPct     = new(big.Rat).SetUint64(math.MaxUint64)
)

// ParsePct parses a ratio. Strings ending in "%" are percentages ("50%", "33.33%"), other
// decimal strings and floats are fractions ("0.5"), and integers are raw values in units of
// 1/types.PctBase.
func ParsePct(value any) (types.Pct, error) {
	switch v := value.(type) {
	case float32, float64:
		s, err := cast.ToStringE(v)
		if err != nil {
			return 0, err
		}

		return scalePct(s, pctBase)
	case string:
		s := strings.TrimSpace(v)
		switch {
		case strings.HasSuffix(s, "%"):
			return scalePct(strings.TrimSpace(strings.TrimSuffix(s, "%")), pctPercent)
		case strings.Contains(s, "."):
			return scalePct(s, pctBase)
		}
	}

	raw, err := cast.ToUint64E(value)
	if err != nil {
		return 0, fmt.Errorf("invalid ratio %v: %w", value, err)
	}

	return types.Pct(raw), nil
}

func scalePct(number string, unit *big.Rat) (types.Pct, error) {
	r, ok := new(big.Rat).SetString(number)
	if !ok {
		return 0, fmt.Errorf("invalid ratio %q", number)
	}
	if r.Sign() < 0 {
		return 0, fmt.Errorf("negative ratio %q", number)
	}

	r.Mul(r, unit)
	if !r.IsInt() {
		return 0, fmt.Errorf("ratio %q is more precise than 1e-18", number)
	}
	if r.Cmp(maxPct) > 0 {
		return 0, fmt.Errorf("ratio %q is out of range", number)
	}

	return types.Pct(r.Num().Uint64()), nil
}

// ParseSeconds parses a number of seconds or a duration string such as "90m".
func ParseSeconds(value any) (uint64, error) {
	if s, ok := value.(string); ok {
		if d, err := types.ParseDuration(strings.TrimSpace(s)); err == nil {
			return d.Uint64Seconds(), nil
		}
	}

	seconds, err := cast.ToUint64E(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %v: %w", value, err)
	}

	return seconds, nil
}

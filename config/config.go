package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                                     int
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	LogLevel                                 string
	LogFormat                                string
}

const (
	roundRobinTimeQuantumKey = "scheduler.round_robin.time_quantum"
	levelsTimeQuantumKey     = "scheduler.multilevel_feedback_queue.levels_time_quantum"
)

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once and
// exits the process if it is invalid.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("./")
		if err != nil {
			log.Fatal().Err(err).Msg("load scheduler config")
		}
		config = cfg
	})

	return config
}

// Load reads config.yaml from dir. A missing file is not an error: defaults
// and SCHEDULER_* environment variables still apply.
func Load(dir string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault(roundRobinTimeQuantumKey, 2)
	v.SetDefault(levelsTimeQuantumKey, []int{5, 8, 16})

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The scheduler.* keys would otherwise map to SCHEDULER_SCHEDULER_*.
	if err := v.BindEnv(roundRobinTimeQuantumKey, "SCHEDULER_ROUND_ROBIN_TIME_QUANTUM"); err != nil {
		return nil, err
	}
	if err := v.BindEnv(levelsTimeQuantumKey, "SCHEDULER_MLFQ_LEVELS_TIME_QUANTUM"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	levels := v.GetIntSlice(levelsTimeQuantumKey)
	if raw, ok := v.Get(levelsTimeQuantumKey).(string); ok {
		parsed, err := parseIntList(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid mlfq levels %q: %w", raw, err)
		}
		levels = parsed
	}

	cfg := &SchedulerConfig{
		Port:                                     v.GetInt("port"),
		RoundRobinTimeQuantum:                    v.GetInt(roundRobinTimeQuantumKey),
		MultilevelFeedbackQueueLevelsTimeQuantum: levels,
		LogLevel:                                 v.GetString("log.level"),
		LogFormat:                                v.GetString("log.format"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("invalid round robin time quantum %d: must be positive", c.RoundRobinTimeQuantum)
	}
	if len(c.MultilevelFeedbackQueueLevelsTimeQuantum) == 0 {
		return errors.New("multilevel feedback queue needs at least one level")
	}
	for i, q := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		if q <= 0 {
			return fmt.Errorf("invalid time quantum %d for mlfq level %d: must be positive", q, i)
		}
	}
	return nil
}

// parseIntList reads a list given as a string, such as "5 8 16" or "5,8,16".
func parseIntList(raw string) ([]int, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		values = append(values, n)
	}
	return values, nil
}

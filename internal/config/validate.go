package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidName indicates a framework name that cannot appear in a
	// project file
	ErrInvalidName = errors.New("invalid framework name")

	// ErrInvalidConfigurations indicates a bad build configuration list
	ErrInvalidConfigurations = errors.New("invalid build configurations")

	// ErrEmptyPatterns indicates missing discovery glob patterns
	ErrEmptyPatterns = errors.New("empty discovery patterns")

	// ErrInvalidDebounce indicates an invalid watch debounce interval
	ErrInvalidDebounce = errors.New("invalid watch debounce")
)

// Project file entries embed the framework name unquoted, so it is
// restricted to identifier characters.
var nameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateFramework(&cfg.Framework); err != nil {
		errs = append(errs, err)
	}

	if err := validatePaths(&cfg.Paths); err != nil {
		errs = append(errs, err)
	}

	if err := validateWatch(&cfg.Watch); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateFramework(cfg *FrameworkConfig) error {
	var errs []error

	// An empty name is allowed here: the generate command requires one,
	// but inspect-style commands do not.
	if cfg.Name != "" && !nameRe.MatchString(cfg.Name) {
		errs = append(errs, fmt.Errorf("%w: must match %s, got %q", ErrInvalidName, nameRe.String(), cfg.Name))
	}

	if len(cfg.Configurations) != 2 {
		errs = append(errs, fmt.Errorf("%w: exactly two configurations required, got %d", ErrInvalidConfigurations, len(cfg.Configurations)))
	} else {
		for _, name := range cfg.Configurations {
			if strings.TrimSpace(name) == "" {
				errs = append(errs, fmt.Errorf("%w: configuration names cannot be blank", ErrInvalidConfigurations))
			}
		}
		if cfg.Configurations[0] == cfg.Configurations[1] {
			errs = append(errs, fmt.Errorf("%w: configuration names must differ, got %q twice", ErrInvalidConfigurations, cfg.Configurations[0]))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validatePaths(cfg *PathsConfig) error {
	var errs []error

	// Directories are not checked for existence here - discovery reports
	// missing scan roots with a precise error at generation time.

	if len(cfg.HeaderPatterns) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one header pattern required", ErrEmptyPatterns))
	}

	if len(cfg.SourcePatterns) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one source pattern required", ErrEmptyPatterns))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateWatch(cfg *WatchConfig) error {
	if cfg.DebounceMS < 0 {
		return fmt.Errorf("%w: debounce_ms cannot be negative, got %d", ErrInvalidDebounce, cfg.DebounceMS)
	}
	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

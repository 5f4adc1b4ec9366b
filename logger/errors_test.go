package logger

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := &ConfigError{Op: "break on", Level: "INFO", Err: ErrLevelTooLow}

	expected := `break on "INFO": break level must be WARN or ERROR`
	if err.Error() != expected {
		t.Errorf("ConfigError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrLevelTooLow) {
		t.Error("ConfigError should unwrap to its sentinel")
	}

	var ce *ConfigError
	if !errors.As(fmt.Errorf("setup: %w", err), &ce) || ce.Level != "INFO" {
		t.Error("ConfigError should be reachable through wrapping")
	}
}

func TestErrorKindHelpers(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		already bool
		invalid bool
		tooLow  bool
	}{
		{"AlreadyConfigured", &ConfigError{Err: ErrAlreadyConfigured}, true, false, false},
		{"InvalidLevel", &ConfigError{Err: ErrInvalidLevel}, false, true, false},
		{"LevelTooLow", &ConfigError{Err: ErrLevelTooLow}, false, false, true},
		{"Wrapped", fmt.Errorf("wrapped: %w", ErrInvalidLevel), false, true, false},
		{"Unrelated", errors.New("other"), false, false, false},
		{"Nil", nil, false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAlreadyConfigured(tc.err); got != tc.already {
				t.Errorf("IsAlreadyConfigured(%v) = %v, want %v", tc.err, got, tc.already)
			}
			if got := IsInvalidLevel(tc.err); got != tc.invalid {
				t.Errorf("IsInvalidLevel(%v) = %v, want %v", tc.err, got, tc.invalid)
			}
			if got := IsLevelTooLow(tc.err); got != tc.tooLow {
				t.Errorf("IsLevelTooLow(%v) = %v, want %v", tc.err, got, tc.tooLow)
			}
		})
	}
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAnalysisSettings reads and validates an AnalysisSettings document
// from path.
func LoadAnalysisSettings(path string) (*AnalysisSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading analysis settings: %w", err)
	}

	var s AnalysisSettings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("config: parsing analysis settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadUserOptions reads a UserOptions document from path, then applies
// opts on top of whatever the file set before validating. A nil/missing
// path is not an error: it simply skips straight to
// DefaultUserOptions() + opts, which lets tests construct options
// without a file on disk.
func LoadUserOptions(path string, opts ...Option) (UserOptions, error) {
	o := DefaultUserOptions()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return UserOptions{}, fmt.Errorf("config: reading user options: %w", err)
		}
		if err := yaml.Unmarshal(data, &o); err != nil {
			return UserOptions{}, fmt.Errorf("config: parsing user options: %w", err)
		}
	}

	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return UserOptions{}, err
	}

	return o, nil
}

package tour

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed steps.yaml
var defaultSteps []byte

// Step is one unit of the scripted product tour.
type Step struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	// Content names the view fragment rendered for this step.
	Content    string `yaml:"content" json:"content"`
	DurationMs int    `yaml:"durationMs" json:"durationMs"`
}

// Duration returns the display time of the step.
func (s Step) Duration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}

var ErrNoSteps = errors.New("tour has no steps")

// ParseSteps decodes a YAML tour definition and validates it.
func ParseSteps(data []byte) ([]Step, error) {
	var doc struct {
		Steps []Step `yaml:"steps"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode tour steps: %w", err)
	}
	if err := validateSteps(doc.Steps); err != nil {
		return nil, err
	}
	return doc.Steps, nil
}

// DefaultSteps returns the embedded Flexxoo product tour.
func DefaultSteps() ([]Step, error) {
	return ParseSteps(defaultSteps)
}

func validateSteps(steps []Step) error {
	if len(steps) == 0 {
		return ErrNoSteps
	}
	seen := make(map[string]struct{}, len(steps))
	for i, s := range steps {
		if s.ID == "" {
			return fmt.Errorf("step %d: missing id", i)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("step %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.DurationMs <= 0 {
			return fmt.Errorf("step %q: duration must be positive, got %d", s.ID, s.DurationMs)
		}
	}
	return nil
}

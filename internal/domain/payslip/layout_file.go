package payslip

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseLayoutYAML overlays the fields present in b onto base.
func ParseLayoutYAML(b []byte, base Layout) (Layout, error) {
	l := base
	if err := yaml.Unmarshal(b, &l); err != nil {
		return Layout{}, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func LoadLayout(path string, base Layout) (Layout, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, err
	}
	return ParseLayoutYAML(b, base)
}

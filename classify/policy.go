package classify

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Policy configures which classification steps apply. The zero value
// classifies everything as a plain string; [DefaultPolicy] mirrors the
// conservative defaults of the command-line tool.
type Policy struct {
	// HexPrefix marks values carrying a hex-encoded byte payload.
	// Empty disables hex detection.
	HexPrefix string `yaml:"hexPrefix"`
	// Base64Prefix marks values carrying a base64 byte payload.
	// Empty disables base64 detection.
	Base64Prefix string `yaml:"base64Prefix"`
	// Booleans encodes exact "true"/"false" in the token type nibble.
	Booleans bool `yaml:"booleans"`
	// Numbers enables int/long/float/double detection for values that
	// round-trip exactly.
	Numbers bool `yaml:"numbers"`
	// InternValues interns string values shorter than InternLimit
	// bytes that contain no space.
	InternValues bool `yaml:"internValues"`
	InternLimit  int  `yaml:"internLimit"`
}

// DefaultPolicy returns the default classification policy: booleans
// on, numbers off, byte payloads off, interning for values under 50
// bytes without spaces.
func DefaultPolicy() *Policy {
	return &Policy{
		Booleans:     true,
		InternValues: true,
		InternLimit:  50,
	}
}

// LoadPolicy reads a YAML policy file. Fields not present in the file
// keep their default values.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read policy %q: %w", path, err)
	}
	p := DefaultPolicy()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("could not parse policy %q: %w", path, err)
	}
	return p, nil
}

package store

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/sirupsen/logrus"
)

// seedYAML is the demo household shipped in the binary. It doubles as the
// starter file written by `kasa init`.
//
//go:embed seed.yaml
var seedYAML []byte

// DemoHousehold returns the embedded demo snapshot.
func DemoHousehold() (Household, error) {
	h, err := ReadHousehold(bytes.NewReader(seedYAML))
	if err != nil {
		return Household{}, fmt.Errorf("parsing embedded seed: %w", err)
	}
	return h, nil
}

// Demo builds a Store from the embedded demo snapshot.
func Demo(log *logrus.Logger) (*Store, error) {
	h, err := DemoHousehold()
	if err != nil {
		return nil, err
	}
	return New(h, log), nil
}

// SeedYAML returns the raw embedded demo file, for init scaffolding.
func SeedYAML() []byte {
	out := make([]byte, len(seedYAML))
	copy(out, seedYAML)
	return out
}

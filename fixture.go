// fixture.go — YAML world-state fixtures for the CLI harness and tests.
//
// A fixture is the declarative form of a SimState:
//
//	queries:
//	  cargo_full: false
//	  Uranium-nearby: true
//	variables:
//	  battery: 80
//	cargo: 12
//	integrity: 90
//
// Fixtures exist so sample runs are reproducible without writing Go; the
// core itself never reads files (the harness is an external collaborator).
package dronescript

import (
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Fixture is the on-disk schema of a world-state snapshot.
type Fixture struct {
	Queries   map[string]bool    `yaml:"queries"`
	Variables map[string]float64 `yaml:"variables"`
	Cargo     float64            `yaml:"cargo"`
	Integrity *float64           `yaml:"integrity"`
}

// State materializes the fixture as a fresh SimState.
func (f *Fixture) State() *SimState {
	st := NewSimState()
	for name, v := range f.Queries {
		st.SetBool(name, v)
	}
	for name, v := range f.Variables {
		st.SetNumber(name, v)
	}
	st.SetCargo(f.Cargo)
	if f.Integrity != nil {
		st.SetIntegrity(*f.Integrity)
	}
	return st
}

// ParseFixture decodes YAML fixture data.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, errors.Wrap(err, "cannot decode world-state fixture")
	}
	return &f, nil
}

// LoadFixture reads and decodes a fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read fixture %s", path)
	}
	f, err := ParseFixture(data)
	if err != nil {
		return nil, errors.Wrapf(err, "fixture %s", path)
	}
	return f, nil
}

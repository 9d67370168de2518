// simstate.go — mutable in-memory world state for tests and the CLI harness.
//
// SimState is the external collaborator the core is evaluated against in
// local runs. It is not safe for concurrent mutation; the host gives each
// tick its own state object (see the concurrency notes in evaluator.go).
package dronescript

import "github.com/google/uuid"

// SimState implements WorldState plus the CargoHold and Damageable mutation
// capabilities.
type SimState struct {
	// ID identifies the drone this state belongs to, for host-side logging.
	ID uuid.UUID

	bools     map[string]bool
	numbers   map[string]float64
	cargo     float64
	integrity float64
}

// NewSimState returns an empty state with a fresh drone ID and full hull.
func NewSimState() *SimState {
	return &SimState{
		ID:        uuid.New(),
		bools:     map[string]bool{},
		numbers:   map[string]float64{},
		integrity: 100,
	}
}

// SetBool registers or updates a boolean query.
func (s *SimState) SetBool(name string, v bool) { s.bools[name] = v }

// SetNumber registers or updates a numeric variable.
func (s *SimState) SetNumber(name string, v float64) { s.numbers[name] = v }

// GetBool implements WorldState.
func (s *SimState) GetBool(name string) (bool, bool) {
	v, ok := s.bools[name]
	return v, ok
}

// GetNumber implements WorldState.
func (s *SimState) GetNumber(name string) (float64, bool) {
	v, ok := s.numbers[name]
	return v, ok
}

// Cargo implements CargoHold.
func (s *SimState) Cargo() float64 { return s.cargo }

// ClearCargo implements CargoHold.
func (s *SimState) ClearCargo() float64 {
	out := s.cargo
	s.cargo = 0
	return out
}

// AddCargo implements CargoHold.
func (s *SimState) AddCargo(amount float64) {
	if amount > 0 {
		s.cargo += amount
	}
}

// SetCargo sets the hold contents directly (fixtures, tests).
func (s *SimState) SetCargo(amount float64) { s.cargo = amount }

// Integrity implements Damageable.
func (s *SimState) Integrity() float64 { return s.integrity }

// Repair implements Damageable, clamping to 100.
func (s *SimState) Repair(amount float64) {
	s.integrity += amount
	if s.integrity > 100 {
		s.integrity = 100
	}
}

// SetIntegrity sets hull integrity directly (fixtures, tests).
func (s *SimState) SetIntegrity(v float64) { s.integrity = v }

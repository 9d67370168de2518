// worldstate.go — the world-state query contract consumed by the evaluator.
//
// The core never owns world state; it borrows a read-only view per tick.
// Mutation is deliberately not part of WorldState: the few commands that must
// write (deposit clearing cargo, repair restoring integrity) type-assert for
// a narrow capability interface instead of getting blanket write access.
package dronescript

// WorldState exposes the two pure lookups a script can reference. Both return
// ok=false when the name is unknown to the state, which the evaluator surfaces
// as a structured evaluation error distinguishing "bad script" from
// "environment gap" bugs.
type WorldState interface {
	// GetBool resolves a named boolean query, e.g. "cargo_full".
	GetBool(name string) (value bool, ok bool)
	// GetNumber resolves a named numeric variable, e.g. "battery".
	GetNumber(name string) (value float64, ok bool)
}

// CargoHold is the mutation capability used by deposit/haul-class commands.
type CargoHold interface {
	// Cargo reports the current load in units.
	Cargo() float64
	// ClearCargo empties the hold and returns the amount removed.
	ClearCargo() float64
	// AddCargo loads amount units (hosts may clamp to capacity).
	AddCargo(amount float64)
}

// Damageable is the mutation capability used by the repair command.
// Integrity is a percentage in [0, 100].
type Damageable interface {
	Integrity() float64
	Repair(amount float64)
}

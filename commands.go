// commands.go — the standard drone command set.
//
// Each command's "effect" is limited to the world-state contract; actual
// pathfinding/physics lives in the host application. A command reports acted
// only when it produced an action this tick, so commands that cannot act
// (mining with nothing nearby, depositing an empty hold) fall through to the
// next statement instead of ending the tick.
package dronescript

// registerStandardCommands installs the built-in vocabulary. Hosts extend or
// replace individual entries with RegisterCommand.
func registerStandardCommands(ev *Evaluator) {
	registerMovementCommands(ev)
	registerMiningCommands(ev)
	registerHaulingCommands(ev)
	registerMaintenanceCommands(ev)
}

// ---- movement ----------------------------------------------------------

func registerMovementCommands(ev *Evaluator) {
	ev.registerWithDoc("goto_charger",
		`Head for the nearest charging pad. Always acts.`,
		func(ctx *CallCtx) (bool, error) {
			ctx.Tracef("heading for the charger")
			return true, nil
		})

	ev.registerWithDoc("goto_base",
		`Return to the home base. Always acts.`,
		func(ctx *CallCtx) (bool, error) {
			ctx.Tracef("returning to base")
			return true, nil
		})

	ev.registerWithDoc("explore",
		`Pick an unexplored direction and move out. Always acts.`,
		func(ctx *CallCtx) (bool, error) {
			ctx.Tracef("exploring")
			return true, nil
		})

	ev.registerWithDoc("wait",
		`Hold position for this tick. Always acts.`,
		func(ctx *CallCtx) (bool, error) {
			ctx.Tracef("holding position")
			return true, nil
		})
}

// ---- mining ------------------------------------------------------------

func registerMiningCommands(ev *Evaluator) {
	// mine_nearest(resource): acts when the "<resource>-nearby" query is true,
	// or unconditionally for the wildcard argument "any". A resource the state
	// has never heard of simply means nothing is nearby; that is not an error.
	ev.registerWithDoc("mine_nearest",
		`mine_nearest(resource) — mine the nearest deposit of the named
resource. "any" takes whatever is closest. Acts only when the matching
"<resource>-nearby" query reads true.`,
		func(ctx *CallCtx) (bool, error) {
			resource, ok := ctx.ArgName(0)
			if !ok || resource == "any" {
				ctx.Tracef("mining the nearest deposit")
				return true, nil
			}
			nearby, known := ctx.State.GetBool(resource + "-nearby")
			if !known || !nearby {
				ctx.Tracef("no %s nearby", resource)
				return false, nil
			}
			ctx.Tracef("mining nearest %s", resource)
			return true, nil
		})
}

// ---- hauling -----------------------------------------------------------

func registerHaulingCommands(ev *Evaluator) {
	// haul(amount): load amount units when the state exposes a cargo hold.
	ev.registerWithDoc("haul",
		`haul(amount) — load the given number of units into the hold.`,
		func(ctx *CallCtx) (bool, error) {
			amount, ok := ctx.ArgNumber(0)
			if !ok || amount <= 0 {
				ctx.Tracef("nothing to haul")
				return false, nil
			}
			if hold, ok := ctx.State.(CargoHold); ok {
				hold.AddCargo(amount)
			}
			ctx.Tracef("hauling %g units", amount)
			return true, nil
		})

	// deposit: empty the hold at the current position. Acts only with cargo
	// aboard; clearing goes through the narrow CargoHold capability.
	ev.registerWithDoc("deposit",
		`Unload all cargo here. Acts only when the hold is not empty.`,
		func(ctx *CallCtx) (bool, error) {
			hold, ok := ctx.State.(CargoHold)
			if !ok || hold.Cargo() <= 0 {
				ctx.Tracef("cargo hold is empty, nothing to deposit")
				return false, nil
			}
			dropped := hold.ClearCargo()
			ctx.Tracef("deposited %g units", dropped)
			return true, nil
		})
}

// ---- maintenance -------------------------------------------------------

func registerMaintenanceCommands(ev *Evaluator) {
	// repair: patch the hull back up. Acts only below full integrity.
	ev.registerWithDoc("repair",
		`Run field repairs. Acts only when hull integrity is below 100.`,
		func(ctx *CallCtx) (bool, error) {
			dmg, ok := ctx.State.(Damageable)
			if !ok || dmg.Integrity() >= 100 {
				ctx.Tracef("hull integrity is full, no repair needed")
				return false, nil
			}
			before := dmg.Integrity()
			dmg.Repair(100 - before)
			ctx.Tracef("repaired hull from %g to 100", before)
			return true, nil
		})
}

// fixture_test.go
package dronescript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleFixture = `
queries:
  cargo_full: false
  Uranium-nearby: true
variables:
  battery: 80
  capacity: 40
cargo: 12
integrity: 90
`

func Test_ParseFixture_StateReadsBack(t *testing.T) {
	fx, err := ParseFixture([]byte(sampleFixture))
	require.NoError(t, err)

	state := fx.State()
	v, ok := state.GetBool("Uranium-nearby")
	require.True(t, ok)
	require.True(t, v)

	b, ok := state.GetNumber("battery")
	require.True(t, ok)
	require.Equal(t, 80.0, b)

	_, ok = state.GetNumber("unregistered")
	require.False(t, ok)

	require.Equal(t, 12.0, state.Cargo())
	require.Equal(t, 90.0, state.Integrity())
	require.NotEqual(t, state.ID, fx.State().ID, "each materialization is an independent drone")
}

func Test_ParseFixture_DefaultsToFullIntegrity(t *testing.T) {
	fx, err := ParseFixture([]byte("variables:\n  battery: 5\n"))
	require.NoError(t, err)
	require.Equal(t, 100.0, fx.State().Integrity())
}

func Test_ParseFixture_UnknownKeyRejected(t *testing.T) {
	_, err := ParseFixture([]byte("batteries:\n  battery: 5\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot decode world-state fixture")
}

func Test_LoadFixture_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFixture), 0o644))

	fx, err := LoadFixture(path)
	require.NoError(t, err)
	require.Equal(t, 12.0, fx.State().Cargo())
}

func Test_LoadFixture_MissingFile(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot read fixture")
}

func Test_Fixture_DrivesEndToEndTick(t *testing.T) {
	fx, err := ParseFixture([]byte(sampleFixture))
	require.NoError(t, err)

	script := mustParse(t, "IF battery < 15 THEN goto_charger\nmine_nearest(Uranium)")
	res := NewEvaluator().Run(script, fx.State())
	require.Nil(t, res.Err)
	require.Equal(t, "mine_nearest", res.Executed.Name)
}

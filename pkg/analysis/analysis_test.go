package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/semisim/pkg/curve"
	"github.com/edp1096/semisim/pkg/device"
)

func TestCharacteristic_StoresFlatResults(t *testing.T) {
	q := device.NewBJT("Q1")
	q.Ib = []float64{10, 20}

	c := NewCharacteristic(0, 5, 11)
	require.NoError(t, c.Setup(q))
	require.NoError(t, c.Execute())

	results := c.GetResults()
	assert.Equal(t, []string{SweepKey, "Ib = 10 µA", "Ib = 20 µA"}, c.Keys())
	assert.Len(t, results[SweepKey], 11)
	assert.InDelta(t, 2e-3, results["Ib = 20 µA"][10], 1e-15)
	assert.Equal(t, 0.0, results["Ib = 10 µA"][0])

	require.NotNil(t, c.Result())
	assert.Equal(t, "BJT Output Characteristics (Common Emitter)", c.Result().Title)
}

func TestCharacteristic_PropagatesModelErrors(t *testing.T) {
	j := device.NewJFET("J1")
	j.Vgs = nil

	_, err := Run(j, j.DefaultSweep())
	require.ErrorIs(t, err, device.ErrEmptySeries)

	_, err = Run(device.NewDiode("D1"), curve.NewSweep(0, 1, 1))
	require.ErrorIs(t, err, device.ErrInvalidParameter)
}

func TestCharacteristic_NoModel(t *testing.T) {
	c := NewCharacteristic(0, 1, 10)
	assert.Error(t, c.Setup(nil))
	assert.Error(t, c.Execute())
	assert.Nil(t, c.Result())
}

func TestNewDefaultCharacteristic(t *testing.T) {
	n := device.NewNanoParticle("N1")
	c := NewDefaultCharacteristic(n)
	assert.Equal(t, n.DefaultSweep(), c.Sweep())
	require.NoError(t, c.Execute())
	assert.Len(t, c.GetResults()["Band Gap"], device.DefaultSweepPoints)
}

func TestCharacteristic_RepeatedLabelsKeepEverySeries(t *testing.T) {
	q := device.NewBJT("Q1")
	q.Ib = []float64{10, 10, 20, 10}

	c, err := Run(q, curve.NewSweep(0, 5, 6))
	require.NoError(t, err)

	assert.Equal(t, []string{SweepKey, "Ib = 10 µA", "Ib = 10 µA (2)", "Ib = 20 µA", "Ib = 10 µA (3)"}, c.Keys())
	assert.Len(t, c.GetResults(), 5)
	assert.Equal(t, c.GetResults()["Ib = 10 µA"], c.GetResults()["Ib = 10 µA (2)"])
}

func TestCharacteristic_RejectsOversizedSweep(t *testing.T) {
	_, err := Run(device.NewDiode("D1"), curve.NewSweep(0, 1, curve.MaxPoints+1))
	require.ErrorIs(t, err, device.ErrInvalidParameter)
}

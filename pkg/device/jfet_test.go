package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/semisim/pkg/curve"
)

func TestJFET_SquareLaw(t *testing.T) {
	j := NewJFET("J1")
	j.Idss, j.Vp = 10e-3, -4
	j.Vgs = []float64{-2}

	res, err := j.Simulate(curve.NewSweep(0, 5, 201))
	require.NoError(t, err)
	require.Len(t, res.Series, 1)

	s := res.Series[0]
	assert.Equal(t, "Vgs = -2 V", s.Label)
	for k, vds := range s.X {
		if vds >= 2 {
			assert.InDelta(t, 2.5e-3, s.Y[k], 1e-15, "Vds=%g", vds)
		} else {
			assert.InDelta(t, 2.5e-3*vds/2, s.Y[k], 1e-15, "Vds=%g", vds)
		}
	}
	assert.Equal(t, 0.0, s.Y[0])
}

func TestJFET_PinchedOff(t *testing.T) {
	j := NewJFET("J1")
	j.Vp = -4
	j.Vgs = []float64{-4, -4.5, -10}

	res, err := j.Simulate(curve.NewSweep(0, 10, 50))
	require.NoError(t, err)
	for _, s := range res.Series {
		for k := range s.Y {
			assert.Equal(t, 0.0, s.Y[k], "%s at Vds=%g", s.Label, s.X[k])
		}
	}
}

func TestJFET_ContinuousAtSaturationBoundary(t *testing.T) {
	j := NewJFET("J1")
	for _, vp := range []float64{-4, -2.5, -6} {
		j.Vp = vp
		for _, vgs := range []float64{-0.5, -1, -2, 0} {
			if vgs <= vp {
				continue
			}
			boundary := vgs - vp
			k := 1 - vgs/vp
			idsat := j.Idss * k * k

			assert.InDelta(t, idsat, j.DrainCurrent(vgs, boundary), 1e-15)
			assert.InDelta(t, idsat, j.DrainCurrent(vgs, boundary-1e-12), 1e-12)
		}
	}
}

func TestJFET_RegionPerSample(t *testing.T) {
	j := NewJFET("J1")
	j.Vgs = []float64{-1, -3}

	res, err := j.Simulate(j.DefaultSweep())
	require.NoError(t, err)
	require.Len(t, res.Series, 2)

	// Vgs=-1 saturates at Vds=3, Vgs=-3 at Vds=1.
	for i, boundary := range []float64{3, 1} {
		s := res.Series[i]
		var ohmic, sat int
		for k, vds := range s.X {
			if vds < boundary {
				ohmic++
				assert.Less(t, s.Y[k], s.Y[len(s.Y)-1]+1e-18)
			} else {
				sat++
			}
		}
		assert.Positive(t, ohmic)
		assert.Positive(t, sat)
	}
}

func TestJFET_InvalidParameters(t *testing.T) {
	j := NewJFET("J1")
	j.Vp = 0
	_, err := j.Simulate(j.DefaultSweep())
	assert.ErrorIs(t, err, ErrInvalidParameter)

	j = NewJFET("J1")
	j.Vgs = []float64{}
	_, err = j.Simulate(j.DefaultSweep())
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestJFET_ModelCard(t *testing.T) {
	j := NewJFET("J1")
	j.SetModelParameters(map[string]float64{"idss": 5e-3, "vto": -3})
	assert.Equal(t, 5e-3, j.Idss)
	assert.Equal(t, -3.0, j.Vp)
	assert.Equal(t, "J", j.GetType())
}

package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Harness, XPlaneData) {
	h := NewHarness()
	return h, NewDatarefService(newMockLogger(t), h)
}

func TestScalarReadWrite(t *testing.T) {
	h, store := newTestStore(t)
	h.SetDataReff("sim/aircraft/engine/acf_critalt", 3000.5)
	h.SetDataRefd("sim/flightmodel/position/latitude", 51.418441)
	h.SetDataRefi("sim/aircraft/overflow/acf_num_tanks", 2)
	h.SetDataRefi("sim/aircraft/overflow/acf_auto_trimeq", 7)

	critalt := store.GetFloat("sim/aircraft/engine/acf_critalt")
	v, err := critalt.Value()
	require.NoError(t, err)
	assert.Equal(t, float32(3000.5), v)
	require.NoError(t, critalt.SetValue(2500))
	v, _ = critalt.Value()
	assert.Equal(t, float32(2500), v)

	lat, err := store.GetDouble("sim/flightmodel/position/latitude").Value()
	require.NoError(t, err)
	assert.Equal(t, 51.418441, lat)

	tanks, err := store.GetInt("sim/aircraft/overflow/acf_num_tanks").Value()
	require.NoError(t, err)
	assert.Equal(t, 2, tanks)

	trim := store.GetBool("sim/aircraft/overflow/acf_auto_trimeq")
	on, err := trim.Value()
	require.NoError(t, err)
	assert.True(t, on, "any non-zero int reads as true")
	require.NoError(t, trim.SetValue(false))
	assert.Equal(t, 0, h.GetIntData(mustFind(t, h, "sim/aircraft/overflow/acf_auto_trimeq")))
}

func TestArrayReadWrite(t *testing.T) {
	h, store := newTestStore(t)
	h.SetDataRefiv("sim/operation/g430/g430_is_vloc", []int{1, 0})
	h.SetDataReffv("sim/flightmodel/engine/ENGN_N1_", []float32{20.5, 21})
	h.SetDataRefiv("sim/cockpit2/switches/generator_on", []int{0, 1, 1})

	vloc := store.GetBoolArray("sim/operation/g430/g430_is_vloc")
	got, err := vloc.Value()
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, got)
	require.NoError(t, vloc.SetValue([]bool{false, true}))
	assert.Equal(t, []int{0, 1}, h.GetIntArrayData(mustFind(t, h, "sim/operation/g430/g430_is_vloc")))

	n1 := store.GetFloatArray("sim/flightmodel/engine/ENGN_N1_")
	values, err := n1.Value()
	require.NoError(t, err)
	assert.Equal(t, []float32{20.5, 21}, values)

	// reads are copies, not views into host memory
	values[0] = 99
	again, _ := n1.Value()
	assert.Equal(t, float32(20.5), again[0])

	gens, err := store.GetIntArray("sim/cockpit2/switches/generator_on").Value()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, gens)
}

func TestStringAndBytes(t *testing.T) {
	h, store := newTestStore(t)
	h.SetDataRefbv("sim/aircraft/view/acf_tailnum", []byte{'N', '1', '7', '2', 0, 'x'})

	tail := store.GetString("sim/aircraft/view/acf_tailnum")
	s, err := tail.Value()
	require.NoError(t, err)
	assert.Equal(t, "N172", s, "string stops at the first NUL")

	require.NoError(t, tail.SetValue("D-EABC"))
	raw, err := store.GetByteArray("sim/aircraft/view/acf_tailnum").Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("D-EABC\x00"), raw)
}

func TestHandlesAreCached(t *testing.T) {
	b := newCountingBackend()
	b.SetDataReff("sim/aircraft/engine/boost_ratio", 0.5)
	store := NewDatarefService(newMockLogger(t), b)

	first := store.GetFloat("sim/aircraft/engine/boost_ratio")
	second := store.GetFloat("sim/aircraft/engine/boost_ratio")
	assert.Same(t, first, second)

	for i := 0; i < 3; i++ {
		_, err := first.Value()
		require.NoError(t, err)
	}
	_, err := store.GetInt("sim/aircraft/engine/boost_ratio").Value()
	assert.Error(t, err)
	assert.Equal(t, 1, b.finds["sim/aircraft/engine/boost_ratio"], "host ref is looked up once per key")
}

func TestNotFoundIsRetried(t *testing.T) {
	b := newCountingBackend()
	store := NewDatarefService(newMockLogger(t), b)
	h := store.GetFloat("laminar/B738/fms/vref")

	_, err := h.Value()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResolution)
	assert.ErrorIs(t, err, ErrNotFound)
	var resErr *ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, "laminar/B738/fms/vref", resErr.Dataref)

	// registered later by another plugin
	b.SetDataReff("laminar/B738/fms/vref", 141)
	v, err := h.Value()
	require.NoError(t, err)
	assert.Equal(t, float32(141), v)
	assert.Equal(t, 2, b.finds["laminar/B738/fms/vref"])
}

func TestTypeMismatch(t *testing.T) {
	h, store := newTestStore(t)
	h.SetDataRefi("sim/aircraft/overflow/acf_num_tanks", 2)

	_, err := store.GetFloat("sim/aircraft/overflow/acf_num_tanks").Value()
	assert.ErrorIs(t, err, ErrResolution)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.NotErrorIs(t, err, ErrNotFound)

	err = store.GetFloatArray("sim/aircraft/overflow/acf_num_tanks").SetValue([]float32{1})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMultiTypedRef(t *testing.T) {
	h, store := newTestStore(t)
	h.SetDataReff("sim/flightmodel/position/elevation", 100)
	h.SetDataRefd("sim/flightmodel/position/elevation", 100.25)

	f, err := store.GetFloat("sim/flightmodel/position/elevation").Value()
	require.NoError(t, err)
	d, err := store.GetDouble("sim/flightmodel/position/elevation").Value()
	require.NoError(t, err)
	assert.Equal(t, float32(100), f)
	assert.Equal(t, 100.25, d)
}

func TestReadOnly(t *testing.T) {
	h, store := newTestStore(t)
	h.SetDataReff("sim/aircraft/limits/red_hi_egt", 850)
	h.SetReadOnly("sim/aircraft/limits/red_hi_egt")

	egt := store.GetFloat("sim/aircraft/limits/red_hi_egt")
	writable, err := egt.Writable()
	require.NoError(t, err)
	assert.False(t, writable)

	err = egt.SetValue(900)
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.NotErrorIs(t, err, ErrResolution)
	v, _ := egt.Value()
	assert.Equal(t, float32(850), v)
}

func TestTypeMaskIsRefreshed(t *testing.T) {
	h, store := newTestStore(t)
	h.SetDataRefi("sim/flightmodel/position/elevation", 100)

	_, err := store.GetFloat("sim/flightmodel/position/elevation").Value()
	require.ErrorIs(t, err, ErrTypeMismatch)

	// the same ref gains a float after it was first resolved
	h.SetDataReff("sim/flightmodel/position/elevation", 100.5)
	v, err := store.GetFloat("sim/flightmodel/position/elevation").Value()
	require.NoError(t, err)
	assert.Equal(t, float32(100.5), v)

	i, err := store.GetInt("sim/flightmodel/position/elevation").Value()
	require.NoError(t, err)
	assert.Equal(t, 100, i)
}

// strictArrayBackend indexes element zero on every array write the way the
// goplane bindings do.
type strictArrayBackend struct {
	*Harness
}

func (s strictArrayBackend) SetIntArrayData(ref Ref, values []int) {
	_ = &values[0]
	s.Harness.SetIntArrayData(ref, values)
}

func (s strictArrayBackend) SetFloatArrayData(ref Ref, values []float32) {
	_ = &values[0]
	s.Harness.SetFloatArrayData(ref, values)
}

func (s strictArrayBackend) SetData(ref Ref, values []byte) {
	_ = &values[0]
	s.Harness.SetData(ref, values)
}

func TestEmptyArrayWrites(t *testing.T) {
	h := NewHarness()
	h.SetDataRefiv("sim/operation/g430/g430_is_vloc", []int{1, 0})
	h.SetDataRefiv("sim/cockpit2/switches/generator_on", []int{0, 1})
	h.SetDataReffv("sim/flightmodel/engine/ENGN_N1_", []float32{20.5})
	h.SetDataRefbv("sim/aircraft/view/acf_tailnum", []byte("N172\x00"))
	h.SetDataReffv("sim/test/empty", []float32{})
	store := NewDatarefService(newMockLogger(t), strictArrayBackend{h})

	assert.NotPanics(t, func() {
		require.NoError(t, store.GetBoolArray("sim/operation/g430/g430_is_vloc").SetValue(nil))
		require.NoError(t, store.GetIntArray("sim/cockpit2/switches/generator_on").SetValue([]int{}))
		require.NoError(t, store.GetFloatArray("sim/flightmodel/engine/ENGN_N1_").SetValue(nil))
		require.NoError(t, store.GetByteArray("sim/aircraft/view/acf_tailnum").SetValue(nil))
	})

	vloc, _ := store.GetBoolArray("sim/operation/g430/g430_is_vloc").Value()
	assert.Equal(t, []bool{true, false}, vloc)
	tail, _ := store.GetString("sim/aircraft/view/acf_tailnum").Value()
	assert.Equal(t, "N172", tail)

	empty, err := store.GetFloatArray("sim/test/empty").Value()
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestHandleName(t *testing.T) {
	_, store := newTestStore(t)
	assert.Equal(t, "sim/aircraft/engine/acf_rsc_mingov_eng", store.GetFloat("sim/aircraft/engine/acf_rsc_mingov_eng").Name())
}

func TestDataRoundup(t *testing.T) {
	assert.Equal(t, 1.23456, dataRoundup(1.23456, -1))
	assert.Equal(t, 1.23, dataRoundup(1.23456, 2))
	assert.Equal(t, 1.0, dataRoundup(1.23456, 0))
}

func mustFind(t *testing.T, h *Harness, name string) Ref {
	t.Helper()
	ref, ok := h.FindDataRef(name)
	require.True(t, ok, name)
	return ref
}

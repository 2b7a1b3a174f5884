package sparsevec_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/sparsekit/compensated"
	"github.com/katalvlaran/sparsekit/sparsevec"
)

func TestSquaredNorm(t *testing.T) {
	v := sparsevec.New[sparsevec.Plain](dim)
	seed(v, entry{1, 3.0}, entry{4, 4.0})

	require.Equal(t, 25.0, v.SquaredNorm().Float64())
}

func TestSquaredNormEmpty(t *testing.T) {
	v := sparsevec.New[sparsevec.Plain](dim)
	require.Equal(t, 0.0, v.SquaredNorm().Float64())
}

func TestSaxpy(t *testing.T) {
	y := sparsevec.New[sparsevec.Plain](dim)
	x := sparsevec.New[sparsevec.Plain](dim)
	seed(y, entry{0, 1.0}, entry{2, 2.0})
	seed(x, entry{2, 10.0}, entry{5, 100.0})

	y.Saxpy(2.0, x)

	// Overlap at 2: 2 + 2*10 = 22; fill-in at 5: 2*100 = 200.
	require.Equal(t, 22.0, y.At(2).Float64())
	require.Equal(t, 200.0, y.At(5).Float64())
	require.Equal(t, 1.0, y.At(0).Float64())
	require.Equal(t, 3, y.NonZeroCount())
	require.Contains(t, y.Indices(), 5)
}

func TestSaxpyEmptyOperand(t *testing.T) {
	y := sparsevec.New[sparsevec.Plain](dim)
	x := sparsevec.New[sparsevec.Plain](dim)
	seed(y, entry{0, 1.0})

	y.Saxpy(3.0, x)

	require.Equal(t, 1, y.NonZeroCount())
	require.Equal(t, 1.0, y.At(0).Float64())
}

func TestSaxpyFlushTolerance(t *testing.T) {
	y := sparsevec.New[sparsevec.Plain](dim, sparsevec.WithFlushTolerance(1e-12))
	x := sparsevec.New[sparsevec.Plain](dim)
	seed(y, entry{3, 1.0})
	seed(x, entry{3, -1.0})

	y.Saxpy(1.0, x)

	// The cancellation result lands below the tolerance and is flushed to
	// the exact zero; the index remains tracked.
	require.True(t, y.At(3).IsZero())
	require.Equal(t, []int{3}, y.Indices())
}

func TestSaxpyNoFlushByDefault(t *testing.T) {
	y := sparsevec.New[sparsevec.Plain](dim)
	x := sparsevec.New[sparsevec.Plain](dim)
	seed(x, entry{3, 1e-15})

	y.Saxpy(1.0, x)

	// Without a configured tolerance the tiny result survives verbatim.
	require.Equal(t, 1e-15, y.At(3).Float64())
	require.Equal(t, []int{3}, y.Indices())
}

func TestSaxpyDimensionContract(t *testing.T) {
	y := sparsevec.New[sparsevec.Plain](dim)
	x := sparsevec.New[sparsevec.Plain](dim + 1)

	require.Panics(t, func() { y.Saxpy(1.0, x) })
}

func TestAddVecSubVec(t *testing.T) {
	a := sparsevec.New[sparsevec.Plain](dim)
	b := sparsevec.New[sparsevec.Plain](dim)
	seed(a, entry{0, 5.0})
	seed(b, entry{0, 2.0}, entry{1, 3.0})

	a.AddVec(b)
	require.Equal(t, 7.0, a.At(0).Float64())
	require.Equal(t, 3.0, a.At(1).Float64())

	a.SubVec(b)
	require.Equal(t, 5.0, a.At(0).Float64())
	require.Equal(t, 0.0, a.At(1).Float64())
}

func TestCopyFrom(t *testing.T) {
	src := sparsevec.New[sparsevec.Plain](dim)
	dst := sparsevec.New[sparsevec.Plain](dim)
	seed(src, entry{2, 10.0}, entry{7, -4.0})
	src.SetClockTick(3)
	seed(dst, entry{0, 99.0}) // pre-existing content must vanish

	dst.CopyFrom(src)

	require.True(t, dst.Equal(src))
	require.Equal(t, 10.0, dst.At(2).Float64())
	require.True(t, dst.At(0).IsZero())
	require.Equal(t, 3.0, dst.ClockTick())
}

func TestCopyFromDimensionContract(t *testing.T) {
	src := sparsevec.New[sparsevec.Plain](dim)
	dst := sparsevec.New[sparsevec.Plain](dim * 2)

	require.Panics(t, func() { dst.CopyFrom(src) })
}

func TestEqual(t *testing.T) {
	a := sparsevec.New[sparsevec.Plain](dim)
	b := sparsevec.New[sparsevec.Plain](dim)
	seed(a, entry{1, 2.0})
	seed(b, entry{1, 2.0})

	require.True(t, a.Equal(b))

	// Equality is replay-grade: a differing tick breaks it even with
	// identical data.
	b.SetClockTick(1)
	require.False(t, a.Equal(b))
	b.SetClockTick(0)
	require.True(t, a.Equal(b))

	b.Set(1, 2.5)
	require.False(t, a.Equal(b))
}

func TestEqualDimensionAndCount(t *testing.T) {
	a := sparsevec.New[sparsevec.Plain](dim)
	c := sparsevec.New[sparsevec.Plain](dim + 1)
	require.False(t, a.Equal(c))

	b := sparsevec.New[sparsevec.Plain](dim)
	seed(b, entry{1, 2.0})
	require.False(t, a.Equal(b))
}

func TestConvertWidening(t *testing.T) {
	src := sparsevec.New[sparsevec.Plain](dim)
	dst := sparsevec.New[compensated.Double](dim)
	seed(src, entry{2, 1.5}, entry{6, -8.0})
	src.SetClockTick(5)

	sparsevec.Convert(dst, src, func(p sparsevec.Plain) compensated.Double {
		return compensated.New(p.Float64())
	})

	require.Equal(t, 2, dst.NonZeroCount())
	require.Equal(t, []int{2, 6}, dst.Indices())
	require.Equal(t, 1.5, dst.At(2).Float64())
	require.Equal(t, -8.0, dst.At(6).Float64())
	require.Equal(t, 5.0, dst.ClockTick())
}

func TestConvertDimensionContract(t *testing.T) {
	src := sparsevec.New[sparsevec.Plain](dim)
	dst := sparsevec.New[compensated.Double](dim + 1)

	require.Panics(t, func() {
		sparsevec.Convert(dst, src, func(p sparsevec.Plain) compensated.Double {
			return compensated.New(p.Float64())
		})
	})
}

// CompensatedVectorSuite runs the vector surface over the compensated
// element type, where arithmetic carries the error term through.
type CompensatedVectorSuite struct {
	suite.Suite
	vec *sparsevec.Vector[compensated.Double]
}

func (s *CompensatedVectorSuite) SetupTest() {
	s.vec = sparsevec.New[compensated.Double](dim)
}

// fill seeds the compensated vector through Set and a rebuild.
func (s *CompensatedVectorSuite) fill(entries ...entry) {
	for _, e := range entries {
		s.vec.Set(e.idx, compensated.New(e.val))
	}
	s.vec.InvalidateIndices()
	s.vec.RebuildIndices()
}

func (s *CompensatedVectorSuite) TestSaxpyCompensated() {
	s.fill(entry{0, 1.0}, entry{1, 2.0})

	x := sparsevec.New[compensated.Double](dim)
	x.Set(1, compensated.New(4.0))
	x.Set(2, compensated.New(6.0))
	x.InvalidateIndices()
	x.RebuildIndices()

	s.vec.Saxpy(compensated.New(0.5), x)

	require.Equal(s.T(), 1.0, s.vec.At(0).Float64())
	require.Equal(s.T(), 4.0, s.vec.At(1).Float64()) // 2 + 0.5*4
	require.Equal(s.T(), 3.0, s.vec.At(2).Float64()) // fill-in 0.5*6
	require.Equal(s.T(), 3, s.vec.NonZeroCount())
}

func (s *CompensatedVectorSuite) TestSaxpyKeepsResidual() {
	s.fill(entry{0, 1.0})

	x := sparsevec.New[compensated.Double](dim)
	x.Set(0, compensated.New(1e-19))
	x.InvalidateIndices()
	x.RebuildIndices()

	s.vec.Saxpy(compensated.New(1.0), x)

	// 1 + 1e-19 is invisible in float64; the compensated slot keeps it.
	hi, lo := s.vec.At(0).Components()
	require.Equal(s.T(), 1.0, hi)
	require.InDelta(s.T(), 1e-19, lo, 1e-25)
}

func (s *CompensatedVectorSuite) TestSquaredNorm() {
	s.fill(entry{3, 3.0}, entry{8, 4.0})
	require.Equal(s.T(), 25.0, s.vec.SquaredNorm().Float64())
}

func (s *CompensatedVectorSuite) TestPrune() {
	s.fill(entry{0, 2.0}, entry{1, 1e-14})

	s.vec.PruneSmallValues(1e-10)

	require.Equal(s.T(), 1, s.vec.NonZeroCount())
	require.True(s.T(), s.vec.At(1).IsZero())
	require.Equal(s.T(), 2.0, s.vec.At(0).Float64())
}

func (s *CompensatedVectorSuite) TestCopyFrom() {
	s.fill(entry{4, 7.5})

	dst := sparsevec.New[compensated.Double](dim)
	dst.CopyFrom(s.vec)

	require.True(s.T(), dst.Equal(s.vec))
	require.Equal(s.T(), 7.5, dst.At(4).Float64())
}

func TestCompensatedVectorSuite(t *testing.T) {
	suite.Run(t, new(CompensatedVectorSuite))
}

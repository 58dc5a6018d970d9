package lane

import "testing"

func TestMaxLanesMatchesWidth(t *testing.T) {
	if got, want := MaxLanes[float32](), CurrentWidth()/4; got != want {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, want)
	}
	if got, want := MaxLanes[float64](), CurrentWidth()/8; got != want {
		t.Errorf("MaxLanes[float64]() = %d, want %d", got, want)
	}
	if MaxLanes[float32]() < 4 {
		t.Errorf("MaxLanes[float32]() = %d, want at least 4", MaxLanes[float32]())
	}
}

func TestLoadStoreRoundTrip(t *testing.T) {
	src := make([]float32, MaxLanes[float32]())
	for i := range src {
		src[i] = float32(i + 1)
	}
	v := Load(src)
	if v.NumLanes() != MaxLanes[float32]() {
		t.Fatalf("NumLanes() = %d, want %d", v.NumLanes(), MaxLanes[float32]())
	}

	dst := make([]float32, len(src))
	Store(v, dst)
	for i := 0; i < v.NumLanes(); i++ {
		if dst[i] != src[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestLoadShortSlice(t *testing.T) {
	src := []float32{1, 2}
	v := Load(src)
	if v.NumLanes() != 2 {
		t.Fatalf("NumLanes() = %d, want 2", v.NumLanes())
	}
	if v.Data()[0] != 1 || v.Data()[1] != 2 {
		t.Errorf("Data() = %v, want [1 2]", v.Data())
	}
}

func TestArithmetic(t *testing.T) {
	a := Load([]float32{1, 2, 3, 4})
	b := Load([]float32{4, 3, 2, 1})

	checkLanes := func(name string, v Vec[float32], want []float32) {
		t.Helper()
		for i, w := range want {
			if i >= v.NumLanes() {
				break
			}
			if v.Data()[i] != w {
				t.Errorf("%s lane %d = %v, want %v", name, i, v.Data()[i], w)
			}
		}
	}

	checkLanes("Add", Add(a, b), []float32{5, 5, 5, 5})
	checkLanes("Sub", Sub(a, b), []float32{-3, -1, 1, 3})
	checkLanes("Mul", Mul(a, b), []float32{4, 6, 6, 4})
	checkLanes("Div", Div(a, b), []float32{0.25, 2.0 / 3.0, 1.5, 4})
	checkLanes("Min", Min(a, b), []float32{1, 2, 2, 1})
	checkLanes("Max", Max(a, b), []float32{4, 3, 3, 4})
	checkLanes("MulAdd", MulAdd(a, b, Set[float32](1)), []float32{5, 7, 7, 5})
}

func TestReduceSum(t *testing.T) {
	v := Load([]float32{1, 2, 3, 4})
	// Only the first four lanes are populated from the slice; wider
	// vectors shorten to the slice length.
	if got := ReduceSum(v); got != 10 {
		t.Errorf("ReduceSum = %v, want 10", got)
	}
	if got := ReduceSum(Zero[float32]()); got != 0 {
		t.Errorf("ReduceSum(Zero) = %v, want 0", got)
	}
}

func TestGtIfThenElseZero(t *testing.T) {
	x := Load([]float32{-1, 0, 2, 3})
	g := Load([]float32{10, 20, 30, 40})

	masked := IfThenElseZero(Gt(x, Zero[float32]()), g)
	want := []float32{0, 0, 30, 40}
	for i, w := range want {
		if masked.Data()[i] != w {
			t.Errorf("lane %d = %v, want %v", i, masked.Data()[i], w)
		}
	}
}

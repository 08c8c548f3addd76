package transforms

import (
	"fmt"
	"math/rand"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"
)

const nmfEpsilon = 1e-9

// NMF factorizes the image into two low-rank non-negative factors with
// multiplicative updates and uses the reconstruction W*H as the feature
// map. The seeded initialization and the iteration cap keep repeated runs
// identical and bounded.
type NMF struct {
	components int
	iterations int
	seed       int64
}

func NewNMF(components, iterations int, seed int64) *NMF {
	return &NMF{
		components: components,
		iterations: iterations,
		seed:       seed,
	}
}

func (n *NMF) Name() string {
	return "nmf"
}

func (n *NMF) Apply(input gocv.Mat) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.NewMat(), fmt.Errorf("nmf: input image is empty")
	}

	v := matToDense(input)
	rows, cols := v.Dims()

	k := n.components
	if k > rows {
		k = rows
	}
	if k > cols {
		k = cols
	}
	if k < 1 {
		return gocv.NewMat(), fmt.Errorf("nmf: image too small for factorization")
	}

	rng := rand.New(rand.NewSource(n.seed))
	w := randomFactor(rows, k, rng)
	h := randomFactor(k, cols, rng)

	for iter := 0; iter < n.iterations; iter++ {
		// H <- H * (Wt V) / (Wt W H)
		var wtv, wtw, wtwh mat.Dense
		wtv.Mul(w.T(), v)
		wtw.Mul(w.T(), w)
		wtwh.Mul(&wtw, h)
		scaleFactor(h, &wtv, &wtwh)

		// W <- W * (V Ht) / (W H Ht)
		var vht, hht, whht mat.Dense
		vht.Mul(v, h.T())
		hht.Mul(h, h.T())
		whht.Mul(w, &hht)
		scaleFactor(w, &vht, &whht)
	}

	var recon mat.Dense
	recon.Mul(w, h)

	return denseToMat8U(&recon), nil
}

func randomFactor(rows, cols int, rng *rand.Rand) *mat.Dense {
	d := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			d.Set(y, x, rng.Float64()+nmfEpsilon)
		}
	}
	return d
}

// scaleFactor applies the multiplicative update target *= numer/denom
// element-wise, guarding against division by zero.
func scaleFactor(target, numer, denom *mat.Dense) {
	rows, cols := target.Dims()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			target.Set(y, x, target.At(y, x)*numer.At(y, x)/(denom.At(y, x)+nmfEpsilon))
		}
	}
}

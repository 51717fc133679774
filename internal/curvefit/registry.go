package curvefit

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ModelID names one of the supported function families. The set is
// closed: models are neither added nor removed at runtime.
type ModelID string

const (
	LinearOrigin ModelID = "linear_ax"   // y = a*x
	Linear       ModelID = "linear_ax_b" // y = a*x + b
	Quadratic    ModelID = "quad"        // y = a*x^2 + b*x + c
	Cubic        ModelID = "cubic"       // y = a*x^3 + b*x^2 + c*x + d
	LogBase      ModelID = "log_n"       // y = log_n(x)
	LogLinear    ModelID = "ln_ab"       // y = a*ln(x) + b
	Exponential  ModelID = "exp_ab"      // y = a*exp(b*x)
	Power        ModelID = "power_ab"    // y = a*x^b
	Reciprocal   ModelID = "recip_ab"    // y = a/x + b
)

// Model is an immutable descriptor of one fittable family.
type Model struct {
	ID         ModelID
	ParamNames []string

	// Eval computes the model value at x for the given parameter
	// vector, ordered as ParamNames.
	Eval func(x float64, p []float64) float64

	// InDomain reports whether an x value is admissible for this
	// family. Applied pointwise before fitting.
	InDomain func(x float64) bool

	// Guess produces the initial parameter vector from the
	// domain-filtered samples: the exact least-squares solution where
	// the model is linear in its parameters, a linearizing-transform
	// regression otherwise.
	Guess func(x, y []float64) []float64
}

// Registry is the fixed catalog of fittable families, built once at
// process start and read-only afterwards.
type Registry struct {
	models map[ModelID]Model
	order  []ModelID
}

// Lookup resolves a model id.
func (r *Registry) Lookup(id ModelID) (Model, bool) {
	m, ok := r.models[id]
	return m, ok
}

// IDs returns the catalog's model ids in registration order.
func (r *Registry) IDs() []ModelID {
	out := make([]ModelID, len(r.order))
	copy(out, r.order)
	return out
}

// NewRegistry builds the nine-family catalog.
func NewRegistry() *Registry {
	r := &Registry{models: make(map[ModelID]Model)}
	for _, m := range []Model{
		{
			ID:         LinearOrigin,
			ParamNames: []string{"a"},
			Eval:       func(x float64, p []float64) float64 { return p[0] * x },
			InDomain:   finite,
			Guess: func(x, y []float64) []float64 {
				_, beta := stat.LinearRegression(x, y, nil, true)
				return []float64{beta}
			},
		},
		{
			ID:         Linear,
			ParamNames: []string{"a", "b"},
			Eval:       func(x float64, p []float64) float64 { return p[0]*x + p[1] },
			InDomain:   finite,
			Guess: func(x, y []float64) []float64 {
				alpha, beta := stat.LinearRegression(x, y, nil, false)
				return []float64{beta, alpha}
			},
		},
		{
			ID:         Quadratic,
			ParamNames: []string{"a", "b", "c"},
			Eval: func(x float64, p []float64) float64 {
				return p[0]*x*x + p[1]*x + p[2]
			},
			InDomain: finite,
			Guess:    func(x, y []float64) []float64 { return polyGuess(x, y, 2) },
		},
		{
			ID:         Cubic,
			ParamNames: []string{"a", "b", "c", "d"},
			Eval: func(x float64, p []float64) float64 {
				return p[0]*x*x*x + p[1]*x*x + p[2]*x + p[3]
			},
			InDomain: finite,
			Guess:    func(x, y []float64) []float64 { return polyGuess(x, y, 3) },
		},
		{
			ID:         LogBase,
			ParamNames: []string{"n"},
			Eval: func(x float64, p []float64) float64 {
				return math.Log(x) / math.Log(p[0])
			},
			InDomain: positive,
			Guess:    func(x, y []float64) []float64 { return []float64{math.E} },
		},
		{
			ID:         LogLinear,
			ParamNames: []string{"a", "b"},
			Eval: func(x float64, p []float64) float64 {
				return p[0]*math.Log(x) + p[1]
			},
			InDomain: positive,
			Guess: func(x, y []float64) []float64 {
				lx := make([]float64, len(x))
				for i, v := range x {
					lx[i] = math.Log(v)
				}
				alpha, beta := stat.LinearRegression(lx, y, nil, false)
				return []float64{beta, alpha}
			},
		},
		{
			ID:         Exponential,
			ParamNames: []string{"a", "b"},
			Eval: func(x float64, p []float64) float64 {
				return p[0] * math.Exp(p[1]*x)
			},
			InDomain: finite,
			Guess:    expGuess,
		},
		{
			ID:         Power,
			ParamNames: []string{"a", "b"},
			Eval: func(x float64, p []float64) float64 {
				return p[0] * math.Pow(x, p[1])
			},
			InDomain: positive,
			Guess:    powerGuess,
		},
		{
			ID:         Reciprocal,
			ParamNames: []string{"a", "b"},
			Eval: func(x float64, p []float64) float64 {
				return p[0]/x + p[1]
			},
			InDomain: func(x float64) bool { return finite(x) && x != 0 },
			Guess: func(x, y []float64) []float64 {
				inv := make([]float64, len(x))
				for i, v := range x {
					inv[i] = 1 / v
				}
				alpha, beta := stat.LinearRegression(inv, y, nil, false)
				return []float64{beta, alpha}
			},
		},
	} {
		r.models[m.ID] = m
		r.order = append(r.order, m.ID)
	}
	return r
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func positive(x float64) bool {
	return finite(x) && x > 0
}

// polyGuess solves the degree-d polynomial least-squares problem
// exactly via a Vandermonde matrix and QR factorization. Coefficients
// come back highest degree first, matching the parameter order of the
// polynomial families.
func polyGuess(x, y []float64, degree int) []float64 {
	a := vandermonde(x, degree)
	b := mat.NewVecDense(len(y), y)
	c := mat.NewVecDense(degree+1, nil)

	var qr mat.QR
	qr.Factorize(a)
	if err := qr.SolveVecTo(c, false, b); err != nil {
		// Singular system: let the iterative stage start from a flat
		// curve instead of failing the whole fit here.
		return make([]float64, degree+1)
	}

	coeffs := make([]float64, degree+1)
	for i := 0; i <= degree; i++ {
		coeffs[degree-i] = c.AtVec(i)
	}
	return coeffs
}

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}

// expGuess linearizes y = a*exp(b*x) as ln|y| = ln|a| + b*x over the
// points with y != 0; the sign of a follows the data.
func expGuess(x, y []float64) []float64 {
	var xs, ls []float64
	pos, neg := 0, 0
	for i, v := range y {
		if v == 0 || !finite(v) {
			continue
		}
		if v > 0 {
			pos++
		} else {
			neg++
		}
		xs = append(xs, x[i])
		ls = append(ls, math.Log(math.Abs(v)))
	}
	if len(xs) < 2 {
		return []float64{1, 0}
	}
	alpha, beta := stat.LinearRegression(xs, ls, nil, false)
	a := math.Exp(alpha)
	if neg > pos {
		a = -a
	}
	return []float64{a, beta}
}

// powerGuess linearizes y = a*x^b as ln y = ln a + b*ln x over the
// points with y > 0 (x > 0 is already guaranteed by the domain filter).
func powerGuess(x, y []float64) []float64 {
	var lx, ly []float64
	for i, v := range y {
		if v <= 0 || !finite(v) {
			continue
		}
		lx = append(lx, math.Log(x[i]))
		ly = append(ly, math.Log(v))
	}
	if len(lx) < 2 {
		return []float64{1, 1}
	}
	alpha, beta := stat.LinearRegression(lx, ly, nil, false)
	return []float64{math.Exp(alpha), beta}
}

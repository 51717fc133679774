package curvefit

import (
	"math"

	"github.com/maorshutman/lm"

	"github.com/psikora/spectra/pkg/errs"
)

// DefaultMaxIterations bounds the Levenberg-Marquardt refinement so an
// ill-conditioned dataset degrades into a FitError instead of an
// unbounded loop.
const DefaultMaxIterations = 200

// Result is the outcome of a successful fit. XUsed/YUsed are the
// samples that survived domain filtering, in input order; YFit is
// aligned index-for-index with XUsed.
type Result struct {
	Parameters    map[string]float64
	XUsed         []float64
	YUsed         []float64
	YFit          []float64
	ExcludedCount int
	Converged     bool
}

// Engine fits datasets against an injected, immutable model registry.
// Every Fit call is a pure function of its inputs; the engine holds no
// per-call state.
type Engine struct {
	registry      *Registry
	maxIterations int
}

// NewEngine wires an Engine to a registry. maxIterations <= 0 selects
// DefaultMaxIterations.
func NewEngine(registry *Registry, maxIterations int) *Engine {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &Engine{registry: registry, maxIterations: maxIterations}
}

// Fit resolves the model, drops samples outside its domain, seeds the
// solver with the model's closed-form or linearized guess, and refines
// with bounded Levenberg-Marquardt least squares.
func (e *Engine) Fit(ds *Dataset, id ModelID) (*Result, error) {
	model, ok := e.registry.Lookup(id)
	if !ok {
		return nil, errs.Validation("unknown function type %q", id)
	}

	xUsed := make([]float64, 0, len(ds.X))
	yUsed := make([]float64, 0, len(ds.Y))
	for i, x := range ds.X {
		if !model.InDomain(x) {
			continue
		}
		xUsed = append(xUsed, x)
		yUsed = append(yUsed, ds.Y[i])
	}
	excluded := len(ds.X) - len(xUsed)

	minPoints := len(model.ParamNames)
	if minPoints < 2 {
		minPoints = 2
	}
	if len(xUsed) < minPoints {
		return nil, errs.Domain("insufficient valid points: %d remain after domain filtering, %s needs at least %d",
			len(xUsed), id, minPoints)
	}

	guess := model.Guess(xUsed, yUsed)
	if !allFinite(guess) {
		return nil, errs.Fit("did not converge")
	}

	residuals := func(dst, p []float64) {
		for i, x := range xUsed {
			dst[i] = model.Eval(x, p) - yUsed[i]
		}
	}
	jac := lm.NumJac{Func: residuals}
	problem := lm.LMProblem{
		Dim:        len(model.ParamNames),
		Size:       len(xUsed),
		Func:       residuals,
		Jac:        jac.Jac,
		InitParams: guess,
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}
	results, err := lm.LM(problem, &lm.Settings{
		Iterations:   e.maxIterations,
		ObjectiveTol: 1e-16,
	})
	if err != nil || !allFinite(results.X) {
		return nil, errs.Fit("did not converge")
	}

	params := make(map[string]float64, len(model.ParamNames))
	for i, name := range model.ParamNames {
		params[name] = results.X[i]
	}
	yFit := make([]float64, len(xUsed))
	for i, x := range xUsed {
		yFit[i] = model.Eval(x, results.X)
	}
	if !allFinite(yFit) {
		return nil, errs.Fit("did not converge")
	}

	return &Result{
		Parameters:    params,
		XUsed:         xUsed,
		YUsed:         yUsed,
		YFit:          yFit,
		ExcludedCount: excluded,
		Converged:     true,
	}, nil
}

func allFinite(v []float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Package orchestration runs calculators over a range of n concurrently,
// cross-checks the results against the closed form and compares methods. It
// decouples the computation from presentation via the ProgressReporter and
// ResultPresenter interfaces.
package orchestration

// Package calibration sweeps the floating tolerance of the trigonometric
// method against the exact method and reports the band of tolerances for
// which both agree on every n.
package calibration

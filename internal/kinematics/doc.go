// Package kinematics implements the analytic physics models. Every model
// evaluates closed-form formulas at an arbitrary time rather than stepping
// an integrator, so scrubbing to any instant and re-running from a saved
// parameter set reproduce bit-identical states regardless of tick
// granularity. Angles are radians throughout.
package kinematics

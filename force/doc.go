// SPDX-License-Identifier: MIT
// Package: netalgo/force

// Package force is the shared machinery behind every iterative layout:
// vector helpers, a degenerate-pair guard, motion clamping to the canvas box
// and a Simulator that drives force computation, displacement, clamping,
// frame recording and convergence detection.
//
// State machine of one run:
//
//	Initializing -> Iterating -> Converged
//	                          -> MaxIterationsReached
//
// A run is Converged when the largest force magnitude of an iteration falls
// below Epsilon; it reaches MaxIterationsReached after MaxIterations
// iterations otherwise. Every iteration records one PositionFrame, so the
// last frame is always the final placement.
//
// Clamping follows the motion vector: a vertex moving from p towards a
// target outside the box stops where the segment p->target leaves the box,
// instead of being snapped axis by axis.
package force

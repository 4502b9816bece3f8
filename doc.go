// Package rebalance computes how to allocate new investment funds across a
// small set of asset classes so that a portfolio converges toward
// operator-declared target ratios, while tolerating small deviations instead
// of chasing them.
//
// The core functionalities include:
//   - Gap Analysis: For each asset class, the distance between its current
//     value and the amount it should hold at its target ratio, classified
//     against a tolerance band so that small drifts are deliberately ignored.
//   - Allocation: Splitting new funds across asset classes, routing money
//     first to under-target, out-of-tolerance assets, and falling back to the
//     steady-state target mix when nothing is urgently underweight.
//   - Projection: The post-allocation balances and ratios, reported against
//     the targets.
//   - Gains: Unrealized profit and loss per asset class and in aggregate,
//     computed from current value against cost basis.
//   - Sentiment: An advisory tier derived from an externally fetched market
//     fear index. It is reported alongside the numbers and never feeds the
//     allocation.
//
// Every computation is a pure function of an immutable Portfolio snapshot:
// there is no persistent state, no I/O and no caching inside this package.
// This package serves as the foundational logic for the `prb` command-line
// tool.
package rebalance

// SPDX-License-Identifier: MIT

package kabsch

// Test bridge: exposes unexported helpers to package kabsch_test only.
var (
	// ExportedNewTransform builds a Transform from explicit parts so tests can
	// compare Estimate's result against perturbed candidates.
	ExportedNewTransform = newTransform

	ExportedGatherOptions = gatherOptions
)

// EpsOf returns the resolved relative degeneracy tolerance.
func (o Options) EpsOf() float64 { return o.eps }

// RankTolOf returns the resolved rank tolerance.
func (o Options) RankTolOf() float64 { return o.rankTol }

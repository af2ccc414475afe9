// SPDX-License-Identifier: MIT

package algebra

// VisitTarget exposes the distributed routing step to tests.
var VisitTarget = visitTarget[float64]

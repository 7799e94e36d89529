// Package opticore is the entry point for the operations-research solver
// core: linear programming, transportation, and network optimization,
// unified behind one instrumented Solve* surface per family.
//
// Each call is assigned a run ID (uuid) so every log line it emits can be
// correlated end to end, and is measured through pkg/metrics under its
// family and method. This mirrors the request lifecycle the teacher's
// gRPC service layer wraps around its algorithm calls — validate, run,
// record, return — without the gRPC transport itself: per SPEC_FULL.md
// §6, the core's external interface is plain Go functions/types, and a
// JSON/HTTP/gRPC adapter sits outside this module's scope.
package opticore

// Family identifies which solver family handled a request. It is the
// label every log line and metric emitted by this package carries.
type Family string

const (
	FamilyLP        Family = "lp"
	FamilyTransport Family = "transport"
	FamilyNetwork   Family = "network"
)

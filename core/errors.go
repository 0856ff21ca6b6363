package core

import "errors"

// ErrStructureViolation is returned when an edit would violate a structural
// invariant of the graph: editing the dependencies of Off, On, or a Lever
// (none of which may ever gain a dependency), or wiring a gate to depend on
// itself directly.
//
// Triggers:
//   - AppendDep or ReplaceDepAt targeting gate.Off, gate.On, or a Lever gate.
//   - AppendDep or ReplaceDepAt whose new dependency equals the gate itself.
//
// Usage: callers that build gates programmatically from untrusted shapes
// should branch on errors.Is(err, ErrStructureViolation) rather than
// comparing error strings.
var ErrStructureViolation = errors.New("core: structure violation")

// ErrIndexBounds is returned when a gate.Index used as an argument falls
// outside the graph's current range.
//
// Triggers:
//   - AppendDep or ReplaceDepAt given an out-of-range index.
//
// Output and Probe do not check their bit indices and never report this
// error.
var ErrIndexBounds = errors.New("core: index out of bounds")

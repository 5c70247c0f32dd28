// Package registry defines the handler-lookup contract consumed by
// cortex's Executor, and the chain-of-successors data that accompanies
// each registered handler.
//
// Serialization of command input/output, and the mechanism by which an
// application builds and populates a Registry, are both outside
// cortex's core — Registry is consumed purely as a name-to-Definition
// lookup. What IS part of the core is how a Definition's Chain is read
// at terminal-transition time to enqueue successor commands.
package registry

// Package catalog owns the persisted collection of agent records. The
// catalog is a single JSON document holding an ordered sequence of agents;
// every operation performs a full load-mutate-persist cycle against it, so
// there is no in-memory state to drift from the durable copy. A Store
// serializes its operations behind one mutex: within a process, mutations
// never interleave. Writes are validated against the configured shape at
// initialize and update time only; add deliberately skips validation.
package catalog

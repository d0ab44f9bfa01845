package session

// Package session implements the conversion session: the ordered list of
// selected files, the target format, and the sequential Convert loop with
// output-path disambiguation and cooperative, sticky cancellation. All state
// mutation goes through Session methods; presentations observe progress via
// the Observer interface and answer collisions via ConflictResolver.

package ports

// ProgressScopePort is a scoped progress reporter wrapped around a unit
// of work. Implementations may do nothing at all; the accessors have
// fixed defaults so that a no-op scope is substitutable anywhere a real
// one is optional.
//
// Accessor defaults when no scope is active (or for a no-op scope):
// Label returns "", Total returns 0, Completed returns 0.
type ProgressScopePort interface {
	// Begin opens the scope. Total may be 0 when unknown.
	Begin(label string, total int)
	// Advance records completed work units within the open scope.
	Advance(count int)
	// End closes the scope. It is safe to call on every exit path,
	// including when Begin was never called.
	End()

	Label() string
	Total() int
	Completed() int
}

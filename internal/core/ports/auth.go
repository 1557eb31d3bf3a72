package ports

import "context"

// AuthContext identifies who is acting and in what role. The inbound adapter
// builds it from the request; the core only ever sees the actor string it
// records into audit events.
type AuthContext struct {
	ActorID string
	Role    string
}

// PolicyCheck answers whether a role may perform a named action, such as
// "order:approve" or "discrepancy:resolve". The inbound adapter consults it
// before invoking a handler; workflow rules themselves stay in the domain.
type PolicyCheck interface {
	IsAllowed(ctx context.Context, action, role string) (bool, error)
}

// FileStore answers whether an attachment referenced by an order exists.
// Storage and retrieval of the files themselves live outside this system.
type FileStore interface {
	Exists(ctx context.Context, key string) (bool, error)
}

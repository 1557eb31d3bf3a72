// Package policy provides a static role-based implementation of the access
// policy port. The table maps each API action to the roles allowed to perform
// it; workflow rules themselves stay in the domain.
package policy

import "context"

// RolePolicy answers access questions from an in-memory action-to-roles table.
type RolePolicy struct {
	allowed map[string]map[string]bool
}

// NewRolePolicy creates a policy with the default procurement role table.
// The admin role may perform every action.
func NewRolePolicy() *RolePolicy {
	table := map[string][]string{
		"order:create":        {"requester"},
		"order:update":        {"requester"},
		"order:transition":    {"requester", "verifier", "approver"},
		"delivery:schedule":   {"logistics"},
		"delivery:confirm":    {"logistics", "warehouse"},
		"receipt:record":      {"warehouse"},
		"asset:generate":      {"finance"},
		"discrepancy:review":  {"warehouse", "finance"},
		"discrepancy:resolve": {"finance"},
	}

	allowed := make(map[string]map[string]bool, len(table))
	for action, roles := range table {
		allowed[action] = make(map[string]bool, len(roles)+1)
		for _, role := range roles {
			allowed[action][role] = true
		}
		allowed[action]["admin"] = true
	}
	return &RolePolicy{allowed: allowed}
}

// IsAllowed reports whether the role may perform the action. Unknown actions
// and unknown roles are denied.
func (p *RolePolicy) IsAllowed(_ context.Context, action, role string) (bool, error) {
	return p.allowed[action][role], nil
}

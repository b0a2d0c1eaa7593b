// Package policy holds the ownership rules for task access.
package policy

import "github.com/taskdeck/taskdeck-go/internal/model"

// Action identifies the operation being attempted on a task.
type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// CanAccess reports whether the identity may perform the action on the
// task: admins may always, owners may on their own tasks, nobody else
// may. The rule is identical for every action; callers must resolve the
// task first so a missing task reads as not-found, not forbidden.
func CanAccess(ident model.Identity, task model.Task, _ Action) bool {
	if ident.Role == model.RoleAdmin {
		return true
	}
	return task.OwnerID == ident.UserID
}

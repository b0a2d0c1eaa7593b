package policy

import (
	"testing"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

var actions = []Action{ActionRead, ActionUpdate, ActionDelete}

func TestCanAccessOwner(t *testing.T) {
	owner := model.Identity{UserID: 1, Role: model.RoleUser}
	task := model.Task{ID: "t1", OwnerID: 1}

	for _, action := range actions {
		if !CanAccess(owner, task, action) {
			t.Errorf("CanAccess(owner, task, %q) = false, want true", action)
		}
	}
}

func TestCanAccessAdmin(t *testing.T) {
	admin := model.Identity{UserID: 99, Role: model.RoleAdmin}
	task := model.Task{ID: "t1", OwnerID: 1}

	for _, action := range actions {
		if !CanAccess(admin, task, action) {
			t.Errorf("CanAccess(admin, task, %q) = false, want true", action)
		}
	}
}

func TestCanAccessStranger(t *testing.T) {
	stranger := model.Identity{UserID: 2, Role: model.RoleUser}
	task := model.Task{ID: "t1", OwnerID: 1}

	for _, action := range actions {
		if CanAccess(stranger, task, action) {
			t.Errorf("CanAccess(stranger, task, %q) = true, want false", action)
		}
	}
}

func TestCanAccessAdminOwnTask(t *testing.T) {
	admin := model.Identity{UserID: 1, Role: model.RoleAdmin}
	task := model.Task{ID: "t1", OwnerID: 1}

	if !CanAccess(admin, task, ActionUpdate) {
		t.Error("CanAccess(admin, own task) = false, want true")
	}
}

// Package permissions is the single policy-evaluation point for the
// platform. Every mutating service operation asks Can(actor, action,
// resource) before touching the database; decisions depend only on the
// actor's current role state and the resource passed in.
package permissions

import (
	"newskoop/newsroom/internal/constants"
	gormModels "newskoop/newsroom/internal/models/gorm"
	"newskoop/newsroom/internal/workflow"
)

// Action names a guarded operation.
type Action string

const (
	ActionStoryCreate    Action = "story.create"
	ActionStoryEdit      Action = "story.edit"
	ActionStoryPublish   Action = "story.publish"
	ActionStoryTranslate Action = "story.translate"

	ActionBulletinCreate    Action = "bulletin.create"
	ActionBulletinEdit      Action = "bulletin.edit"
	ActionBulletinPublish   Action = "bulletin.publish"
	ActionBulletinTranslate Action = "bulletin.translate"

	ActionShowCreate    Action = "show.create"
	ActionShowEdit      Action = "show.edit"
	ActionShowPublish   Action = "show.publish"
	ActionShowTranslate Action = "show.translate"

	ActionCategoryManage Action = "category.manage"

	ActionTaskCreate       Action = "task.create"
	ActionTaskView         Action = "task.view"
	ActionTaskUpdateStatus Action = "task.update_status"
	ActionTaskAddNote      Action = "task.add_note"

	ActionUserManage    Action = "user.manage"
	ActionStationManage Action = "station.manage"
)

// IsStaff reports whether the user is newsroom staff.
func IsStaff(u *gormModels.User) bool {
	return u != nil && u.IsActive && u.UserType == constants.UserTypeStaff
}

// IsAdmin reports whether the user may administer users and stations.
func IsAdmin(u *gormModels.User) bool {
	return IsStaff(u) && roleIn(u, constants.RoleSuperAdmin, constants.RoleAdmin)
}

// IsEditorOrAbove reports whether the user holds SUPERADMIN, ADMIN or EDITOR.
func IsEditorOrAbove(u *gormModels.User) bool {
	return IsStaff(u) && roleIn(u,
		constants.RoleSuperAdmin, constants.RoleAdmin, constants.RoleEditor)
}

// IsSubEditorOrAbove reports whether the user holds SUB_EDITOR or higher.
func IsSubEditorOrAbove(u *gormModels.User) bool {
	return IsStaff(u) && roleIn(u,
		constants.RoleSuperAdmin, constants.RoleAdmin,
		constants.RoleEditor, constants.RoleSubEditor)
}

func roleIn(u *gormModels.User, roles ...constants.StaffRole) bool {
	for _, r := range roles {
		if u.Role() == r {
			return true
		}
	}
	return false
}

// rule is one row of the policy table. base grants the action outright;
// resource grants it based on the actor's relationship to the resource.
type rule struct {
	base     func(*gormModels.User) bool
	resource func(*gormModels.User, any) bool
}

var policy = map[Action]rule{
	ActionStoryCreate:    {base: IsStaff},
	ActionStoryEdit:      {base: IsSubEditorOrAbove, resource: storyAuthorEditing},
	ActionStoryPublish:   {base: IsSubEditorOrAbove},
	ActionStoryTranslate: {base: IsStaff},

	ActionBulletinCreate:    {base: IsSubEditorOrAbove},
	ActionBulletinEdit:      {base: IsSubEditorOrAbove},
	ActionBulletinPublish:   {base: IsEditorOrAbove},
	ActionBulletinTranslate: {base: IsSubEditorOrAbove},

	ActionShowCreate:    {base: IsStaff},
	ActionShowEdit:      {base: IsEditorOrAbove, resource: showCreator},
	ActionShowPublish:   {base: IsEditorOrAbove},
	ActionShowTranslate: {base: IsSubEditorOrAbove},

	ActionCategoryManage: {base: IsEditorOrAbove},

	ActionTaskCreate:       {base: IsSubEditorOrAbove},
	ActionTaskView:         {base: IsEditorOrAbove, resource: taskParticipant},
	ActionTaskUpdateStatus: {base: IsEditorOrAbove, resource: taskAssignee},
	ActionTaskAddNote:      {base: IsEditorOrAbove, resource: taskParticipant},

	ActionUserManage:    {base: IsAdmin},
	ActionStationManage: {base: IsAdmin},
}

// Can evaluates the policy table for the given actor, action and optional
// resource. Unknown actions are denied.
func Can(actor *gormModels.User, action Action, resource any) bool {
	r, ok := policy[action]
	if !ok {
		return false
	}
	if r.base != nil && r.base(actor) {
		return true
	}
	if r.resource != nil && resource != nil {
		return r.resource(actor, resource)
	}
	return false
}

// storyAuthorEditing grants edit to the author while the story is still in a
// pre-publication state.
func storyAuthorEditing(actor *gormModels.User, resource any) bool {
	story, ok := resource.(*gormModels.Story)
	if !ok || !IsStaff(actor) {
		return false
	}
	return story.AuthorID == actor.ID && workflow.Editable(story.Status)
}

// showCreator grants edit to the show's creator.
func showCreator(actor *gormModels.User, resource any) bool {
	show, ok := resource.(*gormModels.Show)
	if !ok || !IsStaff(actor) {
		return false
	}
	return show.CreatorID == actor.ID
}

// taskAssignee grants the action to the task's assignee.
func taskAssignee(actor *gormModels.User, resource any) bool {
	task, ok := resource.(*gormModels.Task)
	if !ok || !IsStaff(actor) {
		return false
	}
	return task.AssignedToID == actor.ID
}

// taskParticipant grants the action to the assignee or the assigner.
func taskParticipant(actor *gormModels.User, resource any) bool {
	task, ok := resource.(*gormModels.Task)
	if !ok || !IsStaff(actor) {
		return false
	}
	return task.AssignedToID == actor.ID || task.AssignedByID == actor.ID
}

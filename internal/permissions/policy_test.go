package permissions

import (
	"testing"

	"newskoop/newsroom/internal/constants"
	gormModels "newskoop/newsroom/internal/models/gorm"
)

func staff(role constants.StaffRole) *gormModels.User {
	return &gormModels.User{
		ID:        "actor-" + string(role),
		IsActive:  true,
		UserType:  constants.UserTypeStaff,
		StaffRole: &role,
	}
}

func radio() *gormModels.User {
	return &gormModels.User{ID: "radio", IsActive: true, UserType: constants.UserTypeRadio}
}

func TestRoleTiers(t *testing.T) {
	cases := []struct {
		role                                 constants.StaffRole
		admin, editorPlus, subEditorPlus bool
	}{
		{constants.RoleSuperAdmin, true, true, true},
		{constants.RoleAdmin, true, true, true},
		{constants.RoleEditor, false, true, true},
		{constants.RoleSubEditor, false, false, true},
		{constants.RoleJournalist, false, false, false},
		{constants.RoleIntern, false, false, false},
	}
	for _, tc := range cases {
		u := staff(tc.role)
		if got := IsAdmin(u); got != tc.admin {
			t.Errorf("IsAdmin(%s) = %v", tc.role, got)
		}
		if got := IsEditorOrAbove(u); got != tc.editorPlus {
			t.Errorf("IsEditorOrAbove(%s) = %v", tc.role, got)
		}
		if got := IsSubEditorOrAbove(u); got != tc.subEditorPlus {
			t.Errorf("IsSubEditorOrAbove(%s) = %v", tc.role, got)
		}
	}
}

func TestInactiveAndRadioUsersDenied(t *testing.T) {
	inactive := staff(constants.RoleAdmin)
	inactive.IsActive = false

	for _, u := range []*gormModels.User{inactive, radio(), nil} {
		if IsStaff(u) {
			t.Errorf("IsStaff(%+v) = true", u)
		}
		if Can(u, ActionStoryCreate, nil) {
			t.Errorf("Can(%+v, story.create) = true", u)
		}
	}
}

func TestPublishGates(t *testing.T) {
	cases := []struct {
		role  constants.StaffRole
		story bool
		bulletin bool
	}{
		{constants.RoleEditor, true, true},
		{constants.RoleSubEditor, true, false},
		{constants.RoleJournalist, false, false},
	}
	for _, tc := range cases {
		u := staff(tc.role)
		if got := Can(u, ActionStoryPublish, nil); got != tc.story {
			t.Errorf("%s story publish = %v", tc.role, got)
		}
		if got := Can(u, ActionBulletinPublish, nil); got != tc.bulletin {
			t.Errorf("%s bulletin publish = %v", tc.role, got)
		}
	}
}

func TestStoryAuthorEditWindow(t *testing.T) {
	author := staff(constants.RoleJournalist)
	stranger := staff(constants.RoleIntern)

	draft := &gormModels.Story{AuthorID: author.ID, Status: constants.StatusDraft}
	published := &gormModels.Story{AuthorID: author.ID, Status: constants.StatusPublished}

	if !Can(author, ActionStoryEdit, draft) {
		t.Error("author denied edit of own draft")
	}
	if Can(author, ActionStoryEdit, published) {
		t.Error("author may edit own published story")
	}
	if Can(stranger, ActionStoryEdit, draft) {
		t.Error("stranger may edit another's draft")
	}
	if !Can(staff(constants.RoleSubEditor), ActionStoryEdit, published) {
		t.Error("sub-editor denied edit of published story")
	}
}

func TestShowCreatorEdit(t *testing.T) {
	creator := staff(constants.RoleJournalist)
	show := &gormModels.Show{CreatorID: creator.ID}

	if !Can(creator, ActionShowEdit, show) {
		t.Error("creator denied edit of own show")
	}
	if Can(staff(constants.RoleSubEditor), ActionShowEdit, show) {
		t.Error("sub-editor may edit another's show")
	}
	if !Can(staff(constants.RoleEditor), ActionShowEdit, show) {
		t.Error("editor denied show edit")
	}
}

func TestTaskResourceRules(t *testing.T) {
	assignee := staff(constants.RoleJournalist)
	assigner := staff(constants.RoleSubEditor)
	bystander := staff(constants.RoleIntern)

	task := &gormModels.Task{AssignedToID: assignee.ID, AssignedByID: assigner.ID}

	if !Can(assignee, ActionTaskUpdateStatus, task) {
		t.Error("assignee denied status update")
	}
	// Status updates are assignee-only below editor, even for the assigner.
	if Can(assigner, ActionTaskUpdateStatus, task) {
		t.Error("assigner (non-assignee) may update status")
	}
	if !Can(assigner, ActionTaskView, task) {
		t.Error("assigner denied view")
	}
	if Can(bystander, ActionTaskView, task) {
		t.Error("bystander may view task")
	}
	if !Can(staff(constants.RoleEditor), ActionTaskView, task) {
		t.Error("editor denied view")
	}
}

func TestUnknownActionDenied(t *testing.T) {
	if Can(staff(constants.RoleSuperAdmin), Action("no.such.action"), nil) {
		t.Error("unknown action granted")
	}
}

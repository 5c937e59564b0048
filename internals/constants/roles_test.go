package constants

import "testing"

func TestRoleGroups(t *testing.T) {
	if len(AdminOnly) != 1 || AdminOnly[0] != RoleAdmin {
		t.Fatalf("AdminOnly = %v, want [%s]", AdminOnly, RoleAdmin)
	}
	for _, r := range AllRoles {
		if !IsValidRole(r) {
			t.Fatalf("%q listed but not valid", r)
		}
	}
	if IsValidRole("superuser") {
		t.Fatal("unknown role accepted")
	}
}

package domain

import "strings"

// Portal entry points, one per role. These double as the login/landing path
// for that role and as the path prefix the role's portal lives under.
const (
	PortalAdmin  = "/admin"
	PortalEditor = "/editor"
	PortalAuthor = "/author"
)

// RolePermissions maps each role to the portal path prefixes it may enter.
// The table is total over the role enumeration: admins reach everything,
// editors reach editor and author areas, authors only their own. The sharing
// never runs the other way (an editor token never reaches /admin).
var RolePermissions = map[string][]string{
	RoleAdmin:  {PortalAdmin, PortalEditor, PortalAuthor},
	RoleEditor: {PortalEditor, PortalAuthor},
	RoleAuthor: {PortalAuthor},
}

// PortalFor returns the portal entry point for a role. Unknown roles fall
// back to the author portal, the least privileged one.
func PortalFor(role string) string {
	switch role {
	case RoleAdmin:
		return PortalAdmin
	case RoleEditor:
		return PortalEditor
	default:
		return PortalAuthor
	}
}

// RoleCanAccess reports whether role may enter the portal area containing
// path, by prefix match against the permission table.
func RoleCanAccess(role, path string) bool {
	for _, prefix := range RolePermissions[role] {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// PortalOwning returns the portal entry point whose area contains path, or
// "" when path is not under any portal.
func PortalOwning(path string) string {
	for _, prefix := range []string{PortalAdmin, PortalEditor, PortalAuthor} {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return prefix
		}
	}
	return ""
}

package client

import "strings"

// Portal entry points, one per role. Each doubles as that role's login path
// and as the prefix its portal area lives under. This table deliberately
// mirrors the server's permission table; the server remains authoritative
// and the guard only spares users a round trip to a 403.
const (
	PortalAdmin  = "/admin"
	PortalEditor = "/editor"
	PortalAuthor = "/author"
)

var rolePermissions = map[string][]string{
	"admin":  {PortalAdmin, PortalEditor, PortalAuthor},
	"editor": {PortalEditor, PortalAuthor},
	"author": {PortalAuthor},
}

// Decision is the outcome of a navigation check. When Allowed is false,
// RedirectTo names the path the client should navigate to instead.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Decide evaluates a navigation to path under the given session role. An
// empty role means no session is present.
//
// Paths outside every portal area are public and always allowed. For guarded
// paths: no session redirects to the login entry point of the portal that
// owns the path, and an insufficient role redirects to the session's own
// portal entry point rather than a generic denial page.
func Decide(role, path string) Decision {
	owner := portalOwning(path)
	if owner == "" {
		return Decision{Allowed: true}
	}

	if role == "" {
		return Decision{RedirectTo: owner}
	}

	for _, prefix := range rolePermissions[role] {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return Decision{Allowed: true}
		}
	}
	return Decision{RedirectTo: portalFor(role)}
}

func portalOwning(path string) string {
	for _, prefix := range []string{PortalAdmin, PortalEditor, PortalAuthor} {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return prefix
		}
	}
	return ""
}

// portalFor returns the portal entry point for a role, defaulting to the
// least privileged portal for unknown roles.
func portalFor(role string) string {
	switch role {
	case "admin":
		return PortalAdmin
	case "editor":
		return PortalEditor
	default:
		return PortalAuthor
	}
}

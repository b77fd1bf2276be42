package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"member": {
		"questions:view",
		"assessment:submit",
		"assessment:view-own",
		"user:change_password",
	},
	"coach": {
		"questions:view",
		"assessment:view-all",
		"users:list",
		"user:change_password",
	},
	"admin": {
		"*", // everything
	},
}

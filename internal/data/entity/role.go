package entity

// Permission is a capability granted to a role. Routes gate on permissions,
// not on role string literals, so the role-to-capability mapping lives in
// exactly one place.
type Permission string

const (
	PermManageProducts      Permission = "manage_products"
	PermWriteBlog           Permission = "write_blog"
	PermModerateBlog        Permission = "moderate_blog"
	PermManageOrders        Permission = "manage_orders"
	PermUpdatePaymentStatus Permission = "update_payment_status"
	PermManageUsers         Permission = "manage_users"
	PermManageSettings      Permission = "manage_settings"
	PermViewInbox           Permission = "view_inbox"
)

// PermissionSet is resolved once per request from the session user's role.
type PermissionSet map[Permission]struct{}

func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// rolePermissions is the sole authorization table. Membership is exact-match,
// there is no role hierarchy.
var rolePermissions = map[UserRole][]Permission{
	RoleSuperAdmin: {
		PermManageProducts,
		PermWriteBlog,
		PermModerateBlog,
		PermManageOrders,
		PermUpdatePaymentStatus,
		PermManageUsers,
		PermManageSettings,
		PermViewInbox,
	},
	RoleSalesManager: {
		PermManageProducts,
		PermManageOrders,
		PermUpdatePaymentStatus,
	},
	RoleBlogEditor: {
		PermWriteBlog,
	},
	RoleAccountant: {
		PermManageOrders,
		PermUpdatePaymentStatus,
	},
	RoleCustomer: {},
}

// PermissionsFor returns the capability set for a role. Unknown roles get an
// empty set.
func PermissionsFor(role UserRole) PermissionSet {
	set := make(PermissionSet)
	for _, p := range rolePermissions[role] {
		set[p] = struct{}{}
	}
	return set
}

package entity

type UserRole string

const (
	RoleSuperAdmin   UserRole = "super_admin"
	RoleSalesManager UserRole = "sales_manager"
	RoleBlogEditor   UserRole = "blog_editor"
	RoleAccountant   UserRole = "accountant"
	RoleCustomer     UserRole = "customer"
)

// IsValid reports whether the role is one of the known role tags.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleSalesManager, RoleBlogEditor, RoleAccountant, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	BaseSimple
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	FullName     string   `db:"full_name"`
	Phone        *string  `db:"phone"`
	Role         UserRole `db:"role"`
}

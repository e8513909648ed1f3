package directory

// Role is the verified role assigned by the directory service
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

// User is an account record from the directory service.
// The role arrives already verified; this service never authenticates.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	StoreID *int64 `json:"storeId,omitempty"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Staff is a staff profile record, linked 1:1 to a user account
type Staff struct {
	ID      int64   `json:"id"`
	UserID  int64   `json:"userId"`
	StoreID int64   `json:"storeId"`
	Title   *string `json:"title,omitempty"`
}

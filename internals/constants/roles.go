package constants

// Role global aplikasi
const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
	RoleStaff = "staff"
	RoleUser  = "user"
)

// AdminAndAbove dipakai middleware RequireAdmin untuk route /api/a
var AdminAndAbove = []string{RoleOwner, RoleAdmin}

// StaffAndAbove untuk operasi operasional (mis. tandai order lunas manual)
var StaffAndAbove = []string{RoleOwner, RoleAdmin, RoleStaff}

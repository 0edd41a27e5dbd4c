package models

import "gorm.io/gorm"

// Roles recognized by the API.
const (
	RoleCustomer = "Customer"
	RoleVendor   = "Vendor"
	RoleAdmin    = "Admin"
	RoleCSR      = "CSR"
)

// User represents an account in the store: customers, vendors, admins and
// CSR staff share one record type distinguished by Role.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role     string `json:"role" gorm:"type:varchar(20)" validate:"required,oneof=Customer Vendor Admin CSR"`
	IsActive bool   `json:"is_active"`

	// Profile fields
	ProfileImageURL string `json:"profile_image_url"`
	DateOfBirth     string `json:"date_of_birth"`
	Gender          string `json:"gender"`

	// Shipping fields. Every one of them (plus Username and PhoneNumber)
	// must be filled in before an order can be placed.
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`

	// Vendor fields
	Bio          string `json:"bio"`
	BusinessName string `json:"business_name"`

	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// HasShippingDetails reports whether the full shipping snapshot can be taken
// from this account. Order placement refuses incomplete addresses.
func (u *User) HasShippingDetails() bool {
	return u.PhoneNumber != "" &&
		u.Username != "" &&
		u.Address != "" &&
		u.City != "" &&
		u.State != "" &&
		u.PostalCode != ""
}

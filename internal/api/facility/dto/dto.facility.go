// Package facilitydto - input DTO cho domain facility.
package facilitydto

// FacilityCreateInput là input để tạo facility
type FacilityCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss" maxLength:"200"`
	Address  string `json:"address,omitempty" validate:"omitempty,no_xss" maxLength:"500"`
	City     string `json:"city,omitempty" validate:"omitempty,no_xss" maxLength:"100"`
	Timezone string `json:"timezone,omitempty" validate:"omitempty" maxLength:"64"`
}

// FacilityUpdateInput là input để cập nhật facility
type FacilityUpdateInput struct {
	Name     string `json:"name,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	Address  string `json:"address,omitempty" validate:"omitempty,no_xss" maxLength:"500"`
	City     string `json:"city,omitempty" validate:"omitempty,no_xss" maxLength:"100"`
	Timezone string `json:"timezone,omitempty" validate:"omitempty" maxLength:"64"`
	IsActive *bool  `json:"isActive,omitempty"`
}

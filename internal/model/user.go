package model

import (
	"golang.org/x/crypto/bcrypt"
)

// User is a customer. Contract prices and orders hang off it.
type User struct {
	BaseModel
	Name     string `gorm:"type:varchar(64);not null" json:"name"`
	Surname  string `gorm:"type:varchar(64);not null" json:"surname"`
	Email    string `gorm:"type:varchar(128);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255)" json:"-"` // Hidden from JSON
	Phone    string `gorm:"type:varchar(64)" json:"phone"`
	Address  string `gorm:"type:varchar(128)" json:"address"`
	CityID   *uint  `gorm:"index" json:"city_id"`
	City     *City  `json:"city,omitempty"`

	ContractLists []ContractList `json:"-"`
	Orders        []Order        `json:"-"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	if u.Password == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	CityID  *uint  `json:"city_id,omitempty"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
		CityID:  u.CityID,
	}
}

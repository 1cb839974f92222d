package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserType enum
type UserType string

const (
	Citizen UserType = "citizen"
	Admin   UserType = "admin"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"fullName" json:"fullName"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password,omitempty" json:"-"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	UserType   UserType           `bson:"userType" json:"userType"`
	Verified   bool               `bson:"verified" json:"verified"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	LastLogin  *time.Time         `bson:"lastLogin" json:"lastLogin"`
	Active     bool               `bson:"active" json:"active"`
	VerifiedAt *time.Time         `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}

// Public returns the non-sensitive projection sent to clients after login
// or registration. Password never leaves the server.
func (u *User) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":       u.ID.Hex(),
		"name":     u.FullName,
		"email":    u.Email,
		"type":     u.UserType,
		"verified": u.Verified,
	}
}

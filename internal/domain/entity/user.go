// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// emailPattern is a deliberately light local@domain.tld check.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// User is a marketplace member. Any user may sell products, write posts and
// become a consultant once an administrator approves them.
type User struct {
	ID                 uuid.UUID
	Username           string
	Email              string
	PasswordHash       string
	Mobile             string
	Location           string
	Profession         string
	Expertise          string
	ProfilePicture     string // Blob key of the uploaded picture, empty when none.
	JoinDate           time.Time
	IsConsultant       bool
	ConsultantCategory string
	ConsultantApproved bool
}

// IsApprovedConsultant reports whether the user can be booked.
func (u *User) IsApprovedConsultant() bool {
	return u != nil && u.IsConsultant && u.ConsultantApproved
}

// ValidEmail reports whether email has the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

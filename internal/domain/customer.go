package domain

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailRE = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phoneRE = regexp.MustCompile(`^\+?[0-9\s\-()]{7,}$`)
)

// ValidEmail reports whether s has a local@domain.tld shape.
func ValidEmail(s string) bool { return emailRE.MatchString(s) }

// ValidPhone reports whether s is a phone number of at least 7
// digit/punctuation characters, with an optional leading "+".
func ValidPhone(s string) bool { return phoneRE.MatchString(s) }

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:140;not null" json:"name"`
	Email     string    `gorm:"size:140;not null;uniqueIndex" json:"email"`
	Phone     string    `gorm:"size:60;not null" json:"phone"`
	City      string    `gorm:"size:100;not null" json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCustomer validates eagerly: an instance that fails validation is never
// returned. City defaults to "Unknown".
func NewCustomer(name, email, phone, city string) (*Customer, error) {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if !ValidEmail(email) {
		return nil, &ValidationError{Field: "email", Message: "malformed email: " + email}
	}
	if !ValidPhone(phone) {
		return nil, &ValidationError{Field: "phone", Message: "malformed phone: " + phone}
	}
	if city == "" {
		city = "Unknown"
	}
	return &Customer{Name: name, Email: email, Phone: phone, City: city}, nil
}

func (c *Customer) Record() map[string]any {
	return map[string]any{
		"id":    c.ID,
		"name":  c.Name,
		"email": c.Email,
		"phone": c.Phone,
		"city":  c.City,
	}
}

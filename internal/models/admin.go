package models

import (
	"time"
)

// Admin activity actions
const (
	ActionLoginSuccess        = "LOGIN_SUCCESS"
	ActionLoginFailed         = "LOGIN_FAILED"
	ActionLogout              = "LOGOUT"
	ActionViewInquiries       = "VIEW_INQUIRIES"
	ActionMarkRead            = "MARK_READ"
	ActionDeleteInquiry       = "DELETE_INQUIRY"
	ActionPasswordRecovery    = "PASSWORD_RECOVERY"
	ActionPasswordRecoveryBad = "PASSWORD_RECOVERY_FAILED"
)

// Admin roles
const (
	RoleOwner   = "Owner"
	RoleManager = "Manager"
	RoleStaff   = "Staff"

	// RoleUnknown is recorded on failed logins where the username itself
	// did not match any account.
	RoleUnknown = "Unknown"
)

// AdminAccount is a dashboard credential entry. Accounts are seeded from
// configuration at startup and never change for the process lifetime.
type AdminAccount struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	FullAccess   bool   `json:"fullAccess"`
}

// ActivityRecord captures one authentication or administrative action.
// Records are immutable once appended; timestamps are assigned server-side
// at append time.
type ActivityRecord struct {
	Username        string    `json:"username"`
	Role            string    `json:"role"`
	Action          string    `json:"action"`
	Timestamp       time.Time `json:"timestamp"`
	IPAddress       string    `json:"ipAddress"`
	UserAgent       string    `json:"userAgent,omitempty"`
	SessionDuration int       `json:"sessionDuration,omitempty"` // seconds, LOGOUT only
	Success         bool      `json:"success"`
}

// LoginStat aggregates login activity for one account. Accounts that never
// logged in successfully have no row, even if they accumulated failures.
type LoginStat struct {
	Username       string    `json:"username"`
	Role           string    `json:"role"`
	TotalLogins    int       `json:"totalLogins"`
	LastLogin      time.Time `json:"lastLogin"`
	FailedAttempts int       `json:"failedAttempts"`
	Suspicious     bool      `json:"suspicious"`
}

// Inquiry statuses
const (
	InquiryNew       = "new"
	InquiryRead      = "read"
	InquiryResponded = "responded"
)

// Inquiry is a customer submission awaiting triage. The three public forms
// (contact, service request, price match) all normalize into this shape.
// ID is a generated surrogate key; the creation timestamp is display-only.
type Inquiry struct {
	ID             string    `json:"id"`
	CustomerName   string    `json:"customerName"`
	CustomerEmail  string    `json:"customerEmail"`
	CustomerPhone  string    `json:"customerPhone,omitempty"`
	Subject        string    `json:"subject"`
	Message        string    `json:"message"`
	ServiceType    string    `json:"serviceType,omitempty"`
	VehicleDetails string    `json:"vehicleDetails,omitempty"`
	ContactMethod  string    `json:"contactMethod,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	Status         string    `json:"status"`
}

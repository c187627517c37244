package services

import (
	"errors"
	"sort"
	"time"

	"github.com/Mo2025mo/la-automotive/internal/config"
	"github.com/Mo2025mo/la-automotive/internal/models"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrIncorrectAnswer    = errors.New("incorrect security answer")
	ErrNotFound           = errors.New("not found")
)

// SessionTTL is how long an admin session stays valid after issuance.
// There is no refresh; an expired session requires a fresh login.
const SessionTTL = 4 * time.Hour

// AuthService authenticates dashboard accounts. The account table is seeded
// from configuration at construction and is immutable afterwards; passwords
// are bcrypt-hashed here so the plaintext never leaves config loading.
type AuthService struct {
	cfg      *config.Config
	accounts map[string]models.AdminAccount
	activity *ActivityService
}

func NewAuthService(cfg *config.Config, activity *ActivityService) (*AuthService, error) {
	accounts := make(map[string]models.AdminAccount, len(cfg.Admins))
	for _, admin := range cfg.Admins {
		hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), cfg.Security.BcryptCost)
		if err != nil {
			return nil, err
		}
		accounts[admin.Username] = models.AdminAccount{
			Username:     admin.Username,
			PasswordHash: string(hash),
			Role:         admin.Role,
			FullAccess:   admin.FullAccess,
		}
	}

	return &AuthService{
		cfg:      cfg,
		accounts: accounts,
		activity: activity,
	}, nil
}

// VerifyPassword verifies a password against a hash
func (s *AuthService) VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// Authenticate verifies credentials and returns the account. Every attempt
// appends exactly one activity record; failures against an unknown username
// are recorded with role "Unknown".
func (s *AuthService) Authenticate(username, password, ipAddress, userAgent string) (*models.AdminAccount, error) {
	account, ok := s.accounts[username]
	if !ok {
		s.activity.LogLogin(username, models.RoleUnknown, ipAddress, userAgent, false)
		return nil, ErrInvalidCredentials
	}

	if !s.VerifyPassword(account.PasswordHash, password) {
		s.activity.LogLogin(username, account.Role, ipAddress, userAgent, false)
		return nil, ErrInvalidCredentials
	}

	s.activity.LogLogin(username, account.Role, ipAddress, userAgent, true)
	return &account, nil
}

// Logout records the end of a session. The caller is already authenticated
// by middleware, so this never fails; duration is computed server-side from
// the token issue time.
func (s *AuthService) Logout(username, role, ipAddress string, sessionDuration int) {
	s.activity.LogLogout(username, role, ipAddress, sessionDuration)
}

// Account returns the account for a username.
func (s *AuthService) Account(username string) (*models.AdminAccount, error) {
	account, ok := s.accounts[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &account, nil
}

// Accounts lists all configured accounts, password hashes omitted.
func (s *AuthService) Accounts() []models.AdminAccount {
	out := make([]models.AdminAccount, 0, len(s.accounts))
	for _, account := range s.accounts {
		account.PasswordHash = ""
		out = append(out, account)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Username < out[j].Username
	})
	return out
}

// SessionValid reports whether a session issued at issuedAt is still valid
// at now. The four hour window is a strict inequality: a session is already
// expired at exactly SessionTTL.
func SessionValid(issuedAt, now time.Time) bool {
	return now.Sub(issuedAt) < SessionTTL
}

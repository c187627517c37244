package services

import (
	"testing"
	"time"

	"github.com/Mo2025mo/la-automotive/internal/config"
	"github.com/Mo2025mo/la-automotive/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{BcryptCost: 4},
		Admins: []config.AdminConfig{
			{Username: "owner", Password: "OwnerPass123!", Role: models.RoleOwner, FullAccess: true},
			{Username: "manager", Password: "ManagerPass123!", Role: models.RoleManager, FullAccess: true},
			{Username: "staff", Password: "StaffPass123!", Role: models.RoleStaff, FullAccess: false},
		},
		Recovery: []config.RecoveryEntry{
			{Role: "owner", Question: "What is the business address number?", Answer: "5", RecoveryPassword: "NewOwnerPass2025!"},
			{Role: "manager", Question: "What is the business phone number (last 4 digits)?", Answer: "4551", RecoveryPassword: "NewManagerPass2025!"},
			{Role: "staff", Question: "What is the business email domain?", Answer: "hotmail", RecoveryPassword: "NewStaffPass2025!"},
		},
		Retention: config.RetentionConfig{
			MaxActivities:   500,
			ActivityDisplay: 100,
			MaxInquiries:    1000,
		},
	}
}

func newTestAuth(t *testing.T) (*AuthService, *ActivityService) {
	cfg := testConfig()
	activity := NewActivityService(cfg)
	auth, err := NewAuthService(cfg, activity)
	require.NoError(t, err)
	return auth, activity
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid credentials succeed and log one LOGIN_SUCCESS", func(t *testing.T) {
		auth, activity := newTestAuth(t)

		account, err := auth.Authenticate("owner", "OwnerPass123!", "10.0.0.1", "test-agent")
		require.NoError(t, err)
		assert.Equal(t, "owner", account.Username)
		assert.Equal(t, models.RoleOwner, account.Role)
		assert.True(t, account.FullAccess)

		records := activity.Recent(0)
		require.Len(t, records, 1)
		assert.Equal(t, models.ActionLoginSuccess, records[0].Action)
		assert.Equal(t, "owner", records[0].Username)
		assert.Equal(t, "10.0.0.1", records[0].IPAddress)
		assert.Equal(t, "test-agent", records[0].UserAgent)
		assert.True(t, records[0].Success)
	})

	t.Run("wrong password fails and logs one LOGIN_FAILED", func(t *testing.T) {
		auth, activity := newTestAuth(t)

		_, err := auth.Authenticate("owner", "wrong", "10.0.0.1", "test-agent")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		records := activity.Recent(0)
		require.Len(t, records, 1)
		assert.Equal(t, models.ActionLoginFailed, records[0].Action)
		assert.Equal(t, models.RoleOwner, records[0].Role)
		assert.False(t, records[0].Success)
	})

	t.Run("unknown username records role Unknown", func(t *testing.T) {
		auth, activity := newTestAuth(t)

		_, err := auth.Authenticate("nobody", "whatever", "10.0.0.2", "test-agent")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		records := activity.Recent(0)
		require.Len(t, records, 1)
		assert.Equal(t, models.ActionLoginFailed, records[0].Action)
		assert.Equal(t, models.RoleUnknown, records[0].Role)
	})

	t.Run("every seeded account can authenticate", func(t *testing.T) {
		auth, activity := newTestAuth(t)

		creds := map[string]string{
			"owner":   "OwnerPass123!",
			"manager": "ManagerPass123!",
			"staff":   "StaffPass123!",
		}
		for username, password := range creds {
			account, err := auth.Authenticate(username, password, "10.0.0.1", "test-agent")
			require.NoError(t, err)
			assert.Equal(t, username, account.Username)
		}
		assert.Equal(t, len(creds), activity.Count())
	})
}

func TestLogout(t *testing.T) {
	auth, activity := newTestAuth(t)

	auth.Logout("owner", models.RoleOwner, "10.0.0.1", 1234)

	records := activity.Recent(0)
	require.Len(t, records, 1)
	assert.Equal(t, models.ActionLogout, records[0].Action)
	assert.Equal(t, 1234, records[0].SessionDuration)
	assert.True(t, records[0].Success)
}

func TestAccounts(t *testing.T) {
	auth, _ := newTestAuth(t)

	accounts := auth.Accounts()
	require.Len(t, accounts, 3)
	for _, account := range accounts {
		assert.Empty(t, account.PasswordHash)
	}
	assert.Equal(t, "manager", accounts[0].Username)
	assert.Equal(t, "owner", accounts[1].Username)
	assert.Equal(t, "staff", accounts[2].Username)
}

func TestSessionValid(t *testing.T) {
	now := time.Now()

	assert.True(t, SessionValid(now, now))
	assert.True(t, SessionValid(now.Add(-SessionTTL+time.Millisecond), now))
	// Strict inequality: exactly four hours is already expired.
	assert.False(t, SessionValid(now.Add(-SessionTTL), now))
	assert.False(t, SessionValid(now.Add(-SessionTTL-time.Minute), now))
}

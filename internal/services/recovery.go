package services

import (
	"strings"

	"github.com/Mo2025mo/la-automotive/internal/config"
	"github.com/Mo2025mo/la-automotive/internal/models"
)

// Recovery flow states
const (
	StateAwaitingUsername = "AWAITING_USERNAME"
	StateAwaitingAnswer   = "AWAITING_ANSWER"
	StateRevealed         = "REVEALED"
)

// RecoveryService runs the self-service password recovery challenge: the
// requester names an account, answers that role's security question, and on
// a match is shown the role's recovery password. There is no lockout after
// repeated wrong answers, and the answers themselves are low-entropy; this
// is a deliberate carry-over from the dashboard's threat model, not an
// oversight. Treat the recovery answers with the same care as passwords.
type RecoveryService struct {
	entries  map[string]config.RecoveryEntry // keyed by lowercased role/username
	activity *ActivityService
}

func NewRecoveryService(cfg *config.Config, activity *ActivityService) *RecoveryService {
	entries := make(map[string]config.RecoveryEntry, len(cfg.Recovery))
	for _, entry := range cfg.Recovery {
		entries[strings.ToLower(entry.Role)] = entry
	}
	return &RecoveryService{
		entries:  entries,
		activity: activity,
	}
}

// Challenge is one in-progress recovery attempt. It only moves forward:
// AWAITING_USERNAME -> AWAITING_ANSWER -> REVEALED; Reset starts over.
type Challenge struct {
	service  *RecoveryService
	state    string
	username string
	entry    config.RecoveryEntry
}

// NewChallenge starts a recovery attempt in AWAITING_USERNAME.
func (s *RecoveryService) NewChallenge() *Challenge {
	return &Challenge{service: s, state: StateAwaitingUsername}
}

// State returns the current flow state.
func (c *Challenge) State() string {
	return c.state
}

// Question returns the security question once a username has been accepted.
func (c *Challenge) Question() string {
	return c.entry.Question
}

// SubmitUsername resolves the account's security question and advances to
// AWAITING_ANSWER. An unknown username keeps the flow where it is; the
// failed lookup is still recorded in the activity ledger.
func (c *Challenge) SubmitUsername(username, ipAddress string) error {
	if c.state != StateAwaitingUsername {
		return nil
	}

	entry, ok := c.service.entries[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		c.service.activity.LogAction(username, models.RoleUnknown, models.ActionPasswordRecoveryBad, ipAddress, false)
		return ErrUserNotFound
	}

	c.username = username
	c.entry = entry
	c.state = StateAwaitingAnswer
	return nil
}

// SubmitAnswer checks the security answer, trimmed and case-insensitive.
// A match reveals the recovery password and terminates the flow; a mismatch
// stays in AWAITING_ANSWER so the requester can retry.
func (c *Challenge) SubmitAnswer(answer, ipAddress string) (string, error) {
	if c.state != StateAwaitingAnswer {
		return "", ErrIncorrectAnswer
	}

	given := strings.ToLower(strings.TrimSpace(answer))
	expected := strings.ToLower(strings.TrimSpace(c.entry.Answer))
	if given != expected {
		c.service.activity.LogAction(c.username, c.entry.Role, models.ActionPasswordRecoveryBad, ipAddress, false)
		return "", ErrIncorrectAnswer
	}

	c.state = StateRevealed
	c.service.activity.LogAction(c.username, c.entry.Role, models.ActionPasswordRecovery, ipAddress, true)
	return c.entry.RecoveryPassword, nil
}

// Reset returns the flow to AWAITING_USERNAME.
func (c *Challenge) Reset() {
	*c = Challenge{service: c.service, state: StateAwaitingUsername}
}

// Question looks up the security question for a username without starting a
// stateful flow; used by the question endpoint.
func (s *RecoveryService) Question(username string) (string, error) {
	entry, ok := s.entries[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return "", ErrUserNotFound
	}
	return entry.Question, nil
}

// Recover runs the whole challenge in one shot for the single-request
// recovery endpoint: resolve the role, check the answer, reveal the
// password.
func (s *RecoveryService) Recover(role, answer, ipAddress string) (string, error) {
	challenge := s.NewChallenge()
	if err := challenge.SubmitUsername(role, ipAddress); err != nil {
		return "", err
	}
	return challenge.SubmitAnswer(answer, ipAddress)
}

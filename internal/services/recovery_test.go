package services

import (
	"testing"

	"github.com/Mo2025mo/la-automotive/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecovery() (*RecoveryService, *ActivityService) {
	cfg := testConfig()
	activity := NewActivityService(cfg)
	return NewRecoveryService(cfg, activity), activity
}

func TestChallengeFlow(t *testing.T) {
	recovery, activity := newTestRecovery()

	challenge := recovery.NewChallenge()
	assert.Equal(t, StateAwaitingUsername, challenge.State())

	require.NoError(t, challenge.SubmitUsername("owner", "10.0.0.1"))
	assert.Equal(t, StateAwaitingAnswer, challenge.State())
	assert.Equal(t, "What is the business address number?", challenge.Question())

	password, err := challenge.SubmitAnswer("5", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "NewOwnerPass2025!", password)
	assert.Equal(t, StateRevealed, challenge.State())

	records := activity.Recent(0)
	require.Len(t, records, 1)
	assert.Equal(t, models.ActionPasswordRecovery, records[0].Action)
	assert.True(t, records[0].Success)
}

func TestChallengeAnswerMatching(t *testing.T) {
	t.Run("answer is trimmed", func(t *testing.T) {
		recovery, _ := newTestRecovery()
		challenge := recovery.NewChallenge()
		require.NoError(t, challenge.SubmitUsername("owner", "10.0.0.1"))

		password, err := challenge.SubmitAnswer(" 5 ", "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, "NewOwnerPass2025!", password)
	})

	t.Run("answer is case-insensitive", func(t *testing.T) {
		recovery, _ := newTestRecovery()
		challenge := recovery.NewChallenge()
		require.NoError(t, challenge.SubmitUsername("staff", "10.0.0.1"))

		password, err := challenge.SubmitAnswer("HOTMAIL", "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, "NewStaffPass2025!", password)
	})

	t.Run("wrong answer keeps the flow in AWAITING_ANSWER", func(t *testing.T) {
		recovery, activity := newTestRecovery()
		challenge := recovery.NewChallenge()
		require.NoError(t, challenge.SubmitUsername("owner", "10.0.0.1"))

		_, err := challenge.SubmitAnswer("6", "10.0.0.1")
		assert.ErrorIs(t, err, ErrIncorrectAnswer)
		assert.Equal(t, StateAwaitingAnswer, challenge.State())

		records := activity.Recent(0)
		require.Len(t, records, 1)
		assert.Equal(t, models.ActionPasswordRecoveryBad, records[0].Action)
		assert.False(t, records[0].Success)

		// The flow allows retrying after a mismatch.
		password, err := challenge.SubmitAnswer("5", "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, "NewOwnerPass2025!", password)
	})
}

func TestChallengeUnknownUser(t *testing.T) {
	recovery, activity := newTestRecovery()

	challenge := recovery.NewChallenge()
	err := challenge.SubmitUsername("nobody", "10.0.0.1")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, StateAwaitingUsername, challenge.State())

	// Lookup failures are recorded too.
	records := activity.Recent(0)
	require.Len(t, records, 1)
	assert.Equal(t, models.ActionPasswordRecoveryBad, records[0].Action)
	assert.Equal(t, models.RoleUnknown, records[0].Role)
}

func TestChallengeReset(t *testing.T) {
	recovery, _ := newTestRecovery()

	challenge := recovery.NewChallenge()
	require.NoError(t, challenge.SubmitUsername("owner", "10.0.0.1"))
	_, err := challenge.SubmitAnswer("5", "10.0.0.1")
	require.NoError(t, err)
	require.Equal(t, StateRevealed, challenge.State())

	challenge.Reset()
	assert.Equal(t, StateAwaitingUsername, challenge.State())
	assert.Empty(t, challenge.Question())
}

func TestRecover(t *testing.T) {
	recovery, _ := newTestRecovery()

	password, err := recovery.Recover("manager", "4551", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "NewManagerPass2025!", password)

	_, err = recovery.Recover("manager", "0000", "10.0.0.1")
	assert.ErrorIs(t, err, ErrIncorrectAnswer)

	_, err = recovery.Recover("nobody", "5", "10.0.0.1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestQuestionLookup(t *testing.T) {
	recovery, _ := newTestRecovery()

	question, err := recovery.Question("staff")
	require.NoError(t, err)
	assert.Equal(t, "What is the business email domain?", question)

	_, err = recovery.Question("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

package services

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Mo2025mo/la-automotive/internal/config"
	"github.com/Mo2025mo/la-automotive/internal/models"
)

// Suspicious-activity thresholds: more than 3 failed logins, or activity
// from 3+ distinct IPs, among the 10 most recent records in 24 hours.
const (
	suspiciousWindow      = 24 * time.Hour
	suspiciousSampleSize  = 10
	suspiciousMaxFailures = 3
	suspiciousMaxIPs      = 2
)

// ActivityService keeps the append-only admin activity ledger. The ledger is
// process-local; the capacity trim happens inside the append critical
// section so reads stay pure.
type ActivityService struct {
	mu      sync.Mutex
	records []models.ActivityRecord

	maxRetained  int
	displayLimit int
}

func NewActivityService(cfg *config.Config) *ActivityService {
	return &ActivityService{
		maxRetained:  cfg.Retention.MaxActivities,
		displayLimit: cfg.Retention.ActivityDisplay,
	}
}

// append stamps the record server-side and trims the oldest entries once the
// ledger exceeds its cap. Caller-supplied timestamps are never trusted.
func (s *ActivityService) append(record models.ActivityRecord) {
	record.Timestamp = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	if len(s.records) > s.maxRetained {
		s.records = s.records[len(s.records)-s.maxRetained:]
	}
}

// LogLogin records a login attempt. Exactly one record is appended per
// attempt, successful or not.
func (s *ActivityService) LogLogin(username, role, ipAddress, userAgent string, success bool) {
	action := models.ActionLoginSuccess
	if !success {
		action = models.ActionLoginFailed
	}

	s.append(models.ActivityRecord{
		Username:  username,
		Role:      role,
		Action:    action,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Success:   success,
	})

	log.Printf("admin activity: %s user=%s role=%s ip=%s", action, username, role, ipAddress)
}

// LogLogout records a logout with the session duration in seconds.
func (s *ActivityService) LogLogout(username, role, ipAddress string, sessionDuration int) {
	s.append(models.ActivityRecord{
		Username:        username,
		Role:            role,
		Action:          models.ActionLogout,
		IPAddress:       ipAddress,
		SessionDuration: sessionDuration,
		Success:         true,
	})

	log.Printf("admin activity: LOGOUT user=%s role=%s duration=%ds", username, role, sessionDuration)
}

// LogAction records a dashboard action (viewing inquiries, triage changes,
// password recovery attempts).
func (s *ActivityService) LogAction(username, role, action, ipAddress string, success bool) {
	s.append(models.ActivityRecord{
		Username:  username,
		Role:      role,
		Action:    action,
		IPAddress: ipAddress,
		Success:   success,
	})
}

// Recent returns up to limit records, newest first. A limit of 0 or one
// above the display cap falls back to the configured display limit.
func (s *ActivityService) Recent(limit int) []models.ActivityRecord {
	if limit <= 0 || limit > s.displayLimit {
		limit = s.displayLimit
	}

	s.mu.Lock()
	out := make([]models.ActivityRecord, len(s.records))
	copy(out, s.records)
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Count returns the number of retained records.
func (s *ActivityService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// LoginStats aggregates per-account login activity. Failed attempts are only
// attributed to accounts that have at least one successful login; an
// attacker who never succeeds leaves no row here, which is why the activity
// ledger itself remains the authoritative audit trail.
func (s *ActivityService) LoginStats() []models.LoginStat {
	s.mu.Lock()
	records := make([]models.ActivityRecord, len(s.records))
	copy(records, s.records)
	s.mu.Unlock()

	stats := make(map[string]*models.LoginStat)
	for _, r := range records {
		if r.Action != models.ActionLoginSuccess {
			continue
		}
		stat, ok := stats[r.Username]
		if !ok {
			stat = &models.LoginStat{Username: r.Username, Role: r.Role}
			stats[r.Username] = stat
		}
		stat.TotalLogins++
		if r.Timestamp.After(stat.LastLogin) {
			stat.LastLogin = r.Timestamp
		}
	}

	for _, r := range records {
		if r.Action != models.ActionLoginFailed {
			continue
		}
		if stat, ok := stats[r.Username]; ok {
			stat.FailedAttempts++
		}
	}

	out := make([]models.LoginStat, 0, len(stats))
	for _, stat := range stats {
		stat.Suspicious = s.IsSuspicious(stat.Username)
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Username < out[j].Username
	})
	return out
}

// IsSuspicious reports whether an account looks like it is under
// credential-stuffing or brute-force attack. The verdict is advisory; no
// lockout policy hangs off it.
func (s *ActivityService) IsSuspicious(username string) bool {
	cutoff := time.Now().Add(-suspiciousWindow)

	s.mu.Lock()
	recent := make([]models.ActivityRecord, 0, suspiciousSampleSize)
	for i := len(s.records) - 1; i >= 0 && len(recent) < suspiciousSampleSize; i-- {
		r := s.records[i]
		if r.Username == username && r.Timestamp.After(cutoff) {
			recent = append(recent, r)
		}
	}
	s.mu.Unlock()

	failed := 0
	ips := make(map[string]struct{})
	for _, r := range recent {
		if r.Action == models.ActionLoginFailed {
			failed++
		}
		ips[r.IPAddress] = struct{}{}
	}

	return failed > suspiciousMaxFailures || len(ips) > suspiciousMaxIPs
}

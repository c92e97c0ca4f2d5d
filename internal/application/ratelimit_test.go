package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(start time.Time) (*RateLimiter, *time.Time) {
	now := start
	l := NewRateLimiter(NewMemoryRateLimitStore())
	l.now = func() time.Time { return now }
	return l, &now
}

func TestRateLimiter_FirstSubmissionAllowed(t *testing.T) {
	l, _ := newTestLimiter(time.Unix(1000000, 0))

	assert.Empty(t, l.Check(1, 1))
}

func TestRateLimiter_CooldownBlocksImmediateRetry(t *testing.T) {
	l, now := newTestLimiter(time.Unix(1000000, 0))

	assert.Empty(t, l.Check(1, 1))

	*now = now.Add(10 * time.Second)
	violations := l.Check(1, 1)
	assert.Len(t, violations, 1)
	assert.Contains(t, violations[0], "please wait")
}

func TestRateLimiter_AllowedAfterCooldown(t *testing.T) {
	l, now := newTestLimiter(time.Unix(1000000, 0))

	assert.Empty(t, l.Check(1, 1))
	*now = now.Add(31 * time.Second)
	assert.Empty(t, l.Check(1, 1))
}

func TestRateLimiter_HourlyCapBlocksSixth(t *testing.T) {
	l, now := newTestLimiter(time.Unix(1000000, 0))

	for i := 0; i < 5; i++ {
		assert.Empty(t, l.Check(1, 1), "submission %d should be allowed", i+1)
		*now = now.Add(time.Minute)
	}

	violations := l.Check(1, 1)
	assert.Len(t, violations, 1)
	assert.Contains(t, violations[0], "submission limit reached")
}

func TestRateLimiter_BlockedAttemptNotCounted(t *testing.T) {
	l, now := newTestLimiter(time.Unix(1000000, 0))

	for i := 0; i < 5; i++ {
		assert.Empty(t, l.Check(1, 1))
		*now = now.Add(time.Minute)
	}

	// Denied attempts do not extend the window or the count.
	assert.NotEmpty(t, l.Check(1, 1))
	assert.NotEmpty(t, l.Check(1, 1))
}

func TestRateLimiter_BothViolationsReported(t *testing.T) {
	l, now := newTestLimiter(time.Unix(1000000, 0))

	for i := 0; i < 4; i++ {
		assert.Empty(t, l.Check(1, 1))
		*now = now.Add(time.Minute)
	}
	assert.Empty(t, l.Check(1, 1))

	// Fifth submission just happened: retry 10s later trips cooldown and cap.
	*now = now.Add(10 * time.Second)
	violations := l.Check(1, 1)
	assert.Len(t, violations, 2)
}

func TestRateLimiter_WindowResetsAfterAnHour(t *testing.T) {
	l, now := newTestLimiter(time.Unix(1000000, 0))

	for i := 0; i < 5; i++ {
		assert.Empty(t, l.Check(1, 1))
		*now = now.Add(time.Minute)
	}
	assert.NotEmpty(t, l.Check(1, 1))

	*now = now.Add(time.Hour + time.Minute)
	assert.Empty(t, l.Check(1, 1))
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(time.Unix(1000000, 0))

	assert.Empty(t, l.Check(1, 1))
	// Same user, different form; different user, same form.
	assert.Empty(t, l.Check(1, 2))
	assert.Empty(t, l.Check(2, 1))
}

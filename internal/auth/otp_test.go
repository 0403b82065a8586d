package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RahemShaikh/LoginSimulator/internal/common"
)

type fakeNotifier struct {
	to      []string
	subject []string
	body    []string
	err     error
}

func (f *fakeNotifier) Send(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.to = append(f.to, to)
	f.subject = append(f.subject, subject)
	f.body = append(f.body, body)
	return nil
}

// sentCode extracts the numeric code from the last delivered body.
func (f *fakeNotifier) sentCode(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.body)
	m := regexp.MustCompile(`\d+`).FindString(f.body[len(f.body)-1])
	require.NotEmpty(t, m)
	return m
}

func TestCodeService_IssueDelivers(t *testing.T) {
	ctx := context.Background()
	n := &fakeNotifier{}
	s := NewCodeService(n, 5*time.Minute)

	ch, err := s.Issue(ctx, PurposeTwoFactorLogin, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, ch)

	assert.NotEmpty(t, ch.ID)
	assert.Equal(t, PurposeTwoFactorLogin, ch.Purpose)
	assert.Equal(t, "a@b.com", ch.Email)
	assert.Equal(t, []string{"a@b.com"}, n.to)
	assert.Equal(t, []string{"Your Two Factor Authentication Code"}, n.subject)
	assert.Len(t, n.sentCode(t), codeDigits)
}

func TestCodeService_IssueDeliveryFailure(t *testing.T) {
	ctx := context.Background()
	n := &fakeNotifier{err: fmt.Errorf("%w: boom", common.ErrorDelivery)}
	s := NewCodeService(n, 5*time.Minute)

	ch, err := s.Issue(ctx, PurposePasswordRecovery, "a@b.com")
	assert.Nil(t, ch, "no challenge may exist when delivery fails")
	assert.ErrorIs(t, err, common.ErrorDelivery)
}

func TestCodeService_VerifyMatch(t *testing.T) {
	ctx := context.Background()
	n := &fakeNotifier{}
	s := NewCodeService(n, 5*time.Minute)

	ch, err := s.Issue(ctx, PurposeTwoFactorLogin, "a@b.com")
	require.NoError(t, err)

	require.NoError(t, s.Verify(ch, n.sentCode(t)))
	assert.True(t, ch.Verified())
}

func TestCodeService_VerifyMismatchConsumes(t *testing.T) {
	ctx := context.Background()
	n := &fakeNotifier{}
	s := NewCodeService(n, 5*time.Minute)

	ch, err := s.Issue(ctx, PurposeTwoFactorLogin, "a@b.com")
	require.NoError(t, err)

	err = s.Verify(ch, "000000x")
	assert.ErrorIs(t, err, common.ErrAuthenticationFailed)
	assert.False(t, ch.Verified())

	// The correct code no longer works: single use per challenge.
	err = s.Verify(ch, n.sentCode(t))
	assert.ErrorIs(t, err, common.ErrCodeConsumed)
}

func TestCodeService_VerifyTwiceAfterSuccess(t *testing.T) {
	ctx := context.Background()
	n := &fakeNotifier{}
	s := NewCodeService(n, 5*time.Minute)

	ch, err := s.Issue(ctx, PurposeTwoFactorLogin, "a@b.com")
	require.NoError(t, err)

	code := n.sentCode(t)
	require.NoError(t, s.Verify(ch, code))
	assert.ErrorIs(t, s.Verify(ch, code), common.ErrCodeConsumed)
}

func TestCodeService_VerifyExpired(t *testing.T) {
	ctx := context.Background()
	n := &fakeNotifier{}
	s := NewCodeService(n, 5*time.Minute)

	ch, err := s.Issue(ctx, PurposeTwoFactorLogin, "a@b.com")
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(10 * time.Minute) }

	err = s.Verify(ch, n.sentCode(t))
	assert.ErrorIs(t, err, common.ErrCodeExpired)
	assert.False(t, ch.Verified())
}

func TestCodeService_VerifyNilChallenge(t *testing.T) {
	s := NewCodeService(&fakeNotifier{}, 5*time.Minute)
	assert.True(t, errors.Is(s.Verify(nil, "123456"), common.ErrAuthenticationFailed))
}

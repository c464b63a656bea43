package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"classdesk/internal/cache"
	apperrors "classdesk/internal/errors"
	"classdesk/internal/mail"
	"classdesk/internal/model"
	"classdesk/internal/repository"
)

const (
	verifyCodeLength      = 6
	resendCooldownKeyFmt  = "verify:cooldown:%s"
	maxVerifyCodeAttempts = 5
)

// VerificationService issues verification codes for email addresses.
type VerificationService interface {
	Issue(ctx context.Context, email string) error
}

type verificationService struct {
	repo     repository.VerificationRepository
	cache    *cache.Client
	mailer   mail.Mailer
	codeTTL  time.Duration
	cooldown time.Duration
}

// NewVerificationService creates a verification service with the given
// code TTL and per-email resend cooldown.
func NewVerificationService(
	repo repository.VerificationRepository,
	cacheClient *cache.Client,
	mailer mail.Mailer,
	codeTTL, cooldown time.Duration,
) VerificationService {
	return &verificationService{
		repo:     repo,
		cache:    cacheClient,
		mailer:   mailer,
		codeTTL:  codeTTL,
		cooldown: cooldown,
	}
}

// Issue generates a fresh numeric code bound to the email, persists it
// with an expiry, and hands it to the mailer. The cooldown is enforced
// server-side so a client cannot bypass it by reloading.
func (s *verificationService) Issue(ctx context.Context, email string) error {
	key := fmt.Sprintf(resendCooldownKeyFmt, email)
	ok, err := s.cache.SetNX(ctx, key, []byte("1"), s.cooldown)
	if err != nil {
		return fmt.Errorf("resend cooldown: %w", err)
	}
	if !ok {
		return apperrors.ErrResendCooldown
	}

	// Codes collide rarely; retry a few times on the primary key like the
	// short-code allocator does.
	for attempt := 0; attempt < maxVerifyCodeAttempts; attempt++ {
		code, err := numericCode(verifyCodeLength)
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}

		v := &model.VerificationCode{
			Code:   code,
			Email:  email,
			Expire: time.Now().Add(s.codeTTL).Unix(),
		}
		if err := s.repo.Create(ctx, v); err != nil {
			if repository.IsDuplicateKey(err) {
				continue
			}
			return fmt.Errorf("store verification code: %w", err)
		}
		return s.mailer.SendVerificationCode(ctx, email, code)
	}
	return apperrors.ErrCodeSpaceExhausted
}

// numericCode returns a random string of the given length drawn from
// digits only.
func numericCode(length int) (string, error) {
	const digits = "0123456789"
	max := big.NewInt(int64(len(digits)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = digits[n.Int64()]
	}
	return string(buf), nil
}

package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
)

const otpTTL = 10 * time.Minute

// generateSecureOTP produces a random numeric code of the given length.
func generateSecureOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// InitiateOTP generates a 6-digit OTP, stores it in Redis keyed by the
// contact address (email or phone), and hands it to the delivery callback.
func InitiateOTP(ctx context.Context, contact string, deliver func(contact, otp string) error) error {
	otp, err := generateSecureOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}
	if err := client.Set(ctx, otpKey(contact), otp, otpTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return fmt.Errorf("failed to initiate OTP")
	}

	if err := deliver(contact, otp); err != nil {
		GetLogger().Error("Failed to deliver OTP", zap.Error(err))
		return fmt.Errorf("failed to send OTP")
	}
	return nil
}

// VerifyOTP checks the submitted code against the stored one and consumes it.
func VerifyOTP(ctx context.Context, contact, otp string) (bool, error) {
	client := GetOTPCacheClient()
	if client == nil {
		return false, fmt.Errorf("OTP cache client not initialized")
	}
	stored, err := client.Get(ctx, otpKey(contact)).Result()
	if err != nil {
		return false, nil
	}
	if stored != otp {
		return false, nil
	}
	client.Del(ctx, otpKey(contact))
	return true, nil
}

func otpKey(contact string) string {
	return fmt.Sprintf("otp:%s", contact)
}

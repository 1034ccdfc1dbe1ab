// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-hyper-monitor/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping). They also scope bare-string validation:
// Validate(ctx, "0xabc...", FieldTxHash).
const (
	// FieldEmail targets the account email of a credentials or register payload.
	FieldEmail = "email"

	// FieldPassword targets the account password field.
	FieldPassword = "password"

	// FieldVerificationCode targets the six-digit mailed registration code.
	FieldVerificationCode = "verification_code"

	// FieldTxHash targets an on-chain payment transaction hash.
	FieldTxHash = "tx_hash"

	// FieldLanguage targets the notification/UI language code.
	FieldLanguage = "language"

	// FieldFollowMode targets the mirrored-trading sizing mode.
	FieldFollowMode = "mode"
)

type InputValidator struct {
}

func NewInputValidator() Validator {
	return &InputValidator{}
}

func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.MonitorConfig:
		return v.validateMonitorConfig(ctx, value, fields...)
	case *models.MonitorConfig:
		return v.validateMonitorConfig(ctx, *value, fields...)

	case models.BinanceFollowRequest:
		return v.validateFollowRequest(ctx, value, fields...)
	case *models.BinanceFollowRequest:
		return v.validateFollowRequest(ctx, *value, fields...)

	case models.WecomConfig:
		return v.validateWecomConfig(ctx, value, fields...)
	case *models.WecomConfig:
		return v.validateWecomConfig(ctx, *value, fields...)

	case models.PaymentVerificationRequest:
		return v.validateString(value.TxHash, FieldTxHash)
	case *models.PaymentVerificationRequest:
		return v.validateString(value.TxHash, FieldTxHash)

	case string:
		if len(fields) != 1 {
			return fmt.Errorf("%w: bare string needs exactly one field name", ErrUnknownField)
		}
		return v.validateString(value, fields[0])

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *InputValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	for _, field := range scope(fields, FieldEmail, FieldPassword) {
		switch field {
		case FieldEmail:
			if !IsEmail(creds.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrShortPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *InputValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	for _, field := range scope(fields, FieldEmail, FieldPassword, FieldVerificationCode) {
		switch field {
		case FieldEmail:
			if !IsEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(req.Password) < 6 {
				return ErrShortPassword
			}
		case FieldVerificationCode:
			if !isDigits(req.VerificationCode) || len(req.VerificationCode) != 6 {
				return ErrInvalidCode
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *InputValidator) validateMonitorConfig(_ context.Context, cfg models.MonitorConfig, fields ...string) error {
	for _, field := range scope(fields, FieldLanguage) {
		switch field {
		case FieldLanguage:
			if cfg.Language != "zh" && cfg.Language != "en" {
				return ErrInvalidLanguage
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *InputValidator) validateFollowRequest(_ context.Context, req models.BinanceFollowRequest, _ ...string) error {
	if !req.Enabled {
		return nil
	}
	if req.Mode != "fixed" && req.Mode != "percentage" {
		return ErrInvalidFollowMode
	}
	if req.Amount <= 0 {
		return ErrInvalidFollowAmount
	}
	// адрес проверяем только на наличие, формат остаётся на бэкенде
	if strings.TrimSpace(req.WalletAddress) == "" {
		return ErrMissingWalletAddress
	}
	return nil
}

func (v *InputValidator) validateWecomConfig(_ context.Context, cfg models.WecomConfig, _ ...string) error {
	if cfg.Enabled && strings.TrimSpace(cfg.WebhookURL) == "" {
		return ErrMissingWebhookURL
	}
	return nil
}

func (v *InputValidator) validateString(value, field string) error {
	switch field {
	case FieldTxHash:
		if !IsTxHash(value) {
			return ErrInvalidTxHash
		}
	case FieldLanguage:
		if value != "zh" && value != "en" {
			return ErrInvalidLanguage
		}
	case FieldEmail:
		if !IsEmail(value) {
			return ErrInvalidEmail
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// scope returns the requested fields, or all defaults when none were named.
func scope(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

// IsTxHash checks the 0x + 64 hex digit transaction hash form.
func IsTxHash(hash string) bool {
	return isHexWithPrefix(hash, 64)
}

// IsEmail is a deliberately loose check; the backend does the real
// verification by mailing a code.
func IsEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}

func isHexWithPrefix(s string, digits int) bool {
	if len(s) != digits+2 || !strings.HasPrefix(s, "0x") {
		return false
	}
	for _, c := range s[2:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

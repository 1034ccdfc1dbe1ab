package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail         = errors.New("invalid email address")
	ErrShortPassword        = errors.New("password must be at least 6 characters")
	ErrInvalidCode          = errors.New("verification code must be 6 digits")
	ErrInvalidTxHash        = errors.New("invalid transaction hash")
	ErrInvalidLanguage      = errors.New("language must be zh or en")
	ErrInvalidFollowMode    = errors.New("follow mode must be fixed or percentage")
	ErrInvalidFollowAmount  = errors.New("follow amount must be positive")
	ErrMissingWalletAddress = errors.New("wallet address is required")
	ErrMissingWebhookURL    = errors.New("webhook url is required when enabled")
)

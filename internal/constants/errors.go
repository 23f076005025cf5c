package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKey                 = errors.New("no API key configured, run 'increase login' or set INCREASE_API_KEY")
	ErrEmptyAPIKey              = errors.New("API key must not be empty")
	ErrInvalidOutput            = errors.New("invalid output format, use table, json or yaml")
	ErrInvalidEnv               = errors.New("invalid environment, use production or sandbox")
	ErrUnknownConfigKey         = errors.New("unknown configuration key")
	ErrNotATerminal             = errors.New("standard input is not a terminal, pass --api-key instead")
	ErrStaticKeyRefresh         = errors.New("static API key cannot be refreshed")
	ErrTransferAccountsRequired = errors.New("--from and --to flags are required")
)

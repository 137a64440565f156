package services

import "errors"

var (
	// ErrTokenNotConfigured means the brokerage credential is missing from
	// the environment. Fatal: the refresh aborts before any external call.
	ErrTokenNotConfigured = errors.New("brokerage API token is not configured")

	// ErrSettingsNotFound means the owner has no settings row.
	ErrSettingsNotFound = errors.New("user settings not found")
)

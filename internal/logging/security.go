// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// SecurityEvent represents a security-relevant event for audit logging.
type SecurityEvent struct {
	// Event is the type of event (e.g., "signup", "signin", "token_refresh").
	Event string
	// UserID is the user's identifier (if known).
	UserID string
	// Email is the user's sign-in address (if known).
	Email string
	// IPAddress is the client's IP address.
	IPAddress string
	// Success indicates if the operation was successful.
	Success bool
	// Error is the error message if the operation failed.
	Error string
}

// SecurityLogger provides audit logging for authentication events.
// It sanitizes identifying data before logging.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger creates a new security logger.
func NewSecurityLogger() *SecurityLogger {
	return &SecurityLogger{
		logger: With().Str("component", "auth").Logger(),
	}
}

// NewSecurityLoggerWithLogger creates a security logger with a custom
// zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLoggerWithLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// LogEvent logs a security event with automatic sanitization.
func (l *SecurityLogger) LogEvent(event *SecurityEvent) {
	e := l.logger.Info().
		Str("event", event.Event)

	if event.Success {
		e = e.Str("status", "success")
	} else {
		e = e.Str("status", "failed")
	}

	if event.UserID != "" {
		e = e.Str("user_id", SanitizeUserID(event.UserID))
	}
	if event.Email != "" {
		e = e.Str("email", SanitizeEmail(event.Email))
	}
	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.Error != "" && !event.Success {
		e = e.Str("error", SanitizeError(event.Error))
	}

	e.Msg("")
}

// LogSignUp logs an account creation event.
func (l *SecurityLogger) LogSignUp(userID, email, ip string) {
	l.LogEvent(&SecurityEvent{
		Event:     "signup",
		UserID:    userID,
		Email:     email,
		IPAddress: ip,
		Success:   true,
	})
}

// LogSignInSuccess logs a successful sign-in event.
func (l *SecurityLogger) LogSignInSuccess(userID, email, ip string) {
	l.LogEvent(&SecurityEvent{
		Event:     "signin",
		UserID:    userID,
		Email:     email,
		IPAddress: ip,
		Success:   true,
	})
}

// LogSignInFailure logs a failed sign-in event.
func (l *SecurityLogger) LogSignInFailure(email, ip, reason string) {
	l.LogEvent(&SecurityEvent{
		Event:     "signin",
		Email:     email,
		IPAddress: ip,
		Success:   false,
		Error:     reason,
	})
}

// LogTokenRefresh logs a token refresh event.
func (l *SecurityLogger) LogTokenRefresh(userID string, success bool, errMsg string) {
	l.LogEvent(&SecurityEvent{
		Event:   "token_refresh",
		UserID:  userID,
		Success: success,
		Error:   errMsg,
	})
}

// SanitizeToken masks a token, showing only first and last 4 characters.
// Example: "eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9..." -> "eyJh...kpXV"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeUserID masks a user ID for privacy.
// Example: "user-12345678" -> "user...5678"
func SanitizeUserID(userID string) string {
	if userID == "" {
		return ""
	}
	if len(userID) <= 8 {
		return "***"
	}
	return userID[:4] + "..." + userID[len(userID)-4:]
}

// SanitizeEmail masks an email address.
// Example: "john.doe@example.com" -> "jo***@example.com"
func SanitizeEmail(email string) string {
	if email == "" {
		return ""
	}

	atIndex := strings.Index(email, "@")
	if atIndex <= 0 {
		return "***"
	}

	localPart := email[:atIndex]
	domain := email[atIndex:]

	if len(localPart) <= 2 {
		return "***" + domain
	}
	return localPart[:2] + "***" + domain
}

// SanitizeError removes potentially sensitive information from error
// messages before they reach the audit log.
func SanitizeError(err string) string {
	sensitivePatterns := []string{
		"password",
		"secret",
		"token",
		"key",
		"bearer",
		"authorization",
	}

	lowerErr := strings.ToLower(err)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerErr, pattern) {
			return "authentication error"
		}
	}

	return truncateString(err, 200)
}

// truncateString truncates a string to a maximum length.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

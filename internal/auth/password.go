// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package auth

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// PasswordPolicy defines requirements for password strength, following
// NIST SP 800-63B guidelines.
type PasswordPolicy struct {
	// MinLength is the minimum password length.
	MinLength int

	// RequireLowercase requires at least one lowercase letter.
	RequireLowercase bool

	// RequireDigit requires at least one digit.
	RequireDigit bool

	// MaxConsecutiveRepeats is the maximum allowed consecutive
	// repeated characters (0 = disabled).
	MaxConsecutiveRepeats int

	// ForbidCommonPasswords blocks common/breached passwords.
	ForbidCommonPasswords bool
}

// DefaultPasswordPolicy returns the policy applied to sign-ups. Strict
// enough to reject breached passwords while staying user-friendly for
// mentees.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:             8,
		RequireLowercase:      true,
		RequireDigit:          false,
		MaxConsecutiveRepeats: 4,
		ForbidCommonPasswords: true,
	}
}

// Validate checks a password against the policy. The returned error
// lists every violated requirement.
func (p PasswordPolicy) Validate(password string) error {
	var violations []string

	if len(password) < p.MinLength {
		violations = append(violations,
			fmt.Sprintf("password must be at least %d characters (got %d)", p.MinLength, len(password)))
	}

	hasLower, hasDigit := false, false
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if p.RequireLowercase && !hasLower {
		violations = append(violations, "password must contain at least one lowercase letter")
	}
	if p.RequireDigit && !hasDigit {
		violations = append(violations, "password must contain at least one digit")
	}

	if p.MaxConsecutiveRepeats > 0 && maxConsecutiveRepeats(password) > p.MaxConsecutiveRepeats {
		violations = append(violations,
			fmt.Sprintf("password cannot have more than %d consecutive repeated characters", p.MaxConsecutiveRepeats))
	}

	if p.ForbidCommonPasswords && isCommonPassword(password) {
		violations = append(violations, "password is too common and easily guessable")
	}

	if len(violations) > 0 {
		return errors.New(strings.Join(violations, "; "))
	}
	return nil
}

// maxConsecutiveRepeats returns the longest run of one character.
func maxConsecutiveRepeats(password string) int {
	if len(password) == 0 {
		return 0
	}
	maxRepeats := 1
	currentRepeats := 1
	var lastRune rune
	for i, r := range password {
		if i > 0 && r == lastRune {
			currentRepeats++
			if currentRepeats > maxRepeats {
				maxRepeats = currentRepeats
			}
		} else {
			currentRepeats = 1
		}
		lastRune = r
	}
	return maxRepeats
}

// isCommonPassword checks against the top breached passwords that
// should never be accepted.
func isCommonPassword(password string) bool {
	lower := strings.ToLower(password)
	commonPasswords := map[string]bool{
		"123456":        true,
		"password":      true,
		"123456789":     true,
		"12345678":      true,
		"1234567890":    true,
		"qwerty":        true,
		"qwerty123":     true,
		"abc123":        true,
		"password1":     true,
		"password123":   true,
		"admin":         true,
		"admin123":      true,
		"letmein":       true,
		"welcome":       true,
		"iloveyou":      true,
		"sunshine":      true,
		"trustno1":      true,
		"111111":        true,
		"000000":        true,
		"654321":        true,
		"passw0rd":      true,
		"p@ssw0rd":      true,
		"changeme":      true,
		"default":       true,
		"test":          true,
		"guest":         true,
		"root":          true,
		"secret":        true,
		"administrator": true,
	}
	return commonPasswords[lower]
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenEmail extracts the "email" claim from a bearer token without verifying
// the signature. The client has no signing key and never validates tokens
// locally; token validity is learned from request failures. The claim is used
// only for log enrichment after a session restore.
//
// Returns an error if the token cannot be parsed or carries no email claim.
func TokenEmail(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("token has no email claim")
	}

	return email, nil
}

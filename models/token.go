package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a parsed or freshly signed bearer token. The diary API only
// trusts the subject claim, which carries the numeric user id.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`

	// UserID is the subject claim as a number, filled once after parsing.
	UserID int64 `json:"-"`
}

// GetUserID parses the subject claim as a base-10 user id.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("token subject %q is not a user id", subject)
	}

	return userID, nil
}

func (t *Token) String() string {
	return t.SignedString
}

package domain

import "time"

// SubjectType identifies who a token was issued to.
type SubjectType string

const (
	SubjectTypeOperator SubjectType = "OPERATOR"
)

// Token represents issued authentication token metadata.
type Token struct {
	Subject   string
	Type      SubjectType
	ExpiresAt time.Time
	IssuedAt  time.Time
}

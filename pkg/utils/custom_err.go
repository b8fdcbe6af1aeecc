package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidInput       = errors.New("invalid input")
	ErrLocationNotFound   = errors.New("location not found")
	ErrPartyNotFound      = errors.New("party not found")
	ErrInvalidPartyID     = errors.New("invalid party id")
	ErrDuplicatePartyName = errors.New("party name already exists for this location")
	ErrPartyFull          = errors.New("party is full")
	ErrAlreadyMember      = errors.New("already a member of this party")
	ErrNotMember          = errors.New("not a member of this party")
	ErrNotPartyLeader     = errors.New("only the party leader can do this")
	ErrEmptyMessage       = errors.New("message content is empty")

	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountNotVerified = errors.New("account not verified")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrInvalidBirthday   = errors.New("invalid birthday")
	ErrInvalidSkillLevel = errors.New("invalid skill level")
	ErrPasswordTooShort  = errors.New("password too short")
)

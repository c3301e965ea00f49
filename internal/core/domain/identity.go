package domain

import "errors"

// Role identifies which side of a training session an identity plays.
type Role string

const (
	RoleFacilitator Role = "facilitator"
	RoleParticipant Role = "participant"
)

var ErrInvalidRole = errors.New("invalid role")
var ErrIdentityRequired = errors.New("identity required")

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleFacilitator || r == RoleParticipant
}

// ParseRole converts a stored role string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Identity is the logged-in user record. Facilitators carry an email,
// participants a participant id.
type Identity struct {
	ID            string `json:"id"`
	Email         string `json:"email,omitempty"`
	ParticipantID string `json:"participantId,omitempty"`
	Name          string `json:"name"`
	Role          Role   `json:"role"`
}

// NewFacilitator builds the mock facilitator identity issued at login.
func NewFacilitator(email string) *Identity {
	return &Identity{
		ID:    "1",
		Email: email,
		Name:  "John Facilitator",
		Role:  RoleFacilitator,
	}
}

// NewParticipant builds the mock participant identity issued at login.
func NewParticipant(participantID string) *Identity {
	return &Identity{
		ID:            participantID,
		ParticipantID: participantID,
		Name:          "Participant " + participantID,
		Role:          RoleParticipant,
	}
}

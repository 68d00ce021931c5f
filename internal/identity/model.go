package identity

import (
	"strings"
	"time"
)

// UserType define el rol de un usuario dentro del ecosistema.
type UserType string

const (
	UserTypeFounder   UserType = "founder"
	UserTypeInvestor  UserType = "investor"
	UserTypeAdvisor   UserType = "advisor"
	UserTypeCommunity UserType = "community"
)

func ParseUserType(s string) (UserType, bool) {
	switch t := UserType(strings.ToLower(strings.TrimSpace(s))); t {
	case UserTypeFounder, UserTypeInvestor, UserTypeAdvisor, UserTypeCommunity:
		return t, true
	default:
		return "", false
	}
}

// Profile es el perfil extendido de un usuario autenticado.
type Profile struct {
	UserID string

	UserType    UserType
	DisplayName string
	Bio         string
	Location    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthContext es la identidad explícita que reciben el motor de decisión y los servicios.
// Profile == nil significa "usuario sin perfil": es un estado válido, no un error.
type AuthContext struct {
	UserID         string
	Profile        *Profile
	OwnedStartupID string // vacío si no es founder o aún no creó su startup
}

// Anonymous representa un request sin usuario autenticado.
var Anonymous = AuthContext{}

func (a AuthContext) Authenticated() bool {
	return strings.TrimSpace(a.UserID) != ""
}

func (a AuthContext) HasProfile() bool {
	return a.Profile != nil
}

// Role devuelve "" si no hay perfil.
func (a AuthContext) Role() UserType {
	if a.Profile == nil {
		return ""
	}
	return a.Profile.UserType
}

func (a AuthContext) IsInvestor() bool {
	return a.Authenticated() && a.Role() == UserTypeInvestor
}

func (a AuthContext) IsFounder() bool {
	return a.Authenticated() && a.Role() == UserTypeFounder
}

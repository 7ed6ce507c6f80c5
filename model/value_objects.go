// Package model provides value objects for API parameter validation.
package model

import (
	"strings"
	"unicode/utf8"
)

// maxNotesLength limits free-text notes stored with a visit.
const maxNotesLength = 2000

// CityID represents a visited-city identifier value object.
type CityID struct {
	value string
}

// NewCityID creates a new city ID value object.
func NewCityID(id string) (*CityID, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("cityId is required")
	}
	return &CityID{value: id}, nil
}

// String returns the city ID string.
func (c *CityID) String() string {
	return c.value
}

// Notes represents free-text notes attached to a visit.
type Notes struct {
	value string
}

// NewNotes creates a new notes value object. A nil pointer means no notes.
func NewNotes(notes *string) (*Notes, error) {
	if notes == nil {
		return &Notes{value: ""}, nil
	}
	if utf8.RuneCountInString(*notes) > maxNotesLength {
		return nil, NewValidationError("notes must be at most 2000 characters")
	}
	return &Notes{value: *notes}, nil
}

// String returns the notes text.
func (n *Notes) String() string {
	return n.value
}

// LocationName represents a user-entered location name.
type LocationName struct {
	value string
}

// NewLocationName trims the name and rejects whitespace-only input.
func NewLocationName(name string) (*LocationName, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, NewValidationError("location name is required")
	}
	return &LocationName{value: trimmed}, nil
}

// String returns the trimmed name.
func (l *LocationName) String() string {
	return l.value
}

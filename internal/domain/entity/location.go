package entity

import "github.com/google/uuid"

// Country is reference data for addresses.
type Country struct {
	ID        uuid.UUID
	Name      string
	ShortName string
}

// State belongs to a country.
type State struct {
	ID        uuid.UUID
	Name      string
	CountryID uuid.UUID
}

// City belongs to a state.
type City struct {
	ID      uuid.UUID
	Name    string
	StateID uuid.UUID
}

// District belongs to a city.
type District struct {
	ID     uuid.UUID
	Name   string
	CityID uuid.UUID
}

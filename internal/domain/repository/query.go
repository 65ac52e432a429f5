package repository

import (
	"slices"

	"github.com/google/uuid"
)

const (
	defaultTake = 20
	maxTake     = 100
)

// SortOrder is the direction of an ORDER BY clause.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Pagination is a skip/take window plus an ordering key. OrderBy is checked
// against a per-entity allow-list before it reaches SQL.
type Pagination struct {
	Skip      int
	Take      int
	OrderBy   string
	SortOrder SortOrder
}

// Normalize clamps the window and replaces an unknown ordering key with created_at.
func (p Pagination) Normalize(allowed ...string) Pagination {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Take <= 0 {
		p.Take = defaultTake
	}
	if p.Take > maxTake {
		p.Take = maxTake
	}
	if p.OrderBy == "" || !slices.Contains(allowed, p.OrderBy) {
		p.OrderBy = "created_at"
	}
	if p.SortOrder != SortAsc {
		p.SortOrder = SortDesc
	}

	return p
}

// OrderClause renders the normalized ordering as "column direction".
func (p Pagination) OrderClause() string {
	return p.OrderBy + " " + string(p.SortOrder)
}

// LeadOrderColumns are the columns a lead listing may be ordered by.
var LeadOrderColumns = []string{"created_at", "updated_at", "required_units"}

// MessageOrderColumns are the columns a conversation listing may be ordered by.
var MessageOrderColumns = []string{"created_at"}

// LeadFilter selects leads. A nil VendorID restricts the result to unclaimed leads.
type LeadFilter struct {
	VendorID           *uuid.UUID
	BusinessCategoryID *uuid.UUID
	Search             string
}

// ConversationFilter selects the messages exchanged between two users.
type ConversationFilter struct {
	UserIDOne uuid.UUID
	UserIDTwo uuid.UUID
	Search    string
}

// HistoryFilter selects conversation heads. A nil PartyID means every conversation.
type HistoryFilter struct {
	PartyID *uuid.UUID
}

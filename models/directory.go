package models

import "time"

// Listing kinds.
const (
	KindLawyer = "LAWYER"
	KindNGO    = "NGO"
)

// Listing sources. BAR_COUNCIL and NGO_DARPAN are authoritative registries;
// entries they produce are verified by definition.
const (
	SourceBarCouncil       = "BAR_COUNCIL"
	SourceNGODarpan        = "NGO_DARPAN"
	SourceSelfRegistration = "SELF_REGISTRATION"
	SourceInternal         = "INTERNAL"
)

// AuthoritativeSources lists the sources whose presence attests a natural key.
var AuthoritativeSources = []string{SourceBarCouncil, SourceNGODarpan}

// DirectoryListing is the unified, publicly searchable directory record.
// At most one listing exists per (kind, naturalKey) pair when the key is set.
type DirectoryListing struct {
	ID             string `bson:"id" json:"id"`
	Kind           string `bson:"kind" json:"kind"`     // "LAWYER" or "NGO"
	Source         string `bson:"source" json:"source"` // origin of this entry
	NaturalKey     string `bson:"naturalKey,omitempty" json:"naturalKey,omitempty"`

	Name            string `bson:"name" json:"name"`
	Specialization  string `bson:"specialization,omitempty" json:"specialization,omitempty"`
	ExperienceYears int    `bson:"experienceYears,omitempty" json:"experienceYears,omitempty"`

	ContactPhone string `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	ContactEmail string `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`

	Country  string `bson:"country,omitempty" json:"country,omitempty"`
	State    string `bson:"state,omitempty" json:"state,omitempty"`
	District string `bson:"district,omitempty" json:"district,omitempty"`
	City     string `bson:"city,omitempty" json:"city,omitempty"`

	Latitude  *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`

	// Verified: attested by an authoritative source. Approved: admin-granted
	// search visibility. The two are independent.
	Verified bool `bson:"verified" json:"verified"`
	Approved bool `bson:"approved" json:"approved"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitzero"`
}

// DirectoryPage is one page of search results plus pagination metadata.
type DirectoryPage struct {
	Entries    []DirectoryListing `json:"entries"`
	TotalCount int64              `json:"totalCount"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}

// ImportSummary reports the outcome of one batch import run.
type ImportSummary struct {
	Source   string `json:"source"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreClubTable represents the 'core.club' table
type CoreClubTable struct {
	Table       string
	ID          string
	School      string
	Name        string
	Slug        string
	Description string
	CreatedBy   string
	CreatedAt   string
	UpdatedAt   string
}

// CoreClub is the schema definition for core.club
var CoreClub = CoreClubTable{
	Table:       "core.club",
	ID:          "id",
	School:      "school",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	CreatedBy:   "createdby",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t CoreClubTable) Columns() []string {
	return []string{t.ID, t.School, t.Name, t.Slug, t.Description, t.CreatedBy, t.CreatedAt, t.UpdatedAt}
}

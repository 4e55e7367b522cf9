// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreTagTable represents the 'core.tag' table
type CoreTagTable struct {
	Table     string
	ID        string
	School    string
	Name      string
	Slug      string
	CreatedAt string
}

// CoreTag is the schema definition for core.tag
var CoreTag = CoreTagTable{
	Table:     "core.tag",
	ID:        "id",
	School:    "school",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
}

func (t CoreTagTable) Columns() []string {
	return []string{t.ID, t.School, t.Name, t.Slug, t.CreatedAt}
}

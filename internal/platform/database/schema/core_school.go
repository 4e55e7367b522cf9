// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreSchoolTable represents the 'core.school' table
type CoreSchoolTable struct {
	Table       string
	Name        string
	DisplayName string
	CreatedAt   string
}

// CoreSchool is the schema definition for core.school
var CoreSchool = CoreSchoolTable{
	Table:       "core.school",
	Name:        "name",
	DisplayName: "displayname",
	CreatedAt:   "createdat",
}

// Columns returns all standard column names
func (t CoreSchoolTable) Columns() []string {
	return []string{t.Name, t.DisplayName, t.CreatedAt}
}

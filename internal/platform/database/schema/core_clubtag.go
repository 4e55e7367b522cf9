// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreClubTagTable represents the 'core.clubtag' join table
type CoreClubTagTable struct {
	Table  string
	ClubID string
	TagID  string
}

// CoreClubTag is the schema definition for core.clubtag
var CoreClubTag = CoreClubTagTable{
	Table:  "core.clubtag",
	ClubID: "clubid",
	TagID:  "tagid",
}

// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns of the ClubCompass database.
//
// Repositories build their SQL from these descriptors instead of string
// literals, so a renamed column is a one-line change here.
package schema

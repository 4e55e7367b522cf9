// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package school

import "context"

// Repository defines the data access contract for schools.
type Repository interface {

	/*
		FindByName returns the school registered under name.

		Parameters:
		  - context: context.Context
		  - name: string (lower-case subdomain label)

		Returns:
		  - *School: Hydrated entity
		  - error: dberr.ErrNotFound or database errors
	*/
	FindByName(context context.Context, name string) (*School, error)
}

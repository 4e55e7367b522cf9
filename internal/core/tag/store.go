// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import "context"

// Repository defines persistence operations for tags, scoped by school.
type Repository interface {
	List(context context.Context, school string) ([]*Tag, error)
	FindBySlug(context context.Context, school, slug string) (*Tag, error)
	Create(context context.Context, tag *Tag) error
}

package county

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListCounties(context context.Context) ([]County, error)
}

// Cache defines the volatile storage contract for the county list.
//
// A miss is reported as (nil, nil), never an error; cache failures must not
// break the read path.
type Cache interface {
	GetCounties(context context.Context) ([]County, error)
	SetCounties(context context.Context, counties []County) error
}

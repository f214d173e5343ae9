package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-goblet/internal/domain"
)

const MAX_PAGE_SIZE = 100

// ListEventsQueryParams holds query parameters for GET /events
type ListEventsQueryParams struct {
	// Filters
	Address    string `form:"address"`
	Collection string `form:"collection"`

	// Pagination
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ParseListEventsQuery parses query parameters for GET /events
func ParseListEventsQuery(c *gin.Context) (*ListEventsQueryParams, error) {
	var params ListEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	return &params, nil
}

// Validate validates the query parameters
func (p *ListEventsQueryParams) Validate() error {
	if p.Limit < 1 {
		return fmt.Errorf("limit must be positive")
	}
	if p.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	if p.Address != "" {
		if _, err := domain.ParseAddress(p.Address); err != nil {
			return err
		}
	}
	switch domain.Collection(p.Collection) {
	case "", domain.CollectionGemstone, domain.CollectionGoblet:
	default:
		return fmt.Errorf("unknown collection: %s", p.Collection)
	}
	return nil
}

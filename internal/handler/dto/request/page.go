package request

import (
	"autoflow/internal/usecase/queries"

	"github.com/google/uuid"
)

// PageQuery is the keyset pagination part of list endpoints.
type PageQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,gte=1,lte=200"`
}

func (q PageQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

// parseUUIDPtr expects a value already checked by the uuid binding tag.
func parseUUIDPtr(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

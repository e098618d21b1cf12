package response

import (
	"autoflow/internal/domain/money"

	"github.com/jinzhu/copier"
)

// amounts leave the API as fixed two-decimal strings
var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: money.Money{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(money.Money).String(), nil
			},
		},
	},
}

func from[T any](src any) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copyOption); err != nil {
		return nil, err
	}
	return &dst, nil
}

func fromList[T any, S any](src []S) ([]*T, error) {
	dst := make([]*T, 0, len(src))
	if err := copier.CopyWithOption(&dst, src, copyOption); err != nil {
		return nil, err
	}
	return dst, nil
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type PageResponse[T any] struct {
	Items      []*T   `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

type ExpiredResponse struct {
	Expired []string `json:"expired"`
}

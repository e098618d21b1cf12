package request

import (
	"autoflow/internal/usecase/commands"
	"autoflow/internal/usecase/queries"
)

type RequestInvoiceRequest struct {
	Notes  string  `json:"notes" binding:"max=2000"`
	PaidOn *string `json:"paid_on,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (r RequestInvoiceRequest) ToInput() (commands.RequestInvoiceInput, error) {
	paidOn, err := parseDatePtr(r.PaidOn)
	if err != nil {
		return commands.RequestInvoiceInput{}, err
	}
	return commands.RequestInvoiceInput{Notes: r.Notes, PaidOn: paidOn}, nil
}

type InvoiceListQuery struct {
	ClientID string `form:"client_id" binding:"omitempty,uuid"`
	PageQuery
}

func (q InvoiceListQuery) ToFilters() queries.InvoiceFilters {
	return queries.InvoiceFilters{ClientID: parseUUIDPtr(q.ClientID)}
}

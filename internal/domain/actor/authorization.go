package actor

import (
	"autoflow/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOperationDenied = errs.NewKind(errs.ErrForbidden, "role may not perform this operation")
	ErrNotOwner        = errs.NewKind(errs.ErrForbidden, "resource belongs to another client")
)

type Operation string

const (
	OpCatalogRead         Operation = "catalog.read"
	OpCatalogManage       Operation = "catalog.manage"
	OpConfigurationCreate Operation = "configuration.create"
	OpConfigurationUpdate Operation = "configuration.update"
	OpConfigurationDelete Operation = "configuration.delete"
	OpConfigurationRead   Operation = "configuration.read"
	OpPricingPreview      Operation = "pricing.preview"
	OpProposalCreate      Operation = "proposal.create"
	OpProposalAccept      Operation = "proposal.accept"
	OpProposalReject      Operation = "proposal.reject"
	OpProposalConfirm     Operation = "proposal.confirm"
	OpProposalOverride    Operation = "proposal.override"
	OpProposalEditTerms   Operation = "proposal.edit_terms"
	OpProposalExpire      Operation = "proposal.expire"
	OpProposalRead        Operation = "proposal.read"
	OpInvoiceRequest      Operation = "invoice.request"
	OpInvoiceRead         Operation = "invoice.read"
	OpStatisticsRead      Operation = "statistics.read"
)

type grant map[Role]bool

var (
	everyone  = grant{RoleClient: true, RoleSalesStaff: true, RoleAdmin: true}
	staffOnly = grant{RoleSalesStaff: true, RoleAdmin: true}
)

// permissions is the single role x operation table. Ownership rules for
// clients are applied on top of it by Authorize.
var permissions = map[Operation]grant{
	OpCatalogRead:         staffOnly,
	OpCatalogManage:       staffOnly,
	OpConfigurationCreate: everyone,
	OpConfigurationUpdate: everyone,
	OpConfigurationDelete: everyone,
	OpConfigurationRead:   everyone,
	OpPricingPreview:      everyone,
	OpProposalCreate:      everyone,
	OpProposalAccept:      staffOnly,
	OpProposalReject:      everyone,
	OpProposalConfirm:     {RoleClient: true},
	OpProposalOverride:    staffOnly,
	OpProposalEditTerms:   staffOnly,
	OpProposalExpire:      staffOnly,
	OpProposalRead:        everyone,
	OpInvoiceRequest:      staffOnly,
	OpInvoiceRead:         everyone,
	OpStatisticsRead:      {RoleAdmin: true},
}

func Can(role Role, op Operation) bool {
	return permissions[op][role]
}

func Operations() []Operation {
	ops := make([]Operation, 0, len(permissions))
	for op := range permissions {
		ops = append(ops, op)
	}
	return ops
}

// Authorize checks the table for the actor's role.
func Authorize(c Context, op Operation) error {
	if !c.role.IsValid() {
		return ErrAnonymous
	}
	if !Can(c.role, op) {
		return errs.Wrap(ErrOperationDenied, string(op))
	}
	return nil
}

// AuthorizeFor checks the table and, for clients, that the resource is theirs.
func AuthorizeFor(c Context, op Operation, ownerID uuid.UUID) error {
	if err := Authorize(c, op); err != nil {
		return err
	}
	if c.IsClient() && c.id != ownerID {
		return errs.Wrap(ErrNotOwner, string(op))
	}
	return nil
}

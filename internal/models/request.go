package models

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusApproved RequestStatus = "Approved"
	RequestStatusRejected RequestStatus = "Rejected"
)

// IsTerminal reports whether no further status transition is permitted.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// SystemApprover is recorded when a transition carries no explicit approver.
const SystemApprover = "Admin"

// RequestedItemLine is one item+quantity entry within an ItemRequest. ItemName
// is a snapshot of the catalog name at submission time; later renames or
// deletions in the catalog never retroactively change past requests.
type RequestedItemLine struct {
	ItemID            uuid.UUID `json:"itemId"`
	ItemName          string    `json:"itemName"`
	QuantityRequested int       `json:"quantityRequested"`
}

// ItemRequest aggregates a requester's ask for one or more items. The line
// list is ordered and owned by exactly one request. Status starts at Pending
// and may only move to Approved or Rejected, both terminal.
type ItemRequest struct {
	ID            uuid.UUID           `json:"id"`
	RequesterName string              `json:"requesterName"`
	Requests      []RequestedItemLine `json:"requests"`
	Status        RequestStatus       `json:"status"`
	RequestDate   time.Time           `json:"requestDate"`
	ApprovedBy    string              `json:"approvedBy,omitempty"`
	ApprovalDate  *time.Time          `json:"approvalDate,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	LastUpdated   time.Time           `json:"lastUpdated"`
}

type SubmitRequestLine struct {
	ItemID            uuid.UUID `json:"itemId" validate:"required"`
	QuantityRequested int       `json:"quantityRequested" validate:"required,gt=0"`
}

type SubmitRequestRequest struct {
	RequesterName string              `json:"requesterName" validate:"required,min=2,max=100"`
	Lines         []SubmitRequestLine `json:"lines" validate:"required,min=1,dive"`
	Notes         string              `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type TransitionRequestStatusRequest struct {
	Status     RequestStatus `json:"status" validate:"required,oneof=Approved Rejected"`
	ApprovedBy string        `json:"approvedBy,omitempty" validate:"omitempty,min=2,max=100"`
}

// ListRequestsFilter narrows the request listing. Search matches the request
// id, the requester name, or the first line's item name, case-insensitively.
type ListRequestsFilter struct {
	Status RequestStatus
	Search string
}

// Invoice is a read-only projection over approved requests; nothing is stored
// for it separately.
type Invoice struct {
	InvoiceNumber string     `json:"invoiceNumber"`
	RequestID     uuid.UUID  `json:"requestId"`
	RequesterName string     `json:"requesterName"`
	FirstItemName string     `json:"firstItemName"`
	LineCount     int        `json:"lineCount"`
	TotalQuantity int        `json:"totalQuantity"`
	ApprovedBy    string     `json:"approvedBy,omitempty"`
	ApprovalDate  *time.Time `json:"approvalDate,omitempty"`
}

package models

import "github.com/google/uuid"

type OperationStatus string

const (
	OperationApplied   OperationStatus = "applied"
	OperationScheduled OperationStatus = "scheduled"
	OperationRejected  OperationStatus = "rejected"
)

// RejectReason explains a rejected operation. It is kept for logs and tests;
// callers that only care about "changed or not" use Applied.
type RejectReason string

const (
	RejectInvalidAmount        RejectReason = "invalid_amount"
	RejectRecipientNotFound    RejectReason = "recipient_not_found"
	RejectInsufficientFunds    RejectReason = "insufficient_funds"
	RejectSelfTransfer         RejectReason = "self_transfer"
	RejectLoanNotEligible      RejectReason = "loan_not_eligible"
	RejectConfirmationMismatch RejectReason = "confirmation_mismatch"
	RejectAccountNotFound      RejectReason = "account_not_found"
	RejectNoSession            RejectReason = "no_session"
)

// OperationResult is the outcome of a ledger mutation
type OperationResult struct {
	Status OperationStatus `json:"status"`
	Reason RejectReason    `json:"reason,omitempty"`
	TaskID *uuid.UUID      `json:"task_id,omitempty"`
}

func Applied() OperationResult {
	return OperationResult{Status: OperationApplied}
}

func Scheduled(taskID uuid.UUID) OperationResult {
	return OperationResult{Status: OperationScheduled, TaskID: &taskID}
}

func Rejected(reason RejectReason) OperationResult {
	return OperationResult{Status: OperationRejected, Reason: reason}
}

// Applied reports whether the operation changed state
func (r OperationResult) Applied() bool {
	return r.Status == OperationApplied
}

func (r OperationResult) Rejected() bool {
	return r.Status == OperationRejected
}

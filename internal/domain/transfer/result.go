package transfer

// Status is the outcome code of a negotiation step. Every status is a normal
// domain outcome the caller can react to, never a fault.
type Status string

const (
	StatusWindowClosed   Status = "window_closed"
	StatusNoBudget       Status = "no_budget"
	StatusNotFound       Status = "not_found"
	StatusFreeAgent      Status = "free_agent"
	StatusReleaseClause  Status = "release_clause"
	StatusAccepted       Status = "accepted"
	StatusCounter        Status = "counter"
	StatusRejectedOpen   Status = "rejected_open"
	StatusRejected       Status = "rejected"
	StatusWageBudget     Status = "wage_budget"
	StatusTransferBudget Status = "transfer_budget"
	StatusCompleted      Status = "completed"
	StatusNotInSquad     Status = "not_in_squad"
	StatusNotPending     Status = "not_pending"
)

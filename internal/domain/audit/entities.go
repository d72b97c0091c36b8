package audit

import "time"

type Action string

const (
	ActionApprove        Action = "APPROVE"
	ActionReject         Action = "REJECT"
	ActionVerifyDocument Action = "VERIFY_DOCUMENT"
)

// AdminAction is an append-only audit record written as a side effect
// of administrative transitions. The core never reads it back; it
// exists for external reporting.
type AdminAction struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	AdminID   string    `gorm:"size:32;index" json:"adminId"`
	LoanID    *uint64   `gorm:"index" json:"loanId,omitempty"`
	Action    Action    `gorm:"size:32" json:"action"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (AdminAction) TableName() string { return "admin_actions" }

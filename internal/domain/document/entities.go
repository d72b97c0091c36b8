package document

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusVerified Status = "VERIFIED"
	StatusRejected Status = "REJECTED"
)

var (
	ErrNotFound      = errors.New("document not found")
	ErrInvalidStatus = errors.New("document status must be VERIFIED or REJECTED")
)

// UserDocument is an uploaded identity/income proof awaiting
// administrator verification.
type UserDocument struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"id"`
	UserID       string    `gorm:"size:32;index:idx_documents_user" json:"userId"`
	DocumentType string    `gorm:"size:64" json:"documentType"`
	DocumentURL  string    `gorm:"type:text" json:"documentUrl"`
	Status       Status    `gorm:"size:16;default:'PENDING'" json:"status"`
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploadedAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (UserDocument) TableName() string { return "user_documents" }

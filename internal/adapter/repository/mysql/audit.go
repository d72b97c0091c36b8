package mysql

import (
	"context"

	auditDomain "creditnow-backend/internal/domain/audit"

	"gorm.io/gorm"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Create(ctx context.Context, a *auditDomain.AdminAction) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]auditDomain.AdminAction, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []auditDomain.AdminAction
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&out)
	return out, res.Error
}

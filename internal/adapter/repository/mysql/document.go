package mysql

import (
	"context"

	docDomain "creditnow-backend/internal/domain/document"

	"gorm.io/gorm"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, d *docDomain.UserDocument) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uint64) (*docDomain.UserDocument, error) {
	var out docDomain.UserDocument
	res := r.db.WithContext(ctx).First(&out, "id = ?", id)
	return &out, res.Error
}

func (r *DocumentRepository) Save(ctx context.Context, d *docDomain.UserDocument) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DocumentRepository) ListByUserID(ctx context.Context, userID string) ([]docDomain.UserDocument, error) {
	var out []docDomain.UserDocument
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *DocumentRepository) ListPending(ctx context.Context) ([]docDomain.UserDocument, error) {
	var out []docDomain.UserDocument
	res := r.db.WithContext(ctx).
		Where("status = ?", docDomain.StatusPending).
		Order("uploaded_at ASC").
		Find(&out)
	return out, res.Error
}

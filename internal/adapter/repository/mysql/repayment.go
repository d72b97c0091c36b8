package mysql

import (
	"context"

	repayDomain "creditnow-backend/internal/domain/repayment"

	"gorm.io/gorm"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository {
	return &RepaymentRepository{db: db}
}

func (r *RepaymentRepository) BulkCreate(ctx context.Context, rs []repayDomain.Repayment) error {
	if len(rs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rs).Error
}

func (r *RepaymentRepository) GetByID(ctx context.Context, id uint64) (*repayDomain.Repayment, error) {
	var out repayDomain.Repayment
	res := r.db.WithContext(ctx).First(&out, "id = ?", id)
	return &out, res.Error
}

func (r *RepaymentRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*repayDomain.Repayment, error) {
	var out repayDomain.Repayment
	res := lockForUpdate(r.db.WithContext(ctx)).First(&out, "id = ?", id)
	return &out, res.Error
}

func (r *RepaymentRepository) Save(ctx context.Context, rep *repayDomain.Repayment) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *RepaymentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]repayDomain.Repayment, error) {
	var out []repayDomain.Repayment
	res := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, id ASC") }).
		Where("loan_id = ?", loanID).
		Order("due_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *RepaymentRepository) CreatePayment(ctx context.Context, p *repayDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

package mysql

import (
	"context"
	"errors"

	productDomain "creditnow-backend/internal/domain/product"

	"gorm.io/gorm"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) Create(ctx context.Context, p *productDomain.LoanProduct) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint64) (*productDomain.LoanProduct, error) {
	var out productDomain.LoanProduct
	res := r.db.WithContext(ctx).First(&out, "id = ?", id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, productDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ProductRepository) GetByTitle(ctx context.Context, title string) (*productDomain.LoanProduct, error) {
	var out productDomain.LoanProduct
	res := r.db.WithContext(ctx).First(&out, "title = ?", title)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, productDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ProductRepository) List(ctx context.Context) ([]productDomain.LoanProduct, error) {
	var out []productDomain.LoanProduct
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

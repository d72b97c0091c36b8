package mysql

import (
	"testing"

	appDomain "creditnow-backend/internal/domain/application"
	auditDomain "creditnow-backend/internal/domain/audit"
	docDomain "creditnow-backend/internal/domain/document"
	productDomain "creditnow-backend/internal/domain/product"
	repayDomain "creditnow-backend/internal/domain/repayment"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&productDomain.LoanProduct{},
		&appDomain.LoanApplication{},
		&repayDomain.Repayment{},
		&repayDomain.Payment{},
		&auditDomain.AdminAction{},
		&docDomain.UserDocument{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB) *productDomain.LoanProduct {
	t.Helper()
	p := &productDomain.LoanProduct{
		Title:        "Personal Loan",
		Description:  "Unsecured loan for personal use.",
		InterestRate: 10.5,
		MinAmount:    10_000,
		MaxAmount:    500_000,
		TenureMonths: 60,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func seedApplication(t *testing.T, db *gorm.DB, appID, userID string, productID uint64) *appDomain.LoanApplication {
	t.Helper()
	a := &appDomain.LoanApplication{
		ApplicationID: appID,
		UserID:        userID,
		ProductID:     productID,
		Amount:        50_000,
		Tenure:        12,
		InterestRate:  10,
		Status:        appDomain.StatusPending,
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed application: %v", err)
	}
	return a
}

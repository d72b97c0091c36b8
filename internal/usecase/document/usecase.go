package document

import (
	"context"
	"fmt"

	"creditnow-backend/internal/domain/audit"
	domain "creditnow-backend/internal/domain/document"
	"creditnow-backend/internal/domain/uow"
)

type Usecase struct {
	docs domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(docs domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{docs: docs, uow: tx}
}

type UploadInput struct {
	UserID       string
	DocumentType string
	DocumentURL  string // path the HTTP adapter stored the file under
}

func (u *Usecase) Upload(ctx context.Context, in UploadInput) (*domain.UserDocument, error) {
	d := &domain.UserDocument{
		UserID:       in.UserID,
		DocumentType: in.DocumentType,
		DocumentURL:  in.DocumentURL,
		Status:       domain.StatusPending,
	}
	if err := u.docs.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Verify moves a document to VERIFIED or REJECTED and appends the
// VERIFY_DOCUMENT audit record in the same transaction.
func (u *Usecase) Verify(ctx context.Context, docID uint64, status domain.Status, adminID string) (*domain.UserDocument, error) {
	if status != domain.StatusVerified && status != domain.StatusRejected {
		return nil, domain.ErrInvalidStatus
	}

	var out *domain.UserDocument
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Documents.GetByID(ctx, docID)
		if err != nil {
			return domain.ErrNotFound
		}
		d.Status = status
		if err := r.Documents.Save(ctx, d); err != nil {
			return err
		}
		act := &audit.AdminAction{
			AdminID: adminID,
			Action:  audit.ActionVerifyDocument,
			Note:    fmt.Sprintf("Document %d %s by admin", d.ID, status),
		}
		if err := r.Audit.Create(ctx, act); err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) MyDocuments(ctx context.Context, userID string) ([]domain.UserDocument, error) {
	return u.docs.ListByUserID(ctx, userID)
}

func (u *Usecase) Pending(ctx context.Context) ([]domain.UserDocument, error) {
	return u.docs.ListPending(ctx)
}

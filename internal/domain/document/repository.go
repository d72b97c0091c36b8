package document

import "context"

type Repository interface {
	Create(ctx context.Context, d *UserDocument) error
	GetByID(ctx context.Context, id uint64) (*UserDocument, error)
	Save(ctx context.Context, d *UserDocument) error
	// ListByUserID returns the user's documents, newest first.
	ListByUserID(ctx context.Context, userID string) ([]UserDocument, error)
	ListPending(ctx context.Context) ([]UserDocument, error)
}

package postgres

import (
	"context"

	"github.com/google/uuid"

	"hrms/internal/hr/models"
	pgplatform "hrms/internal/platform/postgres"
	txcontext "hrms/pkg/platform/tx"
)

var documentColumns = []string{
	"id", "employee_id", "title", "category", "file_name", "content_type", "size_bytes",
	"storage_key", "uploaded_by", "created_at", "updated_at",
}

func (s *Store) GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	var d models.Document
	err := txcontext.Use(ctx, s.db).GetContext(ctx, &d, selectSQL("documents", documentColumns)+` WHERE id = $1`, id)
	if err != nil {
		return nil, pgplatform.Classify(err, "document "+id.String())
	}
	return &d, nil
}

// ListDocuments matches filter.Status against the document category.
func (s *Store) ListDocuments(ctx context.Context, f models.ListFilter) ([]*models.Document, int, error) {
	p := &predicate{}
	if !p.owners("employee_id", f) {
		return []*models.Document{}, 0, nil
	}
	p.status("category", f.Status)
	return list[*models.Document](ctx, txcontext.Use(ctx, s.db), "documents", documentColumns, p,
		"created_at DESC, id", f.Limit, f.Offset)
}

func (s *Store) CreateDocument(ctx context.Context, d *models.Document) error {
	return namedExec(ctx, txcontext.Use(ctx, s.db), insertSQL("documents", documentColumns), d, "insert document")
}

func (s *Store) ExecuteDocument(ctx context.Context, id uuid.UUID, validate func(*models.Document) error, mutate func(*models.Document)) (*models.Document, error) {
	return execute(ctx, s,
		func(ctx context.Context, q txcontext.Querier) (*models.Document, error) {
			var d models.Document
			err := q.GetContext(ctx, &d, selectSQL("documents", documentColumns)+` WHERE id = $1 FOR UPDATE`, id)
			if err != nil {
				return nil, pgplatform.Classify(err, "document "+id.String())
			}
			return &d, nil
		},
		validate, mutate,
		func(ctx context.Context, q txcontext.Querier, d *models.Document) error {
			return namedExec(ctx, q, updateSQL("documents", documentColumns), d, "update document")
		},
	)
}

func (s *Store) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, txcontext.Use(ctx, s.db), "documents", id, "document "+id.String())
}

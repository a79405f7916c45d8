package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"hrms/internal/audit"
	"hrms/internal/hr/models"
)

func (s *Service) ListDocuments(ctx context.Context, category string, limit, offset int) (page *models.Page[*models.Document], err error) {
	op, err := s.begin(ctx, models.ResourceDocument, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	filter := models.ScopedFilter(op.scope, category, limit, offset)
	items, total, err := s.store.ListDocuments(op.ctx, filter)
	if err != nil {
		return nil, storeErr(err, "document not found")
	}
	op.record(nil, nil, nil)
	return models.NewPage(items, total, filter), nil
}

// GetDocument returns document metadata and audits a VIEW.
func (s *Service) GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	return s.accessDocument(ctx, id, audit.ActionView)
}

// DownloadDocument returns the document for streaming and audits a DOWNLOAD.
func (s *Service) DownloadDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	return s.accessDocument(ctx, id, audit.ActionDownload)
}

func (s *Service) accessDocument(ctx context.Context, id uuid.UUID, action audit.Action) (d *models.Document, err error) {
	op, err := s.begin(ctx, models.ResourceDocument, action)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	d, err = s.store.GetDocument(op.ctx, id)
	if err != nil {
		return nil, storeErr(err, "document not found")
	}
	if err = op.check(d.OwnerID()); err != nil {
		return nil, err
	}
	op.record(idPtr(d.ID), nil, nil)
	return d, nil
}

// CreateDocument registers metadata for an uploaded file. Actors may upload
// for any employee inside their scope, including themselves.
func (s *Service) CreateDocument(ctx context.Context, req *models.CreateDocumentRequest) (d *models.Document, err error) {
	op, err := s.begin(ctx, models.ResourceDocument, audit.ActionCreate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.check(req.EmployeeID); err != nil {
		return nil, err
	}
	err = op.validate(func() error {
		_, err := s.store.GetEmployee(op.ctx, req.EmployeeID)
		if err != nil {
			return employeeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = "OTHER"
	}
	ts := now(op.ctx)
	d = &models.Document{
		ID:          uuid.New(),
		EmployeeID:  req.EmployeeID,
		Title:       strings.TrimSpace(req.Title),
		Category:    category,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		StorageKey:  req.StorageKey,
		UploadedBy:  op.actor.ID,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	err = op.mutate(func(ctx context.Context) error {
		return s.store.CreateDocument(ctx, d)
	})
	if err != nil {
		return nil, storeErr(err, "document not found")
	}
	op.record(idPtr(d.ID), nil, d)
	return d, nil
}

func (s *Service) UpdateDocument(ctx context.Context, id uuid.UUID, req *models.UpdateDocumentRequest) (d *models.Document, err error) {
	op, err := s.begin(ctx, models.ResourceDocument, audit.ActionUpdate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	ts := now(op.ctx)
	var before *models.Document
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		d, execErr = s.store.ExecuteDocument(ctx, id,
			func(cur *models.Document) error {
				if err := op.check(cur.OwnerID()); err != nil {
					return err
				}
				before = cur.Clone()
				return nil
			},
			func(cur *models.Document) {
				if req.Title != nil {
					cur.Title = strings.TrimSpace(*req.Title)
				}
				if req.Category != nil {
					cur.Category = *req.Category
				}
				cur.UpdatedAt = ts
			},
		)
		return execErr
	})
	if err != nil {
		return nil, storeErr(err, "document not found")
	}
	op.record(idPtr(d.ID), before, d)
	return d, nil
}

// DeleteDocument removes the metadata record. Documents have no dependents.
func (s *Service) DeleteDocument(ctx context.Context, id uuid.UUID) (err error) {
	op, err := s.begin(ctx, models.ResourceDocument, audit.ActionDelete)
	if err != nil {
		return err
	}
	defer func() { op.end(err) }()

	current, err := s.store.GetDocument(op.ctx, id)
	if err != nil {
		return storeErr(err, "document not found")
	}
	if err = op.check(current.OwnerID()); err != nil {
		return err
	}
	err = op.mutate(func(ctx context.Context) error {
		return s.store.DeleteDocument(ctx, id)
	})
	if err != nil {
		return storeErr(err, "document not found")
	}
	op.record(idPtr(id), current, nil)
	return nil
}

package audit

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	dErrors "hrms/pkg/domain-errors"
)

const (
	exportSheet   = "Audit Logs"
	exportMaxRows = 10000
)

var exportHeader = []any{
	"ID", "Timestamp", "Actor ID", "Action", "Resource Type", "Resource ID",
	"IP Address", "User Agent", "Request ID", "Before", "After",
}

// Export writes the records matching filter as an XLSX workbook to w, newest
// first, capped at exportMaxRows rows.
func (r *Recorder) Export(ctx context.Context, filter Filter, w io.Writer) (int, error) {
	records, _, err := r.store.Query(ctx, filter, Page{Number: 1, Size: exportMaxRows})
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load audit logs for export")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build export")
	}
	sw, err := f.NewStreamWriter(exportSheet)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build export")
	}
	if err := sw.SetRow("A1", exportHeader); err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build export")
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build export")
		}
		resourceID := ""
		if rec.ResourceID != nil {
			resourceID = rec.ResourceID.String()
		}
		row := []any{
			rec.ID.String(),
			rec.Timestamp.UTC().Format(time.RFC3339),
			rec.ActorID.String(),
			string(rec.Action),
			rec.ResourceType,
			resourceID,
			rec.IPAddress,
			rec.UserAgent,
			rec.RequestID,
			string(rec.Before),
			string(rec.After),
		}
		if err := sw.SetRow(cell, row); err != nil {
			return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build export")
		}
	}
	if err := sw.Flush(); err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build export")
	}
	if _, err := f.WriteTo(w); err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}
	return len(records), nil
}

package imageref

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/api/googleapi"

	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
)

// BatchExtract resolves image URLs for N cells with a single grid-metadata
// round trip instead of one call per cell. On a quota-limit error it returns
// an empty map and enters a cooldown window during which batched extraction
// is skipped entirely, leaving callers the cheap raw-text path.
func (e *Extractor) BatchExtract(ctx context.Context, store portsrepo.TabularStore, storeRef string, cells []portsrepo.CellRef) map[string]string {
	results := make(map[string]string, len(cells))
	if len(cells) == 0 || e.InCooldown() {
		return results
	}

	grid, err := store.ReadGridCells(ctx, storeRef, cells)
	if err != nil {
		if isQuotaError(err) {
			e.cooldownUntil.Store(e.now().Add(e.cooldown).UnixNano())
			e.logger.Warn("grid read rate limited, pausing batched image extraction",
				slog.String("store_ref", storeRef),
				slog.Duration("cooldown", e.cooldown))
		} else {
			e.logger.Error("batched image extraction failed",
				slog.String("store_ref", storeRef),
				slog.String("error", err.Error()))
		}
		return results
	}

	for key, cell := range grid {
		if url := e.extractFromGridCell(cell); url != "" {
			results[key] = url
		}
	}
	return results
}

// InCooldown reports whether batched extraction is currently suspended after
// a quota-limit error.
func (e *Extractor) InCooldown() bool {
	return e.now().UnixNano() < e.cooldownUntil.Load()
}

func (e *Extractor) extractFromGridCell(cell portsrepo.GridCell) string {
	if url := e.ExtractURL(cell.Effective); url != "" {
		return url
	}
	if url := e.ExtractURL(cell.Entered); url != "" {
		return url
	}
	if url := e.ExtractURL(cell.Hyperlink); url != "" {
		return url
	}
	for _, uri := range cell.LinkURIs {
		if url := e.ExtractURL(uri); url != "" {
			return url
		}
	}
	return ""
}

func isQuotaError(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == 429 {
			return true
		}
		if gerr.Code == 403 && (strings.Contains(gerr.Message, "quota") || strings.Contains(gerr.Message, "rate")) {
			return true
		}
	}
	msg := err.Error()
	return strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit")
}

package sheets

import (
	"context"
	"fmt"

	"github.com/jyoo0515/docuflow/internal/apperrors"
	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
	"github.com/jyoo0515/docuflow/internal/models"
)

// SheetLookupRepository reads the shared mapping tables: the Directory
// worksheet of the main spreadsheet and the SignatureAssets worksheet of the
// workflow data spreadsheet.
type SheetLookupRepository struct {
	store        portsrepo.TabularStore
	mainStoreRef string
	dataStoreRef string
}

var _ portsrepo.LookupRepository = (*SheetLookupRepository)(nil)

func NewLookupRepository(store portsrepo.TabularStore, mainStoreRef, dataStoreRef string) *SheetLookupRepository {
	return &SheetLookupRepository{store: store, mainStoreRef: mainStoreRef, dataStoreRef: dataStoreRef}
}

func (r *SheetLookupRepository) SignatureAssetByName(ctx context.Context, name string) (string, error) {
	rows, err := r.store.Read(ctx, r.dataStoreRef, models.SignatureReadRange)
	if err != nil {
		return "", fmt.Errorf("failed to read signature assets: %w", err)
	}
	for i := 1; i < len(rows); i++ {
		if cellAt(rows[i], models.SigColName) == name {
			return cellAt(rows[i], models.SigColAsset), nil
		}
	}
	return "", fmt.Errorf("signature asset for %s: %w", name, apperrors.ErrNotFound)
}

func (r *SheetLookupRepository) BoardIDByName(ctx context.Context, name string) (string, error) {
	return r.directoryLookup(ctx, models.DirColName, name, models.DirColStoreRef)
}

func (r *SheetLookupRepository) PersonalStoreRefByName(ctx context.Context, name string) (string, error) {
	return r.directoryLookup(ctx, models.DirColName, name, models.DirColStoreRef)
}

func (r *SheetLookupRepository) ExecURLByScriptID(ctx context.Context, scriptID string) (string, error) {
	return r.directoryLookup(ctx, models.DirColScriptID, scriptID, models.DirColWebhookURL)
}

func (r *SheetLookupRepository) WebhookURLByName(ctx context.Context, name string) (string, error) {
	return r.directoryLookup(ctx, models.DirColName, name, models.DirColWebhookURL)
}

func (r *SheetLookupRepository) directoryLookup(ctx context.Context, matchCol int, matchValue string, resultCol int) (string, error) {
	rows, err := r.store.Read(ctx, r.mainStoreRef, models.DirectoryReadRange)
	if err != nil {
		return "", fmt.Errorf("failed to read directory rows: %w", err)
	}
	for i := 1; i < len(rows); i++ {
		if cellAt(rows[i], matchCol) == matchValue {
			if result := cellAt(rows[i], resultCol); result != "" {
				return result, nil
			}
		}
	}
	return "", fmt.Errorf("directory entry %s: %w", matchValue, apperrors.ErrNotFound)
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	portsrepo "github.com/jyoo0515/docuflow/internal/core/ports/repositories"
	portssvc "github.com/jyoo0515/docuflow/internal/core/ports/services"

	"github.com/jyoo0515/docuflow/internal/apperrors"
	"github.com/jyoo0515/docuflow/internal/middleware"
	"github.com/jyoo0515/docuflow/internal/models"
)

// completionPayload is the webhook body posted to the signer's board system.
// Column identifies which cell of the source row flipped.
type completionPayload struct {
	SheetID   string `json:"sheetId"`
	RowNumber int    `json:"rowNumber"`
	UserName  string `json:"userName"`
	Column    int    `json:"column"`
	Value     bool   `json:"value"`
}

// NotificationService resolves and delivers board webhook callbacks after a
// document is signed. Delivery is best effort: a dead webhook must never
// unwind a completed signature.
type NotificationService struct {
	userRepo   portsrepo.UserReader
	lookupRepo portsrepo.LookupRepository
	httpClient *http.Client
}

var _ portssvc.NotificationSvc = (*NotificationService)(nil)

func NewNotificationService(userRepo portsrepo.UserReader, lookupRepo portsrepo.LookupRepository) *NotificationService {
	return &NotificationService{
		userRepo:   userRepo,
		lookupRepo: lookupRepo,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *NotificationService) NotifyCompletion(ctx context.Context, storeRef string, rowNumber int) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	userName, err := s.userRepo.FindUserNameByStoreRef(ctx, storeRef)
	if err != nil {
		return fmt.Errorf("failed to resolve signer for %s: %w", storeRef, err)
	}

	webhookURL, err := s.lookupRepo.WebhookURLByName(ctx, userName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Info("No webhook registered for signer", "user_name", userName)
			return nil
		}
		logger.Warn("Failed to resolve webhook URL", "error", err)
		return nil
	}

	payload := completionPayload{
		SheetID:   storeRef,
		RowNumber: rowNumber,
		UserName:  userName,
		Column:    models.DocCompletedColNumber,
		Value:     true,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("Failed to encode webhook payload", "error", err)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		logger.Warn("Failed to build webhook request", "error", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Warn("Webhook delivery failed", "url", webhookURL, "error", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("Webhook returned non-success status", "url", webhookURL, "status", resp.StatusCode)
		return nil
	}

	logger.Info("Completion webhook delivered", "user_name", userName, "row", rowNumber)
	return nil
}

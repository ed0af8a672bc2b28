// Package googleclient bootstraps the authenticated Google API clients from
// service account credentials.
package googleclient

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	driveapi "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Clients bundles the authorized API services plus the raw HTTP client used
// for endpoints outside the generated API surface (the PDF export URL).
type Clients struct {
	Sheets     *sheetsapi.Service
	Drive      *driveapi.Service
	HTTPClient *http.Client
}

// New builds the Google API clients from service account JWT credentials.
// credentialsJSON takes precedence; credentialsFile is read when it is empty.
func New(ctx context.Context, credentialsJSON, credentialsFile string) (*Clients, error) {
	creds := []byte(credentialsJSON)
	if len(creds) == 0 {
		if credentialsFile == "" {
			return nil, fmt.Errorf("no google credentials configured")
		}
		var err error
		creds, err = os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
	}

	jwtCfg, err := google.JWTConfigFromJSON(creds, sheetsapi.SpreadsheetsScope, driveapi.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}
	httpClient := jwtCfg.Client(ctx)

	sheetsSvc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to build sheets service: %w", err)
	}
	driveSvc, err := driveapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to build drive service: %w", err)
	}

	return &Clients{
		Sheets:     sheetsSvc,
		Drive:      driveSvc,
		HTTPClient: httpClient,
	}, nil
}

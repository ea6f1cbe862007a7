package connection

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"

	"github.com/google-marketing-solutions/merch-intel/logger"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

type Connection struct {
	*BigQueryClient
	*DataTransferClient

	clientOptions []option.ClientOption
}

// NewConnection initializes the GCP clients necessary for the setup run.
// When impersonatedServiceAccount is not empty, all clients authenticate
// as that service account.
func NewConnection(ctx context.Context, log *logger.Logging, projectID, impersonatedServiceAccount string) (*Connection, error) {
	var clientOptions []option.ClientOption

	if impersonatedServiceAccount != "" {
		var ts oauth2.TokenSource

		ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: impersonatedServiceAccount,
			Scopes:          []string{cloudPlatformScope},
		})
		if err != nil {
			return nil, err
		}

		clientOptions = append(clientOptions, option.WithTokenSource(ts))
	}

	bq, err := NewBigQuery(ctx, log, projectID, clientOptions)
	if err != nil {
		return nil, err
	}

	dt, err := NewDataTransfer(ctx, log, clientOptions)
	if err != nil {
		return nil, err
	}

	return &Connection{
		bq,
		dt,
		clientOptions,
	}, nil
}

// ClientOptions returns the options shared by every client on this
// connection, for services constructed outside of it.
func (c *Connection) ClientOptions() []option.ClientOption {
	return c.clientOptions
}

// Close releases the underlying client connections.
func (c *Connection) Close() error {
	if err := c.BigQueryClient.Close(); err != nil {
		return err
	}

	return c.DataTransferClient.Close()
}

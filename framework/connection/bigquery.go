package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/option"

	"github.com/google-marketing-solutions/merch-intel/logger"
)

var (
	ErrBigqueryInitialization = errors.New("bigquery initialization error")
)

type BigQueryClient struct {
	bq *bigquery.Client
}

func NewBigQuery(ctx context.Context, log *logger.Logging, projectID string, opts []option.ClientOption) (*BigQueryClient, error) {
	logger := log.Logger(ctx)

	scopes := option.WithScopes(bigquery.Scope)

	bq, err := bigquery.NewClient(ctx, projectID, append([]option.ClientOption{scopes}, opts...)...)
	if err != nil {
		logger.Errorf("%s: %s", ErrBigqueryInitialization, err)
		return nil, ErrBigqueryInitialization
	}

	return &BigQueryClient{
		bq: bq,
	}, nil
}

// Bigquery returns the bigquery client for the configured project.
func (c *BigQueryClient) Bigquery(ctx context.Context) *bigquery.Client {
	return c.bq
}

func (c *BigQueryClient) Close() error {
	return c.bq.Close()
}

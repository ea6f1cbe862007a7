package connection

import (
	"context"
	"errors"

	datatransfer "cloud.google.com/go/bigquery/datatransfer/apiv1"
	"google.golang.org/api/option"

	"github.com/google-marketing-solutions/merch-intel/logger"
)

var (
	ErrDataTransferInitialization = errors.New("data transfer initialization error")
)

type DataTransferClient struct {
	dt *datatransfer.Client
}

func NewDataTransfer(ctx context.Context, log *logger.Logging, opts []option.ClientOption) (*DataTransferClient, error) {
	logger := log.Logger(ctx)

	dt, err := datatransfer.NewClient(ctx, opts...)
	if err != nil {
		logger.Errorf("%s: %s", ErrDataTransferInitialization, err)
		return nil, ErrDataTransferInitialization
	}

	return &DataTransferClient{
		dt: dt,
	}, nil
}

// DataTransfer returns the bigquery data transfer service client.
func (c *DataTransferClient) DataTransfer(ctx context.Context) *datatransfer.Client {
	return c.dt
}

func (c *DataTransferClient) Close() error {
	return c.dt.Close()
}

package dal

import (
	"context"

	"cloud.google.com/go/bigquery/datatransfer/apiv1/datatransferpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/iterator"

	"github.com/google-marketing-solutions/merch-intel/datatransfer/dal/iface"
	"github.com/google-marketing-solutions/merch-intel/framework/connection"
)

// DataTransferGRPC is the data transfer service client wrapper. List calls
// drain the underlying iterators into slices.
type DataTransferGRPC struct {
	conn *connection.Connection
}

func NewDataTransferGRPC(conn *connection.Connection) iface.DataTransfer {
	return &DataTransferGRPC{
		conn: conn,
	}
}

func (d *DataTransferGRPC) ListTransferConfigs(ctx context.Context, req *datatransferpb.ListTransferConfigsRequest, opts ...gax.CallOption) ([]*datatransferpb.TransferConfig, error) {
	var configs []*datatransferpb.TransferConfig

	it := d.conn.DataTransfer(ctx).ListTransferConfigs(ctx, req, opts...)

	for {
		config, err := it.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		configs = append(configs, config)
	}

	return configs, nil
}

func (d *DataTransferGRPC) CreateTransferConfig(ctx context.Context, req *datatransferpb.CreateTransferConfigRequest, opts ...gax.CallOption) (*datatransferpb.TransferConfig, error) {
	return d.conn.DataTransfer(ctx).CreateTransferConfig(ctx, req, opts...)
}

func (d *DataTransferGRPC) UpdateTransferConfig(ctx context.Context, req *datatransferpb.UpdateTransferConfigRequest, opts ...gax.CallOption) (*datatransferpb.TransferConfig, error) {
	return d.conn.DataTransfer(ctx).UpdateTransferConfig(ctx, req, opts...)
}

func (d *DataTransferGRPC) ListTransferRuns(ctx context.Context, req *datatransferpb.ListTransferRunsRequest, opts ...gax.CallOption) ([]*datatransferpb.TransferRun, error) {
	var runs []*datatransferpb.TransferRun

	it := d.conn.DataTransfer(ctx).ListTransferRuns(ctx, req, opts...)

	for {
		run, err := it.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		runs = append(runs, run)
	}

	return runs, nil
}

func (d *DataTransferGRPC) ScheduleTransferRuns(ctx context.Context, req *datatransferpb.ScheduleTransferRunsRequest, opts ...gax.CallOption) (*datatransferpb.ScheduleTransferRunsResponse, error) {
	return d.conn.DataTransfer(ctx).ScheduleTransferRuns(ctx, req, opts...)
}

func (d *DataTransferGRPC) StartManualTransferRuns(ctx context.Context, req *datatransferpb.StartManualTransferRunsRequest, opts ...gax.CallOption) (*datatransferpb.StartManualTransferRunsResponse, error) {
	return d.conn.DataTransfer(ctx).StartManualTransferRuns(ctx, req, opts...)
}

func (d *DataTransferGRPC) GetDataSource(ctx context.Context, req *datatransferpb.GetDataSourceRequest, opts ...gax.CallOption) (*datatransferpb.DataSource, error) {
	return d.conn.DataTransfer(ctx).GetDataSource(ctx, req, opts...)
}

func (d *DataTransferGRPC) CheckValidCreds(ctx context.Context, req *datatransferpb.CheckValidCredsRequest, opts ...gax.CallOption) (*datatransferpb.CheckValidCredsResponse, error) {
	return d.conn.DataTransfer(ctx).CheckValidCreds(ctx, req, opts...)
}

//go:generate mockery --name=DataTransfer --output ../../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"cloud.google.com/go/bigquery/datatransfer/apiv1/datatransferpb"
	"github.com/googleapis/gax-go/v2"
)

type DataTransfer interface {
	ListTransferConfigs(
		ctx context.Context,
		req *datatransferpb.ListTransferConfigsRequest,
		opts ...gax.CallOption,
	) ([]*datatransferpb.TransferConfig, error)
	CreateTransferConfig(
		ctx context.Context,
		req *datatransferpb.CreateTransferConfigRequest,
		opts ...gax.CallOption,
	) (*datatransferpb.TransferConfig, error)
	UpdateTransferConfig(
		ctx context.Context,
		req *datatransferpb.UpdateTransferConfigRequest,
		opts ...gax.CallOption,
	) (*datatransferpb.TransferConfig, error)
	ListTransferRuns(
		ctx context.Context,
		req *datatransferpb.ListTransferRunsRequest,
		opts ...gax.CallOption,
	) ([]*datatransferpb.TransferRun, error)
	ScheduleTransferRuns(
		ctx context.Context,
		req *datatransferpb.ScheduleTransferRunsRequest,
		opts ...gax.CallOption,
	) (*datatransferpb.ScheduleTransferRunsResponse, error)
	StartManualTransferRuns(
		ctx context.Context,
		req *datatransferpb.StartManualTransferRunsRequest,
		opts ...gax.CallOption,
	) (*datatransferpb.StartManualTransferRunsResponse, error)
	GetDataSource(
		ctx context.Context,
		req *datatransferpb.GetDataSourceRequest,
		opts ...gax.CallOption,
	) (*datatransferpb.DataSource, error)
	CheckValidCreds(
		ctx context.Context,
		req *datatransferpb.CheckValidCredsRequest,
		opts ...gax.CallOption,
	) (*datatransferpb.CheckValidCredsResponse, error)
}

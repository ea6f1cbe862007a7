//go:generate mockery --name=SetupBigQuery --output ../../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"cloud.google.com/go/bigquery"
)

type SetupBigQuery interface {
	GetDataset(
		ctx context.Context,
		projectID string,
		datasetID string,
	) (*bigquery.DatasetMetadata, error)
	CreateDataset(
		ctx context.Context,
		projectID string,
		datasetID string,
		location string,
	) error
	LoadTableFromCSV(
		ctx context.Context,
		projectID string,
		datasetID string,
		tableID string,
		sourcePath string,
	) error
	RunQuery(
		ctx context.Context,
		query string,
		location string,
	) error
}

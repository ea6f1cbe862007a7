package dal

import (
	"context"
	"os"

	"cloud.google.com/go/bigquery"

	"github.com/google-marketing-solutions/merch-intel/bqsetup/dal/iface"
	"github.com/google-marketing-solutions/merch-intel/framework/connection"
	"github.com/google-marketing-solutions/merch-intel/logger"
)

type SetupBigQuery struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
}

func NewSetupBigQuery(
	loggerProvider logger.Provider,
	conn *connection.Connection,
) iface.SetupBigQuery {
	return &SetupBigQuery{
		loggerProvider: loggerProvider,
		conn:           conn,
	}
}

func (d *SetupBigQuery) GetDataset(ctx context.Context, projectID, datasetID string) (*bigquery.DatasetMetadata, error) {
	return d.conn.Bigquery(ctx).DatasetInProject(projectID, datasetID).Metadata(ctx)
}

func (d *SetupBigQuery) CreateDataset(ctx context.Context, projectID, datasetID, location string) error {
	return d.conn.Bigquery(ctx).DatasetInProject(projectID, datasetID).Create(ctx, &bigquery.DatasetMetadata{
		Location: location,
	})
}

// LoadTableFromCSV submits a load job for the CSV file at sourcePath and
// blocks until the job completes. The first row is treated as a header and
// the table schema is autodetected.
func (d *SetupBigQuery) LoadTableFromCSV(ctx context.Context, projectID, datasetID, tableID, sourcePath string) error {
	l := d.loggerProvider(ctx)

	sourceFile, err := os.Open(sourcePath)
	if err != nil {
		return err
	}

	defer sourceFile.Close()

	source := bigquery.NewReaderSource(sourceFile)
	source.SourceFormat = bigquery.CSV
	source.SkipLeadingRows = 1
	source.AutoDetect = true

	loader := d.conn.Bigquery(ctx).DatasetInProject(projectID, datasetID).Table(tableID).LoaderFrom(source)

	job, err := loader.Run(ctx)
	if err != nil {
		return err
	}

	l.Infof("load job %s submitted for table %s", job.ID(), tableID)

	status, err := job.Wait(ctx)
	if err != nil {
		return err
	}

	return status.Err()
}

// RunQuery submits the query scoped to the given location and blocks until
// the job completes.
func (d *SetupBigQuery) RunQuery(ctx context.Context, query, location string) error {
	l := d.loggerProvider(ctx)

	queryJob := d.conn.Bigquery(ctx).Query(query)
	queryJob.Location = location

	job, err := queryJob.Run(ctx)
	if err != nil {
		return err
	}

	l.Info(job.ID())

	status, err := job.Wait(ctx)
	if err != nil {
		return err
	}

	return status.Err()
}

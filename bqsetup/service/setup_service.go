package service

import (
	"context"
	"fmt"

	"github.com/google-marketing-solutions/merch-intel/bqsetup/dal/iface"
	"github.com/google-marketing-solutions/merch-intel/common"
	"github.com/google-marketing-solutions/merch-intel/logger"
	"github.com/google-marketing-solutions/merch-intel/sqltemplate"
)

const (
	languageCodesTable = "language_codes"
	geoTargetsTable    = "geo_targets"

	languageCodesFile = "data/language_codes.csv"
	geoTargetsFile    = "data/geo_targets.csv"

	inventorySQLFile   = "sql/inventory.sql"
	bestSellersSQLFile = "sql/best_sellers.sql"

	// Main workflow sql.
	mainWorkflowSQLFile = "sql/main_workflow.sql"
)

// Sql files to be executed in a specific order.
var setupSQLFiles = []string{
	inventorySQLFile,
	bestSellersSQLFile,
	mainWorkflowSQLFile,
}

// QueryParams holds the values substituted into the setup SQL scripts.
type QueryParams struct {
	ProjectID  string
	DatasetID  string
	MerchantID string
	CustomerID string
}

type Service struct {
	loggerProvider logger.Provider
	bqDAL          iface.SetupBigQuery

	sqlFiles         []string
	mainWorkflowFile string
}

func NewService(
	loggerProvider logger.Provider,
	bqDAL iface.SetupBigQuery,
) *Service {
	return &Service{
		loggerProvider:   loggerProvider,
		bqDAL:            bqDAL,
		sqlFiles:         setupSQLFiles,
		mainWorkflowFile: mainWorkflowSQLFile,
	}
}

// EnsureDataset creates the BigQuery dataset if it doesn't exist. Fetch
// failures other than not found propagate unchanged.
func (s *Service) EnsureDataset(ctx context.Context, projectID, datasetID, location string) error {
	l := s.loggerProvider(ctx)

	fullyQualifiedDatasetID := fmt.Sprintf("%s.%s", projectID, datasetID)

	if _, err := s.bqDAL.GetDataset(ctx, projectID, datasetID); err != nil {
		if !common.IsNotFound(err) {
			return err
		}

		l.Infof("Dataset %s is not found.", fullyQualifiedDatasetID)

		if err := s.bqDAL.CreateDataset(ctx, projectID, datasetID, location); err != nil {
			return err
		}

		l.Infof("Dataset %s created.", fullyQualifiedDatasetID)

		return nil
	}

	l.Infof("Dataset %s already exists.", fullyQualifiedDatasetID)

	return nil
}

// LoadLanguageCodes loads the static language codes reference table.
func (s *Service) LoadLanguageCodes(ctx context.Context, projectID, datasetID string) error {
	return s.bqDAL.LoadTableFromCSV(ctx, projectID, datasetID, languageCodesTable, languageCodesFile)
}

// LoadGeoTargets loads the static geo targets reference table.
func (s *Service) LoadGeoTargets(ctx context.Context, projectID, datasetID string) error {
	return s.bqDAL.LoadTableFromCSV(ctx, projectID, datasetID, geoTargetsTable, geoTargetsFile)
}

// ExecuteQueries runs the setup SQL scripts in order. Later scripts depend
// on tables and views created by earlier ones, so the first failure stops
// the sequence.
func (s *Service) ExecuteQueries(ctx context.Context, location string, params QueryParams) error {
	l := s.loggerProvider(ctx)

	for _, sqlFile := range s.sqlFiles {
		query, err := sqltemplate.Configure(sqlFile, queryParams(params))
		if err != nil {
			l.Errorf("Error in %s: %v", sqlFile, err)
			return err
		}

		if err := s.bqDAL.RunQuery(ctx, query, location); err != nil {
			l.Errorf("Error in %s: %v", sqlFile, err)
			return err
		}
	}

	return nil
}

// MainWorkflowSQL returns the resolved main workflow query.
func (s *Service) MainWorkflowSQL(params QueryParams) (string, error) {
	return sqltemplate.Configure(s.mainWorkflowFile, queryParams(params))
}

func queryParams(params QueryParams) map[string]interface{} {
	return map[string]interface{}{
		"project_id":           params.ProjectID,
		"dataset":              params.DatasetID,
		"merchant_id":          params.MerchantID,
		"external_customer_id": params.CustomerID,
	}
}

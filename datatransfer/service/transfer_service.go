package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/bigquery/datatransfer/apiv1/datatransferpb"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/google-marketing-solutions/merch-intel/auth"
	"github.com/google-marketing-solutions/merch-intel/datatransfer/dal/iface"
	"github.com/google-marketing-solutions/merch-intel/datatransfer/domain"
	"github.com/google-marketing-solutions/merch-intel/logger"
)

const scheduledQueryInterval = "every 24 hours"

// Configs in a failed or cancelled state are not candidates for reuse.
var reusableStates = map[datatransferpb.TransferState]bool{
	datatransferpb.TransferState_PENDING:   true,
	datatransferpb.TransferState_RUNNING:   true,
	datatransferpb.TransferState_SUCCEEDED: true,
}

type Service struct {
	loggerProvider logger.Provider
	dtDAL          iface.DataTransfer
	codeRetriever  auth.CodeRetriever
	projectID      string

	timeNow func() time.Time
	sleep   func(d time.Duration)
}

func NewService(
	loggerProvider logger.Provider,
	dtDAL iface.DataTransfer,
	codeRetriever auth.CodeRetriever,
	projectID string,
) *Service {
	return &Service{
		loggerProvider: loggerProvider,
		dtDAL:          dtDAL,
		codeRetriever:  codeRetriever,
		projectID:      projectID,
		timeNow:        func() time.Time { return time.Now().UTC() },
		sleep:          time.Sleep,
	}
}

func (s *Service) parent(location string) string {
	return fmt.Sprintf("projects/%s/locations/%s", s.projectID, location)
}

func (s *Service) dataSourceName(dataSourceID, location string) string {
	return fmt.Sprintf("%s/dataSources/%s", s.parent(location), dataSourceID)
}

// CreateMerchantCenterTransfer creates a data transfer config to copy
// Merchant Center product data to the destination dataset. When a matching
// config already exists its parameters are diff-updated instead.
func (s *Service) CreateMerchantCenterTransfer(ctx context.Context, merchantID, destinationDatasetID, location string) (*datatransferpb.TransferConfig, error) {
	l := s.loggerProvider(ctx)
	l.Info("Creating Merchant Center Transfer.")

	params, err := structpb.NewStruct(map[string]interface{}{
		"merchant_id":                  merchantID,
		"export_products":              true,
		"export_performance":           true,
		"export_best_sellers_v2":       true,
		"export_price_competitiveness": true,
		"export_price_insights":        true,
		"export_offer_targeting":       true,
	})
	if err != nil {
		return nil, err
	}

	config, err := s.findExistingTransfer(ctx, domain.MerchantCenterDataSourceID, location, destinationDatasetID, "")
	if err != nil {
		return nil, err
	}

	if config != nil {
		l.Infof("Data transfer for merchant id %s to destination dataset %s already exists.", merchantID, destinationDatasetID)
		return s.updateExistingTransfer(ctx, config, params)
	}

	l.Infof("Creating data transfer for merchant id %s to destination dataset %s", merchantID, destinationDatasetID)

	authorizationCode, err := s.authorizationCodeIfNeeded(ctx, domain.MerchantCenterDataSourceID, location)
	if err != nil {
		return nil, err
	}

	created, err := s.dtDAL.CreateTransferConfig(ctx, &datatransferpb.CreateTransferConfigRequest{
		Parent: s.parent(location),
		TransferConfig: &datatransferpb.TransferConfig{
			DisplayName:  fmt.Sprintf("Merchant Center Transfer - %s", merchantID),
			DataSourceId: domain.MerchantCenterDataSourceID,
			Destination: &datatransferpb.TransferConfig_DestinationDatasetId{
				DestinationDatasetId: destinationDatasetID,
			},
			Params:                params,
			DataRefreshWindowDays: 0,
		},
		AuthorizationCode: authorizationCode,
	})
	if err != nil {
		return nil, err
	}

	l.Infof("Data transfer created for merchant id %s to destination dataset %s", merchantID, destinationDatasetID)

	return created, nil
}

// CreateGoogleAdsTransfer creates a data transfer config to copy Google Ads
// data to the destination dataset. On fresh creation a historical backfill
// covering backfillDays is scheduled.
func (s *Service) CreateGoogleAdsTransfer(ctx context.Context, customerID, destinationDatasetID, location string, backfillDays int) (*datatransferpb.TransferConfig, error) {
	l := s.loggerProvider(ctx)
	l.Info("Creating Google Ads Transfer.")

	params, err := structpb.NewStruct(map[string]interface{}{
		"customer_id":  customerID,
		"include_pmax": true,
		"table_filter": strings.Join(domain.AdsTables, ","),
	})
	if err != nil {
		return nil, err
	}

	config, err := s.findExistingTransfer(ctx, domain.GoogleAdsDataSourceID, location, destinationDatasetID, "")
	if err != nil {
		return nil, err
	}

	if config != nil {
		l.Infof("Data transfer for Google Ads customer id %s to destination dataset %s already exists.", customerID, destinationDatasetID)
		return s.updateExistingTransfer(ctx, config, params)
	}

	l.Infof("Creating data transfer for Google Ads customer id %s to destination dataset %s", customerID, destinationDatasetID)

	authorizationCode, err := s.authorizationCodeIfNeeded(ctx, domain.GoogleAdsDataSourceID, location)
	if err != nil {
		return nil, err
	}

	created, err := s.dtDAL.CreateTransferConfig(ctx, &datatransferpb.CreateTransferConfigRequest{
		Parent: s.parent(location),
		TransferConfig: &datatransferpb.TransferConfig{
			DisplayName:  fmt.Sprintf("Google Ads Transfer - %s", customerID),
			DataSourceId: domain.GoogleAdsDataSourceID,
			Destination: &datatransferpb.TransferConfig_DestinationDatasetId{
				DestinationDatasetId: destinationDatasetID,
			},
			Params:                params,
			DataRefreshWindowDays: 1,
		},
		AuthorizationCode: authorizationCode,
	})
	if err != nil {
		return nil, err
	}

	l.Infof("Data transfer created for Google Ads customer id %s to destination dataset %s", customerID, destinationDatasetID)

	if backfillDays > 0 {
		if err := s.scheduleBackfill(ctx, created, backfillDays); err != nil {
			return nil, err
		}

		l.Infof("Backfill scheduled for the last %d days.", backfillDays)
	}

	return created, nil
}

// scheduleBackfill requests runs covering the backfill window, truncated to
// UTC midnight boundaries.
func (s *Service) scheduleBackfill(ctx context.Context, config *datatransferpb.TransferConfig, backfillDays int) error {
	now := s.timeNow()

	endTime := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startTime := endTime.AddDate(0, 0, -backfillDays)

	_, err := s.dtDAL.ScheduleTransferRuns(ctx, &datatransferpb.ScheduleTransferRunsRequest{
		Parent:    config.GetName(),
		StartTime: timestamppb.New(startTime),
		EndTime:   timestamppb.New(endTime),
	})

	return err
}

// ScheduleQuery schedules the query to run every day. When a scheduled query
// with the same display name already exists, its query parameter is updated
// and a one time manual run is started.
func (s *Service) ScheduleQuery(ctx context.Context, name, location, queryString string) (*datatransferpb.TransferConfig, error) {
	l := s.loggerProvider(ctx)

	params, err := structpb.NewStruct(map[string]interface{}{
		"query": queryString,
	})
	if err != nil {
		return nil, err
	}

	config, err := s.findExistingTransfer(ctx, domain.ScheduledQueryDataSourceID, location, "", name)
	if err != nil {
		return nil, err
	}

	if config != nil {
		l.Infof("Data transfer for scheduling query %q already exists.", name)

		updated, err := s.updateExistingTransfer(ctx, config, params)
		if err != nil {
			return nil, err
		}

		l.Infof("Data transfer for scheduling query %q updated.", name)

		if _, err := s.dtDAL.StartManualTransferRuns(ctx, &datatransferpb.StartManualTransferRunsRequest{
			Parent: updated.GetName(),
			Time: &datatransferpb.StartManualTransferRunsRequest_RequestedRunTime{
				RequestedRunTime: timestamppb.New(s.timeNow()),
			},
		}); err != nil {
			return nil, err
		}

		l.Info("One time manual run started. It might take up to 1 hour for performance data to reflect on the dash.")

		return updated, nil
	}

	authorizationCode, err := s.authorizationCodeIfNeeded(ctx, domain.ScheduledQueryDataSourceID, location)
	if err != nil {
		return nil, err
	}

	return s.dtDAL.CreateTransferConfig(ctx, &datatransferpb.CreateTransferConfigRequest{
		Parent: s.parent(location),
		TransferConfig: &datatransferpb.TransferConfig{
			DisplayName:  name,
			DataSourceId: domain.ScheduledQueryDataSourceID,
			Params:       params,
			Schedule:     scheduledQueryInterval,
		},
		AuthorizationCode: authorizationCode,
	})
}

// WaitForCompletion polls the latest run of the transfer config until it
// reaches a terminal state. An empty run list means there is nothing to wait
// for. The poll count is bounded; exceeding it fails the request.
func (s *Service) WaitForCompletion(ctx context.Context, config *datatransferpb.TransferConfig, location string) error {
	l := s.loggerProvider(ctx)

	configName := config.GetName()
	configID := configName[strings.LastIndex(configName, "/")+1:]
	configPath := fmt.Sprintf("%s/transferConfigs/%s", s.parent(location), configID)

	pollCounter := 0

	for {
		runs, err := s.dtDAL.ListTransferRuns(ctx, &datatransferpb.ListTransferRunsRequest{
			Parent: configPath,
		})
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			return nil
		}

		latestRun := runs[0]

		switch latestRun.GetState() {
		case datatransferpb.TransferState_SUCCEEDED:
			l.Infof("Transfer %s was successful.", configName)
			return nil
		case datatransferpb.TransferState_FAILED, datatransferpb.TransferState_CANCELLED:
			transferErr := &domain.DataTransferError{
				ConfigName: configName,
				Detail:     fmt.Sprintf("error - %s", latestRun.GetErrorStatus()),
			}
			l.Error(transferErr)

			return transferErr
		}

		l.Infof("Transfer %s still in progress. Sleeping for %s before checking again.", configName, domain.PollInterval)
		s.sleep(domain.PollInterval)

		pollCounter++
		if pollCounter >= domain.MaxPollCounter {
			transferErr := &domain.DataTransferError{
				ConfigName: configName,
				Detail:     "taking too long to finish",
			}
			l.Error(transferErr)

			return transferErr
		}
	}
}

// findExistingTransfer returns the first reusable transfer config under the
// project and location whose data source, destination dataset and display
// name match the given values, where empty values match anything.
func (s *Service) findExistingTransfer(ctx context.Context, dataSourceID, location, destinationDatasetID, displayName string) (*datatransferpb.TransferConfig, error) {
	configs, err := s.dtDAL.ListTransferConfigs(ctx, &datatransferpb.ListTransferConfigsRequest{
		Parent: s.parent(location),
	})
	if err != nil {
		return nil, err
	}

	for _, config := range configs {
		if config.GetDataSourceId() != dataSourceID {
			continue
		}

		if destinationDatasetID != "" && config.GetDestinationDatasetId() != destinationDatasetID {
			continue
		}

		if !reusableStates[config.GetState()] {
			continue
		}

		if displayName != "" && config.GetDisplayName() != displayName {
			continue
		}

		return config, nil
	}

	return nil, nil
}

// paramsMatch checks if the given parameters are present in the transfer
// config with equal values.
func paramsMatch(config *datatransferpb.TransferConfig, params *structpb.Struct) bool {
	if params == nil {
		return true
	}

	configParams := config.GetParams().GetFields()

	for key, value := range params.GetFields() {
		configValue, ok := configParams[key]
		if !ok || !proto.Equal(value, configValue) {
			return false
		}
	}

	return true
}

// updateExistingTransfer replaces the config's parameters, field-masked to
// params only. The update is skipped when the parameters already match.
func (s *Service) updateExistingTransfer(ctx context.Context, config *datatransferpb.TransferConfig, params *structpb.Struct) (*datatransferpb.TransferConfig, error) {
	l := s.loggerProvider(ctx)

	if paramsMatch(config, params) {
		l.Infof("The data transfer config %q parameters match. Hence skipping update.", config.GetDisplayName())
		return config, nil
	}

	newConfig, ok := proto.Clone(config).(*datatransferpb.TransferConfig)
	if !ok {
		return nil, fmt.Errorf("cloning transfer config %s", config.GetName())
	}

	newConfig.Params = params

	updated, err := s.dtDAL.UpdateTransferConfig(ctx, &datatransferpb.UpdateTransferConfigRequest{
		TransferConfig: newConfig,
		UpdateMask:     &fieldmaskpb.FieldMask{Paths: []string{"params"}},
	})
	if err != nil {
		return nil, err
	}

	l.Infof("The data transfer config %q parameters updated.", updated.GetDisplayName())

	return updated, nil
}

func (s *Service) authorizationCodeIfNeeded(ctx context.Context, dataSourceID, location string) (string, error) {
	hasValidCreds, err := s.checkValidCredentials(ctx, dataSourceID, location)
	if err != nil {
		return "", err
	}

	if hasValidCreds {
		return "", nil
	}

	return s.retrieveAuthorizationCode(ctx, dataSourceID, location)
}

// checkValidCredentials returns true if valid credentials exist for the
// given data source.
func (s *Service) checkValidCredentials(ctx context.Context, dataSourceID, location string) (bool, error) {
	response, err := s.dtDAL.CheckValidCreds(ctx, &datatransferpb.CheckValidCredsRequest{
		Name: s.dataSourceName(dataSourceID, location),
	})
	if err != nil {
		return false, err
	}

	return response.GetHasValidCreds(), nil
}

func (s *Service) retrieveAuthorizationCode(ctx context.Context, dataSourceID, location string) (string, error) {
	dataSource, err := s.dtDAL.GetDataSource(ctx, &datatransferpb.GetDataSourceRequest{
		Name: s.dataSourceName(dataSourceID, location),
	})
	if err != nil {
		return "", err
	}

	if dataSource == nil {
		return "", fmt.Errorf("invalid data source %s", dataSourceID)
	}

	return s.codeRetriever.RetrieveAuthorizationCode(ctx, dataSourceID, dataSource.GetClientId(), dataSource.GetScopes())
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery/datatransfer/apiv1/datatransferpb"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/structpb"

	authMocks "github.com/google-marketing-solutions/merch-intel/auth/mocks"
	"github.com/google-marketing-solutions/merch-intel/datatransfer/domain"
	"github.com/google-marketing-solutions/merch-intel/datatransfer/mocks"
	"github.com/google-marketing-solutions/merch-intel/logger"
	loggerMocks "github.com/google-marketing-solutions/merch-intel/logger/mocks"
)

const (
	projectID  = "merch-project"
	location   = "us"
	datasetID  = "merch_intel"
	merchantID = "1234"
	customerID = "5678"

	parentPath = "projects/merch-project/locations/us"
	configName = parentPath + "/transferConfigs/abc123"
)

var frozenNow = time.Date(2026, time.March, 15, 10, 30, 45, 0, time.UTC)

type fields struct {
	dtDAL         mocks.DataTransfer
	codeRetriever authMocks.CodeRetriever

	sleeps int
}

func newFields() *fields {
	return &fields{}
}

func (f *fields) service() *Service {
	return &Service{
		loggerProvider: func(ctx context.Context) logger.ILogger {
			l := &loggerMocks.ILogger{}
			l.On("Info", mock.Anything).Maybe()
			l.On("Infof", mock.Anything, mock.Anything).Maybe()
			l.On("Infof", mock.Anything, mock.Anything, mock.Anything).Maybe()
			l.On("Error", mock.Anything).Maybe()

			return l
		},
		dtDAL:         &f.dtDAL,
		codeRetriever: &f.codeRetriever,
		projectID:     projectID,
		timeNow:       func() time.Time { return frozenNow },
		sleep: func(d time.Duration) {
			f.sleeps++
		},
	}
}

func mustStruct(t *testing.T, fields map[string]interface{}) *structpb.Struct {
	t.Helper()

	s, err := structpb.NewStruct(fields)
	if err != nil {
		t.Fatal(err)
	}

	return s
}

func merchantParams(t *testing.T) *structpb.Struct {
	t.Helper()

	return mustStruct(t, map[string]interface{}{
		"merchant_id":                  merchantID,
		"export_products":              true,
		"export_performance":           true,
		"export_best_sellers_v2":       true,
		"export_price_competitiveness": true,
		"export_price_insights":        true,
		"export_offer_targeting":       true,
	})
}

func adsParams(t *testing.T) *structpb.Struct {
	t.Helper()

	return mustStruct(t, map[string]interface{}{
		"customer_id":  customerID,
		"include_pmax": true,
		"table_filter": "ShoppingProductStats",
	})
}

func merchantConfig(t *testing.T, state datatransferpb.TransferState) *datatransferpb.TransferConfig {
	t.Helper()

	return &datatransferpb.TransferConfig{
		Name:         configName,
		DisplayName:  "Merchant Center Transfer - " + merchantID,
		DataSourceId: domain.MerchantCenterDataSourceID,
		Destination: &datatransferpb.TransferConfig_DestinationDatasetId{
			DestinationDatasetId: datasetID,
		},
		Params: merchantParams(t),
		State:  state,
	}
}

func TestTransferService_CreateMerchantCenterTransfer(t *testing.T) {
	ctx := context.Background()

	listReq := &datatransferpb.ListTransferConfigsRequest{Parent: parentPath}

	tests := []struct {
		name        string
		on          func(t *testing.T, f *fields)
		wantErr     bool
		wantName    string
		wantConfig  func(t *testing.T) *datatransferpb.TransferConfig
		assertCalls func(t *testing.T, f *fields)
	}{
		{
			name: "reuses matching config without an update",
			on: func(t *testing.T, f *fields) {
				f.dtDAL.On("ListTransferConfigs", ctx, listReq).
					Return([]*datatransferpb.TransferConfig{merchantConfig(t, datatransferpb.TransferState_SUCCEEDED)}, nil).
					Once()
			},
			wantName: configName,
			wantConfig: func(t *testing.T) *datatransferpb.TransferConfig {
				return merchantConfig(t, datatransferpb.TransferState_SUCCEEDED)
			},
			assertCalls: func(t *testing.T, f *fields) {
				f.dtDAL.AssertNotCalled(t, "UpdateTransferConfig", mock.Anything, mock.Anything)
				f.dtDAL.AssertNotCalled(t, "CreateTransferConfig", mock.Anything, mock.Anything)
			},
		},
		{
			name: "updates parameters of an existing config when they differ",
			on: func(t *testing.T, f *fields) {
				stale := merchantConfig(t, datatransferpb.TransferState_SUCCEEDED)
				stale.Params = mustStruct(t, map[string]interface{}{
					"merchant_id":     merchantID,
					"export_products": true,
				})

				f.dtDAL.On("ListTransferConfigs", ctx, listReq).
					Return([]*datatransferpb.TransferConfig{stale}, nil).
					Once()
				f.dtDAL.On("UpdateTransferConfig", ctx, mock.MatchedBy(func(req *datatransferpb.UpdateTransferConfigRequest) bool {
					return req.GetTransferConfig().GetName() == configName &&
						proto.Equal(req.GetTransferConfig().GetParams(), merchantParams(t)) &&
						len(req.GetUpdateMask().GetPaths()) == 1 &&
						req.GetUpdateMask().GetPaths()[0] == "params"
				})).
					Return(merchantConfig(t, datatransferpb.TransferState_SUCCEEDED), nil).
					Once()
			},
			wantName: configName,
			assertCalls: func(t *testing.T, f *fields) {
				f.dtDAL.AssertNumberOfCalls(t, "UpdateTransferConfig", 1)
				f.dtDAL.AssertNotCalled(t, "CreateTransferConfig", mock.Anything, mock.Anything)
			},
		},
		{
			name: "creates a config when none exists and credentials are valid",
			on: func(t *testing.T, f *fields) {
				f.dtDAL.On("ListTransferConfigs", ctx, listReq).
					Return(nil, nil).
					Once()
				f.dtDAL.On("CheckValidCreds", ctx, &datatransferpb.CheckValidCredsRequest{
					Name: parentPath + "/dataSources/" + domain.MerchantCenterDataSourceID,
				}).
					Return(&datatransferpb.CheckValidCredsResponse{HasValidCreds: true}, nil).
					Once()
				f.dtDAL.On("CreateTransferConfig", ctx, mock.MatchedBy(func(req *datatransferpb.CreateTransferConfigRequest) bool {
					config := req.GetTransferConfig()

					return req.GetParent() == parentPath &&
						req.GetAuthorizationCode() == "" &&
						config.GetDisplayName() == "Merchant Center Transfer - "+merchantID &&
						config.GetDataSourceId() == domain.MerchantCenterDataSourceID &&
						config.GetDestinationDatasetId() == datasetID &&
						config.GetDataRefreshWindowDays() == 0 &&
						proto.Equal(config.GetParams(), merchantParams(t))
				})).
					Return(merchantConfig(t, datatransferpb.TransferState_PENDING), nil).
					Once()
			},
			wantName: configName,
		},
		{
			name: "retrieves an authorization code when credentials are missing",
			on: func(t *testing.T, f *fields) {
				f.dtDAL.On("ListTransferConfigs", ctx, listReq).
					Return(nil, nil).
					Once()
				f.dtDAL.On("CheckValidCreds", ctx, mock.AnythingOfType("*datatransferpb.CheckValidCredsRequest")).
					Return(&datatransferpb.CheckValidCredsResponse{HasValidCreds: false}, nil).
					Once()
				f.dtDAL.On("GetDataSource", ctx, &datatransferpb.GetDataSourceRequest{
					Name: parentPath + "/dataSources/" + domain.MerchantCenterDataSourceID,
				}).
					Return(&datatransferpb.DataSource{
						ClientId: "oauth-client",
						Scopes:   []string{"https://www.googleapis.com/auth/bigquery"},
					}, nil).
					Once()
				f.codeRetriever.On("RetrieveAuthorizationCode", ctx, domain.MerchantCenterDataSourceID, "oauth-client", []string{"https://www.googleapis.com/auth/bigquery"}).
					Return("auth-code", nil).
					Once()
				f.dtDAL.On("CreateTransferConfig", ctx, mock.MatchedBy(func(req *datatransferpb.CreateTransferConfigRequest) bool {
					return req.GetAuthorizationCode() == "auth-code"
				})).
					Return(merchantConfig(t, datatransferpb.TransferState_PENDING), nil).
					Once()
			},
			wantName: configName,
		},
		{
			name: "does not reuse a failed config",
			on: func(t *testing.T, f *fields) {
				f.dtDAL.On("ListTransferConfigs", ctx, listReq).
					Return([]*datatransferpb.TransferConfig{merchantConfig(t, datatransferpb.TransferState_FAILED)}, nil).
					Once()
				f.dtDAL.On("CheckValidCreds", ctx, mock.AnythingOfType("*datatransferpb.CheckValidCredsRequest")).
					Return(&datatransferpb.CheckValidCredsResponse{HasValidCreds: true}, nil).
					Once()
				f.dtDAL.On("CreateTransferConfig", ctx, mock.AnythingOfType("*datatransferpb.CreateTransferConfigRequest")).
					Return(merchantConfig(t, datatransferpb.TransferState_PENDING), nil).
					Once()
			},
			wantName: configName,
		},
		{
			name: "listing failure propagates",
			on: func(t *testing.T, f *fields) {
				f.dtDAL.On("ListTransferConfigs", ctx, listReq).
					Return(nil, errors.New("permission denied")).
					Once()
			},
			wantErr: true,
		},
	}

	for i := 0; i < len(tests); i++ {
		tt := &tests[i]
		t.Run(tt.name, func(t *testing.T) {
			f := newFields()
			tt.on(t, f)

			s := f.service()

			got, err := s.CreateMerchantCenterTransfer(ctx, merchantID, datasetID, location)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantName, got.GetName())
			}

			if tt.wantConfig != nil {
				assert.Empty(t, cmp.Diff(tt.wantConfig(t), got, protocmp.Transform()))
			}

			if tt.assertCalls != nil {
				tt.assertCalls(t, f)
			}

			f.dtDAL.AssertExpectations(t)
			f.codeRetriever.AssertExpectations(t)
		})
	}
}

func TestTransferService_CreateGoogleAdsTransfer(t *testing.T) {
	ctx := context.Background()

	listReq := &datatransferpb.ListTransferConfigsRequest{Parent: parentPath}

	adsConfig := func(t *testing.T) *datatransferpb.TransferConfig {
		return &datatransferpb.TransferConfig{
			Name:         configName,
			DisplayName:  "Google Ads Transfer - " + customerID,
			DataSourceId: domain.GoogleAdsDataSourceID,
			Destination: &datatransferpb.TransferConfig_DestinationDatasetId{
				DestinationDatasetId: datasetID,
			},
			Params: adsParams(t),
			State:  datatransferpb.TransferState_SUCCEEDED,
		}
	}

	t.Run("schedules a midnight aligned backfill on fresh creation", func(t *testing.T) {
		f := newFields()

		f.dtDAL.On("ListTransferConfigs", ctx, listReq).
			Return(nil, nil).
			Once()
		f.dtDAL.On("CheckValidCreds", ctx, mock.AnythingOfType("*datatransferpb.CheckValidCredsRequest")).
			Return(&datatransferpb.CheckValidCredsResponse{HasValidCreds: true}, nil).
			Once()
		f.dtDAL.On("CreateTransferConfig", ctx, mock.MatchedBy(func(req *datatransferpb.CreateTransferConfigRequest) bool {
			config := req.GetTransferConfig()

			return config.GetDisplayName() == "Google Ads Transfer - "+customerID &&
				config.GetDataSourceId() == domain.GoogleAdsDataSourceID &&
				config.GetDestinationDatasetId() == datasetID &&
				config.GetDataRefreshWindowDays() == 1 &&
				proto.Equal(config.GetParams(), adsParams(t))
		})).
			Return(adsConfig(t), nil).
			Once()

		wantEnd := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
		wantStart := wantEnd.AddDate(0, 0, -30)

		f.dtDAL.On("ScheduleTransferRuns", ctx, mock.MatchedBy(func(req *datatransferpb.ScheduleTransferRunsRequest) bool {
			return req.GetParent() == configName &&
				req.GetStartTime().AsTime().Equal(wantStart) &&
				req.GetEndTime().AsTime().Equal(wantEnd)
		})).
			Return(&datatransferpb.ScheduleTransferRunsResponse{}, nil).
			Once()

		s := f.service()

		got, err := s.CreateGoogleAdsTransfer(ctx, customerID, datasetID, location, 30)

		assert.NoError(t, err)
		assert.Equal(t, configName, got.GetName())
		f.dtDAL.AssertExpectations(t)
	})

	t.Run("does not backfill when reusing an existing config", func(t *testing.T) {
		f := newFields()

		f.dtDAL.On("ListTransferConfigs", ctx, listReq).
			Return([]*datatransferpb.TransferConfig{adsConfig(t)}, nil).
			Once()

		s := f.service()

		got, err := s.CreateGoogleAdsTransfer(ctx, customerID, datasetID, location, 30)

		assert.NoError(t, err)
		assert.Equal(t, configName, got.GetName())
		f.dtDAL.AssertNotCalled(t, "ScheduleTransferRuns", mock.Anything, mock.Anything)
		f.dtDAL.AssertNotCalled(t, "CreateTransferConfig", mock.Anything, mock.Anything)
	})

	t.Run("skips the backfill when the window is zero", func(t *testing.T) {
		f := newFields()

		f.dtDAL.On("ListTransferConfigs", ctx, listReq).
			Return(nil, nil).
			Once()
		f.dtDAL.On("CheckValidCreds", ctx, mock.AnythingOfType("*datatransferpb.CheckValidCredsRequest")).
			Return(&datatransferpb.CheckValidCredsResponse{HasValidCreds: true}, nil).
			Once()
		f.dtDAL.On("CreateTransferConfig", ctx, mock.AnythingOfType("*datatransferpb.CreateTransferConfigRequest")).
			Return(adsConfig(t), nil).
			Once()

		s := f.service()

		_, err := s.CreateGoogleAdsTransfer(ctx, customerID, datasetID, location, 0)

		assert.NoError(t, err)
		f.dtDAL.AssertNotCalled(t, "ScheduleTransferRuns", mock.Anything, mock.Anything)
	})
}

func TestTransferService_ScheduleQuery(t *testing.T) {
	ctx := context.Background()

	queryName := "Main workflow - merch_intel - " + customerID
	queryString := "CALL `merch-project.merch_intel.main`()"

	listReq := &datatransferpb.ListTransferConfigsRequest{Parent: parentPath}

	scheduledConfig := func(t *testing.T, displayName, query string) *datatransferpb.TransferConfig {
		return &datatransferpb.TransferConfig{
			Name:         configName,
			DisplayName:  displayName,
			DataSourceId: domain.ScheduledQueryDataSourceID,
			Params:       mustStruct(t, map[string]interface{}{"query": query}),
			State:        datatransferpb.TransferState_SUCCEEDED,
		}
	}

	t.Run("creates the scheduled query when absent", func(t *testing.T) {
		f := newFields()

		f.dtDAL.On("ListTransferConfigs", ctx, listReq).
			Return(nil, nil).
			Once()
		f.dtDAL.On("CheckValidCreds", ctx, &datatransferpb.CheckValidCredsRequest{
			Name: parentPath + "/dataSources/" + domain.ScheduledQueryDataSourceID,
		}).
			Return(&datatransferpb.CheckValidCredsResponse{HasValidCreds: true}, nil).
			Once()
		f.dtDAL.On("CreateTransferConfig", ctx, mock.MatchedBy(func(req *datatransferpb.CreateTransferConfigRequest) bool {
			config := req.GetTransferConfig()

			return config.GetDisplayName() == queryName &&
				config.GetDataSourceId() == domain.ScheduledQueryDataSourceID &&
				config.GetSchedule() == "every 24 hours" &&
				proto.Equal(config.GetParams(), mustStruct(t, map[string]interface{}{"query": queryString}))
		})).
			Return(scheduledConfig(t, queryName, queryString), nil).
			Once()

		s := f.service()

		got, err := s.ScheduleQuery(ctx, queryName, location, queryString)

		assert.NoError(t, err)
		assert.Equal(t, configName, got.GetName())
		f.dtDAL.AssertExpectations(t)
		f.dtDAL.AssertNotCalled(t, "StartManualTransferRuns", mock.Anything, mock.Anything)
	})

	t.Run("updates the query and starts a manual run when present", func(t *testing.T) {
		f := newFields()

		f.dtDAL.On("ListTransferConfigs", ctx, listReq).
			Return([]*datatransferpb.TransferConfig{scheduledConfig(t, queryName, "SELECT 1")}, nil).
			Once()
		f.dtDAL.On("UpdateTransferConfig", ctx, mock.MatchedBy(func(req *datatransferpb.UpdateTransferConfigRequest) bool {
			return req.GetTransferConfig().GetName() == configName &&
				proto.Equal(req.GetTransferConfig().GetParams(), mustStruct(t, map[string]interface{}{"query": queryString}))
		})).
			Return(scheduledConfig(t, queryName, queryString), nil).
			Once()
		f.dtDAL.On("StartManualTransferRuns", ctx, mock.MatchedBy(func(req *datatransferpb.StartManualTransferRunsRequest) bool {
			return req.GetParent() == configName &&
				req.GetRequestedRunTime().AsTime().Equal(frozenNow)
		})).
			Return(&datatransferpb.StartManualTransferRunsResponse{}, nil).
			Once()

		s := f.service()

		got, err := s.ScheduleQuery(ctx, queryName, location, queryString)

		assert.NoError(t, err)
		assert.Equal(t, configName, got.GetName())
		f.dtDAL.AssertExpectations(t)
		f.dtDAL.AssertNotCalled(t, "CreateTransferConfig", mock.Anything, mock.Anything)
	})

	t.Run("ignores scheduled queries with other display names", func(t *testing.T) {
		f := newFields()

		f.dtDAL.On("ListTransferConfigs", ctx, listReq).
			Return([]*datatransferpb.TransferConfig{scheduledConfig(t, "Some other workflow", "SELECT 1")}, nil).
			Once()
		f.dtDAL.On("CheckValidCreds", ctx, mock.AnythingOfType("*datatransferpb.CheckValidCredsRequest")).
			Return(&datatransferpb.CheckValidCredsResponse{HasValidCreds: true}, nil).
			Once()
		f.dtDAL.On("CreateTransferConfig", ctx, mock.AnythingOfType("*datatransferpb.CreateTransferConfigRequest")).
			Return(scheduledConfig(t, queryName, queryString), nil).
			Once()

		s := f.service()

		_, err := s.ScheduleQuery(ctx, queryName, location, queryString)

		assert.NoError(t, err)
		f.dtDAL.AssertExpectations(t)
		f.dtDAL.AssertNotCalled(t, "UpdateTransferConfig", mock.Anything, mock.Anything)
	})
}

func TestTransferService_WaitForCompletion(t *testing.T) {
	ctx := context.Background()

	config := &datatransferpb.TransferConfig{Name: configName}

	runsReq := &datatransferpb.ListTransferRunsRequest{Parent: configName}

	runs := func(state datatransferpb.TransferState) []*datatransferpb.TransferRun {
		return []*datatransferpb.TransferRun{{State: state}}
	}

	t.Run("returns immediately when the transfer has no runs", func(t *testing.T) {
		f := newFields()

		f.dtDAL.On("ListTransferRuns", ctx, runsReq).
			Return(nil, nil).
			Once()

		err := f.service().WaitForCompletion(ctx, config, location)

		assert.NoError(t, err)
		assert.Equal(t, 0, f.sleeps)
	})

	t.Run("polls until the latest run succeeds", func(t *testing.T) {
		f := newFields()

		f.dtDAL.On("ListTransferRuns", ctx, runsReq).
			Return(runs(datatransferpb.TransferState_RUNNING), nil).
			Twice()
		f.dtDAL.On("ListTransferRuns", ctx, runsReq).
			Return(runs(datatransferpb.TransferState_SUCCEEDED), nil).
			Once()

		err := f.service().WaitForCompletion(ctx, config, location)

		assert.NoError(t, err)
		assert.Equal(t, 2, f.sleeps)
		f.dtDAL.AssertExpectations(t)
	})

	t.Run("fails without sleeping when the run failed", func(t *testing.T) {
		f := newFields()

		failed := []*datatransferpb.TransferRun{{
			State:       datatransferpb.TransferState_FAILED,
			ErrorStatus: &statuspb.Status{Message: "quota exceeded"},
		}}

		f.dtDAL.On("ListTransferRuns", ctx, runsReq).
			Return(failed, nil).
			Once()

		err := f.service().WaitForCompletion(ctx, config, location)

		var transferErr *domain.DataTransferError
		if assert.ErrorAs(t, err, &transferErr) {
			assert.Equal(t, configName, transferErr.ConfigName)
			assert.Contains(t, transferErr.Detail, "quota exceeded")
		}

		assert.Equal(t, 0, f.sleeps)
	})

	t.Run("cancelled run fails the wait", func(t *testing.T) {
		f := newFields()

		f.dtDAL.On("ListTransferRuns", ctx, runsReq).
			Return(runs(datatransferpb.TransferState_CANCELLED), nil).
			Once()

		err := f.service().WaitForCompletion(ctx, config, location)

		var transferErr *domain.DataTransferError
		assert.ErrorAs(t, err, &transferErr)
	})

	t.Run("gives up when the run never reaches a terminal state", func(t *testing.T) {
		f := newFields()

		f.dtDAL.On("ListTransferRuns", ctx, runsReq).
			Return(runs(datatransferpb.TransferState_RUNNING), nil).
			Times(domain.MaxPollCounter)

		err := f.service().WaitForCompletion(ctx, config, location)

		var transferErr *domain.DataTransferError
		if assert.ErrorAs(t, err, &transferErr) {
			assert.Contains(t, transferErr.Detail, "taking too long")
		}

		assert.Equal(t, domain.MaxPollCounter, f.sleeps)
		f.dtDAL.AssertExpectations(t)
	})

	t.Run("listing failure propagates", func(t *testing.T) {
		f := newFields()

		listErr := errors.New("permission denied")

		f.dtDAL.On("ListTransferRuns", ctx, runsReq).
			Return(nil, listErr).
			Once()

		err := f.service().WaitForCompletion(ctx, config, location)

		assert.Equal(t, listErr, err)
	})
}

func TestParamsMatch(t *testing.T) {
	tests := []struct {
		name         string
		configParams map[string]interface{}
		params       map[string]interface{}
		want         bool
	}{
		{
			name:         "nil requested parameters always match",
			configParams: map[string]interface{}{"merchant_id": "1"},
			params:       nil,
			want:         true,
		},
		{
			name:         "equal parameters match",
			configParams: map[string]interface{}{"merchant_id": "1", "export_products": true},
			params:       map[string]interface{}{"merchant_id": "1", "export_products": true},
			want:         true,
		},
		{
			name:         "config carrying extra keys still matches",
			configParams: map[string]interface{}{"merchant_id": "1", "export_products": true, "added_by_service": "x"},
			params:       map[string]interface{}{"merchant_id": "1", "export_products": true},
			want:         true,
		},
		{
			name:         "missing key does not match",
			configParams: map[string]interface{}{"merchant_id": "1"},
			params:       map[string]interface{}{"merchant_id": "1", "export_products": true},
			want:         false,
		},
		{
			name:         "different value does not match",
			configParams: map[string]interface{}{"merchant_id": "1", "export_products": false},
			params:       map[string]interface{}{"merchant_id": "1", "export_products": true},
			want:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &datatransferpb.TransferConfig{
				Params: mustStruct(t, tt.configParams),
			}

			var params *structpb.Struct
			if tt.params != nil {
				params = mustStruct(t, tt.params)
			}

			assert.Equal(t, tt.want, paramsMatch(config, params))
		})
	}
}

package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/google-marketing-solutions/merch-intel/auth"
	bqsetupDal "github.com/google-marketing-solutions/merch-intel/bqsetup/dal"
	bqsetupService "github.com/google-marketing-solutions/merch-intel/bqsetup/service"
	"github.com/google-marketing-solutions/merch-intel/common"
	transferDal "github.com/google-marketing-solutions/merch-intel/datatransfer/dal"
	"github.com/google-marketing-solutions/merch-intel/datatransfer/domain"
	transferService "github.com/google-marketing-solutions/merch-intel/datatransfer/service"
	"github.com/google-marketing-solutions/merch-intel/framework/connection"
	"github.com/google-marketing-solutions/merch-intel/logger"
)

const (
	defaultDatasetID       = "merch_intel"
	defaultDatasetLocation = "us"

	adsBackfillDays = 30
)

// Required Cloud APIs to be enabled.
var apisToBeEnabled = []string{
	"bigquery.googleapis.com",
	"bigquerydatatransfer.googleapis.com",
}

func main() {
	app := &cli.App{
		Name:  "merch-intel-setup",
		Usage: "provision the Merch Intel analytics environment in a GCP project",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "project_id",
				Usage:    "GCP project ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "merchant_id",
				Usage:    "Google Merchant Center account ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "ads_customer_id",
				Usage:    "Google Ads external customer ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "dataset_id",
				Usage: "BigQuery dataset ID",
				Value: defaultDatasetID,
			},
			&cli.StringFlag{
				Name:  "dataset_location",
				Usage: "BigQuery dataset location",
				Value: defaultDatasetLocation,
			},
			&cli.StringFlag{
				Name:  "service_account_email",
				Usage: "Optional. The email of the service account to impersonate for API calls.",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Println("error: ", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	projectID := c.String("project_id")
	datasetID := c.String("dataset_id")
	datasetLocation := c.String("dataset_location")
	merchantID := c.String("merchant_id")
	customerID := domain.NormalizeCustomerID(c.String("ads_customer_id"))

	ctx := logger.NewContext(c.Context)

	logging, err := logger.NewLogging(ctx, projectID)
	if err != nil {
		log.Printf("main: could not initialize logging. error %s", err)
		return err
	}

	l := logging.Logger(ctx)

	conn, err := connection.NewConnection(ctx, logging, projectID, c.String("service_account_email"))
	if err != nil {
		return err
	}

	defer conn.Close()

	l.Info("Enabling APIs...")

	if err := common.EnableAPIs(ctx, projectID, apisToBeEnabled, conn.ClientOptions()...); err != nil {
		return err
	}

	l.Info("APIs enabled.")

	bqSetup := bqsetupService.NewService(logging.Logger, bqsetupDal.NewSetupBigQuery(logging.Logger, conn))
	transfers := transferService.NewService(
		logging.Logger,
		transferDal.NewDataTransferGRPC(conn),
		auth.NewConsoleCodeRetriever(os.Stdin, os.Stdout),
		projectID,
	)

	l.Infof("Creating dataset %q...", datasetID)

	if err := bqSetup.EnsureDataset(ctx, projectID, datasetID, datasetLocation); err != nil {
		return err
	}

	merchantCenterConfig, err := transfers.CreateMerchantCenterTransfer(ctx, merchantID, datasetID, datasetLocation)
	if err != nil {
		return err
	}

	adsConfig, err := transfers.CreateGoogleAdsTransfer(ctx, customerID, datasetID, datasetLocation, adsBackfillDays)
	if err != nil {
		return err
	}

	l.Info("Waiting for Merchant Center data transfer to complete its initial run...")

	if err := transfers.WaitForCompletion(ctx, merchantCenterConfig, datasetLocation); err != nil {
		var transferErr *domain.DataTransferError
		if errors.As(err, &transferErr) {
			l.Error("Merchant Center transfer failed. If this is the first run, you may need to wait up to 90 minutes for data to be prepared before the transfer can succeed.")
		}

		return err
	}

	l.Info("Merchant Center data transfer successful.")

	l.Info("Waiting for Google Ads data transfer to complete its initial run...")

	if err := transfers.WaitForCompletion(ctx, adsConfig, datasetLocation); err != nil {
		return err
	}

	l.Info("Google Ads data transfer successful.")

	if err := bqSetup.LoadLanguageCodes(ctx, projectID, datasetID); err != nil {
		return err
	}

	if err := bqSetup.LoadGeoTargets(ctx, projectID, datasetID); err != nil {
		return err
	}

	queryParams := bqsetupService.QueryParams{
		ProjectID:  projectID,
		DatasetID:  datasetID,
		MerchantID: merchantID,
		CustomerID: customerID,
	}

	l.Info("Creating Merch Intel tables and views...")

	if err := bqSetup.ExecuteQueries(ctx, datasetLocation, queryParams); err != nil {
		return err
	}

	l.Info("Merch Intel tables and views created.")

	l.Info("Scheduling the main workflow...")

	query, err := bqSetup.MainWorkflowSQL(queryParams)
	if err != nil {
		return err
	}

	scheduledQueryName := fmt.Sprintf("Main workflow - %s - %s", datasetID, customerID)

	if _, err := transfers.ScheduleQuery(ctx, scheduledQueryName, datasetLocation, query); err != nil {
		return err
	}

	l.Info("Main workflow scheduled successfully.")
	l.Info("Merch Intel installation is complete!")

	return nil
}

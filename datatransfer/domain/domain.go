package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// MerchantCenterDataSourceID is the data source id for Merchant Center.
	MerchantCenterDataSourceID = "merchant_center"

	// GoogleAdsDataSourceID is the data source id for Google Ads.
	GoogleAdsDataSourceID = "google_ads"

	// ScheduledQueryDataSourceID is the data source id for scheduled queries.
	ScheduledQueryDataSourceID = "scheduled_query"

	// PollInterval is how long to sleep before re-checking a transfer run.
	PollInterval = 60 * time.Second

	// MaxPollCounter bounds the number of status checks for a single run.
	MaxPollCounter = 100
)

// AdsTables are the Google Ads report tables included in the transfer.
var AdsTables = []string{
	"ShoppingProductStats",
}

// DataTransferError is returned when a data transfer was not successful.
type DataTransferError struct {
	ConfigName string
	Detail     string
}

func (e *DataTransferError) Error() string {
	return fmt.Sprintf("transfer %s was not successful: %s", e.ConfigName, e.Detail)
}

// NormalizeCustomerID strips the dashes from a Google Ads customer id
// (ex. 456-789 becomes 456789).
func NormalizeCustomerID(customerID string) string {
	return strings.ReplaceAll(customerID, "-", "")
}

package common

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"google.golang.org/api/option"
	"google.golang.org/api/serviceusage/v1"
)

const serviceEnabledState = "ENABLED"

// GetEnv returns the value of the environment variable referenced by key,
// or fallback when the variable is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// EnableAPIs enables the given services for the project. Each service is
// attempted even when an earlier one fails; failures are aggregated.
func EnableAPIs(ctx context.Context, projectID string, services []string, opts ...option.ClientOption) error {
	serviceusageService, err := serviceusage.NewService(ctx, opts...)
	if err != nil {
		return err
	}

	var result *multierror.Error

	for _, service := range services {
		if err := enableService(ctx, serviceusageService, projectID, service); err != nil {
			result = multierror.Append(result, fmt.Errorf("enabling %s: %w", service, err))
		}
	}

	return result.ErrorOrNil()
}

func enableService(ctx context.Context, serviceusageService *serviceusage.Service, projectID, serviceName string) error {
	resourceName := fmt.Sprintf("projects/%s/services/%s", projectID, serviceName)

	getResp, err := serviceusageService.Services.Get(resourceName).Context(ctx).Do()
	if err != nil || getResp == nil {
		return err
	}

	if getResp.State != serviceEnabledState {
		inputReq := &serviceusage.EnableServiceRequest{}
		if _, err := serviceusageService.Services.Enable(resourceName, inputReq).Context(ctx).Do(); err != nil {
			return err
		}
	}

	return nil
}

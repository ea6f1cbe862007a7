package logger

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloud.google.com/go/logging"
	"google.golang.org/genproto/googleapis/api/monitoredres"

	"github.com/google-marketing-solutions/merch-intel/common"
)

type contextKey string

const (
	// CtxLoggerKey is how logger values are stored/retrieved from a context.
	CtxLoggerKey contextKey = "app-logger"

	// setupLogID is the name of the log file for setup logging.
	setupLogID = "merch_intel_setup"

	// labels keys for monitored resource definition
	projectIDField = "project_id"

	resourceType = "global"

	gcpLogging = "GCP_LOGGING"
)

var (
	setupLogger  *logging.Logger
	resource     *monitoredres.MonitoredResource
	cloudLogging bool
	projectID    string
)

type Provider func(ctx context.Context) ILogger

type Logging struct {
}

// NewLogging initializes the google cloud logging client when GCP_LOGGING
// is enabled, otherwise logs are written to stderr only.
func NewLogging(ctx context.Context, project string) (*Logging, error) {
	projectID = project

	var err error

	cloudLogging, err = strconv.ParseBool(common.GetEnv(gcpLogging, "false"))
	if err != nil {
		return nil, err
	}

	if cloudLogging {
		client, err := logging.NewClient(ctx, projectID)
		if err != nil {
			return nil, err
		}

		setupLogger = client.Logger(setupLogID)
	}

	resource = &monitoredres.MonitoredResource{
		Labels: map[string]string{
			projectIDField: projectID,
		},
		Type: resourceType,
	}

	return &Logging{}, nil
}

// Logger returns the logger that was stored inside the context.
func (l *Logging) Logger(ctx context.Context) ILogger {
	return FromContext(ctx)
}

// NewContext returns a context carrying a new logger.
func NewContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, CtxLoggerKey, newDefaultLogger())
}

// FromContext returns the logger that was stored in context.
// If there isn't logger stored, returns a new logger.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(CtxLoggerKey).(*Logger); ok {
		return l
	}

	return newDefaultLogger()
}

func getTrace(started time.Time, id string) string {
	return fmt.Sprintf("projects/%s/traces/%d%s", projectID, started.UnixNano(), id)
}

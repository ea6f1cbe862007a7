// Package auth obtains the OAuth authorization code required when a data
// transfer data source has no stored credentials yet.
package auth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
)

const (
	oauthBaseURL = "https://bigquery.cloud.google.com/datatransfer/oauthz/auth"

	// The transfer service exchanges the pasted code itself, so the
	// out-of-band redirect is used instead of a local callback.
	redirectURI = "urn:ietf:wg:oauth:2.0:oob"
)

//go:generate mockery --name=CodeRetriever --output ./mocks --outpkg mocks --case=underscore
type CodeRetriever interface {
	RetrieveAuthorizationCode(
		ctx context.Context,
		dataSourceID string,
		clientID string,
		scopes []string,
	) (string, error)
}

// ConsoleCodeRetriever prints the consent URL for a data source and reads
// the authorization code the operator pastes back.
type ConsoleCodeRetriever struct {
	in  io.Reader
	out io.Writer
}

func NewConsoleCodeRetriever(in io.Reader, out io.Writer) *ConsoleCodeRetriever {
	return &ConsoleCodeRetriever{
		in:  in,
		out: out,
	}
}

func (r *ConsoleCodeRetriever) RetrieveAuthorizationCode(ctx context.Context, dataSourceID, clientID string, scopes []string) (string, error) {
	consentURL := ConsentURL(dataSourceID, clientID, scopes)

	fmt.Fprintf(r.out, "Authorize the %s data source by visiting:\n\n%s\n\nEnter the authorization code: ", dataSourceID, consentURL)

	reader := bufio.NewReader(r.in)

	code, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("no authorization code entered for data source %s", dataSourceID)
	}

	return code, nil
}

// ConsentURL builds the data transfer OAuth consent URL for a data source.
func ConsentURL(dataSourceID, clientID string, scopes []string) string {
	values := url.Values{}
	values.Set("client_id", clientID)
	values.Set("scope", strings.Join(scopes, " "))
	values.Set("redirect_uri", redirectURI)
	values.Set("data_source", dataSourceID)

	return fmt.Sprintf("%s?%s", oauthBaseURL, values.Encode())
}

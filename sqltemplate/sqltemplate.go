// Package sqltemplate resolves parameterized SQL script files.
package sqltemplate

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// TemplateError is returned when a SQL template cannot be read or
// references a parameter that was not supplied.
type TemplateError struct {
	Path string
	Key  string
	Err  error
}

func (e *TemplateError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("sql template %s: no value supplied for parameter %q", e.Path, e.Key)
	}

	return fmt.Sprintf("sql template %s: %v", e.Path, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

var placeholderRegexp = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Configure reads the SQL script at sqlPath and substitutes its named
// placeholders with the supplied parameter values. A string value containing
// commas (ex. 'a,b,c') is rendered as a quoted tuple (ex. ('a', 'b', 'c'))
// to pass to the SQL IN operator. The file is re-read on every call.
func Configure(sqlPath string, params map[string]interface{}) (string, error) {
	raw, err := os.ReadFile(sqlPath)
	if err != nil {
		return "", &TemplateError{Path: sqlPath, Err: err}
	}

	var missingKey string

	resolved := placeholderRegexp.ReplaceAllStringFunc(string(raw), func(match string) string {
		key := match[1 : len(match)-1]

		value, ok := params[key]
		if !ok {
			if missingKey == "" {
				missingKey = key
			}

			return match
		}

		return renderValue(value)
	})

	if missingKey != "" {
		return "", &TemplateError{Path: sqlPath, Key: missingKey}
	}

	return resolved, nil
}

func renderValue(value interface{}) string {
	if s, ok := value.(string); ok && strings.Contains(s, ",") {
		parts := strings.Split(s, ",")

		quoted := make([]string, len(parts))
		for i, part := range parts {
			quoted[i] = fmt.Sprintf("'%s'", part)
		}

		return fmt.Sprintf("(%s)", strings.Join(quoted, ", "))
	}

	return fmt.Sprintf("%v", value)
}

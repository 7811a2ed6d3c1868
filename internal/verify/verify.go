// Package verify checks rendered module statements with esbuild's parser.
package verify

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// SyntaxError lists the parser messages for a statement that failed to parse.
type SyntaxError struct {
	Statement string
	Messages  []string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("rendered statement %q does not parse: %s", e.Statement, strings.Join(e.Messages, "; "))
}

// Check parses stmt as an ES module and returns a *SyntaxError on failure.
func Check(stmt string) error {
	result := api.Transform(stmt, api.TransformOptions{
		Loader:   api.LoaderJS,
		Format:   api.FormatESModule,
		Target:   api.ESNext,
		LogLevel: api.LogLevelSilent,
	})
	if len(result.Errors) == 0 {
		return nil
	}

	messages := make([]string, 0, len(result.Errors))
	for _, msg := range result.Errors {
		if msg.Location != nil {
			messages = append(messages, fmt.Sprintf("%d:%d: %s", msg.Location.Line, msg.Location.Column, msg.Text))
			continue
		}
		messages = append(messages, msg.Text)
	}
	return &SyntaxError{Statement: stmt, Messages: messages}
}

// Package templatescmder provides commands for inspecting prompt templates
// through a running recall API server.
package templatescmder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/prompt"
)

const templatesLongDesc string = `Inspect prompt templates via the recall API.

Requires a running recall API server. The API target is read from
client.api_target in config.toml and can be overridden with --api-target.

Use subcommands to list or show templates:
  recall templates list              List available templates
  recall templates show <name>       Show one template in full

Examples:
  recall templates list
  recall templates list --category development
  recall templates show api_design`

const templatesShortDesc string = "Inspect prompt templates"

func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: templatesShortDesc,
		Long:  templatesLongDesc,
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())

	return cmd
}

// listResponse mirrors the API's GET /templates body.
type listResponse struct {
	Count     int                `json:"count"`
	Templates []*prompt.Template `json:"templates"`
}

// getJSON fetches path from the API target and decodes the response into out.
func getJSON(apiTarget, path string, query url.Values, out any) error {
	target, err := url.Parse(apiTarget)
	if err != nil {
		return fmt.Errorf("invalid API target URL: %w", err)
	}
	target.Path = path
	if query != nil {
		target.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, target.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to recall API at %s: %w", apiTarget, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed (HTTP %d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

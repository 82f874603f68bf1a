package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/hvrctl/hvr"
)

var (
	callQuery  []string
	callHeader []string
	callData   string
	callText   bool
)

// callCmd represents the call command
var callCmd = &cobra.Command{
	Use:   "call METHOD PATH",
	Short: "Call any hub server endpoint",
	Long: `Call a hub server endpoint and print the result.

PATH is relative to the versioned API root unless it starts with /api or
/auth, so "hvrctl call GET /hubs" requests /api/` + hvr.APIVersion + `/hubs.

Examples:
  hvrctl call GET /hubs/hub1/events --query job=ch1-cap-src
  hvrctl call POST /hubs/hub1/jobs/start --data '{"jobs":["ch1-cap-src"]}'
  hvrctl call GET /hubs/hub1/logs/hvr.out --text`,
	Args: cobra.ExactArgs(2),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().StringArrayVarP(&callQuery, "query", "q", nil, "query parameter as key=value (repeatable)")
	callCmd.Flags().StringArrayVarP(&callHeader, "header", "H", nil, "request header as key=value (repeatable)")
	callCmd.Flags().StringVarP(&callData, "data", "d", "", "JSON request body, or @file to read it from a file")
	callCmd.Flags().BoolVar(&callText, "text", false, "return the response as text instead of parsing JSON")
	addFilterFlags(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(args[0], args[1])
	if err != nil {
		return err
	}

	f, err := resolveFilter()
	if err != nil {
		return err
	}
	if f != nil && callText {
		return fmt.Errorf("--filter cannot be combined with --text")
	}

	result, err := client.Do(cmd.Context(), req)
	if err != nil {
		return err
	}

	result, err = filters.Apply(cmd.Context(), f, result)
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), result)
}

// buildRequest turns the call arguments and flags into a request
func buildRequest(method, path string) (*hvr.Request, error) {
	method = strings.ToUpper(method)
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported method: %s", method)
	}

	req := &hvr.Request{
		Method:     method,
		Path:       apiPath(path),
		ExpectJSON: !callText,
	}

	if len(callQuery) > 0 {
		req.Query = url.Values{}
		for _, kv := range callQuery {
			key, value, err := splitPair(kv)
			if err != nil {
				return nil, fmt.Errorf("invalid --query: %w", err)
			}
			req.Query.Add(key, value)
		}
	}

	if len(callHeader) > 0 {
		req.Header = http.Header{}
		for _, kv := range callHeader {
			key, value, err := splitPair(kv)
			if err != nil {
				return nil, fmt.Errorf("invalid --header: %w", err)
			}
			req.Header.Add(key, value)
		}
	}

	if callData != "" {
		data := []byte(callData)
		if name, ok := strings.CutPrefix(callData, "@"); ok {
			var err error
			data, err = os.ReadFile(name)
			if err != nil {
				return nil, fmt.Errorf("failed to read request body: %w", err)
			}
		}
		var body any
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, fmt.Errorf("invalid --data: %w", err)
		}
		req.Body = body
	}

	return req, nil
}

// apiPath prefixes path with the versioned API root
func apiPath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path == "/api" || strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/auth/") {
		return path
	}
	return "/api/" + hvr.APIVersion + path
}

func splitPair(kv string) (string, string, error) {
	key, value, ok := strings.Cut(kv, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", kv)
	}
	return key, value, nil
}

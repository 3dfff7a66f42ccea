// healthcheck probes a locally running instance and exits non-zero when
// any endpoint misbehaves. Intended for deploy pipelines and container
// health checks.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type check struct {
	path         string
	expectedText string
}

// checks is the fixed probe list: each path must return HTTP 200 and
// contain the expected substring.
var checks = []check{
	{path: "/healthz", expectedText: `"ok":true`},
	{path: "/ro", expectedText: "Atelier"},
	{path: "/ro/despre", expectedText: "Despre"},
	{path: "/en/despre", expectedText: "About"},
	{path: "/api/portfolio", expectedText: `"ok":true`},
	{path: "/api/gallery", expectedText: `"ok":true`},
	{path: "/api/settings/theme", expectedText: "accent"},
	{path: "/api/settings/navigation", expectedText: "items"},
}

var rootCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Probe a local site-backend instance",
	Long: `healthcheck issues GET requests against a locally running server and
verifies each response is HTTP 200 and contains an expected substring.
The target port comes from the PORT environment variable (default 9002).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := os.Getenv("PORT")
		if port == "" {
			port = "9002"
		}
		base := fmt.Sprintf("http://localhost:%s", port)

		client := &http.Client{Timeout: 10 * time.Second}
		failed := 0
		for _, c := range checks {
			if err := runCheck(client, base, c); err != nil {
				fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", c.path, err)
				failed++
				continue
			}
			fmt.Printf("OK   %s\n", c.path)
		}

		if failed > 0 {
			return errors.Errorf("%d of %d checks failed", failed, len(checks))
		}
		fmt.Printf("All %d checks passed\n", len(checks))
		return nil
	},
}

func runCheck(client *http.Client, base string, c check) error {
	resp, err := client.Get(base + c.path)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errors.Wrap(err, "reading body")
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("status %d, body: %.200s", resp.StatusCode, string(body))
	}
	if !strings.Contains(string(body), c.expectedText) {
		return errors.Errorf("body does not contain %q, got: %.200s", c.expectedText, string(body))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

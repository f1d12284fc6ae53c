// learnhubctl is a small operator CLI over the learnhub HTTP API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	Token     string // Bearer access token for the /api/me endpoints
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

func main() {
	var (
		baseURL = envOr("LEARNHUB_URL", "http://localhost:8080")
		token   = envOr("LEARNHUB_TOKEN", "")
		out     = envOr("LEARNHUB_OUT", "text")
		timeout = 30 * time.Second
	)

	root := &cobra.Command{
		Use:   "learnhubctl",
		Short: "Operator CLI for the learnhub API",
	}

	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "base URL of the API (env LEARNHUB_URL)")
	root.PersistentFlags().StringVar(&token, "token", token, "Bearer access token (env LEARNHUB_TOKEN)")
	root.PersistentFlags().StringVar(&out, "out", out, "output format: json|text")

	cl := &client{HTTP: &http.Client{Timeout: timeout}}
	// flags are bound after parsing, so resolve them per run
	sync := func() {
		cl.BaseURL = baseURL
		cl.Token = token
		cl.OutFormat = out
	}

	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "Check service liveness (GET /healthz)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sync()
			status, body, err := cl.do("GET", "/healthz", nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("ping failed: status=%d body=%s", status, string(body))
			}
			if cl.OutFormat == "text" {
				fmt.Println("ok")
				return nil
			}
			cl.print(status, body)
			return nil
		},
	}

	readyCmd := &cobra.Command{
		Use:   "ready",
		Short: "Check service readiness (GET /readyz)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sync()
			status, body, err := cl.do("GET", "/readyz", nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			if status/100 != 2 {
				return fmt.Errorf("not ready: status=%d", status)
			}
			return nil
		},
	}

	// courses group
	coursesCmd := &cobra.Command{Use: "courses", Short: "Browse the published catalog"}

	var listCategory string
	var listLimit int
	coursesListCmd := &cobra.Command{
		Use:   "list",
		Short: "List published courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			sync()
			path := fmt.Sprintf("/api/courses?limit=%d", listLimit)
			if listCategory != "" {
				path += "&category=" + listCategory
			}
			status, body, err := cl.do("GET", path, nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("list failed: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	coursesListCmd.Flags().StringVar(&listCategory, "category", "", "filter by category")
	coursesListCmd.Flags().IntVar(&listLimit, "limit", 20, "page size")

	coursesGetCmd := &cobra.Command{
		Use:   "get <slug>",
		Short: "Show one course with its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sync()
			status, body, err := cl.do("GET", "/api/courses/"+args[0], nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("get failed: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}

	coursesCmd.AddCommand(coursesListCmd, coursesGetCmd)

	// me group (requires --token)
	meCmd := &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated profile (GET /api/me)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return fmt.Errorf("missing access token (flag --token or env LEARNHUB_TOKEN)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sync()
			status, body, err := cl.do("GET", "/api/me", nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("me failed: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}

	mePaymentsCmd := &cobra.Command{
		Use:   "payments",
		Short: "Show the authenticated payment history",
		RunE: func(cmd *cobra.Command, args []string) error {
			sync()
			status, body, err := cl.do("GET", "/api/me/payments", nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("payments failed: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	meCmd.AddCommand(mePaymentsCmd)

	// refresh
	var refreshToken string
	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Exchange a refresh token for a new pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			sync()
			if refreshToken == "" {
				return fmt.Errorf("--refresh-token is required")
			}
			b, _ := json.Marshal(map[string]string{"refreshToken": refreshToken})
			status, body, err := cl.do("POST", "/api/auth/refresh", b)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("refresh failed: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	refreshCmd.Flags().StringVar(&refreshToken, "refresh-token", "", "refresh token to exchange")

	root.AddCommand(pingCmd, readyCmd, coursesCmd, meCmd, refreshCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

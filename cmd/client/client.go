// Package main provides a command-line client for testing the crew API.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var (
	serverAddr string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "crew-client",
	Short: "Crew API client for testing services",
}

var crewCmd = &cobra.Command{
	Use:   "crew",
	Short: "Test the crew service",
}

var crewCreateCmd = &cobra.Command{
	Use:   "create [player_id] [leader_card_id]",
	Short: "Create a crew led by the given master",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(http.MethodPost, "/v1alpha1/crews", map[string]any{
			"player_id": args[0],
			"leader_id": args[1],
		})
	},
}

var crewGetCmd = &cobra.Command{
	Use:   "get [crew_id]",
	Short: "Fetch a crew",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(http.MethodGet, "/v1alpha1/crews/"+args[0], nil)
	},
}

var crewHireCmd = &cobra.Command{
	Use:   "hire [crew_id] [card_ids...]",
	Short: "Hire models into a crew",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		for _, cardID := range args[1:] {
			err := call(http.MethodPost, "/v1alpha1/crews/"+args[0]+"/models", map[string]any{
				"card_id": cardID,
			})
			if err != nil {
				return err
			}
		}
		return nil
	},
}

var crewMathCmd = &cobra.Command{
	Use:   "math [crew_id]",
	Short: "Show a crew's cost breakdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(http.MethodGet, "/v1alpha1/crews/"+args[0]+"/math", nil)
	},
}

var crewSuggestCmd = &cobra.Command{
	Use:   "suggest [crew_id]",
	Short: "Auto-fill a crew's roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(http.MethodPost, "/v1alpha1/crews/"+args[0]+"/suggest", nil)
	},
}

var crewCounterCmd = &cobra.Command{
	Use:   "counter [crew_id]",
	Short: "Generate an opposing crew",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, err := cmd.Flags().GetString("difficulty")
		if err != nil {
			return err
		}
		body := map[string]any{}
		if difficulty != "" {
			body["difficulty"] = difficulty
		}
		return call(http.MethodPost, "/v1alpha1/crews/"+args[0]+"/counter", body)
	},
}

// call issues one request against the server and pretty prints the response.
func call(method, path string, body any) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, "http://"+serverAddr+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Failed to close response body: %v", err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if len(data) == 0 {
		fmt.Println(resp.Status)
		return nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		fmt.Println(string(data))
		return nil
	}
	fmt.Println(pretty.String())
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:8080", "server address")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	crewCounterCmd.Flags().String("difficulty", "", "counter difficulty: well_matched, challenging, or strongest")

	crewCmd.AddCommand(crewCreateCmd, crewGetCmd, crewHireCmd, crewMathCmd, crewSuggestCmd, crewCounterCmd)
	rootCmd.AddCommand(crewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

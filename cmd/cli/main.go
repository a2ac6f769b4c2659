package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledger-cli",
		Short: "Ledger CLI tool",
		Long:  `A command line interface for interacting with the ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		Run: func(cmd *cobra.Command, args []string) {
			checkHealth()
		},
	}

	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		Run: func(cmd *cobra.Command, args []string) {
			checkConsistency()
		},
	}

	balanceCmd := &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show an account balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showBalance(args[0])
		},
	}

	ledgerCmd.AddCommand(consistencyCmd)
	rootCmd.AddCommand(healthCmd, ledgerCmd, balanceCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func get(path string) (int, []byte) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	return resp.StatusCode, body
}

func checkHealth() {
	status, body := get("/ready")
	if status != http.StatusOK {
		fmt.Printf("Service NOT ready (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}
	fmt.Println("Service is ready")
}

func checkConsistency() {
	status, body := get("/api/v1/ledger/consistency")
	if status != http.StatusOK {
		fmt.Printf("Consistency check FAILED (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var result struct {
		Consistent bool   `json:"consistent"`
		Detail     string `json:"detail,omitempty"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if !result.Consistent {
		fmt.Printf("Consistency check FAILED\nDetail: %s\n", result.Detail)
		os.Exit(1)
	}

	fmt.Println("Consistency check PASSED")
}

func showBalance(accountID string) {
	status, body := get("/api/v1/accounts/" + accountID + "/balance")
	if status != http.StatusOK {
		fmt.Printf("Failed to fetch balance (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var result struct {
		AccountID   string `json:"account_id"`
		AccountName string `json:"account_name"`
		Balance     string `json:"balance"`
		Currency    string `json:"currency"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%s): %s %s\n", result.AccountName, result.AccountID, result.Balance, result.Currency)
}

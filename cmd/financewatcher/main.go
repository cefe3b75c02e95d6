package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AndreiNanescu/FinanceWatcher/internal/chat"
	"github.com/AndreiNanescu/FinanceWatcher/internal/config"
	"github.com/AndreiNanescu/FinanceWatcher/internal/format"
	"github.com/AndreiNanescu/FinanceWatcher/internal/ui"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "financewatcher",
	Short: "Terminal chat for the FinanceWatcher backend",
	Long: `Interactive market-news chat in the terminal.

Ask questions about the markets; answers stream in character by
character and are rendered with sections, numbered lists, inline
links and a trailing reference list.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Send one question and print the formatted answer",
	Long: `Sends a single question to the backend and prints the parsed
answer to stdout without the interactive reveal.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(askCmd)

	rootCmd.PersistentFlags().StringP("backend", "b", "", "Backend base URL")
	rootCmd.PersistentFlags().IntP("interval", "i", 0, "Reveal tick interval in milliseconds")

	viper.BindPFlag("backend_url", rootCmd.PersistentFlags().Lookup("backend"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

// applyFlags copies explicit flag values over the loaded config
func applyFlags(cmd *cobra.Command) {
	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		config.SetBackendURL(backend)
	}
	if interval, _ := cmd.Flags().GetInt("interval"); interval > 0 {
		config.SetRevealInterval(interval)
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	applyFlags(cmd)
	client := chat.NewClient(config.GetBackendURL())
	return ui.Run(client)
}

func runAsk(cmd *cobra.Command, args []string) error {
	applyFlags(cmd)
	client := chat.NewClient(config.GetBackendURL())

	ctx, cancel := context.WithTimeout(context.Background(), config.GetRequestTimeout())
	defer cancel()

	reply, err := client.Send(ctx, strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("chat request failed: %w", err)
	}

	ui.RefreshStyles()
	fmt.Println(ui.RenderTree(format.Format(reply), 0))
	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/yourusername/mdload/internal/app"
	"github.com/yourusername/mdload/internal/domain"
	"github.com/yourusername/mdload/internal/infrastructure"
	"github.com/yourusername/mdload/pkg/logger"
)

const legalNotice = `NOTICE: you declare that you have the right to download the content at this
URL. Do not use this tool to bypass DRM, paywalls, or download protected
content without authorization.`

var (
	flagConfig      string
	flagOutDir      string
	flagYes         bool
	flagVerbose     bool
	flagCookies     string
	flagUsername    string
	flagPassword    string
	flagHeaders     string
	flagConcurrency int

	rootCmd = &cobra.Command{
		Use:   "mdload [url]",
		Short: "Download media from a URL: video as MP4, audio as MP3",
		Long: `mdload resolves a URL (single item or playlist) into downloadable entries,
detects whether each entry is video or audio, and downloads it through
yt-dlp as MP4 (video) or MP3 at 192 kbps (audio).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Config file path")
	rootCmd.Flags().StringVarP(&flagOutDir, "outdir", "o", "downloads", "Output directory")
	rootCmd.Flags().BoolVar(&flagYes, "yes", false, "Assume you have permission (skip the prompt)")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Verbose output (show downloader progress and logs)")
	rootCmd.Flags().StringVar(&flagCookies, "cookies", "", "Cookie file (Netscape cookies.txt) for authentication")
	rootCmd.Flags().StringVar(&flagUsername, "username", "", "Username for authentication (where applicable)")
	rootCmd.Flags().StringVar(&flagPassword, "password", "", "Password for authentication (where applicable)")
	rootCmd.Flags().StringVar(&flagHeaders, "headers", "", `Extra HTTP headers as a JSON object (e.g. '{"Authorization":"Bearer ..."}')`)
	rootCmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "Parallel downloads (0 = config value, default sequential)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	config, err := app.LoadConfig(flagConfig)
	if err != nil {
		return err
	}

	outDir := flagOutDir
	if !cmd.Flags().Changed("outdir") && config.Output.Dir != "" {
		outDir = config.Output.Dir
	}
	concurrency := flagConcurrency
	if concurrency < 1 {
		concurrency = config.Batch.Concurrency
	}

	req, err := buildRequest(args[0], outDir, concurrency)
	if err != nil {
		return err
	}

	fmt.Println(legalNotice)
	if !flagYes {
		ok, err := confirmConsent()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("operation cancelled")
		}
	}

	if req.CookieFile != "" {
		fmt.Printf("Using cookies from: %s\n", req.CookieFile)
	}
	if req.Username != "" {
		fmt.Println("Using username/password authentication (password will not be shown).")
	}

	if err := os.MkdirAll(req.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	logConfig := logger.Config{
		Level:      config.Logging.Level,
		Format:     config.Logging.Format,
		OutputPath: config.Logging.OutputPath,
	}
	if flagVerbose {
		logConfig.Level = "debug"
	}
	log, err := logger.New(logConfig)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := infrastructure.NewYTDLPClient(config.Downloader.Binary, log)
	orchestrator := app.NewBatchOrchestrator(req, client, log)

	report, err := orchestrator.Run(ctx)
	if err != nil {
		return err
	}

	notifier := infrastructure.NewNotificationService(&config.Notification, log)
	notifier.NotifyBatchFinished(report.Succeeded(), report.Failed())

	fmt.Printf("\nDone: %d succeeded, %d failed (%d entries)\n",
		report.Succeeded(), report.Failed(), len(report.Outcomes))

	if len(report.Outcomes) > 0 && report.Succeeded() == 0 {
		return fmt.Errorf("all %d entries failed", len(report.Outcomes))
	}
	return nil
}

// buildRequest validates the pre-core inputs and assembles the immutable
// request for the run. Malformed headers and a missing cookie file abort
// here, before any resolution happens.
func buildRequest(url, outDir string, concurrency int) (*domain.MediaRequest, error) {
	headers, err := domain.ParseHeaders(flagHeaders)
	if err != nil {
		return nil, err
	}

	if flagCookies != "" {
		if info, err := os.Stat(flagCookies); err != nil || info.IsDir() {
			return nil, fmt.Errorf("cookie file not found: %s", flagCookies)
		}
	}

	absDir, err := filepath.Abs(outDir)
	if err != nil {
		return nil, fmt.Errorf("invalid output directory: %w", err)
	}

	req := domain.NewMediaRequest(url, absDir)
	req.Verbose = flagVerbose
	req.CookieFile = flagCookies
	req.Username = flagUsername
	req.Password = flagPassword
	req.Headers = headers
	if concurrency > 0 {
		req.Concurrency = concurrency
	}
	return req, nil
}

func confirmConsent() (bool, error) {
	confirm := survey.Confirm{
		Message: "Do you want to continue?",
		Default: false,
	}
	var response bool
	if err := survey.AskOne(&confirm, &response); err != nil {
		return false, err
	}
	return response, nil
}

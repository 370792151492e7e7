package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	steam "github.com/zergu1ar/steamticket"
	"github.com/zergu1ar/steamticket/internal/logger"
	"github.com/zergu1ar/steamticket/internal/prompt"
)

const failureHint = "Make sure you have the Steam client running and logged in. Check also that the account owns the game"

type options struct {
	appID        string
	output       string
	yes          bool
	noConfig     bool
	timeout      time.Duration
	pollInterval time.Duration
	lib          string
	lookup       bool
	lenientInit  bool
	noWait       bool
	debug        bool
	logFile      string
	logFormat    string
	quiet        bool
	envFile      string
}

type sdkFactory func(lib string) (steam.SDK, error)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, func(lib string) (steam.SDK, error) {
		return steam.NewSteamworks(lib)
	}))
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := pflag.NewFlagSet("steam-ticket", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.appID, "app-id", "a", "", "Steam app id (env STEAM_APP_ID, asked when empty)")
	fs.StringVarP(&opts.output, "output", "o", "", "user config path (env STEAM_TICKET_OUTPUT, default "+steam.DefaultConfigFile+")")
	fs.BoolVarP(&opts.yes, "yes", "y", false, "write the user config without asking")
	fs.BoolVar(&opts.noConfig, "no-config", false, "never write the user config")
	fs.DurationVar(&opts.timeout, "timeout", time.Minute, "how long to wait for the ticket, 0 waits forever")
	fs.DurationVar(&opts.pollInterval, "poll-interval", steam.DefaultPollInterval, "delay between callback polls")
	fs.StringVar(&opts.lib, "lib", "", "path to the steam api library (env STEAM_API_LIBRARY)")
	fs.BoolVar(&opts.lookup, "lookup", false, "show the app name from the store page before requesting a ticket")
	fs.BoolVar(&opts.lenientInit, "lenient-init", false, "accept unknown steam api init results")
	fs.BoolVar(&opts.noWait, "no-wait", false, "exit without waiting for Enter and return 1 on failure")
	fs.BoolVarP(&opts.debug, "debug", "d", false, "debug logging")
	fs.StringVar(&opts.logFile, "log-file", "", "also write logs to this file")
	fs.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "no log output on stderr")
	fs.StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch opts.logFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", opts.logFormat)
	}

	if err := godotenv.Load(opts.envFile); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if opts.appID == "" {
		opts.appID = os.Getenv("STEAM_APP_ID")
	}
	if opts.lib == "" {
		opts.lib = os.Getenv("STEAM_API_LIBRARY")
	}
	if opts.output == "" {
		opts.output = os.Getenv("STEAM_TICKET_OUTPUT")
	}
	if opts.output == "" {
		opts.output = steam.DefaultConfigFile
	}

	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, newSDK sdkFactory) int {
	opts, err := parseOptions(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logOpts := []logger.Option{logger.WithFormat(opts.logFormat)}
	if opts.quiet {
		logOpts = append(logOpts, logger.WithQuiet())
	}
	if opts.debug {
		logOpts = append(logOpts, logger.WithDebug())
	}
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		defer f.Close()
		logOpts = append(logOpts, logger.WithWriter(f))
	}
	log := logger.New(logOpts...)

	p := prompt.New(stdin, stdout)

	failed := generate(opts, p, stdout, stderr, log, newSDK) != nil

	if !opts.noWait {
		if err := p.WaitEnter("Press Enter to exit..."); err != nil {
			log.Warn("read stdin", "err", err)
		}
	}

	if failed && opts.noWait {
		return 1
	}
	return 0
}

func generate(opts *options, p *prompt.Prompter, stdout, stderr io.Writer, log *slog.Logger, newSDK sdkFactory) (err error) {
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "Error while generating ticket: %v\n", err)
			fmt.Fprintln(stderr, failureHint)
		}
	}()

	appID, err := resolveAppID(opts, p)
	if err != nil {
		return err
	}

	sdk, err := newSDK(opts.lib)
	if err != nil {
		return err
	}

	clientOpts := []steam.Option{
		steam.WithLogger(log),
		steam.WithPollInterval(opts.pollInterval),
	}
	if opts.lenientInit {
		clientOpts = append(clientOpts, steam.WithLenientInit())
	}
	client, err := steam.NewClient(sdk, clientOpts...)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if opts.lookup {
		lookupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		name, err := client.GetAppName(lookupCtx, appID)
		cancel()
		if err != nil {
			log.Warn("app lookup failed", "app_id", appID, "err", err)
		} else {
			fmt.Fprintf(stdout, "App: %s\n", name)
		}
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	ticket, err := client.RequestEncryptedAppTicket(ctx, appID)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Steam ID: %s\n", ticket.SteamID.ToString())
	fmt.Fprintf(stdout, "Encrypted App Ticket: %s\n", ticket.Encoded())

	writeConfig(opts, p, stdout, stderr, log, ticket)
	return nil
}

func resolveAppID(opts *options, p *prompt.Prompter) (steam.AppID, error) {
	if opts.appID != "" {
		return steam.ParseAppID(opts.appID)
	}

	raw, err := p.Input("Enter the App ID", func(s string) error {
		_, err := steam.ParseAppID(s)
		return err
	})
	if err != nil {
		return 0, err
	}
	return steam.ParseAppID(raw)
}

// writeConfig failures are reported but do not fail the run.
func writeConfig(opts *options, p *prompt.Prompter, stdout, stderr io.Writer, log *slog.Logger, ticket *steam.Ticket) {
	if opts.noConfig {
		return
	}

	name := filepath.Base(opts.output)
	if !opts.yes {
		ok, err := p.Confirm(fmt.Sprintf("Do you want to create %s file?", name), true)
		if err != nil {
			log.Warn("read confirmation", "err", err)
			return
		}
		if !ok {
			return
		}
	}

	if err := steam.WriteUserConfig(opts.output, steam.NewUserConfig(ticket)); err != nil {
		fmt.Fprintf(stderr, "Failed to create %s: %v\n", name, err)
		return
	}
	log.Info("user config written", "path", opts.output)
	fmt.Fprintf(stdout, "%s created successfully.\n", name)
}

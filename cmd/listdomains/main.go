package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/listdomains/internal/accounts"
	"github.com/listdomains/internal/config"
	"github.com/listdomains/internal/panel"
	"github.com/listdomains/internal/report"
	"github.com/listdomains/internal/utils"
	"github.com/sirupsen/logrus"
)

const version = "1.0.2"

func main() {
	args := os.Args[1:]

	// Help and version need no environment or panel access
	if len(args) == 0 {
		showUsage()
		return
	}

	var spec accounts.TargetSpec
	watchSignals := false

	switch args[0] {
	case "-h", "--help":
		showUsage()
		return
	case "-v", "--version":
		showVersion()
		return
	case "-d":
		spec = accounts.TargetSpec{Mode: accounts.ModeOwner, Arg: requireArg(args, "-d")}
	case "-U":
		spec = accounts.TargetSpec{Mode: accounts.ModeList, Arg: requireArg(args, "-U")}
	case "-F":
		spec = accounts.TargetSpec{Mode: accounts.ModeFile, Arg: requireArg(args, "-F")}
	case "-a", "--all":
		spec = accounts.TargetSpec{Mode: accounts.ModeAll}
		watchSignals = true
	default:
		// Anything else is an account name; the resolver rejects tokens
		// that look like options.
		spec = accounts.TargetSpec{Mode: accounts.ModeSingle, Arg: args[0]}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		logrus.Errorf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	utils.SetupLogger(cfg.App.LogLevel)
	runLog := utils.NewRunLogger()

	// Initialize the panel backend
	backend, err := panel.NewBackend(cfg.Panel.Backend, &panel.BackendConfig{
		APIURL:      cfg.Panel.APIURL,
		APIUser:     cfg.Panel.APIUser,
		APIToken:    cfg.Panel.APIToken,
		APITimeout:  cfg.Panel.APITimeout,
		InsecureTLS: cfg.Panel.InsecureTLS,
		UAPIBin:     cfg.Panel.UAPIBin,
		WHMAPIBin:   cfg.Panel.WHMAPIBin,
		UsersDir:    cfg.Panel.UsersDir,
	})
	if err != nil {
		logrus.Errorf("Failed to initialize panel backend %q: %v", cfg.Panel.Backend, err)
		os.Exit(1)
	}
	runLog.Debugf("Using %s panel backend", backend.GetName())

	// A fleet-wide run can take a while; let an interrupt stop the
	// iteration cleanly between accounts. Bounded modes run to completion.
	ctx := context.Background()
	if watchSignals {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	resolver := accounts.NewResolver(backend, backend)
	targets, err := resolver.Resolve(ctx, spec)
	if err != nil {
		logrus.Errorf("Failed to resolve target accounts: %v", err)
		os.Exit(1)
	}
	runLog.Debugf("Resolved %d target accounts", len(targets))

	reporter := report.NewReporter(backend, os.Stdout)
	start := time.Now()
	rendered, err := reporter.Run(ctx, targets)
	if err != nil {
		// Rows already rendered are complete; just say why we stopped.
		fmt.Fprintln(os.Stderr, "Domain listing interrupted.")
		os.Exit(1)
	}
	runLog.Debugf("Report completed in %v: rendered %d of %d accounts", time.Since(start), rendered, len(targets))

	if rendered == 0 {
		fmt.Println("No domain data to display.")
	}
}

// requireArg returns the value following a flag, or exits with a usage error
func requireArg(args []string, flag string) string {
	if len(args) < 2 || args[1] == "" {
		logrus.Errorf("Missing argument for %s. Use 'listdomains --help' for usage information.", flag)
		os.Exit(1)
	}
	return args[1]
}

// showUsage displays usage information
func showUsage() {
	fmt.Printf(`
listdomains - per-account domain inventory for cPanel & WHM hosts

Usage:
  listdomains [option] [account]

Options:
  <account>       Report domains for a single account
  -d <domain>     Report the account that owns <domain>
  -U <a,b,c>      Report a comma-separated list of accounts
  -F <path>       Report accounts listed in a file, one per line
  -a, --all       Report every account on the host
  -h, --help      Show this help message
  -v, --version   Show version information

Environment Variables:
  PANEL_BACKEND (cli or api)
  WHM_API_URL, WHM_API_USER, WHM_API_TOKEN, WHM_API_TIMEOUT, WHM_API_INSECURE_TLS
  CP_UAPI_BIN, CP_WHMAPI_BIN, CP_USERS_DIR
  LOG_LEVEL

Examples:
  listdomains alice
  listdomains -U alice,bob
  listdomains -d example.com
  listdomains --all
`)
}

// showVersion displays version information
func showVersion() {
	fmt.Printf("listdomains %s\n", version)
	fmt.Println("Domain inventory reporter for cPanel & WHM hosts.")
}

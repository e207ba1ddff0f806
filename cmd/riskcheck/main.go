package main

import (
	"log"
	"os"

	"github.com/foundershield/foundershield/config"
	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/internal/database"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/repository"
	"github.com/foundershield/foundershield/internal/riskcheck"
	"github.com/foundershield/foundershield/services"
	"github.com/foundershield/foundershield/services/dnscheck"
	"github.com/foundershield/foundershield/services/intel"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "riskcheck",
		Usage: "score urls, domains and emails against threat intelligence",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Usage: "CSV file of url,domain,email rows",
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: "single URL to check",
			},
			&cli.StringFlag{
				Name:  "domain",
				Usage: "single domain to check",
			},
			&cli.StringFlag{
				Name:  "email",
				Usage: "single email address to check",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "write the JSON report to this file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "csv",
				Usage: "also write a CSV report to this file",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.InitConfig()
	if err != nil {
		return errors.Wrap(err, "config initialization failed")
	}

	appLogger := logger.NewAppLogger(cfg.Logger)
	appLogger.InitLogger()

	applyStoredKeys(cfg, appLogger)

	inputs, err := gatherInputs(c)
	if err != nil {
		return err
	}

	dnsChecker := dnscheck.NewDNSCheckService(appLogger, cfg.DNSConfig)
	providers := intel.Providers(appLogger, cfg.IntelConfig, dnsChecker)
	runner := riskcheck.NewRunner(appLogger, providers)

	report := runner.Run(c.Context, inputs)

	if err := riskcheck.WriteJSON(report, c.String("out")); err != nil {
		return err
	}
	if csvPath := c.String("csv"); csvPath != "" {
		if err := riskcheck.WriteCSV(report, csvPath); err != nil {
			return err
		}
	}
	return nil
}

// applyStoredKeys picks up API keys saved through the dashboard when the
// environment leaves them unset. No dashboard database means env only; the
// file is never created from here.
func applyStoredKeys(cfg *config.Config, log logger.Logger) {
	if _, err := os.Stat(cfg.DatabaseConfig.DBPath); err != nil {
		return
	}

	db, err := database.NewConnection(&database.DatabaseConfig{
		DBPath:        cfg.DatabaseConfig.DBPath,
		BusyTimeoutMs: cfg.DatabaseConfig.BusyTimeoutMs,
		LogLevel:      cfg.DatabaseConfig.LogLevel,
	})
	if err != nil {
		log.Warnf("Dashboard database unavailable: %v", err)
		return
	}

	repos := repository.InitRepositories(db)
	services.ApplyStoredProviderKeys(log, cfg, repos.ProviderConfigRepository)
}

func gatherInputs(c *cli.Context) ([]dto.AnalysisInput, error) {
	if path := c.String("input"); path != "" {
		return riskcheck.ReadInputCSV(path)
	}

	single := dto.AnalysisInput{
		URL:    c.String("url"),
		Domain: c.String("domain"),
		Email:  c.String("email"),
	}
	if single.URL == "" && single.Domain == "" && single.Email == "" {
		return nil, errors.New("provide --input or one of --url/--domain/--email")
	}
	return []dto.AnalysisInput{single}, nil
}

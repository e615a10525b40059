package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cleanbite/config"
	"cleanbite/internal/domain/presentation"
	"cleanbite/internal/domain/service"
	"cleanbite/internal/infra/dataset"
	"cleanbite/internal/infra/qrcode"
	"cleanbite/internal/usecase"
	"cleanbite/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const defaultSource = "data/restaurants.json"

// options are the persistent flags shared by every subcommand
type options struct {
	source  string
	key     string
	seed    uint64
	asJSON  bool
	verbose bool
}

// app is built once per invocation, after flags are parsed
type app struct {
	establishments usecase.EstablishmentUsecase
	share          service.QRCodeService
	out            io.Writer
	asJSON         bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "cleanbitectl",
		Short: "Query food hygiene inspection data offline",
		Long: `cleanbitectl loads the inspection dataset the server uses and answers
the same questions from the command line: search, list, detail and share codes.

The dataset location comes from --source, then DATASET_SOURCE / config.yaml,
then ` + defaultSource + `.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.source, "source", "", "dataset path, http(s) URL or bucket URL")
	flags.StringVar(&opts.key, "key", "", "object key when --source is a bucket")
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for rating summaries (0 picks at random)")
	flags.BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log dataset loading")

	rootCmd.AddCommand(
		newSearchCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newTypesCmd(a),
		newQRCmd(a),
	)

	return rootCmd
}

// init resolves the dataset and builds the establishment usecase over it
func (a *app) init(cmd *cobra.Command, opts *options) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg := resolveConfig(opts)

	store := dataset.NewStoreFromSource(dataset.NewSource(cfg.Dataset.Source, cfg.Dataset.Key), logger)
	if err := store.Load(a.context(cmd)); err != nil {
		return errors.Wrapf(err, "failed to load %s", cfg.Dataset.Source)
	}

	share, err := qrcode.NewQRCodeService(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to configure share codes")
	}

	a.establishments = impl.NewEstablishmentService(impl.EstablishmentServiceParams{
		Repo:      store,
		QRCode:    share,
		Formatter: presentation.NewFormatter(presentation.NewRandPicker(opts.seed)),
		Config:    cfg,
		Logger:    logger,
	})
	a.share = share
	a.out = cmd.OutOrStdout()
	a.asJSON = opts.asJSON

	return nil
}

// resolveConfig prefers flags, then the server configuration, then defaults
func resolveConfig(opts *options) *config.Config {
	cfg, err := config.New()
	if err != nil {
		cfg = &config.Config{}
	}
	if cfg.Dataset == nil {
		cfg.Dataset = &config.DatasetConfig{}
	}
	if cfg.Map == nil {
		cfg.Map = &config.MapConfig{}
	}

	if opts.source != "" {
		cfg.Dataset.Source = opts.source
		cfg.Dataset.Key = opts.key
	}
	if cfg.Dataset.Source == "" {
		cfg.Dataset.Source = defaultSource
	}

	return cfg
}

func (a *app) context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"dealer-contracts/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

type migrateFlags struct {
	dir       string
	atlasBin  string
	dryRun    bool
	timeout   time.Duration
	baseline  string
	revisions string
}

func newMigrateCmd() *cobra.Command {
	f := &migrateFlags{}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations with Atlas",
	}
	cmd.PersistentFlags().StringVar(&f.dir, "dir", "migrations", "migration directory")
	cmd.PersistentFlags().StringVar(&f.atlasBin, "atlas", "atlas", "atlas binary")
	cmd.PersistentFlags().DurationVar(&f.timeout, "timeout", 2*time.Minute, "overall timeout")

	apply := &cobra.Command{
		Use:   "apply",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrateApply(cmd, f)
		},
	}
	apply.Flags().BoolVar(&f.dryRun, "dry-run", false, "print pending statements without executing them")
	apply.Flags().StringVar(&f.baseline, "baseline", "", "baseline version for a database that already has the schema")
	apply.Flags().StringVar(&f.revisions, "revisions-schema", "", "schema holding the atlas revisions table")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the current migration status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrateStatus(cmd, f)
		},
	}

	cmd.AddCommand(apply, status)
	return cmd
}

func atlasTarget(f *migrateFlags) (*atlasexec.Client, string, string, error) {
	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		return nil, "", "", fmt.Errorf("failed to process db config: %w", err)
	}
	dir, err := filepath.Abs(f.dir)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to resolve migration dir: %w", err)
	}
	client, err := atlasexec.NewClient("", f.atlasBin)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to initialize atlas client: %w", err)
	}
	return client, "file://" + dir, dbCfg.BuildDSN(), nil
}

func runMigrateApply(cmd *cobra.Command, f *migrateFlags) error {
	client, dirURL, dsn, err := atlasTarget(f)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), f.timeout)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:             dsn,
		DirURL:          dirURL,
		DryRun:          f.dryRun,
		BaselineVersion: f.baseline,
		RevisionsSchema: f.revisions,
	})
	if err != nil {
		return fmt.Errorf("migrate apply: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s), %s -> %s\n", len(res.Applied), versionOrNone(res.Current), versionOrNone(res.Target))
	return nil
}

func runMigrateStatus(cmd *cobra.Command, f *migrateFlags) error {
	client, dirURL, dsn, err := atlasTarget(f)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), f.timeout)
	defer cancel()

	res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
		URL:    dsn,
		DirURL: dirURL,
	})
	if err != nil {
		return fmt.Errorf("migrate status: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "status: %s, current: %s, next: %s, pending: %d\n",
		res.Status, versionOrNone(res.Current), versionOrNone(res.Next), len(res.Pending))
	return nil
}

func versionOrNone(v string) string {
	if v == "" {
		return "none"
	}
	return v
}

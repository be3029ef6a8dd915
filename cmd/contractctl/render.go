package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"dealer-contracts/cmd/bootstrap/components"
	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/infra/pdf"
	"dealer-contracts/internal/pkg/config"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

const (
	formatPDF  = "pdf"
	formatText = "text"
	formatHTML = "html"
)

// renderInput is the file format read by the render command. Field names
// follow the stored session snapshot.
type renderInput struct {
	Vehicle contract.VehicleSnapshot `json:"vehicle"`
	Options contract.Options         `json:"options"`
}

type renderFlags struct {
	input         string
	output        string
	format        string
	signatureLink string
	date          string
}

func newRenderCmd() *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a contract from a vehicle and options file without touching the database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "JSON file with vehicle and options")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&f.format, "format", formatPDF, "pdf, text or html")
	cmd.Flags().StringVar(&f.signatureLink, "signature-link", "", "include the signing block with this link")
	cmd.Flags().StringVar(&f.date, "date", "", "contract date as YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runRender(cmd *cobra.Command, f *renderFlags) error {
	raw, err := os.ReadFile(f.input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	var in renderInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}

	var cfg config.Config
	if err := envconfig.Process("", &cfg.Company); err != nil {
		return fmt.Errorf("failed to process company config: %w", err)
	}
	if err := envconfig.Process("", &cfg.PDF); err != nil {
		return fmt.Errorf("failed to process pdf config: %w", err)
	}

	now := time.Now()
	if f.date != "" {
		if now, err = time.ParseInLocation(time.DateOnly, f.date, time.Local); err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	}

	pricing, err := contract.NewDefaultPriceCalculator().Compute(in.Vehicle, in.Options)
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	generated, err := contract.RenderContract(contract.RenderInput{
		Vehicle:              in.Vehicle,
		Options:              in.Options,
		Pricing:              pricing,
		Company:              components.NewCompanyProfile(cfg),
		Now:                  now,
		IncludeSignatureLink: f.signatureLink != "",
		SignatureLink:        f.signatureLink,
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	var out []byte
	switch f.format {
	case formatText:
		out = []byte(generated.Text)
	case formatHTML:
		out = []byte(generated.HTML)
	case formatPDF:
		out, err = pdf.NewMaterializer(cfg.PDF).Materialize(cmd.Context(), generated.Document)
		if err != nil {
			return fmt.Errorf("materialize: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", f.format)
	}

	if f.output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(f.output, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s, contract %s)\n", f.output, f.format, generated.Number)
	return nil
}

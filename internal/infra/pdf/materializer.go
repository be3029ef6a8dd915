package pdf

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/pkg/config"
	"dealer-contracts/internal/pkg/errs"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	mconfig "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/sync/semaphore"
)

var (
	ErrEmptyDocument = errs.New("document has no sections")
	ErrInvalidOutput = errs.New("generated pdf failed validation")
)

var disablePdfcpuConfig sync.Once

// Materializer lays a contract document out as an A4 PDF. Generation is CPU
// bound, so concurrent calls are capped by a weighted semaphore.
type Materializer struct {
	sem      *semaphore.Weighted
	validate bool
}

func NewMaterializer(cfg config.PDFConfig) *Materializer {
	n := cfg.MaxConcurrency
	if n <= 0 {
		n = 1
	}
	disablePdfcpuConfig.Do(func() {
		// pdfcpu would otherwise create a config dir under the user's home.
		model.ConfigPath = "disable"
	})
	return &Materializer{
		sem:      semaphore.NewWeighted(n),
		validate: cfg.Validate,
	}
}

// Materialize returns the PDF bytes or an error marked errs.ErrRender. It
// never returns partial output.
func (m *Materializer) Materialize(ctx context.Context, doc *contract.Document) ([]byte, error) {
	if doc == nil || len(doc.Sections) == 0 {
		return nil, errs.Mark(ErrEmptyDocument, errs.ErrRender)
	}

	if err := m.sem.Acquire(ctx, 1); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "waiting for pdf worker"), errs.ErrRender)
	}
	defer m.sem.Release(1)

	out, err := generate(doc)
	if err != nil {
		slog.Error("PDF generation failed", "contract_number", doc.Number, "error", err.Error())
		return nil, errs.Mark(err, errs.ErrRender)
	}

	if m.validate {
		if err := api.Validate(bytes.NewReader(out), model.NewDefaultConfiguration()); err != nil {
			slog.Error("PDF validation failed", "contract_number", doc.Number, "error", err.Error())
			return nil, errs.Mark(errs.Mark(err, ErrInvalidOutput), errs.ErrRender)
		}
	}

	return out, nil
}

func generate(doc *contract.Document) (out []byte, err error) {
	// gofpdf panics on some malformed inputs such as corrupt images.
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = errs.Newf("pdf layout panicked: %v", r)
		}
	}()

	cfg := mconfig.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithTitle(doc.Title+" "+doc.Number, true).
		WithAuthor(doc.Company.TradeName, true).
		WithCreationDate(doc.GeneratedAt).
		Build()

	mrt := maroto.New(cfg)
	mrt.AddRows(headerRows(doc)...)
	for _, s := range doc.Sections {
		mrt.AddRows(sectionRows(s)...)
		if s.Heading == contract.HeadingSignatures && doc.Signature != nil && len(doc.Signature.Image) > 0 {
			mrt.AddRow(30, image.NewFromBytesCol(6, doc.Signature.Image, extension.Png, props.Rect{Percent: 90}))
		}
	}

	generated, err := mrt.Generate()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate pdf")
	}
	return generated.GetBytes(), nil
}

var (
	titleStyle   = props.Text{Size: 15, Style: fontstyle.Bold, Align: align.Center}
	companyStyle = props.Text{Size: 8, Align: align.Right}
	headingStyle = props.Text{Size: 11, Style: fontstyle.Bold, Top: 3}
	labelStyle   = props.Text{Size: 9, Style: fontstyle.Bold}
	valueStyle   = props.Text{Size: 9}
)

func headerRows(doc *contract.Document) []core.Row {
	c := doc.Company
	rows := []core.Row{
		text.NewRow(6, c.TradeName, props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}),
	}
	for _, l := range companyLines(c) {
		rows = append(rows, text.NewRow(4, l, companyStyle))
	}
	rows = append(rows,
		line.NewRow(4),
		text.NewRow(10, doc.Title, titleStyle),
		text.NewRow(5, "Contractnummer: "+doc.Number, props.Text{Size: 9, Align: align.Center}),
		text.NewRow(5, "Datum: "+contract.FormatDate(doc.GeneratedAt), props.Text{Size: 9, Align: align.Center}),
	)
	return rows
}

func companyLines(c contract.CompanyProfile) []string {
	var lines []string
	if !c.Address.IsZero() {
		lines = append(lines, c.Address.String())
	}
	add := func(label, v string) {
		if v != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", label, v))
		}
	}
	add("BTW-nummer", c.VATID)
	add("IBAN", c.IBAN)
	add("KvK", c.KvKNumber)
	add("Tel", c.Phone)
	add("E-mail", c.Email)
	return lines
}

func sectionRows(s contract.Section) []core.Row {
	rows := []core.Row{text.NewRow(8, s.Heading, headingStyle)}
	for _, f := range s.Fields {
		rows = append(rows, autoRow(
			text.NewCol(4, f.Label, labelStyle),
			text.NewCol(8, f.Value, valueStyle),
		))
	}
	for _, p := range s.Paragraphs {
		rows = append(rows, autoRow(text.NewCol(12, p, valueStyle)))
	}
	return rows
}

// autoRow sizes the row to its wrapped content.
func autoRow(cols ...core.Col) core.Row {
	return row.New().Add(cols...)
}

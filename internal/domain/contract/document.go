package contract

import (
	"strings"
	"time"
)

// SignatureLinkPlaceholder marks where the signing link goes. Rendered
// surfaces carry it verbatim until WithSignatureLink fills it in.
const SignatureLinkPlaceholder = "{{ONDERTEKEN_LINK}}"

type CompanyProfile struct {
	TradeName string
	Address   Address
	VATID     string
	IBAN      string
	KvKNumber string
	Phone     string
	Email     string
}

type Field struct {
	Label string
	Value string
}

type Section struct {
	Heading    string
	Fields     []Field
	Paragraphs []string
}

// SignatureStamp is printed on signed copies.
type SignatureStamp struct {
	SignerName    string
	SignerEmail   string
	SignedAt      time.Time
	SourceAddress string
	Image         []byte
}

// Document is the structured contract. The text surface, the HTML surface and
// the PDF are all projections of it.
type Document struct {
	Title       string
	Number      string
	GeneratedAt time.Time
	Company     CompanyProfile
	Sections    []Section
	Signature   *SignatureStamp
}

// Section returns the section with the given heading.
func (d *Document) Section(heading string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Heading == heading {
			return s, true
		}
	}
	return Section{}, false
}

func (d *Document) withReplacedText(old, repl string) *Document {
	out := *d
	out.Sections = make([]Section, len(d.Sections))
	for i, s := range d.Sections {
		cp := Section{Heading: s.Heading}
		cp.Fields = make([]Field, len(s.Fields))
		for j, f := range s.Fields {
			cp.Fields[j] = Field{Label: f.Label, Value: strings.ReplaceAll(f.Value, old, repl)}
		}
		cp.Paragraphs = make([]string, len(s.Paragraphs))
		for j, p := range s.Paragraphs {
			cp.Paragraphs[j] = strings.ReplaceAll(p, old, repl)
		}
		out.Sections[i] = cp
	}
	return &out
}

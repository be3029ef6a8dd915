package contract

import (
	"fmt"
	"strings"
	"time"
)

const (
	HeadingSeller     = "Verkoper"
	HeadingBuyer      = "Koper"
	HeadingVehicle    = "Voertuig"
	HeadingPrice      = "Prijs en betaling"
	HeadingPackage    = "Afleverpakket"
	HeadingTradeIn    = "Inruilvoertuig"
	HeadingBPM        = "BPM"
	HeadingLiability  = "Aansprakelijkheid"
	HeadingClauses    = "Aanvullende bepalingen"
	HeadingAgreements = "Bijzondere afspraken"
	HeadingSignLink   = "Digitale ondertekening"
	HeadingSignatures = "Ondertekening"
)

const (
	vatTextMargin  = "Dit voertuig wordt verkocht onder de margeregeling. De BTW wordt niet afzonderlijk vermeld."
	vatTextBTW     = "De vermelde prijs is inclusief 21% BTW."
	vatTextUnknown = "[BTW-regime onbekend]"
)

// VATDisclosure picks the legal wording for the vehicle's VAT regime.
func VATDisclosure(t VehicleType) string {
	switch t {
	case VehicleTypeMarge:
		return vatTextMargin
	case VehicleTypeBTW:
		return vatTextBTW
	default:
		return vatTextUnknown
	}
}

type RenderInput struct {
	Vehicle VehicleSnapshot
	Options Options
	Pricing PricingBreakdown
	Company CompanyProfile
	Now     time.Time
	// IncludeSignatureLink adds the signing block with the link placeholder.
	// SignatureLink, when set, is substituted right away.
	IncludeSignatureLink bool
	SignatureLink        string
	Signature            *SignatureStamp
}

type GeneratedContract struct {
	Document *Document
	Number   string
	FileName string
	Text     string
	HTML     string
}

// WithSignatureLink fills the link placeholder in every surface.
func (g *GeneratedContract) WithSignatureLink(link string) (*GeneratedContract, error) {
	doc := g.Document.withReplacedText(SignatureLinkPlaceholder, link)
	html, err := renderHTML(doc)
	if err != nil {
		return nil, err
	}
	return &GeneratedContract{
		Document: doc,
		Number:   g.Number,
		FileName: g.FileName,
		Text:     renderText(doc),
		HTML:     html,
	}, nil
}

// RenderContract builds the document and both of its surfaces.
func RenderContract(in RenderInput) (*GeneratedContract, error) {
	if err := checkSellingPrice(in.Vehicle.SellingPrice); err != nil {
		return nil, err
	}
	if err := in.Options.Validate(); err != nil {
		return nil, err
	}

	doc := BuildDocument(in)
	html, err := renderHTML(doc)
	if err != nil {
		return nil, err
	}
	g := &GeneratedContract{
		Document: doc,
		Number:   doc.Number,
		FileName: FileName(in.Vehicle.LicensePlate, in.Now),
		Text:     renderText(doc),
		HTML:     html,
	}
	if in.IncludeSignatureLink && in.SignatureLink != "" {
		return g.WithSignatureLink(in.SignatureLink)
	}
	return g, nil
}

func BuildDocument(in RenderInput) *Document {
	opts := in.Options
	p := in.Pricing
	isB2B := opts.ContractType == ContractTypeB2B

	doc := &Document{
		Title:       "Koopovereenkomst " + strings.ToUpper(opts.ContractType.String()),
		Number:      ContractNumber(in.Vehicle.LicensePlate, in.Now),
		GeneratedAt: in.Now,
		Company:     in.Company,
		Signature:   in.Signature,
	}

	doc.Sections = append(doc.Sections, sellerSection(in.Company), buyerSection(in.Vehicle, opts), vehicleSection(in.Vehicle))
	doc.Sections = append(doc.Sections, priceSection(opts, p))

	if !isB2B && p.PackageResolved {
		doc.Sections = append(doc.Sections, Section{
			Heading: HeadingPackage,
			Fields: []Field{
				{Label: "Pakket", Value: packageName(opts)},
				{Label: "Prijs", Value: FormatEuro(p.DeliveryPackagePrice)},
			},
		})
	}
	if opts.HasTradeIn() {
		t := opts.TradeInVehicle
		doc.Sections = append(doc.Sections, Section{
			Heading: HeadingTradeIn,
			Fields: []Field{
				{Label: "Merk en model", Value: orPlaceholder(strings.TrimSpace(t.Brand + " " + t.Model))},
				{Label: "Kenteken", Value: orPlaceholder(t.LicensePlate)},
				{Label: "Kilometerstand", Value: formatKilometers(t.Mileage)},
				{Label: "Inruilprijs", Value: FormatEuro(t.TradeInPrice)},
			},
		})
	}
	if isB2B && opts.BpmIncluded {
		doc.Sections = append(doc.Sections, Section{
			Heading:    HeadingBPM,
			Paragraphs: []string{"De BPM is in de verkoopprijs inbegrepen en wordt door de verkoper voldaan."},
		})
	}
	if isB2B && opts.MaxDamageAmount > 0 {
		doc.Sections = append(doc.Sections, Section{
			Heading: HeadingLiability,
			Paragraphs: []string{fmt.Sprintf(
				"De aansprakelijkheid van de verkoper voor schade aan het voertuig is beperkt tot maximaal %s.",
				FormatEuro(opts.MaxDamageAmount),
			)},
		})
	}
	if s := strings.TrimSpace(opts.AdditionalClauses); s != "" {
		doc.Sections = append(doc.Sections, Section{Heading: HeadingClauses, Paragraphs: []string{opts.AdditionalClauses}})
	}
	if s := strings.TrimSpace(opts.SpecialAgreements); s != "" {
		doc.Sections = append(doc.Sections, Section{Heading: HeadingAgreements, Paragraphs: []string{opts.SpecialAgreements}})
	}
	if in.IncludeSignatureLink {
		doc.Sections = append(doc.Sections, Section{
			Heading:    HeadingSignLink,
			Paragraphs: []string{"Onderteken deze overeenkomst digitaal via: " + SignatureLinkPlaceholder},
		})
	}
	doc.Sections = append(doc.Sections, signatureSection(in.Signature))
	return doc
}

func sellerSection(c CompanyProfile) Section {
	s := Section{
		Heading: HeadingSeller,
		Fields: []Field{
			{Label: "Handelsnaam", Value: orPlaceholder(c.TradeName)},
			{Label: "Adres", Value: orPlaceholder(c.Address.String())},
			{Label: "BTW-nummer", Value: orPlaceholder(c.VATID)},
			{Label: "IBAN", Value: orPlaceholder(c.IBAN)},
			{Label: "KvK-nummer", Value: orPlaceholder(c.KvKNumber)},
		},
	}
	if c.Phone != "" {
		s.Fields = append(s.Fields, Field{Label: "Telefoon", Value: c.Phone})
	}
	if c.Email != "" {
		s.Fields = append(s.Fields, Field{Label: "E-mail", Value: c.Email})
	}
	return s
}

func buyerSection(v VehicleSnapshot, opts Options) Section {
	var name, email string
	var addr Address
	if v.Customer != nil {
		name, email, addr = v.Customer.Name, v.Customer.Email, v.Customer.Address
	}
	if opts.ContractAddress != nil && !opts.ContractAddress.IsZero() {
		addr = *opts.ContractAddress
	}
	return Section{
		Heading: HeadingBuyer,
		Fields: []Field{
			{Label: "Naam", Value: orPlaceholder(name)},
			{Label: "E-mail", Value: orPlaceholder(email)},
			{Label: "Adres", Value: orPlaceholder(addr.String())},
		},
	}
}

func vehicleSection(v VehicleSnapshot) Section {
	s := Section{
		Heading: HeadingVehicle,
		Fields: []Field{
			{Label: "Merk en model", Value: orPlaceholder(v.Title())},
			{Label: "Kenteken", Value: orPlaceholder(v.LicensePlate)},
			{Label: "Chassisnummer", Value: orPlaceholder(v.VIN)},
		},
	}
	if v.Color != "" {
		s.Fields = append(s.Fields, Field{Label: "Kleur", Value: v.Color})
	}
	if v.Year > 0 {
		s.Fields = append(s.Fields, Field{Label: "Bouwjaar", Value: fmt.Sprint(v.Year)})
	}
	s.Fields = append(s.Fields, Field{Label: "Kilometerstand", Value: formatKilometers(v.Mileage)})
	return s
}

func priceSection(opts Options, p PricingBreakdown) Section {
	s := Section{Heading: HeadingPrice}
	if opts.ContractType == ContractTypeB2B {
		excl := Field{Label: "Prijs excl. BTW", Value: FormatEuro(p.PriceExclVat)}
		vat := Field{Label: "BTW 21%", Value: FormatEuro(p.VatAmount)}
		incl := Field{Label: "Totaalprijs incl. BTW", Value: FormatEuro(p.FinalPrice)}
		if opts.BtwType == BtwTypeExclusive {
			s.Fields = []Field{excl, vat, incl}
		} else {
			s.Fields = []Field{incl, excl, vat}
		}
		if opts.HasTradeIn() {
			s.Fields = append(s.Fields, Field{Label: "Waarde inruil (apart verrekend)", Value: FormatEuro(p.TradeInPrice)})
		}
	} else {
		s.Fields = append(s.Fields, Field{Label: "Verkoopprijs", Value: FormatEuro(p.BasePrice)})
		if p.PackageResolved {
			s.Fields = append(s.Fields, Field{Label: "Afleverpakket", Value: FormatEuro(p.DeliveryPackagePrice)})
		}
		if opts.HasTradeIn() {
			s.Fields = append(s.Fields, Field{Label: "Inruil", Value: FormatEuro(-p.TradeInPrice)})
		}
		s.Fields = append(s.Fields, Field{Label: "Totaalprijs", Value: FormatEuro(p.FinalPrice)})
		if opts.PaymentTerms != "" {
			s.Fields = append(s.Fields, Field{
				Label: fmt.Sprintf("Aanbetaling (%d%%)", p.DownPaymentPercentage),
				Value: FormatEuro(p.DownPaymentAmount),
			})
			s.Fields = append(s.Fields, Field{Label: "Restant bij aflevering", Value: FormatEuro(p.FinalPrice - p.DownPaymentAmount)})
		}
	}
	s.Paragraphs = []string{VATDisclosure(opts.VehicleType)}
	return s
}

func packageName(opts Options) string {
	if opts.DeliveryPackage == "" || opts.DeliveryPackage == PackageNone {
		return "Afleverpakket op maat"
	}
	return opts.DeliveryPackage.Label()
}

func signatureSection(stamp *SignatureStamp) Section {
	if stamp == nil {
		return Section{
			Heading: HeadingSignatures,
			Paragraphs: []string{
				"Handtekening verkoper: ______________________",
				"Handtekening koper: ______________________",
			},
		}
	}
	fields := []Field{
		{Label: "Ondertekend door", Value: stamp.SignerName},
		{Label: "E-mail", Value: stamp.SignerEmail},
		{Label: "Datum en tijd", Value: stamp.SignedAt.Format("02-01-2006 15:04:05 MST")},
	}
	if stamp.SourceAddress != "" {
		fields = append(fields, Field{Label: "IP-adres", Value: stamp.SourceAddress})
	}
	return Section{Heading: HeadingSignatures, Fields: fields}
}

//go:build unit || e2e

package builder

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"time"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/signature"
	reqdto "dealer-contracts/internal/handler/dto/request"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	Contract  *ContractBuilder
	Now       time.Time
	Validity  time.Duration
	CreatedBy uuid.UUID
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		Contract:  NewContractBuilder(),
		Now:       time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Validity:  signature.DefaultValidity,
		CreatedBy: uuid.New(),
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) WithNow(now time.Time) *SessionBuilder {
	b.Now = now
	return b
}

func (b *SessionBuilder) BuildDomain() (*signature.Session, signature.Token, error) {
	return signature.NewSession(
		b.Now,
		b.Validity,
		b.Contract.Vehicle,
		b.Contract.Options.ContractType,
		b.Contract.Options,
		b.CreatedBy,
	)
}

func (b *SessionBuilder) BuildSigned(signedAt time.Time) (*signature.Session, error) {
	s, _, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	if err := s.Sign(signedAt, b.SignerInput()); err != nil {
		return nil, err
	}
	return s, nil
}

func (b *SessionBuilder) SignerInput() signature.SignerInput {
	return signature.SignerInput{
		Name:          "Jan de Vries",
		Email:         "jan@example.nl",
		ImagePath:     "signatures/" + uuid.NewString() + ".png",
		SourceAddress: "203.0.113.7",
	}
}

func (b *SessionBuilder) ContractType() contract.ContractType {
	return b.Contract.Options.ContractType
}

func (b *SessionBuilder) BuildCreateRequestDTO() reqdto.CreateSessionRequest {
	return reqdto.CreateSessionRequest{
		ContractType: b.ContractType().String(),
		Options:      b.Contract.BuildOptionsRequestDTO(),
	}
}

func (b *SessionBuilder) BuildSignRequestDTO() reqdto.SignRequest {
	in := b.SignerInput()
	return reqdto.SignRequest{
		SignerName:     in.Name,
		SignerEmail:    in.Email,
		SignatureImage: SignatureDataURL(),
	}
}

// SignatureDataURL returns a small PNG as the signature pad would post it.
func SignatureDataURL() string {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.Black)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

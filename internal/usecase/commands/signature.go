package commands

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"image/png"
	"log/slog"
	"strings"
	"time"

	"dealer-contracts/internal/domain/archive"
	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/domain/signature"
	"dealer-contracts/internal/infra"
	"dealer-contracts/internal/pkg/clock"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRecipientUnresolved   = errs.New("vehicle has no customer with an email address")
	ErrIdempotencyInProgress = errs.New("request with this idempotency key is in progress")
	ErrIdempotencyKeyReused  = errs.New("idempotency key was used for a different request")
	ErrInvalidSignatureImage = errs.New("signature image must be a PNG")
	ErrSignatureImageTooBig  = errs.New("signature image is too large")
	ErrSignatureUpload       = errs.New("failed to store signature image")
	ErrSessionWrite          = errs.New("failed to store signing session")
)

const (
	createSessionEndpoint = "POST /api/vehicles/:vehicleId/signature-sessions"
	idempotencyTTL        = 24 * time.Hour
	pngContentType        = "image/png"
	dataURLPrefix         = "data:image/png;base64,"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

type SignatureSettings struct {
	Validity      time.Duration
	MaxImageBytes int
	PublicBaseURL string
}

type CreateSessionRequest struct {
	VehicleID    uuid.UUID
	ContractType contract.ContractType
	Options      contract.Options
	Recipient    notification.RecipientResolution
}

type CreateSessionResult struct {
	Session *signature.Session
	// Token and SignLink are empty on replay; the raw token is never stored.
	Token    string
	SignLink string
	Replayed bool
}

type SignSessionRequest struct {
	SignerName  string
	SignerEmail string
	// SignatureImage is a data URL or base64 encoded PNG.
	SignatureImage string
	SourceAddress  string
}

type SignSessionResult struct {
	Session  *signature.Session
	Contract *archive.Record
	// ArchiveErr is set when the signature stands but the signed copy could
	// not be archived.
	ArchiveErr error
}

type SignatureCommands interface {
	CreateSession(ctx context.Context, req CreateSessionRequest, actorID uuid.UUID, idempotencyKey *uuid.UUID) (*CreateSessionResult, error)
	SignSession(ctx context.Context, rawToken string, req SignSessionRequest) (*SignSessionResult, error)
	RevokeSession(ctx context.Context, id uuid.UUID) (*signature.Session, error)
}

type signatureUseCaseImpl struct {
	uow      shared.UnitOfWork
	blobs    shared.BlobStorage
	archiver ContractCommands
	calc     contract.PriceCalculator
	company  contract.CompanyProfile
	settings SignatureSettings
	clock    clock.Clock
}

func NewSignatureUseCase(
	uow shared.UnitOfWork,
	blobs shared.BlobStorage,
	archiver ContractCommands,
	calc contract.PriceCalculator,
	company contract.CompanyProfile,
	settings SignatureSettings,
	clk clock.Clock,
) SignatureCommands {
	return &signatureUseCaseImpl{
		uow:      uow,
		blobs:    blobs,
		archiver: archiver,
		calc:     calc,
		company:  company,
		settings: settings,
		clock:    clk,
	}
}

func (uc *signatureUseCaseImpl) CreateSession(
	ctx context.Context,
	req CreateSessionRequest,
	actorID uuid.UUID,
	idempotencyKey *uuid.UUID,
) (*CreateSessionResult, error) {
	reads := uc.uow.CommandReads()
	vehicle, err := shared.LoadVehicle(ctx, reads, reads, req.VehicleID)
	if err != nil {
		return nil, err
	}

	opts := req.Options
	if req.ContractType == "" {
		req.ContractType = opts.ContractType
	}
	if opts.ContractType == "" {
		opts.ContractType = req.ContractType
	}
	if _, err := uc.calc.Compute(vehicle, opts); err != nil {
		return nil, shared.Classify(err)
	}

	recipient, err := resolveRecipient(req.Recipient, vehicle)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	session, token, err := signature.NewSession(now, uc.settings.Validity, vehicle, req.ContractType, opts, actorID)
	if err != nil {
		return nil, shared.Classify(err)
	}
	link := signature.SignLink(uc.settings.PublicBaseURL, token.Raw)

	payload, err := uc.buildNotification(ctx, session, recipient, link)
	if err != nil {
		return nil, err
	}

	requestHash := calculateRequestHash(req, opts, recipient)

	var result *CreateSessionResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		if idempotencyKey != nil {
			replay, derr := uc.claimIdempotencyKey(ctx, tx, *idempotencyKey, actorID, requestHash, now)
			if derr != nil {
				return derr
			}
			if replay != nil {
				result = replay
				return nil
			}
		}

		if derr := tx.Sessions().Create(ctx, tx.DB(), session); derr != nil {
			return errs.Mark(derr, ErrSessionWrite)
		}
		if derr := tx.Notifications().CreateJob(ctx, tx.DB(), notification.JobKindSignatureRequested, session.ID().String(), payload, now); derr != nil {
			return errs.Mark(derr, ErrSessionWrite)
		}
		if idempotencyKey != nil {
			if derr := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, actorID, session.ID()); derr != nil {
				return errs.Mark(derr, ErrSessionWrite)
			}
		}

		result = &CreateSessionResult{
			Session:  session,
			Token:    token.Raw,
			SignLink: link,
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrConflict) || errs.Is(err, errs.ErrNotFound) {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrStorage)
	}

	if result.Replayed {
		slog.Info("Signing session replayed", "session_id", result.Session.ID(), "idempotency_key", idempotencyKey.String())
	} else {
		slog.Info("Signing session created",
			"session_id", session.ID(),
			"vehicle_id", session.VehicleID(),
			"expires_at", session.ExpiresAt())
	}
	return result, nil
}

// claimIdempotencyKey returns a replay result when the key already finished,
// or nil when this request owns the key now.
func (uc *signatureUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	now time.Time,
) (*CreateSessionResult, error) {
	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, createSessionEndpoint, requestHash, now.Add(idempotencyTTL))
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, err
	}

	if !now.Before(existing.ExpiresAt) {
		claimed, err := tx.Idempotency().ClaimExpiredIdempotencyKey(ctx, tx.DB(), key, userID, requestHash, now.Add(idempotencyTTL))
		if err != nil {
			return nil, err
		}
		if claimed == 1 {
			return nil, nil
		}
	}

	if existing.RequestHash != requestHash {
		return nil, errs.Mark(ErrIdempotencyKeyReused, errs.ErrConflict)
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultID == nil {
			return nil, errs.New("completed idempotency key has no result")
		}
		s, err := tx.Reads().SessionByID(ctx, *existing.ResultID)
		if err != nil {
			return nil, shared.NotFoundOr(err, shared.ErrSessionNotFound)
		}
		return &CreateSessionResult{Session: s, Replayed: true}, nil
	default:
		return nil, errs.Mark(ErrIdempotencyInProgress, errs.ErrConflict)
	}
}

func resolveRecipient(res notification.RecipientResolution, vehicle contract.VehicleSnapshot) (notification.Recipient, error) {
	switch r := res.(type) {
	case notification.Explicit:
		return notification.Recipient(r), nil
	case notification.ByVehicle, nil:
		if vehicle.Customer == nil || vehicle.Customer.Email == "" {
			return notification.Recipient{}, errs.Mark(ErrRecipientUnresolved, errs.ErrValidation)
		}
		rcpt, err := notification.NewRecipient(vehicle.Customer.Name, vehicle.Customer.Email)
		if err != nil {
			return notification.Recipient{}, shared.Classify(err)
		}
		return rcpt, nil
	default:
		return notification.Recipient{}, errs.Mark(ErrRecipientUnresolved, errs.ErrValidation)
	}
}

func (uc *signatureUseCaseImpl) buildNotification(
	ctx context.Context,
	session *signature.Session,
	recipient notification.Recipient,
	link string,
) ([]byte, error) {
	tmpl, err := uc.uow.CommandReads().TemplateByKey(ctx, notification.TemplateSignatureRequest)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrStorage)
		}
		tmpl = notification.DefaultSignatureRequest()
	}

	vehicle := session.Vehicle()
	subject, body, err := tmpl.Render(notification.TemplateData{
		RecipientName:  recipient.Name,
		CompanyName:    uc.company.TradeName,
		VehicleTitle:   vehicle.Title(),
		LicensePlate:   vehicle.LicensePlate,
		ContractNumber: contract.ContractNumber(vehicle.LicensePlate, session.CreatedAt()),
		SignLink:       link,
		ExpiresAt:      contract.FormatDate(session.ExpiresAt()),
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to render signature request mail"), errs.ErrRender)
	}

	return json.Marshal(notification.SignatureRequestedPayload{
		SessionID:      session.ID(),
		VehicleID:      session.VehicleID(),
		RecipientName:  recipient.Name,
		RecipientEmail: recipient.Email.Value(),
		TemplateKey:    tmpl.Key(),
		Subject:        subject,
		Body:           body,
		SignLink:       link,
	})
}

// SignSession completes a session exactly once. The image is uploaded first;
// the session row is then flipped with a conditional update so that of two
// concurrent signers only one wins. The loser's image is removed again.
func (uc *signatureUseCaseImpl) SignSession(ctx context.Context, rawToken string, req SignSessionRequest) (*SignSessionResult, error) {
	session, err := uc.sessionByToken(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if err := session.CheckSignable(now); err != nil {
		return nil, shared.Classify(err)
	}

	img, err := decodeSignatureImage(req.SignatureImage, uc.settings.MaxImageBytes)
	if err != nil {
		return nil, err
	}

	imagePath := "signatures/" + session.ID().String() + "/" + uuid.NewString() + ".png"
	in := signature.SignerInput{
		Name:          req.SignerName,
		Email:         req.SignerEmail,
		ImagePath:     imagePath,
		SourceAddress: req.SourceAddress,
	}
	if err := session.Sign(now, in); err != nil {
		return nil, shared.Classify(err)
	}

	if _, err := uc.blobs.Put(ctx, imagePath, img, pngContentType); err != nil {
		return nil, shared.MarkAs(err, ErrSignatureUpload, errs.ErrStorage)
	}

	var won bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		won, derr = tx.Sessions().MarkSigned(ctx, tx.DB(), session.ID(), *session.Signature())
		return derr
	})
	if err != nil {
		uc.removeBlob(ctx, imagePath, "signature image of failed write")
		return nil, shared.MarkAs(err, ErrSessionWrite, errs.ErrStorage)
	}
	if !won {
		uc.removeBlob(ctx, imagePath, "signature image of lost race")
		return nil, uc.explainLostWrite(ctx, session.ID(), now)
	}

	slog.Info("Signing session signed", "session_id", session.ID(), "vehicle_id", session.VehicleID())

	result := &SignSessionResult{Session: session}
	sig := session.Signature()
	vehicle := session.Vehicle()
	sessionID := session.ID()
	rec, err := uc.archiver.Save(ctx, SaveContractRequest{
		VehicleID: session.VehicleID(),
		Options:   session.Options(),
		Vehicle:   &vehicle,
		Signature: &contract.SignatureStamp{
			SignerName:    sig.SignerName,
			SignerEmail:   sig.SignerEmail.Value(),
			SignedAt:      sig.SignedAt,
			SourceAddress: sig.SourceAddress,
			Image:         img,
		},
		SessionID:   &sessionID,
		GeneratedAt: session.CreatedAt(),
	})
	if err != nil {
		slog.Error("Signed contract could not be archived", "session_id", session.ID(), "error", err.Error())
		result.ArchiveErr = err
		return result, nil
	}
	result.Contract = rec
	return result, nil
}

func (uc *signatureUseCaseImpl) RevokeSession(ctx context.Context, id uuid.UUID) (*signature.Session, error) {
	session, err := uc.uow.CommandReads().SessionByID(ctx, id)
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrSessionNotFound)
	}

	now := uc.clock.Now()
	if err := session.Revoke(now); err != nil {
		return nil, shared.Classify(err)
	}

	var ok bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		ok, derr = tx.Sessions().Revoke(ctx, tx.DB(), id, now)
		return derr
	})
	if err != nil {
		return nil, shared.MarkAs(err, ErrSessionWrite, errs.ErrStorage)
	}
	if !ok {
		return nil, uc.explainLostWrite(ctx, id, now)
	}

	slog.Info("Signing session revoked", "session_id", id)
	return session, nil
}

func (uc *signatureUseCaseImpl) sessionByToken(ctx context.Context, rawToken string) (*signature.Session, error) {
	hash, err := signature.ParseToken(rawToken)
	if err != nil {
		// A malformed token cannot match any session.
		return nil, shared.MarkAs(err, shared.ErrSessionNotFound, errs.ErrNotFound)
	}
	session, err := uc.uow.CommandReads().SessionByTokenHash(ctx, hash)
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrSessionNotFound)
	}
	return session, nil
}

// explainLostWrite re-reads the session after a conditional update matched no
// row and reports why.
func (uc *signatureUseCaseImpl) explainLostWrite(ctx context.Context, id uuid.UUID, now time.Time) error {
	current, err := uc.uow.CommandReads().SessionByID(ctx, id)
	if err != nil {
		return shared.NotFoundOr(err, shared.ErrSessionNotFound)
	}
	if err := current.CheckSignable(now); err != nil {
		return shared.Classify(err)
	}
	// Still pending but the update missed: the clocks disagree on expiry.
	return shared.Classify(signature.ErrSessionExpired)
}

func (uc *signatureUseCaseImpl) removeBlob(ctx context.Context, path, what string) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()
	if err := uc.blobs.Remove(cleanupCtx, path); err != nil {
		slog.Error("Failed to remove "+what, "path", path, "error", err.Error())
	}
}

// decodeSignatureImage accepts a PNG data URL or bare base64 and checks that
// the bytes decode as a PNG within the size limit.
func decodeSignatureImage(raw string, maxBytes int) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errs.Mark(signature.ErrSignatureImageRequired, errs.ErrValidation)
	}
	if strings.HasPrefix(raw, "data:") {
		if !strings.HasPrefix(raw, dataURLPrefix) {
			return nil, errs.Mark(ErrInvalidSignatureImage, errs.ErrValidation)
		}
		raw = strings.TrimPrefix(raw, dataURLPrefix)
	}
	if maxBytes > 0 && base64.StdEncoding.DecodedLen(len(raw)) > maxBytes+3 {
		return nil, errs.Mark(ErrSignatureImageTooBig, errs.ErrValidation)
	}

	img, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(ErrInvalidSignatureImage, err.Error()), errs.ErrValidation)
	}
	if maxBytes > 0 && len(img) > maxBytes {
		return nil, errs.Mark(ErrSignatureImageTooBig, errs.ErrValidation)
	}
	if !bytes.HasPrefix(img, pngMagic) {
		return nil, errs.Mark(ErrInvalidSignatureImage, errs.ErrValidation)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(img)); err != nil {
		return nil, errs.Mark(ErrInvalidSignatureImage, errs.ErrValidation)
	}
	return img, nil
}

func calculateRequestHash(req CreateSessionRequest, opts contract.Options, recipient notification.Recipient) string {
	data, _ := json.Marshal(struct {
		VehicleID      uuid.UUID             `json:"vehicleId"`
		ContractType   contract.ContractType `json:"contractType"`
		Options        contract.Options      `json:"options"`
		RecipientName  string                `json:"recipientName"`
		RecipientEmail string                `json:"recipientEmail"`
	}{
		VehicleID:      req.VehicleID,
		ContractType:   req.ContractType,
		Options:        opts,
		RecipientName:  recipient.Name,
		RecipientEmail: recipient.Email.Value(),
	})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

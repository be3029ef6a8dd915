package shared

import (
	"dealer-contracts/internal/domain/archive"
	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/domain/signature"
	"dealer-contracts/internal/infra"
	"dealer-contracts/internal/pkg/errs"
)

var (
	ErrVehicleNotFound  = errs.New("vehicle not found")
	ErrSessionNotFound  = errs.New("signing session not found")
	ErrContractNotFound = errs.New("archived contract not found")
	ErrTemplateNotFound = errs.New("email template not found")
)

// MarkAs tags err with a concrete sentinel and its category.
func MarkAs(err, specific, category error) error {
	return errs.Mark(errs.Mark(err, specific), category)
}

// NotFoundOr maps a repository not-found to notFound and anything else to a
// storage failure.
func NotFoundOr(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return MarkAs(err, notFound, errs.ErrNotFound)
	}
	return errs.Mark(err, errs.ErrStorage)
}

// Classify puts a domain error into its category. Unknown errors are
// returned unchanged.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errs.Is(err, signature.ErrSessionExpired):
		return errs.Mark(err, errs.ErrExpired)
	case errs.Is(err, signature.ErrSessionAlreadySigned):
		return errs.Mark(err, errs.ErrAlreadyCompleted)
	case errs.Is(err, signature.ErrSessionRevoked):
		return errs.Mark(err, errs.ErrRevoked)
	case isValidation(err):
		return errs.Mark(err, errs.ErrValidation)
	default:
		return err
	}
}

var validationErrors = []error{
	contract.ErrNegativePrice,
	contract.ErrNegativeAmount,
	contract.ErrAmountTooLarge,
	contract.ErrUnknownContractType,
	contract.ErrUnknownVehicleType,
	contract.ErrUnknownBtwType,
	contract.ErrUnknownPaymentTerms,
	contract.ErrUnknownDeliveryPackage,
	signature.ErrSignerNameRequired,
	signature.ErrSignatureImageRequired,
	signature.ErrContractTypeMismatch,
	signature.ErrMalformedToken,
	notification.ErrInvalidEmail,
	notification.ErrRecipientRequired,
	notification.ErrInvalidTemplateKey,
	notification.ErrEmptySubject,
	notification.ErrEmptyBody,
	notification.ErrTemplateSyntax,
	archive.ErrArtifactPathRequired,
}

func isValidation(err error) bool {
	for _, v := range validationErrors {
		if errs.Is(err, v) {
			return true
		}
	}
	return false
}

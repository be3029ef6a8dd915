//go:build unit

package signature_test

import (
	"strings"
	"testing"
	"time"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/domain/signature"
	"dealer-contracts/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		actual, token, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, signature.StatusPending, actual.Status())
		assert.Nil(t, actual.Signature())
		assert.Equal(t, b.Now.Add(7*24*time.Hour), actual.ExpiresAt())
		assert.Equal(t, signature.HashToken(token.Raw), actual.TokenHash())
		assert.NotContains(t, actual.TokenHash(), token.Raw)
		assert.Equal(t, b.Contract.Vehicle, actual.Vehicle())
	})

	t.Run("fills contract type into options", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		opts := b.Contract.Options
		opts.ContractType = ""
		actual, _, err := signature.NewSession(b.Now, 0, b.Contract.Vehicle, contract.ContractTypeB2C, opts, b.CreatedBy)
		require.NoError(t, err)
		assert.Equal(t, contract.ContractTypeB2C, actual.Options().ContractType)
		assert.Equal(t, b.Now.Add(signature.DefaultValidity), actual.ExpiresAt())
	})

	t.Run("rejects mismatching contract type", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		_, _, err := signature.NewSession(b.Now, 0, b.Contract.Vehicle, contract.ContractTypeB2B, b.Contract.Options, b.CreatedBy)
		assert.ErrorIs(t, err, signature.ErrContractTypeMismatch)
	})

	t.Run("rejects invalid options", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		b.Contract.Options.PaymentTerms = "later"
		_, _, err := b.BuildDomain()
		assert.ErrorIs(t, err, contract.ErrUnknownPaymentTerms)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		seen := map[string]struct{}{}
		for range 50 {
			tok, err := signature.IssueToken()
			require.NoError(t, err)
			_, dup := seen[tok.Raw]
			require.False(t, dup)
			seen[tok.Raw] = struct{}{}
		}
	})
}

func TestSession_ExpiryBoundary(t *testing.T) {
	s, _, err := builder.NewSessionBuilder().BuildDomain()
	require.NoError(t, err)

	assert.NoError(t, s.CheckSignable(s.ExpiresAt().Add(-time.Second)))
	assert.ErrorIs(t, s.CheckSignable(s.ExpiresAt()), signature.ErrSessionExpired)
	assert.ErrorIs(t, s.CheckSignable(s.ExpiresAt().Add(time.Second)), signature.ErrSessionExpired)
	assert.Equal(t, "expired", s.DisplayStatus(s.ExpiresAt().Add(time.Second)))
	assert.Equal(t, "pending", s.DisplayStatus(s.CreatedAt()))
}

func TestSession_Sign(t *testing.T) {
	t.Run("completes once", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		s, _, err := b.BuildDomain()
		require.NoError(t, err)

		signedAt := b.Now.Add(time.Hour)
		require.NoError(t, s.Sign(signedAt, b.SignerInput()))
		assert.Equal(t, signature.StatusSigned, s.Status())
		require.NotNil(t, s.Signature())
		assert.Equal(t, "Jan de Vries", s.Signature().SignerName)
		assert.Equal(t, signedAt, s.Signature().SignedAt)

		err = s.Sign(signedAt.Add(time.Minute), b.SignerInput())
		assert.ErrorIs(t, err, signature.ErrSessionAlreadySigned)
		assert.Equal(t, signedAt, s.Signature().SignedAt)
	})

	t.Run("signed wins over expiry", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		s, err := b.BuildSigned(b.Now.Add(time.Hour))
		require.NoError(t, err)
		assert.ErrorIs(t, s.CheckSignable(s.ExpiresAt().Add(time.Hour)), signature.ErrSessionAlreadySigned)
	})

	tests := []struct {
		name   string
		mutate func(*signature.SignerInput)
		errIs  error
	}{
		{name: "empty name", mutate: func(in *signature.SignerInput) { in.Name = "  " }, errIs: signature.ErrSignerNameRequired},
		{name: "bad email", mutate: func(in *signature.SignerInput) { in.Email = "jan" }, errIs: notification.ErrInvalidEmail},
		{name: "empty email", mutate: func(in *signature.SignerInput) { in.Email = "" }, errIs: notification.ErrInvalidEmail},
		{name: "no image", mutate: func(in *signature.SignerInput) { in.ImagePath = "" }, errIs: signature.ErrSignatureImageRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewSessionBuilder()
			s, _, err := b.BuildDomain()
			require.NoError(t, err)
			in := b.SignerInput()
			tt.mutate(&in)

			err = s.Sign(b.Now, in)
			assert.ErrorIs(t, err, tt.errIs)
			assert.Equal(t, signature.StatusPending, s.Status())
			assert.Nil(t, s.Signature())
		})
	}

	t.Run("expired session cannot be signed", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		s, _, err := b.BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, s.Sign(s.ExpiresAt(), b.SignerInput()), signature.ErrSessionExpired)
	})
}

func TestSession_Revoke(t *testing.T) {
	b := builder.NewSessionBuilder()
	s, _, err := b.BuildDomain()
	require.NoError(t, err)

	require.NoError(t, s.Revoke(b.Now))
	assert.Equal(t, signature.StatusRevoked, s.Status())
	require.NotNil(t, s.RevokedAt())
	assert.ErrorIs(t, s.Sign(b.Now, b.SignerInput()), signature.ErrSessionRevoked)
	assert.ErrorIs(t, s.Revoke(b.Now), signature.ErrSessionRevoked)
}

func TestReconstructSession(t *testing.T) {
	email, err := notification.NewEmail("jan@example.nl")
	require.NoError(t, err)
	now := time.Now()
	sig := &signature.Signature{SignerName: "Jan", SignerEmail: email, ImagePath: "p.png", SignedAt: now}

	tests := []struct {
		name      string
		status    signature.Status
		sig       *signature.Signature
		revokedAt *time.Time
		wantErr   bool
	}{
		{name: "pending", status: signature.StatusPending},
		{name: "signed", status: signature.StatusSigned, sig: sig},
		{name: "revoked", status: signature.StatusRevoked, revokedAt: &now},
		{name: "signed without payload", status: signature.StatusSigned, wantErr: true},
		{name: "pending with payload", status: signature.StatusPending, sig: sig, wantErr: true},
		{name: "revoked without timestamp", status: signature.StatusRevoked, wantErr: true},
		{name: "unknown status", status: "expired", wantErr: true},
		{name: "payload missing email", status: signature.StatusSigned, sig: &signature.Signature{SignerName: "Jan", ImagePath: "p.png", SignedAt: now}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := signature.ReconstructSession(
				uuid.New(), "hash", uuid.New(), contract.ContractTypeB2C, contract.Options{ContractType: contract.ContractTypeB2C},
				contract.VehicleSnapshot{}, uuid.New(), now, now.Add(time.Hour), tt.status, tt.sig, tt.revokedAt,
			)
			if tt.wantErr {
				assert.ErrorIs(t, err, signature.ErrInconsistentSession)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestToken(t *testing.T) {
	tok, err := signature.IssueToken()
	require.NoError(t, err)

	hash, err := signature.ParseToken(tok.Raw)
	require.NoError(t, err)
	assert.Equal(t, tok.Hash, hash)

	_, err = signature.ParseToken("not-a-token")
	assert.ErrorIs(t, err, signature.ErrMalformedToken)

	link := signature.SignLink("https://dealer.example.nl/", tok.Raw)
	assert.True(t, strings.HasSuffix(link, "/contract/sign/"+tok.Raw))
	assert.Equal(t, "https://dealer.example.nl/contract/sign/"+tok.Raw, link)
}

func TestComputeExpiry(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, created.Add(7*24*time.Hour), signature.ComputeExpiry(created, 0))
	assert.Equal(t, created.Add(time.Hour), signature.ComputeExpiry(created, time.Hour))
}

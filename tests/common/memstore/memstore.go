//go:build unit

// Package memstore is an in-memory UnitOfWork for use case tests.
// Transactions are serialized and rolled back on error, which matches the
// guarantees the postgres implementation gives the use cases.
package memstore

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"dealer-contracts/internal/domain/archive"
	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/domain/signature"
	"dealer-contracts/internal/infra"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"
	"dealer-contracts/internal/pkg/clock"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/queries"
	"dealer-contracts/internal/usecase/shared"

	"github.com/google/uuid"
)

type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type idemKey struct {
	key, userID uuid.UUID
}

type state struct {
	sessions    map[uuid.UUID]*signature.Session
	contracts   map[uuid.UUID]*archive.Record
	idempotency map[idemKey]shared.IdempotencyRecord
	jobs        []Job
}

func (s state) clone() state {
	return state{
		sessions:    maps.Clone(s.sessions),
		contracts:   maps.Clone(s.contracts),
		idempotency: maps.Clone(s.idempotency),
		jobs:        append([]Job(nil), s.jobs...),
	}
}

type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	st   state

	vehicles  map[uuid.UUID]shared.VehicleRecord
	contacts  map[uuid.UUID]contract.Contact
	templates map[string]*notification.Template

	// clock stands in for the database now().
	clock clock.Clock

	// Fail* make the matching write fail while set.
	FailSessionCreate  error
	FailContractCreate error
	FailContractDelete error
}

func New(clk clock.Clock) *Store {
	return &Store{
		clock: clk,
		st: state{
			sessions:    map[uuid.UUID]*signature.Session{},
			contracts:   map[uuid.UUID]*archive.Record{},
			idempotency: map[idemKey]shared.IdempotencyRecord{},
		},
		vehicles:  map[uuid.UUID]shared.VehicleRecord{},
		contacts:  map[uuid.UUID]contract.Contact{},
		templates: map[string]*notification.Template{},
	}
}

// AddVehicle registers v and its customer as the inventory would hold them.
func (s *Store) AddVehicle(v contract.VehicleSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := shared.VehicleRecord{Snapshot: v}
	rec.Snapshot.Customer = nil
	if v.Customer != nil {
		id := v.Customer.ID
		rec.CustomerID = &id
		s.contacts[id] = *v.Customer
	}
	s.vehicles[v.ID] = rec
}

func (s *Store) AddTemplate(t *notification.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[t.Key()] = t
}

func (s *Store) PutSession(sess *signature.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.sessions[sess.ID()] = copySession(sess)
}

// Session returns a copy of the stored session, or nil.
func (s *Store) Session(id uuid.UUID) *signature.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.st.sessions[id]
	if !ok {
		return nil
	}
	return copySession(sess)
}

func (s *Store) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.st.sessions)
}

func (s *Store) Contracts() []*archive.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*archive.Record, 0, len(s.st.contracts))
	for _, r := range s.st.contracts {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })
	return out
}

func (s *Store) PutContract(r *archive.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.contracts[r.ID()] = r
}

func (s *Store) Jobs() []Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Job(nil), s.st.jobs...)
}

// ExpireIdempotency moves every stored key's expiry to at.
func (s *Store) ExpireIdempotency(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, rec := range s.st.idempotency {
		rec.ExpiresAt = at
		s.st.idempotency[k] = rec
	}
}

// UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.st.clone()
	s.mu.RUnlock()

	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) CommandReads() shared.CommandReads {
	return reads{s: s}
}

type memTx struct {
	s *Store
}

func (t *memTx) Sessions() shared.SessionRepository           { return sessionRepo{s: t.s} }
func (t *memTx) Contracts() shared.ContractRepository         { return contractRepo{s: t.s} }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return idemRepo{s: t.s} }
func (t *memTx) Notifications() shared.NotificationRepository { return jobRepo{s: t.s} }
func (t *memTx) Reads() shared.CommandReads                   { return reads{s: t.s} }
func (t *memTx) DB() sqlc.DBTX                                { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// reads

type reads struct {
	s *Store
}

func (r reads) VehicleByID(_ context.Context, id uuid.UUID) (*shared.VehicleRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.vehicles[id]
	if !ok {
		return nil, notFound("vehicle not found")
	}
	return &v, nil
}

func (r reads) ContactByID(_ context.Context, id uuid.UUID) (*contract.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.contacts[id]
	if !ok {
		return nil, notFound("contact not found")
	}
	return &c, nil
}

func (r reads) SessionByTokenHash(_ context.Context, hash string) (*signature.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, sess := range r.s.st.sessions {
		if sess.TokenHash() == hash {
			return copySession(sess), nil
		}
	}
	return nil, notFound("signing session not found")
}

func (r reads) SessionByID(_ context.Context, id uuid.UUID) (*signature.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sess, ok := r.s.st.sessions[id]
	if !ok {
		return nil, notFound("signing session not found")
	}
	return copySession(sess), nil
}

func (r reads) ContractByID(_ context.Context, id uuid.UUID) (*archive.Record, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.st.contracts[id]
	if !ok {
		return nil, notFound("archived contract not found")
	}
	return rec, nil
}

func (r reads) TemplateByKey(_ context.Context, key string) (*notification.Template, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.templates[key]
	if !ok {
		return nil, notFound("email template not found")
	}
	return t, nil
}

func (r reads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.st.idempotency[idemKey{key, userID}]
	if !ok {
		return nil, notFound("idempotency key not found")
	}
	return &rec, nil
}

// SessionReader serves the query side from the same state.
func (s *Store) SessionReader() queries.SessionReader {
	return sessionReads{s: s}
}

type sessionReads struct {
	s *Store
}

func (r sessionReads) FindByTokenHash(ctx context.Context, hash string) (*signature.Session, error) {
	return reads(r).SessionByTokenHash(ctx, hash)
}

func (r sessionReads) ListByVehicle(_ context.Context, vehicleID uuid.UUID) ([]*signature.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*signature.Session
	for _, sess := range r.s.st.sessions {
		if sess.VehicleID() == vehicleID {
			out = append(out, copySession(sess))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })
	return out, nil
}

func (s *Store) ContractReader() queries.ContractReader {
	return contractReads{s: s}
}

type contractReads struct {
	s *Store
}

func (r contractReads) FindByID(ctx context.Context, id uuid.UUID) (*archive.Record, error) {
	return reads(r).ContractByID(ctx, id)
}

func (r contractReads) FindLatest(ctx context.Context, vehicleID uuid.UUID, contractType contract.ContractType) (*archive.Record, error) {
	recs, _ := r.ListByVehicle(ctx, vehicleID)
	for _, rec := range recs {
		if contractType == "" || rec.ContractType() == contractType {
			return rec, nil
		}
	}
	return nil, notFound("archived contract not found")
}

func (r contractReads) ListByVehicle(_ context.Context, vehicleID uuid.UUID) ([]*archive.Record, error) {
	var out []*archive.Record
	for _, rec := range r.s.Contracts() {
		if rec.VehicleID() == vehicleID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// repositories

type sessionRepo struct {
	s *Store
}

func (r sessionRepo) Create(_ context.Context, _ sqlc.DBTX, sess *signature.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.FailSessionCreate; err != nil {
		return infra.WrapRepoErr("failed to create signing session", err)
	}
	r.s.st.sessions[sess.ID()] = copySession(sess)
	return nil
}

func (r sessionRepo) MarkSigned(_ context.Context, _ sqlc.DBTX, id uuid.UUID, sig signature.Signature) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.sessions[id]
	if !ok || cur.Status() != signature.StatusPending || !sig.SignedAt.Before(cur.ExpiresAt()) {
		return false, nil
	}
	next, err := rebuild(cur, signature.StatusSigned, &sig, nil)
	if err != nil {
		return false, err
	}
	r.s.st.sessions[id] = next
	return true, nil
}

func (r sessionRepo) Revoke(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.sessions[id]
	if !ok || cur.Status() != signature.StatusPending || !at.Before(cur.ExpiresAt()) {
		return false, nil
	}
	next, err := rebuild(cur, signature.StatusRevoked, nil, &at)
	if err != nil {
		return false, err
	}
	r.s.st.sessions[id] = next
	return true, nil
}

// copySession detaches a session from the store so in-memory transitions by
// the caller do not leak into stored state.
func copySession(cur *signature.Session) *signature.Session {
	next, err := rebuild(cur, cur.Status(), cur.Signature(), cur.RevokedAt())
	if err != nil {
		panic(err)
	}
	return next
}

func rebuild(cur *signature.Session, status signature.Status, sig *signature.Signature, revokedAt *time.Time) (*signature.Session, error) {
	return signature.ReconstructSession(
		cur.ID(), cur.TokenHash(), cur.VehicleID(), cur.ContractType(),
		cur.Options(), cur.Vehicle(), cur.CreatedBy(), cur.CreatedAt(), cur.ExpiresAt(),
		status, sig, revokedAt,
	)
}

type contractRepo struct {
	s *Store
}

func (r contractRepo) Create(_ context.Context, _ sqlc.DBTX, rec *archive.Record) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.FailContractCreate; err != nil {
		return infra.WrapRepoErr("failed to create archived contract", err)
	}
	r.s.st.contracts[rec.ID()] = rec
	return nil
}

func (r contractRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.FailContractDelete; err != nil {
		return infra.WrapRepoErr("failed to delete archived contract", err)
	}
	if _, ok := r.s.st.contracts[id]; !ok {
		return notFound("archived contract not found")
	}
	delete(r.s.st.contracts, id)
	return nil
}

type idemRepo struct {
	s *Store
}

func (r idemRepo) TryInsert(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, _, requestHash string, expiresAt time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := idemKey{key, userID}
	if _, ok := r.s.st.idempotency[k]; ok {
		return false, nil
	}
	r.s.st.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r idemRepo) UpdateStatusCompleted(_ context.Context, _ sqlc.DBTX, key, userID, resultID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := idemKey{key, userID}
	rec, ok := r.s.st.idempotency[k]
	if !ok {
		return notFound("idempotency key not found")
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultID = &resultID
	r.s.st.idempotency[k] = rec
	return nil
}

func (r idemRepo) ClaimExpiredIdempotencyKey(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := idemKey{key, userID}
	rec, ok := r.s.st.idempotency[k]
	if !ok || rec.ExpiresAt.After(r.s.clock.Now()) {
		return 0, nil
	}
	r.s.st.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return 1, nil
}

type jobRepo struct {
	s *Store
}

func (r jobRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.st.jobs = append(r.s.st.jobs, Job{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

var ErrInjected = errs.New("injected failure")

// TemplateStore exposes the templates the signature mail reads from.
func (s *Store) TemplateStore() shared.TemplateStore {
	return templateStore{s: s}
}

type templateStore struct {
	s *Store
}

func (t templateStore) List(_ context.Context) ([]*notification.Template, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	out := make([]*notification.Template, 0, len(t.s.templates))
	for _, tmpl := range t.s.templates {
		out = append(out, tmpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out, nil
}

func (t templateStore) Get(ctx context.Context, key string) (*notification.Template, error) {
	return reads(t).TemplateByKey(ctx, key)
}

func (t templateStore) Upsert(_ context.Context, tmpl *notification.Template) error {
	t.s.AddTemplate(tmpl)
	return nil
}

func (t templateStore) Delete(_ context.Context, key string) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.templates[key]; !ok {
		return notFound("email template not found")
	}
	delete(t.s.templates, key)
	return nil
}

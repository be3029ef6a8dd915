package archive

import (
	"errors"
	"time"

	"dealer-contracts/internal/domain/contract"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrArtifactPathRequired = errors.New("artifact path is required")

// VehicleSnapshot is frozen into the record at save time.
type VehicleSnapshot struct {
	ID           uuid.UUID `json:"id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	VIN          string    `json:"vin"`
	LicensePlate string    `json:"licensePlate"`
}

func SnapshotOf(v contract.VehicleSnapshot) (VehicleSnapshot, error) {
	var out VehicleSnapshot
	if err := copier.Copy(&out, &v); err != nil {
		return VehicleSnapshot{}, err
	}
	return out, nil
}

// Record is the metadata stored next to an archived contract PDF.
type Record struct {
	id             uuid.UUID
	vehicleID      uuid.UUID
	artifactPath   string
	artifactURL    string
	fileName       string
	contractNumber string
	contractType   contract.ContractType
	options        contract.Options
	vehicle        VehicleSnapshot
	sessionID      *uuid.UUID
	createdAt      time.Time
}

type NewRecordParams struct {
	ID             uuid.UUID
	Vehicle        contract.VehicleSnapshot
	ContractType   contract.ContractType
	Options        contract.Options
	ArtifactPath   string
	ArtifactURL    string
	FileName       string
	ContractNumber string
	SessionID      *uuid.UUID
	Now            time.Time
}

func NewRecord(p NewRecordParams) (*Record, error) {
	if p.ArtifactPath == "" {
		return nil, ErrArtifactPathRequired
	}
	if !p.ContractType.IsValid() {
		return nil, contract.ErrUnknownContractType
	}
	snap, err := SnapshotOf(p.Vehicle)
	if err != nil {
		return nil, err
	}
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Record{
		id:             id,
		vehicleID:      p.Vehicle.ID,
		artifactPath:   p.ArtifactPath,
		artifactURL:    p.ArtifactURL,
		fileName:       p.FileName,
		contractNumber: p.ContractNumber,
		contractType:   p.ContractType,
		options:        p.Options,
		vehicle:        snap,
		sessionID:      p.SessionID,
		createdAt:      p.Now,
	}, nil
}

func ReconstructRecord(
	id, vehicleID uuid.UUID,
	artifactPath, artifactURL, fileName, contractNumber string,
	contractType contract.ContractType,
	opts contract.Options,
	vehicle VehicleSnapshot,
	sessionID *uuid.UUID,
	createdAt time.Time,
) *Record {
	return &Record{
		id:             id,
		vehicleID:      vehicleID,
		artifactPath:   artifactPath,
		artifactURL:    artifactURL,
		fileName:       fileName,
		contractNumber: contractNumber,
		contractType:   contractType,
		options:        opts,
		vehicle:        vehicle,
		sessionID:      sessionID,
		createdAt:      createdAt,
	}
}

// ArtifactPath lays out blobs per vehicle and record.
func ArtifactPath(vehicleID, recordID uuid.UUID, fileName string) string {
	return "contracts/" + vehicleID.String() + "/" + recordID.String() + "/" + fileName
}

func (r *Record) ID() uuid.UUID                       { return r.id }
func (r *Record) VehicleID() uuid.UUID                { return r.vehicleID }
func (r *Record) ArtifactPath() string                { return r.artifactPath }
func (r *Record) ArtifactURL() string                 { return r.artifactURL }
func (r *Record) FileName() string                    { return r.fileName }
func (r *Record) ContractNumber() string              { return r.contractNumber }
func (r *Record) ContractType() contract.ContractType { return r.contractType }
func (r *Record) Options() contract.Options           { return r.options }
func (r *Record) Vehicle() VehicleSnapshot            { return r.vehicle }
func (r *Record) SessionID() *uuid.UUID               { return r.sessionID }
func (r *Record) CreatedAt() time.Time                { return r.createdAt }

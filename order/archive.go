package order

import (
	"sync"

	"github.com/Tuka1911/dymokminiapp/models"
)

// Archive stores finalized orders for the operator's reconciliation
// surfaces (listing, spreadsheet export, payment QR lookup).
type Archive interface {
	Save(rec *models.OrderRecord) error
	List() ([]models.OrderRecord, error)
	FindByNumber(number string) (*models.OrderRecord, error)
}

// MemoryArchive backs tests and database-less dev runs. Newest first,
// like the gorm implementation.
type MemoryArchive struct {
	mu   sync.Mutex
	recs []models.OrderRecord
}

func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{}
}

func (a *MemoryArchive) Save(rec *models.OrderRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	rec.RecordID = uint(len(a.recs) + 1)
	a.recs = append(a.recs, *rec)
	return nil
}

func (a *MemoryArchive) List() ([]models.OrderRecord, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.OrderRecord, 0, len(a.recs))
	for i := len(a.recs) - 1; i >= 0; i-- {
		out = append(out, a.recs[i])
	}
	return out, nil
}

func (a *MemoryArchive) FindByNumber(number string) (*models.OrderRecord, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := len(a.recs) - 1; i >= 0; i-- {
		if a.recs[i].Number == number {
			rec := a.recs[i]
			return &rec, nil
		}
	}
	return nil, nil
}

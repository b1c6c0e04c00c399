package claims

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bimadesk/bimadesk/internal/models"
)

// GormStore persists claims in the claims table. Load orders by creation
// time descending so the repository's most-recent-first invariant survives
// restarts.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load() ([]models.Claim, error) {
	var claims []models.Claim
	if err := s.db.Order("created_at DESC").Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *GormStore) Save(claims []models.Claim) error {
	if len(claims) == 0 {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i := range claims {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&claims[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// MemoryStore keeps claims in process memory only. Used in tests and as a
// fallback when the database is unavailable.
type MemoryStore struct {
	claims  []models.Claim
	failure error
}

func NewMemoryStore(seed ...models.Claim) *MemoryStore {
	return &MemoryStore{claims: append([]models.Claim{}, seed...)}
}

// FailNextSave makes the following Save calls return err until cleared
func (s *MemoryStore) FailNextSave(err error) {
	s.failure = err
}

func (s *MemoryStore) Load() ([]models.Claim, error) {
	return append([]models.Claim{}, s.claims...), nil
}

func (s *MemoryStore) Save(claims []models.Claim) error {
	if s.failure != nil {
		return s.failure
	}
	s.claims = append([]models.Claim{}, claims...)
	return nil
}

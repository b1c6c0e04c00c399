package policyadmin

import (
	"log"
	"time"

	"gorm.io/gorm/clause"

	"github.com/bimadesk/bimadesk/internal/config"
	"github.com/bimadesk/bimadesk/internal/database"
	"github.com/bimadesk/bimadesk/internal/models"
)

// policyRecord is the upstream shape of one policy
type policyRecord struct {
	Ref          string  `json:"ref"`
	PolicyType   string  `json:"policy_type"`
	Name         string  `json:"name"`
	PolicyNumber string  `json:"policy_number"`
	Provider     string  `json:"provider"`
	SumInsured   float64 `json:"sum_insured"`
}

// ImportService periodically pulls the customer's policies from the policy
// administration system into the local policies table.
type ImportService struct {
	client *Client
	db     *database.DB
	cfg    config.PolicyAdminConfig
	stop   chan struct{}
}

// NewImportService creates a new policy import service
func NewImportService(db *database.DB, cfg config.PolicyAdminConfig) *ImportService {
	return &ImportService{
		client: NewClient(cfg.URL, cfg.Database, cfg.Username, cfg.Password),
		db:     db,
		cfg:    cfg,
		stop:   make(chan struct{}),
	}
}

// Start begins the background import loop. A missing upstream URL disables
// the service; the seed catalog stays in place.
func (s *ImportService) Start() {
	if s.cfg.URL == "" {
		log.Println("Policy import disabled: POLICYADMIN_URL not configured")
		return
	}

	go func() {
		log.Println("📡 Policy import service started")

		if _, err := s.client.Authenticate(); err != nil {
			log.Printf("❌ Policy-admin authentication failed: %v", err)
			return
		}

		// Initial import delay
		time.Sleep(5 * time.Second)
		s.runImport()

		interval := s.cfg.SyncInterval
		if interval <= 0 {
			interval = 30 * time.Minute
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.runImport()
			case <-s.stop:
				log.Println("🛑 Policy import service stopped")
				return
			}
		}
	}()
}

// Stop halts the service
func (s *ImportService) Stop() {
	close(s.stop)
}

// runImport pulls all active policies and upserts them locally
func (s *ImportService) runImport() {
	log.Println("🔄 Policy import: fetching active policies...")

	domain := []interface{}{
		[]interface{}{"active", "=", true},
	}

	var records []policyRecord
	err := s.client.SearchRead("insurance.policy", domain, []string{
		"ref", "policy_type", "name", "policy_number", "provider", "sum_insured",
	}, 1000, 0, &records)

	if err != nil {
		log.Printf("❌ Policy import error: %v", err)
		return
	}

	if len(records) == 0 {
		return
	}

	count := 0
	for _, rec := range records {
		policy := models.Policy{
			ID:           rec.Ref,
			Type:         rec.PolicyType,
			Name:         rec.Name,
			PolicyNumber: rec.PolicyNumber,
			Provider:     rec.Provider,
			SumInsured:   rec.SumInsured,
		}

		if err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&policy).Error; err != nil {
			log.Printf("Failed to save policy %s: %v", policy.ID, err)
		} else {
			count++
		}
	}

	log.Printf("✅ Policy import: updated %d policies", count)
}

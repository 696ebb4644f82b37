package config

import (
	"log"

	"payconsig/internal/adapters/persistence/models"
	"payconsig/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders. Dev mode only; production data comes in
// through the API.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedDemoCompany(); err != nil {
		log.Printf("⚠️ Demo company seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedDemoCompany seeds a demo employer with one applicant so the
// simulation and application flows can be exercised out of the box.
func (s *Seeder) seedDemoCompany() error {
	var count int64
	s.db.Model(&models.Company{}).Count(&count)
	if count > 0 {
		return nil // Already seeded
	}

	hashedPassword, err := password.Hash("demo12345678")
	if err != nil {
		return err
	}

	company := &models.Company{
		CNPJ:               "11222333000181",
		LegalName:          "Acme Consignados LTDA",
		RepresentativeName: "Carlos Pereira",
		RepresentativeCPF:  "12345678909",
		Email:              "contato@acmeconsig.com.br",
		Password:           hashedPassword,
	}

	if err := s.db.Create(company).Error; err != nil {
		return err
	}

	employee := &models.Employee{
		Name:      "Ana Souza",
		CPF:       "52998224725",
		Email:     "ana.souza@acmeconsig.com.br",
		Password:  hashedPassword,
		Salary:    5000,
		CompanyID: company.ID,
	}

	if err := s.db.Create(employee).Error; err != nil {
		return err
	}

	log.Printf("✅ Demo company seeded: %s", company.LegalName)
	return nil
}

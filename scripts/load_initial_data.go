package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"pipetrak-backend/internal/config"
	"pipetrak-backend/internal/database"
	apperrors "pipetrak-backend/internal/errors"
	"pipetrak-backend/internal/repository"
	"pipetrak-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const seedActor = "seed-script"

// Simple structures that directly match the seed YAML schema
type ProjectSeed struct {
	Name        string          `yaml:"name"`
	JobNumber   string          `yaml:"job_number"`
	Client      string          `yaml:"client"`
	Description string          `yaml:"description"`
	Components  []ComponentSeed `yaml:"components"`
}

type ComponentSeed struct {
	ComponentID string `yaml:"component_id,omitempty"`
	Type        string `yaml:"type"`
	Drawing     string `yaml:"drawing"`
	Description string `yaml:"description,omitempty"`
	Spec        string `yaml:"spec,omitempty"`
	Size        string `yaml:"size,omitempty"`
	Area        string `yaml:"area,omitempty"`
	System      string `yaml:"system,omitempty"`
	TestPackage string `yaml:"test_package,omitempty"`
	Quantity    string `yaml:"quantity,omitempty"`
}

type ProjectsFile struct {
	Projects []ProjectSeed `yaml:"projects"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := service.LoadTemplateOverrides(cfg.TemplateOverridesPath); err != nil {
		log.Fatalf("Failed to load template overrides: %v", err)
	}
	if err := service.ValidateRegistry(); err != nil {
		log.Fatalf("Template registry validation failed: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for
// Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	seeds, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	validate := validator.New()
	repos := repository.NewRepositories(db)
	uow := repository.NewGormUnitOfWork(db)
	templateService := service.NewTemplateService(repos.Templates)
	projectService := service.NewProjectService(repos.Projects, templateService, validate)
	importService := service.NewImportService(repos, uow, validate)

	for _, seed := range seeds {
		project, err := projectService.Create(&service.CreateProjectRequest{
			Name:        seed.Name,
			JobNumber:   seed.JobNumber,
			Client:      seed.Client,
			Description: seed.Description,
		}, seedActor)
		switch {
		case err == nil:
			log.Printf("Project %q created", seed.Name)
		case errors.Is(err, apperrors.ErrProjectExists):
			project, err = repos.Projects.GetByName(seed.Name)
			if err != nil {
				return fmt.Errorf("failed to look up project %s: %w", seed.Name, err)
			}
			log.Printf("Project %q already exists", seed.Name)
		default:
			return fmt.Errorf("failed to create project %s: %w", seed.Name, err)
		}

		if len(seed.Components) == 0 {
			continue
		}

		// Components go through the import pipeline so reconciliation,
		// classification and id generation behave exactly as an upload
		// would. SkipDuplicates makes reruns idempotent.
		summary, err := importService.RunImport(importRequest(project.ID, seed), seedActor)
		if err != nil {
			return fmt.Errorf("failed to import components for %s: %w", seed.Name, err)
		}
		log.Printf("Project %q components: %d created, %d skipped, %d errors",
			seed.Name, summary.Created, summary.Skipped, len(summary.Errors))
		for _, row := range summary.Rows {
			if row.Message != "" {
				log.Printf("  row %d (%s): %s", row.RowNumber, row.Outcome, row.Message)
			}
		}
	}

	return nil
}

func importRequest(projectID uuid.UUID, seed ProjectSeed) *service.ImportRequest {
	req := &service.ImportRequest{
		ProjectID: projectID,
		Filename:  "seed:" + seed.Name,
		Mapping: service.ColumnMapping{
			ComponentID:   "component_id",
			Drawing:       "drawing",
			Type:          "type",
			Description:   "description",
			Spec:          "spec",
			Size:          "size",
			Area:          "area",
			System:        "system",
			TestPackage:   "test_package",
			QuantityTotal: "quantity",
		},
		Options: service.ImportOptions{SkipDuplicates: true},
	}
	for i, c := range seed.Components {
		req.Rows = append(req.Rows, service.ImportRow{
			RowNumber: i + 1,
			Values: map[string]string{
				"component_id": c.ComponentID,
				"drawing":      c.Drawing,
				"type":         c.Type,
				"description":  c.Description,
				"spec":         c.Spec,
				"size":         c.Size,
				"area":         c.Area,
				"system":       c.System,
				"test_package": c.TestPackage,
				"quantity":     c.Quantity,
			},
		})
	}
	return req
}

func loadProjects(dataDir string) ([]ProjectSeed, error) {
	path := filepath.Join(dataDir, "projects.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	var file ProjectsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return file.Projects, nil
}

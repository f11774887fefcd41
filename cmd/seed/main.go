// Command seed loads companies, jobs, blog posts and users from a YAML file,
// and deactivates jobs.
//
//	seed -file fixtures.yaml
//	seed -deactivate-job <job id>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/database"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/services"
	"gorm.io/gorm"
)

type fixtures struct {
	Users     []dtos.UserCreationRequest     `yaml:"users"`
	Companies []dtos.CompanyCreationRequest  `yaml:"companies"`
	Jobs      []jobFixture                   `yaml:"jobs"`
	Posts     []dtos.BlogPostCreationRequest `yaml:"posts"`
}

// jobFixture names its company instead of carrying an id.
type jobFixture struct {
	Company                 string `yaml:"company"`
	dtos.JobCreationRequest `yaml:",inline"`
}

type summary struct {
	users, companies, jobs, posts int
}

func (s summary) String() string {
	return fmt.Sprintf("%d users, %d companies, %d jobs, %d posts", s.users, s.companies, s.jobs, s.posts)
}

type seeder struct {
	users     *services.UserService
	companies *services.CompanyService
	jobs      *services.JobService
	posts     *services.BlogService
	logger    *log.Logger
}

func newSeeder(db *gorm.DB, logger *log.Logger) *seeder {
	return &seeder{
		users:     services.NewUserService(db),
		companies: services.NewCompanyService(db),
		jobs:      services.NewJobService(db),
		posts:     services.NewBlogService(db),
		logger:    logger,
	}
}

func parseFixtures(data []byte) (*fixtures, error) {
	var fx fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}
	return &fx, nil
}

// load creates every fixture in order, stopping at the first failure.
func (s *seeder) load(ctx context.Context, fx *fixtures) (summary, error) {
	var done summary

	for i := range fx.Users {
		if _, err := s.users.CreateUser(ctx, &fx.Users[i]); err != nil {
			return done, fmt.Errorf("user %q: %w", fx.Users[i].Username, err)
		}
		done.users++
	}

	companyIDs := make(map[string]string, len(fx.Companies))
	for i := range fx.Companies {
		company, err := s.companies.CreateCompany(ctx, &fx.Companies[i])
		if err != nil {
			return done, fmt.Errorf("company %q: %w", fx.Companies[i].Name, err)
		}
		companyIDs[strings.ToLower(company.Name)] = company.ID
		done.companies++
	}

	for i := range fx.Jobs {
		job := &fx.Jobs[i]
		if job.CompanyID == "" {
			id, err := s.resolveCompany(ctx, companyIDs, job.Company)
			if err != nil {
				return done, fmt.Errorf("job %q: %w", job.Title, err)
			}
			job.CompanyID = id
		}
		if _, err := s.jobs.CreateJob(ctx, &job.JobCreationRequest); err != nil {
			return done, fmt.Errorf("job %q: %w", job.Title, err)
		}
		done.jobs++
	}

	for i := range fx.Posts {
		post, err := s.posts.CreatePost(ctx, &fx.Posts[i])
		if err != nil {
			return done, fmt.Errorf("post %q: %w", fx.Posts[i].Title, err)
		}
		s.logger.Printf("created post /blog/%s", post.Slug)
		done.posts++
	}

	return done, nil
}

func (s *seeder) resolveCompany(ctx context.Context, created map[string]string, name string) (string, error) {
	if id, ok := created[strings.ToLower(strings.TrimSpace(name))]; ok {
		return id, nil
	}
	company, err := s.companies.FindByName(ctx, name)
	if errors.Is(err, services.ErrNotFound) {
		return "", fmt.Errorf("unknown company %q", name)
	}
	if err != nil {
		return "", err
	}
	return company.ID, nil
}

func main() {
	file := flag.String("file", "", "YAML fixtures to load")
	deactivate := flag.String("deactivate-job", "", "id of a job to take off the board")
	migrate := flag.Bool("migrate", true, "run migrations first")
	flag.Parse()

	if *file == "" && *deactivate == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	logger := cfg.Logger

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if *migrate {
		if err := database.Migrate(db); err != nil {
			logger.Fatalf("Migration failed: %v", err)
		}
	}

	ctx := context.Background()
	s := newSeeder(db, logger)

	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			logger.Fatalf("Reading %s: %v", *file, err)
		}
		fx, err := parseFixtures(data)
		if err != nil {
			logger.Fatal(err)
		}
		// All fixtures or none.
		err = db.Transaction(func(tx *gorm.DB) error {
			done, err := newSeeder(tx, logger).load(ctx, fx)
			if err == nil {
				logger.Printf("Seeded %s", done)
			}
			return err
		})
		if err != nil {
			logger.Fatalf("Seeding failed, nothing was written: %v", err)
		}
	}

	if *deactivate != "" {
		if err := s.jobs.Deactivate(ctx, *deactivate); err != nil {
			logger.Fatalf("Deactivating job %s: %v", *deactivate, err)
		}
		logger.Printf("Job %s deactivated", *deactivate)
	}
}

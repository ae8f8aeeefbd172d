package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SAADSTACK/ergoassess/internal/assessments"
	"github.com/SAADSTACK/ergoassess/internal/images"
	"github.com/SAADSTACK/ergoassess/internal/shared/config"
	"github.com/SAADSTACK/ergoassess/internal/shared/server"
	"github.com/SAADSTACK/ergoassess/internal/shared/storage/db"
	"github.com/SAADSTACK/ergoassess/internal/shared/storage/object"
	localstore "github.com/SAADSTACK/ergoassess/internal/shared/storage/object/local"
	s3store "github.com/SAADSTACK/ergoassess/internal/shared/storage/object/s3"
	"github.com/SAADSTACK/ergoassess/internal/vision"
	visionopenai "github.com/SAADSTACK/ergoassess/internal/vision/openai"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Vision vision.Estimator

	ImagesRepo      images.ImagesRepo
	AssessmentsRepo assessments.Repo

	ImagesService      *images.Service
	AssessmentsService *assessments.Service

	ImagesHandler      *images.Handler
	AssessmentsHandler *assessments.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	estimator, err := buildVision(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Vision: estimator,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		ImagesHandler:      app.ImagesHandler,
		AssessmentsHandler: app.AssessmentsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildVision(cfg config.Config) (vision.Estimator, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.VisionProvider)) {
	case "":
		// Direct angle submissions still work without a provider.
		return nil, nil
	case "openai":
		return visionopenai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.VisionModel)
	case "placeholder":
		return vision.PlaceholderEstimator{}, nil
	default:
		return nil, fmt.Errorf("unknown vision provider %q", cfg.VisionProvider)
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var imagesRepo images.ImagesRepo
	var assessmentsRepo assessments.Repo

	if app.DB != nil {
		imagesRepo = &images.PGRepo{DB: app.DB}
		assessmentsRepo = &assessments.PGRepo{DB: app.DB}
	} else {
		imagesRepo = images.NewMemoryRepo()
		assessmentsRepo = assessments.NewMemoryRepo()
	}

	imagesSvc := &images.Service{
		Store: app.Store,
		Repo:  imagesRepo,
	}
	assessmentsSvc := &assessments.Service{
		Repo:   assessmentsRepo,
		Images: imagesSvc,
		Vision: app.Vision,
	}

	app.ImagesRepo = imagesRepo
	app.AssessmentsRepo = assessmentsRepo
	app.ImagesService = imagesSvc
	app.AssessmentsService = assessmentsSvc
	app.ImagesHandler = images.NewHandler(imagesSvc)
	app.AssessmentsHandler = assessments.NewHandler(assessmentsSvc)

	if app.ImagesHandler == nil || app.AssessmentsHandler == nil {
		return errors.New("failed to initialize handlers")
	}

	return nil
}

package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"

	"timetable-backend/internal/config"
	"timetable-backend/internal/database"
	"timetable-backend/internal/handlers"
	"timetable-backend/internal/repositories"
	"timetable-backend/internal/routes"
	"timetable-backend/internal/services"
)

// NewServer wires the whole application: pool, migrations, weekday seed,
// repositories, services, handlers, routes. A store that cannot be opened or
// migrated is the one fatal condition.
func NewServer() (*http.Server, *pgxpool.Pool) {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	scheduleCfg, err := config.LoadSchedule()
	if err != nil {
		log.Fatalf("invalid schedule configuration: %v", err)
	}

	if err := database.EnsureDatabaseExists(); err != nil {
		log.Fatalf("failed to ensure database exists: %v", err)
	}

	pool, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if err := database.SeedWeekdays(pool, scheduleCfg.WeekdayNames()); err != nil {
		log.Fatalf("failed to seed weekdays: %v", err)
	}

	// Dependency injection
	teacherRepo := repositories.NewTeacherRepository(pool)
	subjectRepo := repositories.NewSubjectRepository(pool)
	sectionRepo := repositories.NewSectionRepository(pool)
	roomRepo := repositories.NewRoomRepository(pool)
	weekdayRepo := repositories.NewWeekdayRepository(pool)
	assignmentRepo := repositories.NewAssignmentRepository(pool)
	reportRepo := repositories.NewReportRepository(pool)

	catalogService := services.NewCatalogService(teacherRepo, subjectRepo, sectionRepo, roomRepo, weekdayRepo)
	conflictService := services.NewConflictService(assignmentRepo, scheduleCfg)
	scheduleService := services.NewScheduleService(pool, assignmentRepo, conflictService)
	reportService := services.NewReportService(reportRepo, sectionRepo, weekdayRepo)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())
	routes.RegisterRoutes(router, catalogHandler, scheduleHandler, reportHandler)

	// Create and configure the HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, pool
}

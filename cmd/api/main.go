package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/workforce360/workforce-backend-go/internal/config"
	appHTTP "github.com/workforce360/workforce-backend-go/internal/handler/http"
	"github.com/workforce360/workforce-backend-go/internal/pkg/database"
	"github.com/workforce360/workforce-backend-go/internal/pkg/jwt"
	"github.com/workforce360/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workforce360/workforce-backend-go/internal/service/attendance"
	serviceAuth "github.com/workforce360/workforce-backend-go/internal/service/auth"
	dashboardService "github.com/workforce360/workforce-backend-go/internal/service/dashboard"
	leaveService "github.com/workforce360/workforce-backend-go/internal/service/leave"
	taskService "github.com/workforce360/workforce-backend-go/internal/service/task"
	userService "github.com/workforce360/workforce-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	ctx := context.Background()
	if err := db.Migrate(ctx, cfg.App.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}
	if err := postgresql.SeedDefaultAdmin(ctx, db, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, cfg.Seed.AdminName); err != nil {
		log.Fatal("Failed to seed default admin: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	taskSvc := taskService.NewTaskService(taskRepo, userRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	userSvc := userService.NewUserService(userRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
		},
		JWTService,
		authHandler,
		attendanceHandler,
		taskHandler,
		leaveHandler,
		userHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

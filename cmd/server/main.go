package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"lifehub/config"
	"lifehub/database"
	"lifehub/entities"
	"lifehub/router"

	"lifehub/pkg/auth"
	"lifehub/pkg/bin"
	"lifehub/pkg/health"
	"lifehub/pkg/heroimage"
	"lifehub/pkg/resource"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB + automigrate + seed
	db := database.Open(cfg)

	// 3) Secret gate, synced with the environment at boot
	gate := auth.NewGate(auth.NewSettingsStore(db))
	if err := gate.Init(context.Background(), cfg.AdminSecret); err != nil {
		log.Fatalf("init secret gate: %v", err)
	}

	// 4) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.CORS())

	// 5) Bin + resource handlers, one per kind
	binSvc := bin.New(db)
	diary := resource.NewHandler(resource.NewStore[entities.DiaryEntry](db, resource.KindDiary), binSvc)
	plans := resource.NewHandler(resource.NewStore[entities.PlannerTask](db, resource.KindPlans), binSvc)
	categories := resource.NewHandler(resource.NewStore[entities.PlannerCategory](db, resource.KindPlannerCategories), binSvc)
	experiments := resource.NewHandler(resource.NewStore[entities.Experiment](db, resource.KindExperiments), binSvc)
	movies := resource.NewHandler(resource.NewStore[entities.Movie](db, resource.KindMovies), binSvc)
	recipes := resource.NewHandler(resource.NewStore[entities.Recipe](db, resource.KindRecipes), binSvc)
	courses := resource.NewHandler(resource.NewStore[entities.Course](db, resource.KindCourses), binSvc)
	travel := resource.NewHandler(resource.NewStore[entities.TravelPlan](db, resource.KindTravel), binSvc)
	strategy := resource.NewHandler(resource.NewStore[entities.StrategicPlan](db, resource.KindStrategy), binSvc)
	library := resource.NewHandler(resource.NewStore[entities.LibraryItem](db, resource.KindLibrary), binSvc)
	documents := resource.NewHandler(resource.NewStore[entities.Document](db, resource.KindDocuments), binSvc)

	// 6) Remaining controllers
	binCtrl := bin.NewController(binSvc)
	heroCtrl := heroimage.NewController(heroimage.NewStore(db))
	authCtrl := auth.NewController(gate)
	healthCtrl := health.NewController(db)

	// 7) Router
	r := router.New(
		e,
		gate,
		healthCtrl,
		diary, plans, categories, experiments, movies, recipes,
		courses, travel, strategy, library, documents,
		binCtrl, heroCtrl, authCtrl,
	)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/cartload/cartload/cmd/cartloadd/handlers"
	kconf "github.com/cartload/cartload/pkg/configs/server"
	kdb "github.com/cartload/cartload/pkg/domain/cartload/db"
	kpg "github.com/cartload/cartload/pkg/domain/cartload/db/postgres"
	"github.com/cartload/cartload/pkg/utils/echoutil"
	"github.com/cartload/cartload/pkg/utils/filewatch"
)

func main() {

	configPath := flag.String("config-path", "", "server config path")
	dotenv := flag.String("dotenv", "", "path to .env file overriding the config (optional)")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	flag.Parse()

	e := echo.New()
	e.Pre(middleware.AddTrailingSlash())

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	// read configfile
	if *dotenv != "" {
		kconf.LoadDotEnv(*dotenv)
	} else {
		kconf.LoadDotEnv()
	}
	conf, err := kconf.LoadServerConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}
	conf = conf.WithEnvOverrides()

	{
		// restart (by the supervisor) when the config file changes
		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), *configPath)
		if err != nil {
			log.Fatalf("can not watch configration: %s", err)
		}
		defer cancel()
		context.AfterFunc(ctx, func() {
			log.Println("config file is updated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by config update: %s", err)
			}
		})
	}

	// get dbaccesor
	ctx := context.Background()
	db, err := getDBAccesor(ctx, conf.Database())
	if err != nil {
		log.Fatalf("can not connect to database: %s", err)
	}
	defer db.Close()

	if err := db.Schema().Ensure(ctx); err != nil {
		log.Fatalf("can not prepare database schema: %s", err)
	}

	// handlers
	{
		orderId := "orderId"
		e.GET("/api/sales/summary/", handlers.GetSalesSummaryHandler(db.Order()))
		e.GET("/api/sales/categories/", handlers.GetCategoryBreakdownHandler(db.Order()))
		e.GET("/api/sales/customers/", handlers.GetCustomerStatsHandler(db.Order()))
		e.GET("/api/sales/products/", handlers.GetProductStatsHandler(db.Order()))
		e.GET("/api/sales/orders/:orderId/", handlers.GetOrderHandler(db.Order(), orderId))
	}

	{
		participantId := "participantId"
		e.POST("/api/trials/", handlers.RegisterTrialHandler(db.Trial()))
		e.GET("/api/trials/stats/", handlers.GetTrialStatsHandler(db.Trial()))
		e.GET("/api/trials/scenarios/", handlers.GetScenarioStatsHandler(db.Trial()))
		e.GET("/api/trials/recent/", handlers.GetRecentTrialsHandler(db.Trial()))
		e.GET("/api/trials/participants/:participantId/", handlers.GetParticipantHandler(db.Trial(), participantId))
		e.GET("/api/trials/fatigue/", handlers.GetFatigueImpactHandler(db.Trial()))
		e.GET("/api/trials/weather/", handlers.GetWeatherImpactHandler(db.Trial()))
	}

	e.GET("/health/", handlers.HealthHandler(db))

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	port := fmt.Sprintf(":%d", conf.Port())
	cert, key := *pcert, *pkey
	if cert != "" && key != "" {
		e.Logger.Fatal(e.StartTLS(port, cert, key))
	} else {
		e.Logger.Fatal(e.Start(port))
	}
}

func getDBAccesor(ctx context.Context, dburi string) (kdb.CartloadDatabase, error) {
	return kpg.New(ctx, dburi)
}

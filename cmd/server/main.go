package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/EventStore/EventStore-Client-Go/v4/esdb"
	"github.com/RoyceAzure/lab/schoolshop/internal/api"
	"github.com/RoyceAzure/lab/schoolshop/internal/api/handler"
	"github.com/RoyceAzure/lab/schoolshop/internal/api/router"
	"github.com/RoyceAzure/lab/schoolshop/internal/cart"
	"github.com/RoyceAzure/lab/schoolshop/internal/config"
	"github.com/RoyceAzure/lab/schoolshop/internal/infra/consumer"
	"github.com/RoyceAzure/lab/schoolshop/internal/infra/producer"
	"github.com/RoyceAzure/lab/schoolshop/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/schoolshop/internal/infra/repository/eventdb"
	"github.com/RoyceAzure/lab/schoolshop/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/schoolshop/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	cf := config.GetConfig()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	conn, err := db.GetDbConn(cf.DbName, cf.DbHost, cf.DbPort, cf.DbUser, cf.DbPas)
	if err != nil {
		log.Fatal(err)
	}
	dbDao := db.NewDbDao(conn)
	if err := dbDao.InitMigrate(); err != nil {
		log.Fatal(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cf.RedisAddr,
		Password: cf.RedisPas,
	})
	cartCache := redis_repo.NewCartRepo(rdb, time.Duration(cf.CartTTLHours)*time.Hour)

	sessions := cart.NewSessionManager()
	cartService := service.NewCartService(sessions, cartCache)

	// 訂單事件日誌，沒設定就不寫
	var journal service.OrderEventJournal
	if cf.EventDBUrl != "" {
		settings, err := esdb.ParseConnectionString(cf.EventDBUrl)
		if err != nil {
			log.Fatal(err)
		}
		esdbClient, err := esdb.NewClient(settings)
		if err != nil {
			log.Fatal(err)
		}
		journal = eventdb.NewEventDao(esdbClient)
	}

	var brokers []string
	if cf.KafkaBrokers != "" {
		brokers = strings.Split(cf.KafkaBrokers, ",")
	}

	var eventProducer producer.Producer
	if len(brokers) > 0 {
		orderProducer := producer.NewOrderEventProducer(brokers, cf.KafkaTopic)
		defer orderProducer.Close()
		eventProducer = orderProducer
	}

	orderRepo := db.NewOrderRepo(dbDao)
	schoolRepo := db.NewSchoolRepo(dbDao)
	productRepo := db.NewProductRepo(dbDao)
	userRepo := db.NewUserRepo(dbDao)

	orderService := service.NewOrderService(orderRepo, cartService, journal, eventProducer, &logger)
	overviewService := service.NewOverviewService(orderRepo)
	catalogService := service.NewCatalogService(schoolRepo, productRepo)
	userService := service.NewUserService(userRepo)

	server := api.NewServer(
		handler.NewCartHandler(cartService, orderService),
		handler.NewOrderHandler(orderService, overviewService),
		handler.NewCatalogHandler(catalogService, userService),
	)
	r := router.SetupRouter(server, &logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cf.ServerPort),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("port", cf.ServerPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if len(brokers) > 0 && cf.KafkaGroupID != "" {
		orderEventConsumer := consumer.NewOrderEventConsumer(brokers, cf.KafkaTopic, cf.KafkaGroupID, orderService, &logger)
		g.Go(func() error {
			err := orderEventConsumer.Start(gctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
		g.Go(func() error {
			<-gctx.Done()
			orderEventConsumer.Stop()
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		return
	}
	logger.Info().Msg("server shutdown completed")
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/hashi-api/api"
	api_i "github.com/beka-birhanu/hashi-api/api/i"
	"github.com/beka-birhanu/hashi-api/api/identity"
	puzzleapi "github.com/beka-birhanu/hashi-api/api/puzzle"
	"github.com/beka-birhanu/hashi-api/config"
	"github.com/beka-birhanu/hashi-api/generator"
	"github.com/beka-birhanu/hashi-api/infrastruture/leaderboard"
	"github.com/beka-birhanu/hashi-api/infrastruture/lock"
	"github.com/beka-birhanu/hashi-api/infrastruture/pbsolver"
	"github.com/beka-birhanu/hashi-api/infrastruture/repo"
	"github.com/beka-birhanu/hashi-api/infrastruture/token"
	"github.com/beka-birhanu/hashi-api/logging"
	"github.com/beka-birhanu/hashi-api/service"
	"github.com/beka-birhanu/hashi-api/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Leaderboard entries expire after two days, well past their day's window.
const leaderboardTTLSeconds = 2 * 24 * 60 * 60

// Global variables for dependencies
var (
	mongoClient      *mongo.Client
	redisClient      *redis.Client
	userRepo         i.UserRepo
	puzzleRepo       i.PuzzleRepo
	jwtTokenizer     i.Tokenizer
	authService      i.Authenticator
	puzzleService    i.PuzzleService
	dailyChallenge   i.DailyChallenge
	authController   api_i.Controller
	puzzleController api_i.Controller
	router           *api.Router
	appLogger        i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	puzzleRepo = repo.NewPuzzleRepo(client, config.Envs.DBName, "puzzles")
	appLogger.Info("Repositories initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initPuzzleService() {
	puzzleLogger, err := logging.New("PUZZLE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating puzzle logger: %v", err))
		os.Exit(1)
	}

	puzzleService, err = service.NewPuzzleService(service.PuzzleConfig{
		Generator:  generator.New(nil),
		Engine:     pbsolver.New(),
		PuzzleRepo: puzzleRepo,
		Logger:     puzzleLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating puzzle service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Puzzle service initialized")
}

func initDailyChallenge() {
	dailyLogger, err := logging.New("DAILY", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating daily logger: %v", err))
		os.Exit(1)
	}

	board, err := leaderboard.NewRedisLeaderboard(redisClient, leaderboardTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard: %v", err))
		os.Exit(1)
	}

	locker, err := lock.NewRedsyncLocker(redisClient)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating locker: %v", err))
		os.Exit(1)
	}

	dailyChallenge, err = service.NewDailyService(service.DailyConfig{
		Puzzles:    puzzleService,
		PuzzleRepo: puzzleRepo,
		UserRepo:   userRepo,
		Board:      board,
		Locker:     locker,
		Logger:     dailyLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating daily challenge: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Daily challenge initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	puzzleController, err = puzzleapi.NewPuzzleController(puzzleService, dailyChallenge)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating puzzle controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, puzzleController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logging.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initJWTTokenizer()
	initAuthService()
	initPuzzleService()
	initDailyChallenge()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}

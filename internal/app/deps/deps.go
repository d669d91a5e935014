package deps

import (
	"apptrack/internal/config"
	"apptrack/internal/core/domain/appointment"
	dl "apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/notification"
	"apptrack/internal/core/domain/quickadd"
	drl "apptrack/internal/core/domain/ratelimiter"
	"apptrack/internal/implementations/appointmentstore"
	"apptrack/internal/implementations/identity"
	"apptrack/internal/implementations/logging"
	"apptrack/internal/implementations/nlqoracle"
	"apptrack/internal/implementations/notificationinbox"
	"apptrack/internal/implementations/ratelimiter"
	"apptrack/internal/implementations/toastbroadcaster"
	"apptrack/internal/rabbitmq"
	"apptrack/internal/rabbitmq/publishers/notificationevents"
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	AppointmentRepository appointment.Repository
	IdentityGenerator     appointment.IdentityGenerator
	Inbox                 notification.Inbox
	ToastBroadcaster      notification.ToastBroadcaster
	SSEBridge             *toastbroadcaster.SSEBridge
	EventPublisher        notification.EventPublisher

	RateLimiter drl.RateLimiter
	Oracle      quickadd.Oracle
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.AppointmentRepository = appointmentstore.New()
	deps.IdentityGenerator = identity.NewUUID()
	deps.Inbox = notificationinbox.New(notificationinbox.DefaultCapacity)

	broadcaster := toastbroadcaster.New()
	deps.ToastBroadcaster = broadcaster
	deps.SSEBridge = toastbroadcaster.NewSSEBridge(deps.Logger, deps.SseServer, broadcaster)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.Oracle = nlqoracle.NewGemini(
		deps.Logger,
		nil,
		deps.Config.Gemini.APIKey,
		deps.Config.Gemini.Model,
		deps.Config.Gemini.BaseURL,
	)

	closeEventPublisher := deps.initEventPublisher()

	return deps, func() {
		deps.SSEBridge.Close()

		closeFuncs := []func(){
			closeSseServer,
			closeEventPublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

// initRabbitmqConnection is optional, the app runs without a broker and
// simply skips publishing notification events downstream.
func (deps *Deps) initRabbitmqConnection() func() {
	if deps.Config.RabbitMQ.URL == "" {
		deps.Logger.Info(context.Background(), "RabbitMQ is disabled.")
		return func() {}
	}

	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitMQ.URL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initEventPublisher() func() {
	if deps.Rabbitmq == nil {
		return func() {}
	}

	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	publisher, err := notificationevents.New(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitMQ.Exchange,
		"",
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ publisher.", dl.Entry("err", err))
		panic(err)
	}
	deps.EventPublisher = publisher

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down notification event publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Notification event publisher shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = true
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

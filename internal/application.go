package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-multierror"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/raw"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/rest"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/socket"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/tui"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) (err error) {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, closeStorage, err := openStorage(ctx, log, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeStorage(); closeErr != nil {
			err = multierror.Append(err, closeErr)
		}
	}()

	engine := minimax.New(rand.New(rand.NewSource(conf.RandomSeed()))) //nolint: gosec // it's ok
	bot := service.NewBotService(logger, engine)
	controller := tictactoe.NewGameController(logger, bot, gameRepo)
	sessions := usecase.NewSessionManager(logger, controller)

	switch conf.Backend {
	case config.BackendSocket, config.BackendWebsocket:
		return runServers(ctx, logger, conf, sessions, gameRepo)
	default:
		return runLocal(ctx, logger, conf, sessions, os.Stdin, os.Stdout)
	}
}

// openStorage returns the snapshot store and a func releasing it.
func openStorage(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func() error, error) {
	if conf.Storage != config.StorageRedis {
		log.Info("Keeping game snapshots in memory")

		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	}

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	log.Info("Keeping game snapshots in redis", "addr", conf.Redis.GetRedisAddr())

	return repository.NewGameRepository(redisStorage.Connection), redisStorage.Close, nil
}

type sessionRunner interface {
	Run(ctx context.Context, comm tictactoe.Communicator) (entity.Tally, error)
}

// runLocal plays on the process's own terminal until the player leaves.
func runLocal(ctx context.Context, logger *slog.Logger, conf *config.Config, sessions sessionRunner, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app", "backend", conf.Backend)

	var comm tictactoe.Communicator

	switch conf.Backend {
	case config.BackendRaw:
		comm = raw.NewCommunicator(logger, in, out)
	case config.BackendTUI:
		scr, err := tui.OpenScreen()
		if err != nil {
			return fmt.Errorf("could not open screen: %w", err)
		}
		defer scr.Close()

		comm = tui.NewCommunicator(logger, scr, conf.DefaultDifficulty())
	default:
		comm = terminal.NewCommunicator(logger, in, out)
	}

	tally, err := sessions.Run(ctx, comm)

	log.Info("Session over", "machine_wins", tally.MachineWins, "opponent_wins", tally.OpponentWins, "draws", tally.Draws)

	switch {
	case err == nil,
		errors.Is(err, tui.ErrQuit),
		errors.Is(err, terminal.ErrInputClosed),
		errors.Is(err, raw.ErrInputClosed),
		errors.Is(err, context.Canceled):
		return nil
	default:
		return fmt.Errorf("session failed: %w", err)
	}
}

// runServers serves network players and the REST API until ctx is done or
// one of them fails. Every server's error is reported.
func runServers(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	sessions sessionRunner,
	gameRepo repository.GameRepository,
) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		name string
		err  error
	}

	results := make(chan result, 2)

	// run HTTP server
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		results <- result{name: "HTTP server", err: rest.Start(ctx, logger, conf.HTTPPort, rest.NewHandlers(logger, gameRepo))}
	}()

	if conf.Backend == config.BackendWebsocket {
		go func() {
			log.Info("Starting WebSocket server", "port", conf.WebsocketPort)
			results <- result{name: "WebSocket server", err: websocket.New(logger, sessions).Start(ctx, conf.WebsocketPort)}
		}()
	} else {
		go func() {
			log.Info("Starting socket server", "port", conf.SocketPort, "wire_offset", conf.WireOffset)
			results <- result{name: "socket server", err: socket.New(logger, sessions, conf.WireOffset).Start(ctx, conf.SocketPort)}
		}()
	}

	var errs error

	for range 2 {
		res := <-results
		if res.err != nil {
			log.Error("Server failed", "server", res.name, "error", res.err)
			errs = multierror.Append(errs, fmt.Errorf("%s error: %w", res.name, res.err))
		}

		// one server down takes the other with it
		cancel()
	}

	if errs == nil {
		log.Info("Application context canceled, shutting down")
	}

	return errs
}

package commands

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rog-golang-buddies/userboard/config"
	"github.com/rog-golang-buddies/userboard/internal/mockapi"
)

func runMockAPI(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	if cCtx.IsSet("port") {
		cfg.Mock.Port = cCtx.String("port")
	}
	if _, err := strconv.ParseUint(cfg.Mock.Port, 10, 16); err != nil {
		return ErrInvalidPort
	}

	log, err := newLogger(cfg, "stderr")
	if err != nil {
		return err
	}
	defer log.Sync()

	sCtx, cancel := signalContext(cCtx.Context)
	defer cancel()

	return serve(sCtx, newServer(sCtx, cfg, log), log)
}

func newServer(ctx context.Context, cfg *config.Config, log *zap.Logger) *http.Server {
	c := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
	}

	h := mockapi.New(mockapi.WithLogger(log))

	return &http.Server{
		Addr:    ":" + cfg.Mock.Port,
		Handler: cors.New(c).Handler(h),
		// max time to read request from the client
		ReadTimeout: 10 * time.Second,
		// max time to write response to the client
		WriteTimeout: 10 * time.Second,
		// max time for connections using TCP Keep-Alive
		IdleTimeout: 120 * time.Second,
		BaseContext: func(_ net.Listener) context.Context { return ctx },
		ErrorLog:    zap.NewStdLog(log),
	}
}

func serve(ctx context.Context, srv *http.Server, log *zap.Logger) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// Run the server
		log.Info("mock API starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sCtx)
	})

	return g.Wait()
}

// initConfig writes the effective configuration to --config or the default
// file. A target that does not exist yet is not read.
func initConfig(cCtx *cli.Context) error {
	fp := cCtx.String("config")
	if fp == "" {
		fp = config.FileName
	}

	src := fp
	if _, err := os.Stat(fp); err == nil {
		if !cCtx.Bool("force") {
			return errors.Wrap(ErrConfigExists, fp)
		}
	} else {
		src = ""
	}

	cfg, err := loadConfigFrom(cCtx, src)
	if err != nil {
		return err
	}

	if err := cfg.WriteToFile(fp); err != nil {
		return err
	}

	_, err = fmt.Fprintln(cCtx.App.Writer, "wrote "+fp)
	return err
}

package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ticketlot/admin-gateway/internal/api"
	"github.com/ticketlot/admin-gateway/internal/config"
	"github.com/ticketlot/admin-gateway/internal/logger"
	"github.com/ticketlot/admin-gateway/internal/session"
	"github.com/ticketlot/admin-gateway/internal/upstream"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	if err = logger.SetLevel(conf.API.LogLevel); err != nil {
		return fmt.Errorf("failed to set log level -> %w", err)
	}

	store, err := session.OpenStore(conf.Session.TokenFile)
	if err != nil {
		return fmt.Errorf("failed to open token store -> %w", err)
	}

	timeout := time.Duration(conf.Upstream.TimeoutSeconds) * time.Second
	client := upstream.NewClient(conf.Upstream.BaseURL, store, timeout)
	sess := session.New(store, client)

	// A persisted token is validated once at startup. Failure here means
	// the platform is unreachable, not that the token is bad.
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err = sess.Init(ctx); err != nil {
		zap.L().Warn("could not validate persisted session, continuing anonymous", zap.Error(err))
	}

	s := api.NewServer(conf, sess, client)
	defer s.Close()

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

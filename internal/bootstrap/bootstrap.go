package bootstrap

import (
	"errors"
	"log/slog"
	"net/url"

	upstreamclient "github.com/salesboard/salesboard/internal/client/upstream"
	"github.com/salesboard/salesboard/internal/config"
	"github.com/salesboard/salesboard/pkg/logger"
)

type Bootstrap struct {
	Log      *slog.Logger
	Upstream *upstreamclient.Adapter
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewStdoutHandler)

	if cfg.UpstreamURL == "" {
		return bs, errors.New("UPSTREAM_URL is not set")
	}
	if _, err := url.ParseRequestURI(cfg.UpstreamURL); err != nil {
		return bs, err
	}
	bs.Upstream = upstreamclient.NewAdapter(cfg.UpstreamURL, cfg.FetchTimeout)

	return bs, nil
}

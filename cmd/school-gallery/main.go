package main

import (
	"context"
	"log"
	"os"
	"syscall"
	"time"

	"cloud.google.com/go/compute/metadata"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/lifecycle"
	"github.com/twitsprout/tools/zap"

	"school-gallery/internal/http"
	"school-gallery/internal/remote"
	"school-gallery/internal/session"
)

var version string

type variables struct {
	Addr           string        `required:"true" envconfig:"addr"`
	GalleryAPIURL  string        `required:"true" envconfig:"gallery_api_url"`
	GalleryTimeout time.Duration `required:"false" envconfig:"gallery_timeout"`
	SessionTTL     time.Duration `required:"false" envconfig:"session_ttl"`
	LogLevel       string        `required:"false" envconfig:"log_level"`
	AppName        string        `required:"true" envconfig:"app_name"`
}

var v variables

func init() {
	_ = godotenv.Load()

	if metadata.OnGCE() {
		port := os.Getenv("PORT")
		err := os.Setenv("SCHOOL_GALLERY_ADDR", ":"+port)
		if err != nil {
			log.Fatal(err)
		}
	}

	envconfig.MustProcess("school-gallery", &v)
	if v.LogLevel == "" {
		v.LogLevel = "info"
	}
}

func main() {
	logger := zap.New("school-gallery", version, os.Stdout)
	if err := logger.SetLevel(v.LogLevel); err != nil {
		logger.Error("failed to set log level", "error", err.Error())
	}

	svc, err := remote.New(remote.Config{
		BaseURL: v.GalleryAPIURL,
		Timeout: v.GalleryTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to create gallery service client", "error", err.Error())
		os.Exit(1)
	}

	ctx := context.Background()

	lc, ctx := lifecycle.New(ctx, logger)
	lc.Start("school-gallery root context", func() error {
		<-ctx.Done()
		return ctx.Err()
	})

	h := http.Handler{
		Logger:   logger,
		Version:  version,
		AppName:  v.AppName,
		Sessions: session.NewRegistry(svc, v.SessionTTL, nil, logger),
	}
	server := httputils.NewServer(v.Addr, h.Handler())
	lc.StartServer(server)
	lc.StartSignals(syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	_ = lc.Wait(15 * time.Second)
}

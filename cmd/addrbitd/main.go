package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benpop/lua-addrbit/addrbit"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopmentConfig().Build()
	}
	return zap.NewProductionConfig().Build()
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	cfg.override(c)

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	module := addrbit.New()
	module.Radix = cfg.Radix
	module.Strict = cfg.Strict
	module.Logger = logger

	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: newRouter(module, logger),
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	errc := make(chan error, 1)
	go func() {
		logger.Info("start http server", zap.String("listen", cfg.Listen),
			zap.Int("radix", cfg.Radix), zap.Bool("strict", cfg.Strict))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err = <-errc:
		return err
	case sig := <-sc:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func main() {
	app := cli.NewApp()
	app.Name = "addrbitd"
	app.Usage = "serve address bit operations over http"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Usage: "toml config file"},
		cli.StringFlag{Name: "listen", Value: ":8081"},
		cli.IntFlag{Name: "radix", Usage: "radix of textual values, 0 infers it from the prefix"},
		cli.BoolFlag{Name: "strict", Usage: "reject malformed values instead of reading them as zero"},
		cli.BoolFlag{Name: "debug"},
	}
	app.Action = serve

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exprc/exprc/usecases"
	"github.com/exprc/exprc/utils"
)

type AppConfiguration struct {
	env  string
	port string
}

func runServer(ctx context.Context, conf AppConfiguration, u usecases.Usecases) {
	logger := utils.LoggerFromContext(ctx)

	router := initRouter(ctx, conf, u)
	srv := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%s", conf.port),
		Handler: router,
	}

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", conf.port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorContext(ctx, "error serving the app: "+err.Error())
		}
		logger.InfoContext(ctx, "server returned")
	}()

	// Block until we receive our signal.
	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(ctx, "error shutting down the server: "+err.Error())
	}
}

// runCompile compiles one expression, prints the emitted three-address code
// to stdout one instruction per line, then the final value.
func runCompile(ctx context.Context, u usecases.Usecases, source string) error {
	result, err := u.NewCompilerUsecase().Compile(ctx, source)
	if err != nil {
		return err
	}

	if len(result.Code) > 0 {
		fmt.Println(result.Code.String())
	}
	fmt.Println(result.Value)
	return nil
}

func main() {
	conf := AppConfiguration{
		env:  utils.GetStringEnv("ENV", "development"),
		port: utils.GetStringEnv("PORT", "8080"),
	}

	var logger *slog.Logger
	if conf.env == "development" {
		logger = slog.New(utils.NewLocalDevHandler(os.Stderr))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	shouldRunServer := flag.Bool("server", false, "Run the HTTP server")
	shouldRunRepl := flag.Bool("repl", false, "Run the interactive REPL")
	flag.Parse()

	u := usecases.NewUsecases()

	switch {
	case *shouldRunServer:
		runServer(ctx, conf, u)
	case *shouldRunRepl:
		runRepl(ctx, u)
	case flag.NArg() > 0:
		if err := runCompile(ctx, u, flag.Arg(0)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: exprc [-server | -repl | <expression>]")
		os.Exit(2)
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

const DefaultListenAddr = ":8080"

func RunApp() error {
	gin.SetMode(gin.ReleaseMode)

	container := BuildServiceContainer()

	container.WebhookDispatcher.Start()
	defer container.WebhookDispatcher.Close()

	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = DefaultListenAddr
	}

	slog.Info("sheet engine listening", "addr", listenAddr)
	return http.ListenAndServe(listenAddr, container.Router)
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}

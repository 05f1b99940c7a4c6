package cli

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/classware/gbctl/pkg/data"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	urfave "github.com/urfave/cli/v2"
)

const (
	serverShutdownWaitSeconds = 5
	serverTimeoutSeconds      = 300
	serverMaxHeaderBytes      = 20
	serverPortDefault         = 8080
)

var (
	//go:embed templates/*
	embedFS embed.FS

	portFlag = &urfave.IntFlag{
		Name:     "port",
		Usage:    "Port on which the server will listen",
		Value:    serverPortDefault,
		Required: false,
	}

	serverCmd = &urfave.Command{
		Name:    "server",
		Aliases: []string{"s"},
		Usage:   "Serve the gradebook analysis over local HTTP",
		Action:  cmdStartServer,
		Flags: []urfave.Flag{
			fileFlag,
			portFlag,
			thresholdFlag,
		},
	}
)

func cmdStartServer(c *urfave.Context) error {
	file := c.String(fileFlag.Name)
	if file == "" {
		return urfave.ShowSubcommandHelp(c)
	}

	roster, res, err := data.ImportCSV(file)
	if err != nil {
		return errors.Wrap(err, "failed to import gradebook")
	}
	slog.Info("gradebook imported", "file", file, "students", res.Imported, "skipped", res.Skipped)

	// the engine is pure, the report is computed once and served as-is
	report := data.Analyze(roster, getThreshold(c))

	port := c.Int(portFlag.Name)
	address := fmt.Sprintf("127.0.0.1:%d", port)

	router := makeRouter(report, getConfig(c).Debug)
	s := &http.Server{
		Addr:           address,
		Handler:        router,
		ReadTimeout:    serverTimeoutSeconds * time.Second,
		WriteTimeout:   serverTimeoutSeconds * time.Second,
		MaxHeaderBytes: 1 << serverMaxHeaderBytes,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("error starting server", "error", err)
		}
	}()

	slog.Info("server started", "address", address)

	<-done

	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownWaitSeconds*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil && err != http.ErrServerClosed {
		slog.Error("error shutting down server", "error", err)
	}
	return nil
}

func makeRouter(report *data.Report, debug bool) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(embedFS, "templates/*.html")))

	// Views
	r.GET("/", homeViewHandler(report))

	// Data API
	r.GET("/data/summary", summaryDataHandler(report))
	r.GET("/data/grades", gradesDataHandler(report))
	r.GET("/data/passfail", passFailDataHandler(report))
	r.GET("/data/rows", rowsDataHandler(report))

	return r
}

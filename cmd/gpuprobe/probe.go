package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/andewx/dieselgpu"
	"github.com/andewx/dieselgpu/alloc"
	"github.com/andewx/dieselgpu/config"
	"github.com/andewx/dieselgpu/logging"
	"github.com/andewx/dieselgpu/result"
	"github.com/andewx/dieselgpu/vkresult"
	"github.com/andewx/dieselgpu/vulkan"
)

type probeOptions struct {
	configPath    string
	loader        string
	logLevel      string
	validation    bool
	validationSet bool
	metricsAddr   string
	output        io.Writer // log output, stderr when nil
}

// settings merges the config file and the command line flags.
func (o *probeOptions) settings() (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}
	if o.loader != "" {
		cfg.Loader = o.loader
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.validationSet {
		cfg.Requirements.RequestValidation = o.validation
	}
	return cfg, cfg.Validate()
}

// runProbe creates and destroys one instance. A nil driver means the native
// Vulkan driver, bootstrapped through the configured loader.
func runProbe(ctx context.Context, opts *probeOptions, driver dieselgpu.Driver) error {
	cfg, err := opts.settings()
	if err != nil {
		return err
	}
	req, err := cfg.BuildRequirements()
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Output: opts.output,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	if driver == nil {
		loader, err := vulkan.ParseLoader(cfg.Loader)
		if err != nil {
			return err
		}
		if err := vulkan.Init(loader); err != nil {
			return err
		}
		defer vulkan.Terminate(loader)
		driver = vulkan.NewDriver()
	}

	logger.Debug().
		Str("min_api_version", dieselgpu.FormatAPIVersion(req.MinAPIVersion)).
		Bool("validation", req.RequestValidation).
		Str("diagnostics", req.Diagnostics.String()).
		Msg("creating instance")

	inst, res := dieselgpu.CreateInstance(alloc.Default(), driver, result.NewZerologSink(logger), req)
	if inst != nil {
		defer inst.Destroy()
	}
	if !res.Success() {
		return res.Err()
	}
	logger.Info().Msg("instance created")

	if opts.metricsAddr == "" {
		return nil
	}
	return serveMetrics(ctx, opts.metricsAddr, logger)
}

func serveMetrics(ctx context.Context, addr string, logger zerolog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: addr, Handler: newMetricsRouter()}
	errc := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("serving metrics")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdown)
}

func runLayers(opts *probeOptions, w io.Writer) error {
	cfg, err := opts.settings()
	if err != nil {
		return err
	}
	loader, err := vulkan.ParseLoader(cfg.Loader)
	if err != nil {
		return err
	}
	if err := vulkan.Init(loader); err != nil {
		return err
	}
	defer vulkan.Terminate(loader)

	layers, status := vulkan.ValidationLayers()
	if status != vkresult.Success {
		return fmt.Errorf("enumerate layers: %s", vkresult.Cause(status))
	}
	extensions, status := vulkan.InstanceExtensions()
	if status != vkresult.Success {
		return fmt.Errorf("enumerate extensions: %s", vkresult.Cause(status))
	}
	printList(w, "layers", layers)
	printList(w, "extensions", extensions)
	return nil
}

func printList(w io.Writer, title string, items []string) {
	fmt.Fprintf(w, "%s (%d):\n", title, len(items))
	for _, it := range items {
		fmt.Fprintf(w, "  %s\n", it)
	}
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"desglose/internal/cache"
	"desglose/internal/config"
	"desglose/internal/loader"
	"desglose/internal/logging"
	"desglose/internal/server"
	"desglose/internal/watcher"
)

var (
	flagPort    int
	flagDev     bool
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "desglose",
	Short: "Catálogo de piezas de torres de transmisión",
	Long: "Servicio HTTP que carga el desglose de torres desde un Excel, " +
		"sirve búsquedas y opciones filtradas, y calcula materiales por tramo.",
	RunE: runServe,
}

func init() {
	rootCmd.Flags().IntVar(&flagPort, "port", 0, "puerto HTTP (se ignora si config.toml fija el puerto)")
	rootCmd.Flags().BoolVar(&flagDev, "dev", false, "modo desarrollo (logs legibles, gin debug)")
	rootCmd.Flags().StringVar(&flagDataDir, "data-dir", "", "directorio de datos (sobrescribe config.toml)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env es opcional; los valores pasan como variables de entorno
	_ = godotenv.Load()

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	// un puerto explícito en config.toml gana sobre --port
	if flagPort > 0 && !info.PortSpecified {
		cfg.Server.Port = flagPort
	}
	if flagDev {
		cfg.Server.DevMode = true
	}
	if flagDataDir != "" {
		cfg.Data.DataDir = flagDataDir
	}

	log, err := logging.New(cfg.Server.DevMode)
	if err != nil {
		return fmt.Errorf("inicializar logger: %w", err)
	}
	defer log.Sync()

	if _, err := config.EnsureDataDir(cfg); err != nil {
		log.Warn("no se pudo crear el directorio de datos", zap.Error(err))
	}

	source := buildSource(cfg)
	ldr := loader.New(source, log)
	cacheManager := cache.New(ldr.Load, log,
		cache.WithTTL(time.Duration(cfg.Cache.TTLMinutes)*time.Minute))

	// Con fuente local, un reemplazo del archivo fuera del flujo de subida
	// también invalida la caché
	if cfg.Remote.BlobURL == "" {
		w, err := watcher.New(config.ExcelPath(cfg), cacheManager.Invalidate, log)
		if err != nil {
			log.Warn("no se pudo crear el watcher del archivo", zap.Error(err))
		} else if err := w.Start(); err != nil {
			log.Warn("no se pudo iniciar el watcher del archivo", zap.Error(err))
		} else {
			defer w.Stop()
		}
	}

	srv := server.New(cfg, cacheManager, log)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		log.Info("servidor iniciado",
			zap.Int("port", cfg.Server.Port),
			zap.String("source", source.Describe()))
		errCh <- srv.Run(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("servidor HTTP: %w", err)
	case sig := <-quit:
		log.Info("apagando servicio", zap.String("signal", sig.String()))
		return nil
	}
}

// buildSource picks the workbook source: remote blob when configured,
// otherwise the local data file.
func buildSource(cfg *config.AppConfig) loader.Source {
	if cfg.Remote.BlobURL != "" {
		return loader.RemoteBlob{
			URL:     cfg.Remote.BlobURL,
			Timeout: time.Duration(cfg.Remote.TimeoutSeconds) * time.Second,
		}
	}
	return loader.LocalFile{Path: config.ExcelPath(cfg)}
}

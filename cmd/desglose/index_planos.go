package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"desglose/internal/config"
	"desglose/internal/planos"
)

var indexOutput string

var indexPlanosCmd = &cobra.Command{
	Use:   "index-planos",
	Short: "Genera el índice JSON de planos (nombre → ruta pública)",
	RunE:  runIndexPlanos,
}

func init() {
	indexPlanosCmd.Flags().StringVarP(&indexOutput, "output", "o", "", "ruta del índice (por defecto indice-planos.json junto a los planos)")
	rootCmd.AddCommand(indexPlanosCmd)
}

func runIndexPlanos(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	dir := config.PlanosPath(cfg)
	ix, err := planos.Build(dir)
	if err != nil {
		return fmt.Errorf("indexar planos: %w", err)
	}

	output := indexOutput
	if output == "" {
		output = filepath.Join(dir, "indice-planos.json")
	}
	if err := ix.WriteIndex(output); err != nil {
		return fmt.Errorf("escribir índice: %w", err)
	}

	fmt.Printf("Índice generado con %d planos: %s\n", ix.Len(), output)
	return nil
}

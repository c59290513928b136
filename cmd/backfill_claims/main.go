// backfill_claims asigna store_id y rol owner a los usuarios creados antes de
// que el token JWT incluyera la tienda. La tienda de cada usuario se busca por
// stores.owner_id. Es idempotente: los usuarios que ya tienen tienda se informan
// como already_has_claims.
//
// Uso: go run ./cmd/backfill_claims [-yes] [-out dir]
// Escribe un log migration_claims_AAAAMMDD_HHMMSS.json con el resumen y el
// resultado por usuario.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

func main() {
	yes := flag.Bool("yes", false, "no pedir confirmación")
	outDir := flag.String("out", ".", "directorio del log JSON")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("backfill_claims")

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("BACKFILL DE CLAIMS (store_id, role)")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Fecha: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	if !*yes && !confirm("¿Ejecutar el backfill? (s/n): ") {
		fmt.Println("Backfill cancelado")
		return
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	backfill := auth.NewClaimsBackfill(postgres.NewUserRepository(pool), postgres.NewStoreRepository(pool))
	report, err := backfill.Run(ctx, func(r auth.BackfillResult) {
		ev := log.Info()
		if r.Status == auth.BackfillError {
			ev = log.Error().Str("error", r.Error)
		}
		ev.Str("user_id", r.UserID).
			Str("email", r.Email).
			Str("status", r.Status).
			Str("store_id", r.StoreID).
			Msg("usuario procesado")
	})
	if err != nil {
		log.Fatal().Err(err).Msg("backfill")
	}

	printSummary(report.Stats)

	path, err := writeReport(*outDir, report)
	if err != nil {
		log.Error().Err(err).Msg("guardar log")
	} else {
		fmt.Printf("Log guardado en: %s\n\n", path)
	}

	if report.Stats.Migrated > 0 {
		fmt.Println("IMPORTANTE: los usuarios migrados deben cerrar sesión y volver a entrar")
		fmt.Println("para obtener un token con la tienda asignada.")
	}
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "s")
}

func printSummary(s auth.BackfillStats) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("RESUMEN")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("   Total usuarios:      %d\n", s.Total)
	fmt.Printf("   Migrados:            %d\n", s.Migrated)
	fmt.Printf("   Ya tenían tienda:    %d\n", s.AlreadyHasClaims)
	fmt.Printf("   Sin tienda:          %d\n", s.NoStore)
	fmt.Printf("   Errores:             %d\n", s.Errors)
	fmt.Println()
}

func writeReport(dir string, report *auth.BackfillReport) (string, error) {
	name := fmt.Sprintf("migration_claims_%s.json", report.Timestamp.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Seed de desarrollo: crea el esquema si no existe y carga un usuario admin
// (password123) más unos leads de ejemplo. No es una herramienta de migración.
package main

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/futurestec/crm-leads-api/internal/infrastructure/postgres"
	"github.com/futurestec/crm-leads-api/pkg/config"
	"github.com/futurestec/crm-leads-api/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         BIGSERIAL PRIMARY KEY,
	username   TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	email      TEXT NOT NULL,
	full_name  TEXT NOT NULL,
	role       TEXT NOT NULL DEFAULT 'user',
	is_active  BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS leads (
	id              BIGSERIAL PRIMARY KEY,
	name            TEXT NOT NULL,
	email           TEXT NOT NULL,
	mobile          TEXT NOT NULL,
	status          TEXT NOT NULL DEFAULT 'New',
	followup_status TEXT NOT NULL DEFAULT 'None',
	owner           TEXT NOT NULL DEFAULT '',
	interested      BOOLEAN NOT NULL DEFAULT FALSE,
	created_date    TIMESTAMPTZ NOT NULL DEFAULT now(),
	modified_date   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS lead_comments (
	id         BIGSERIAL PRIMARY KEY,
	lead_id    BIGINT NOT NULL REFERENCES leads(id) ON DELETE CASCADE,
	user_id    BIGINT NOT NULL REFERENCES users(id),
	content    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password de admin")
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (username, password, email, full_name, role, is_active)
		VALUES ('admin', $1, 'admin@futurestechnologia.com', 'Administrator', 'admin', TRUE)
		ON CONFLICT (username) DO NOTHING`, string(hash))
	if err != nil {
		log.Fatal().Err(err).Msg("insertar usuario admin")
	}

	leads := [][]string{
		{"Carlos Pérez", "carlos.perez@example.com", "3001234567", "New", "None", "sarah"},
		{"María González", "maria.gonzalez@example.com", "3109876543", "Contacted", "Scheduled", "sarah"},
		{"John Smith", "john.smith@example.com", "3157654321", "Qualified", "Completed", "mike"},
	}
	for _, l := range leads {
		_, err := pool.Exec(ctx, `
			INSERT INTO leads (name, email, mobile, status, followup_status, owner)
			SELECT $1, $2, $3, $4, $5, $6
			WHERE NOT EXISTS (SELECT 1 FROM leads WHERE email = $2)`,
			l[0], l[1], l[2], l[3], l[4], l[5])
		if err != nil {
			log.Fatal().Err(err).Str("lead", l[0]).Msg("insertar lead de ejemplo")
		}
	}

	log.Info().Msg("seed completado")
}

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmaciel/vendas-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "vendas-api", cfg.App.Name)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)

	// Taxas padrão do negócio
	assert.InDelta(t, 0.20, cfg.Fees.Variable, 1e-9)
	assert.InDelta(t, 4.0, cfg.Fees.FixedPerUnit, 1e-9)
	assert.InDelta(t, 0.08, cfg.Fees.Tax, 1e-9)
	assert.InDelta(t, 0.01, cfg.Fees.Anticipation, 1e-9)
}

func TestLoad_EnvSobrescreve(t *testing.T) {
	t.Setenv("DB_HOST", "db.interno")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("FEE_VARIABLE", "0.15")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.interno", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.InDelta(t, 0.15, cfg.Fees.Variable, 1e-9)
}

func TestDSN_EscapaSenha(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss/word",
		DBName: "vendas", SSLMode: "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fword", "caracteres especiais da senha devem ser escapados")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_DatabaseURLTemPrioridade(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgres://u:p@host:5432/db?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, "postgres://u:p@host:5432/db?sslmode=require", db.ConnectionString())
}

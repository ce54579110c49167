package entity

import "time"

// User conta do operador do painel. O serviço atende um único negócio,
// mas nada impede mais de uma conta.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

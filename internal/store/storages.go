package store

import "github.com/solarpanel/tracker-api/internal/logger"

type Storages struct {
	CanFrameRepository   CanFrameRepository
	AccountRepository    AccountRepository
	ResetTokenRepository ResetTokenRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CanFrameRepository:   NewCanFrameRepository(db, log),
		AccountRepository:    NewAccountRepository(db, log),
		ResetTokenRepository: NewResetTokenRepository(db, log),
	}
}

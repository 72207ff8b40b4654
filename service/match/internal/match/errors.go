package match

import "errors"

// Errori di dominio usati da service/store e mappati nei layer gRPC e HTTP.
var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrPlayerNotFound = errors.New("player not found")

	// ErrConflict indica una scrittura concorrente: lo store ritenta, poi lo propaga.
	ErrConflict = errors.New("transaction conflict")

	// ErrReadAfterWrite segnala una lettura dopo una scrittura nella stessa transazione.
	ErrReadAfterWrite = errors.New("read after write in transaction")

	ErrInvalidArgument = errors.New("invalid argument")
	ErrForbidden       = errors.New("forbidden")
	ErrMatchClosed     = errors.New("match closed")
)

// ErrUnauthenticated indica identita' mancante o invalida.
var ErrUnauthenticated = errors.New("unauthenticated")

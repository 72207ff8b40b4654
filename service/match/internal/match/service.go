package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
)

// Service applica la logica di dominio usando lo store.
// L'identita' del chiamante arriva sempre come parametro esplicito.
type Service struct {
	store  Store
	clock  clock.Clock
	logger *slog.Logger
}

// NewService crea il servizio di dominio per i match.
func NewService(store Store, clock clock.Clock, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, clock: clock, logger: logger}
}

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CreateMatch crea un match upcoming con squadre vuote e colori di default.
func (s *Service) CreateMatch(ctx context.Context, actorID, location, price, iban string, date time.Time) (*Match, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(location) == "" || strings.TrimSpace(price) == "" {
		return nil, fmt.Errorf("%w: location and price are required", ErrInvalidArgument)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidArgument)
	}
	// Un match nel passato nascerebbe gia' scaduto.
	if !date.After(s.clock.Now()) {
		return nil, fmt.Errorf("%w: date must be in the future", ErrInvalidArgument)
	}

	m := &Match{
		ID:        uuid.NewString(),
		Location:  strings.TrimSpace(location),
		Price:     strings.TrimSpace(price),
		IBAN:      strings.TrimSpace(iban),
		Date:      date.UTC(),
		CreatedBy: actorID,
		Status:    StatusUpcoming,
		ColorA:    DefaultColorA,
		ColorB:    DefaultColorB,
		TeamA:     []RosterEntry{},
		TeamB:     []RosterEntry{},
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.store.CreateMatch(ctx, m); err != nil {
		s.logger.Error("errore creazione match", "error", err)
		return nil, err
	}

	s.logger.Info("match creato", "match_id", m.ID, "created_by", actorID)
	return m, nil
}

// GetMatch ritorna il documento del match.
func (s *Service) GetMatch(ctx context.Context, matchID string) (*Match, error) {
	return s.store.GetMatch(ctx, matchID)
}

// DeleteMatch cancella il match; solo l'organizzatore puo' farlo.
func (s *Service) DeleteMatch(ctx context.Context, actorID, matchID string) error {
	m, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if m.CreatedBy != actorID {
		return fmt.Errorf("%w: only the organizer can delete the match", ErrForbidden)
	}
	if err := s.store.DeleteMatch(ctx, matchID); err != nil {
		return err
	}
	s.logger.Info("match cancellato", "match_id", matchID)
	return nil
}

// RegisterPlayer crea il profilo con i valori iniziali di rating e statistiche.
func (s *Service) RegisterPlayer(ctx context.Context, playerID string, profile ProfileUpdate) (*Player, error) {
	if strings.TrimSpace(playerID) == "" {
		return nil, ErrUnauthenticated
	}
	// Il prefisso guest_ e' riservato agli ospiti.
	if IsGuestID(playerID) {
		return nil, fmt.Errorf("%w: reserved player id", ErrInvalidArgument)
	}
	if strings.TrimSpace(profile.FullName) == "" {
		return nil, fmt.Errorf("%w: fullName is required", ErrInvalidArgument)
	}
	if profile.Age < 0 {
		return nil, fmt.Errorf("%w: age cannot be negative", ErrInvalidArgument)
	}

	p := &Player{
		ID:            playerID,
		FullName:      strings.TrimSpace(profile.FullName),
		Position:      ParsePosition(string(profile.Position)),
		PreferredFoot: strings.TrimSpace(profile.PreferredFoot),
		Age:           profile.Age,
		Rating:        DefaultRating,
		Badges:        []string{},
		CreatedAt:     s.clock.Now().UTC(),
	}
	if err := s.store.CreatePlayer(ctx, p); err != nil {
		s.logger.Error("errore registrazione giocatore", "error", err, "player_id", playerID)
		return nil, err
	}
	return p, nil
}

// GetPlayer ritorna il profilo del giocatore.
func (s *Service) GetPlayer(ctx context.Context, playerID string) (*Player, error) {
	return s.store.GetPlayer(ctx, playerID)
}

// UpdateProfile aggiorna i soli campi anagrafici.
func (s *Service) UpdateProfile(ctx context.Context, playerID string, update ProfileUpdate) error {
	if strings.TrimSpace(update.FullName) == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidArgument)
	}
	if update.Age < 0 {
		return fmt.Errorf("%w: age cannot be negative", ErrInvalidArgument)
	}
	update.FullName = strings.TrimSpace(update.FullName)
	update.Position = ParsePosition(string(update.Position))
	update.PreferredFoot = strings.TrimSpace(update.PreferredFoot)
	return s.store.UpdateProfile(ctx, playerID, update)
}

// UpdateTeamColor non usa transazioni: un singolo campo, last-write-wins.
func (s *Service) UpdateTeamColor(ctx context.Context, matchID string, team Team, color string) error {
	if !team.Valid() {
		return fmt.Errorf("%w: team must be A or B", ErrInvalidArgument)
	}
	if !colorPattern.MatchString(color) {
		return fmt.Errorf("%w: color must be #RRGGBB", ErrInvalidArgument)
	}
	return s.store.SetTeamColor(ctx, matchID, team, strings.ToUpper(color))
}

// mutateMatch esegue una transizione del roster dentro una transazione.
// fn ritorna false quando non c'e' nulla da scrivere.
func (s *Service) mutateMatch(ctx context.Context, matchID string, fn func(ctx context.Context, tx Tx, m *Match) (bool, error)) (*Match, error) {
	var result *Match
	err := s.store.RunTx(ctx, func(ctx context.Context, tx Tx) error {
		m, err := tx.GetMatch(ctx, matchID)
		if err != nil {
			return err
		}
		if m.Status == StatusCompleted || m.Expired(s.clock.Now()) {
			return ErrMatchClosed
		}
		changed, err := fn(ctx, tx, m)
		if err != nil {
			return err
		}
		result = m
		if !changed {
			return nil
		}
		return tx.PutMatch(m)
	})
	if err != nil {
		if !isDomainError(err) {
			s.logger.Error("errore transazione match", "error", err, "match_id", matchID)
		}
		return nil, err
	}
	return result, nil
}

// isDomainError distingue gli errori attesi da quelli di infrastruttura.
func isDomainError(err error) bool {
	for _, target := range []error{
		ErrMatchNotFound, ErrPlayerNotFound, ErrInvalidArgument, ErrForbidden, ErrMatchClosed, ErrUnauthenticated,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

package match

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Locker serializza gli sweep tra piu' istanze. Non serve alla correttezza:
// la finalizzazione e' gia' idempotente.
type Locker interface {
	Acquire(ctx context.Context, key string) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string) error
}

const sweepLockKey = "lock:match:sweep"

// SweepExpired finalizza tutti i match upcoming con data passata.
// Ogni match ha la sua transazione; un errore su uno non blocca gli altri.
func (s *Service) SweepExpired(ctx context.Context) ([]string, error) {
	now := s.clock.Now()
	candidates, err := s.store.ListMatches(ctx, MatchQuery{To: now, Status: StatusUpcoming})
	if err != nil {
		s.logger.Error("errore ricerca match scaduti", "error", err)
		return nil, err
	}

	var finalized []string
	var errs []error
	for _, candidate := range candidates {
		done, err := s.FinalizeMatch(ctx, candidate.ID)
		if errors.Is(err, ErrMatchNotFound) {
			// Cancellato tra la query e la transazione.
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if done {
			finalized = append(finalized, candidate.ID)
		}
	}

	if len(candidates) > 0 {
		s.logger.Info("sweep completato", "candidates", len(candidates), "finalized", len(finalized))
	}
	return finalized, errors.Join(errs...)
}

// FinalizeMatch porta il match a completed e incrementa matchCount dei partecipanti reali.
// Ritorna false se il match era gia' completed o non ancora scaduto.
func (s *Service) FinalizeMatch(ctx context.Context, matchID string) (bool, error) {
	var (
		finalized    bool
		participants []string
	)
	err := s.store.RunTx(ctx, func(ctx context.Context, tx Tx) error {
		finalized = false
		participants = nil

		m, err := tx.GetMatch(ctx, matchID)
		if err != nil {
			return err
		}
		// Re-check: un altro finalizer puo' aver gia' chiuso il match.
		if m.Status == StatusCompleted || !m.Expired(s.clock.Now()) {
			return nil
		}

		// 1) Letture dei profili reali.
		var players []*Player
		seen := make(map[string]bool)
		for _, id := range m.Participants() {
			if IsGuestID(id) || seen[id] {
				continue
			}
			seen[id] = true
			player, err := tx.GetPlayer(ctx, id)
			if errors.Is(err, ErrPlayerNotFound) {
				s.logger.Warn("profilo partecipante mancante", "match_id", matchID, "player_id", id)
				continue
			}
			if err != nil {
				return err
			}
			players = append(players, player)
		}

		// 2) Scritture.
		m.Status = StatusCompleted
		if err := tx.PutMatch(m); err != nil {
			return err
		}
		for _, player := range players {
			player.MatchCount++
			if err := tx.PutPlayer(player); err != nil {
				return err
			}
			participants = append(participants, player.ID)
		}
		finalized = true
		return nil
	})
	if err != nil {
		if !isDomainError(err) {
			s.logger.Error("errore finalizzazione match", "error", err, "match_id", matchID)
		}
		return false, err
	}
	if !finalized {
		return false, nil
	}

	s.logger.Info("match completato", "match_id", matchID, "participants", len(participants))
	for _, id := range participants {
		s.refreshBadgesBestEffort(ctx, id)
	}
	return true, nil
}

// RunPeriodicSweep esegue SweepExpired ogni frequency finche' shutdown non viene chiuso.
// Con un locker, solo l'istanza che prende il lock esegue il giro.
func (s *Service) RunPeriodicSweep(frequency time.Duration, locker Locker, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer ticker.Stop()
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			s.sweepOnce(frequency, locker)
		}
	}
}

func (s *Service) sweepOnce(timeout time.Duration, locker Locker) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if locker != nil {
		token, ok, err := locker.Acquire(ctx, sweepLockKey)
		if err != nil {
			s.logger.Warn("errore acquisizione lock sweep", "error", err)
			return
		}
		if !ok {
			return
		}
		defer func() {
			if err := locker.Release(context.Background(), sweepLockKey, token); err != nil {
				s.logger.Warn("errore rilascio lock sweep", "error", err)
			}
		}()
	}

	if _, err := s.SweepExpired(ctx); err != nil {
		s.logger.Warn("sweep con errori", "error", err)
	}
}

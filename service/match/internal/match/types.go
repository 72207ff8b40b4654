package match

import (
	"context"
	"strings"
	"time"
)

// Contratti e modelli del dominio "match".
// I nomi dei campi JSON sono il contratto verso gli altri collaboratori (catalogo, UI).

// Team identifica una delle due squadre di un match.
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// Valid accetta solo "A" o "B".
func (t Team) Valid() bool {
	return t == TeamA || t == TeamB
}

// Status del match: passa solo da upcoming a completed.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
)

// Position del giocatore nel profilo.
type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefense    Position = "defense"
	PositionMidfield   Position = "midfield"
	PositionForward    Position = "forward"
	PositionUnset      Position = "unset"
)

// ParsePosition normalizza la posizione; valori sconosciuti diventano unset.
func ParsePosition(value string) Position {
	switch Position(strings.ToLower(strings.TrimSpace(value))) {
	case PositionGoalkeeper:
		return PositionGoalkeeper
	case PositionDefense:
		return PositionDefense
	case PositionMidfield:
		return PositionMidfield
	case PositionForward:
		return PositionForward
	default:
		return PositionUnset
	}
}

const (
	// DefaultRating e' il seed di ogni profilo e dei guest senza punteggio valido.
	DefaultRating = 5.0
	MinRating     = 1.0
	MaxRating     = 10.0

	DefaultColorA = "#00D09C"
	DefaultColorB = "#E74C3C"

	// GuestIDPrefix marca i giocatori ospiti, esclusi dalle statistiche.
	GuestIDPrefix = "guest_"
)

// IsGuestID riconosce gli id sintetici dei guest.
func IsGuestID(id string) bool {
	return strings.HasPrefix(id, GuestIDPrefix)
}

// Player e' il profilo persistente del giocatore.
type Player struct {
	ID            string    `json:"id"`
	FullName      string    `json:"fullName"`
	Position      Position  `json:"position"`
	PreferredFoot string    `json:"preferredFoot"`
	Age           int       `json:"age"`
	Rating        float64   `json:"rating"`
	TotalVotes    int       `json:"totalVotes"`
	MatchCount    int       `json:"matchCount"`
	Badges        []string  `json:"badges"`
	CreatedAt     time.Time `json:"createdAt"`
}

// HasBadge dice se il badge e' gia' stato assegnato.
func (p *Player) HasBadge(id string) bool {
	for _, badge := range p.Badges {
		if badge == id {
			return true
		}
	}
	return false
}

// RosterEntry e' lo snapshot denormalizzato preso al momento dell'ingresso in squadra.
type RosterEntry struct {
	ID       string   `json:"id"`
	FullName string   `json:"fullName"`
	Position Position `json:"position"`
	Rating   float64  `json:"rating"`
}

// Match e' il documento condiviso su cui lavorano roster, balancer e lifecycle.
type Match struct {
	ID        string        `json:"id"`
	Location  string        `json:"location"`
	Price     string        `json:"price"`
	IBAN      string        `json:"iban,omitempty"`
	Date      time.Time     `json:"date"`
	CreatedBy string        `json:"createdBy"`
	Status    Status        `json:"status"`
	ColorA    string        `json:"colorA"`
	ColorB    string        `json:"colorB"`
	TeamA     []RosterEntry `json:"teamA"`
	TeamB     []RosterEntry `json:"teamB"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Roster ritorna la squadra richiesta.
func (m *Match) Roster(team Team) []RosterEntry {
	if team == TeamA {
		return m.TeamA
	}
	return m.TeamB
}

// SetRoster sostituisce la squadra richiesta.
func (m *Match) SetRoster(team Team, entries []RosterEntry) {
	if team == TeamA {
		m.TeamA = entries
		return
	}
	m.TeamB = entries
}

// TeamOf ritorna la squadra che contiene il giocatore, se presente.
func (m *Match) TeamOf(playerID string) (Team, bool) {
	if containsEntry(m.TeamA, playerID) {
		return TeamA, true
	}
	if containsEntry(m.TeamB, playerID) {
		return TeamB, true
	}
	return "", false
}

// Participants ritorna tutti gli id in ordine A poi B.
func (m *Match) Participants() []string {
	ids := make([]string, 0, len(m.TeamA)+len(m.TeamB))
	for _, entry := range m.TeamA {
		ids = append(ids, entry.ID)
	}
	for _, entry := range m.TeamB {
		ids = append(ids, entry.ID)
	}
	return ids
}

// Expired e' vero quando la data del match e' passata rispetto a now.
func (m *Match) Expired(now time.Time) bool {
	return !now.Before(m.Date)
}

// RatingEntry e' un singolo voto di un batch.
type RatingEntry struct {
	TargetPlayerID string `json:"targetPlayerId"`
	Score          int    `json:"score"`
}

// ProfileUpdate contiene i soli campi modificabili dal giocatore.
type ProfileUpdate struct {
	FullName      string   `json:"fullName"`
	Position      Position `json:"position"`
	PreferredFoot string   `json:"preferredFoot"`
	Age           int      `json:"age"`
}

// TimeFilter seleziona i match per data rispetto a un istante.
type TimeFilter string

const (
	FilterUpcoming TimeFilter = "upcoming"
	FilterPast     TimeFilter = "past"
)

// MatchQuery descrive una range query sui match.
// From e' inclusivo, To e' esclusivo; gli zero value non filtrano.
type MatchQuery struct {
	From       time.Time
	To         time.Time
	Status     Status
	Descending bool
	Limit      int
}

// PlayerQuery descrive la query della classifica.
type PlayerQuery struct {
	MinMatchCount int
	Limit         int
}

// Store e' il document store transazionale esterno.
type Store interface {
	// RunTx esegue fn in una transazione ottimistica, ripetendola in caso di conflitto.
	RunTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	GetMatch(ctx context.Context, id string) (*Match, error)
	GetPlayer(ctx context.Context, id string) (*Player, error)
	CreateMatch(ctx context.Context, m *Match) error
	DeleteMatch(ctx context.Context, id string) error
	CreatePlayer(ctx context.Context, p *Player) error
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) error

	// SetTeamColor scrive un singolo campo senza transazione (last-write-wins).
	SetTeamColor(ctx context.Context, matchID string, team Team, color string) error
	// AddBadges e' un append-if-absent sull'insieme dei badge.
	AddBadges(ctx context.Context, playerID string, badges []string) error

	ListMatches(ctx context.Context, q MatchQuery) ([]Match, error)
	ListPlayers(ctx context.Context, q PlayerQuery) ([]Player, error)
}

// Tx e' la vista transazionale: tutte le letture prima di ogni scrittura.
// Le scritture sono in staging e vengono applicate al commit; una lettura dopo
// una scrittura fallisce con ErrReadAfterWrite, e si puo' scrivere solo un
// documento letto nella stessa transazione.
type Tx interface {
	GetMatch(ctx context.Context, id string) (*Match, error)
	GetPlayer(ctx context.Context, id string) (*Player, error)
	PutMatch(m *Match) error
	PutPlayer(p *Player) error
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"HaliSahaX/service/match/internal/match"
	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	matchColumns = []string{
		"id", "location", "price", "iban", "date", "created_by", "status",
		"color_a", "color_b", "team_a", "team_b", "created_at", "version",
	}
	playerColumns = []string{
		"id", "full_name", "position", "preferred_foot", "age", "rating",
		"total_votes", "match_count", "badges", "created_at", "version",
	}
)

// querier e' la parte comune di *sql.DB e *sql.Tx usata dal repository.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// Postgres implementa lo store con una colonna version per riga.
// Il commit aggiorna solo se la versione e' quella letta; 0 righe = conflitto.
type Postgres struct {
	db   *sql.DB
	opts Options
}

// NewPostgres collega lo store a una connessione SQL.
func NewPostgres(db *sql.DB, opts Options) *Postgres {
	return &Postgres{db: db, opts: opts.normalize()}
}

func (s *Postgres) RunTx(ctx context.Context, fn func(ctx context.Context, tx match.Tx) error) error {
	return runWithRetry(ctx, s.opts, func(ctx context.Context) error {
		tx := &pgTx{store: s, staging: newStaging()}
		if err := fn(ctx, tx); err != nil {
			return err
		}
		return s.commit(ctx, tx.staging)
	})
}

func (s *Postgres) commit(ctx context.Context, st *staging) error {
	if st.empty() {
		return nil
	}

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapPgError(err)
	}
	defer sqlTx.Rollback()

	for _, m := range st.matchWrites {
		teamA, teamB, err := encodeTeams(m)
		if err != nil {
			return err
		}
		q := psql.Update("matches").
			Set("location", m.Location).
			Set("price", m.Price).
			Set("iban", m.IBAN).
			Set("date", m.Date).
			Set("status", string(m.Status)).
			Set("color_a", m.ColorA).
			Set("color_b", m.ColorB).
			Set("team_a", teamA).
			Set("team_b", teamB).
			Set("version", sq.Expr("version + 1")).
			Where(sq.Eq{"id": m.ID, "version": st.matchReads[m.ID]})
		if err := execOne(ctx, sqlTx, q); err != nil {
			return err
		}
	}

	for _, p := range st.playerWrites {
		q := psql.Update("players").
			Set("full_name", p.FullName).
			Set("position", string(p.Position)).
			Set("preferred_foot", p.PreferredFoot).
			Set("age", p.Age).
			Set("rating", p.Rating).
			Set("total_votes", p.TotalVotes).
			Set("match_count", p.MatchCount).
			Set("badges", pq.Array(p.Badges)).
			Set("version", sq.Expr("version + 1")).
			Where(sq.Eq{"id": p.ID, "version": st.playerReads[p.ID]})
		if err := execOne(ctx, sqlTx, q); err != nil {
			return err
		}
	}

	if err := sqlTx.Commit(); err != nil {
		return mapPgError(err)
	}
	return nil
}

// execOne esegue un update con controllo di versione.
func execOne(ctx context.Context, q querier, b sq.UpdateBuilder) error {
	res, err := qExec(ctx, q, b)
	if err != nil {
		return mapPgError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return match.ErrConflict
	}
	return nil
}

func (s *Postgres) GetMatch(ctx context.Context, id string) (*match.Match, error) {
	m, _, err := s.loadMatch(ctx, s.db, id)
	return m, err
}

func (s *Postgres) GetPlayer(ctx context.Context, id string) (*match.Player, error) {
	p, _, err := s.loadPlayer(ctx, s.db, id)
	return p, err
}

func (s *Postgres) loadMatch(ctx context.Context, q querier, id string) (*match.Match, int64, error) {
	row := qRow(ctx, q, psql.Select(matchColumns...).From("matches").Where(sq.Eq{"id": id}))
	m, version, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, match.ErrMatchNotFound
	}
	if err != nil {
		slog.Error("errore lettura match", "error", err, "match_id", id)
		return nil, 0, err
	}
	return m, version, nil
}

func (s *Postgres) loadPlayer(ctx context.Context, q querier, id string) (*match.Player, int64, error) {
	row := qRow(ctx, q, psql.Select(playerColumns...).From("players").Where(sq.Eq{"id": id}))
	p, version, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, match.ErrPlayerNotFound
	}
	if err != nil {
		slog.Error("errore lettura giocatore", "error", err, "player_id", id)
		return nil, 0, err
	}
	return p, version, nil
}

func (s *Postgres) CreateMatch(ctx context.Context, m *match.Match) error {
	teamA, teamB, err := encodeTeams(m)
	if err != nil {
		return err
	}
	q := psql.Insert("matches").
		Columns(matchColumns[:len(matchColumns)-1]...).
		Values(m.ID, m.Location, m.Price, m.IBAN, m.Date, m.CreatedBy, string(m.Status),
			m.ColorA, m.ColorB, teamA, teamB, m.CreatedAt)
	if _, err := qExec(ctx, s.db, q); err != nil {
		slog.Error("errore insert match", "error", err, "match_id", m.ID)
		return mapPgError(err)
	}
	return nil
}

func (s *Postgres) DeleteMatch(ctx context.Context, id string) error {
	res, err := qExec(ctx, s.db, psql.Delete("matches").Where(sq.Eq{"id": id}))
	if err != nil {
		return mapPgError(err)
	}
	return requireRow(res, match.ErrMatchNotFound)
}

func (s *Postgres) CreatePlayer(ctx context.Context, p *match.Player) error {
	q := psql.Insert("players").
		Columns(playerColumns[:len(playerColumns)-1]...).
		Values(p.ID, p.FullName, string(p.Position), p.PreferredFoot, p.Age, p.Rating,
			p.TotalVotes, p.MatchCount, pq.Array(p.Badges), p.CreatedAt)
	if _, err := qExec(ctx, s.db, q); err != nil {
		slog.Error("errore insert giocatore", "error", err, "player_id", p.ID)
		return mapPgError(err)
	}
	return nil
}

func (s *Postgres) UpdateProfile(ctx context.Context, id string, update match.ProfileUpdate) error {
	q := psql.Update("players").
		Set("full_name", update.FullName).
		Set("position", string(update.Position)).
		Set("preferred_foot", update.PreferredFoot).
		Set("age", update.Age).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": id})
	res, err := qExec(ctx, s.db, q)
	if err != nil {
		return mapPgError(err)
	}
	return requireRow(res, match.ErrPlayerNotFound)
}

func (s *Postgres) SetTeamColor(ctx context.Context, matchID string, team match.Team, color string) error {
	column := "color_a"
	if team == match.TeamB {
		column = "color_b"
	}
	q := psql.Update("matches").
		Set(column, color).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": matchID})
	res, err := qExec(ctx, s.db, q)
	if err != nil {
		return mapPgError(err)
	}
	return requireRow(res, match.ErrMatchNotFound)
}

// AddBadges aggiunge in coda solo i badge non ancora presenti.
func (s *Postgres) AddBadges(ctx context.Context, playerID string, badges []string) error {
	q := psql.Update("players").
		Set("badges", sq.Expr("badges || ARRAY(SELECT b FROM unnest(?::text[]) AS b WHERE b <> ALL(badges))", pq.Array(badges))).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": playerID})
	res, err := qExec(ctx, s.db, q)
	if err != nil {
		return mapPgError(err)
	}
	return requireRow(res, match.ErrPlayerNotFound)
}

func (s *Postgres) ListMatches(ctx context.Context, mq match.MatchQuery) ([]match.Match, error) {
	q := psql.Select(matchColumns...).From("matches")
	if !mq.From.IsZero() {
		q = q.Where(sq.GtOrEq{"date": mq.From})
	}
	if !mq.To.IsZero() {
		q = q.Where(sq.Lt{"date": mq.To})
	}
	if mq.Status != "" {
		q = q.Where(sq.Eq{"status": string(mq.Status)})
	}
	if mq.Descending {
		q = q.OrderBy("date DESC", "id")
	} else {
		q = q.OrderBy("date ASC", "id")
	}
	if mq.Limit > 0 {
		q = q.Limit(uint64(mq.Limit))
	}

	rows, err := qQuery(ctx, s.db, q)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	matches := []match.Match{}
	for rows.Next() {
		m, _, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

func (s *Postgres) ListPlayers(ctx context.Context, query match.PlayerQuery) ([]match.Player, error) {
	q := psql.Select(playerColumns...).From("players").
		Where(sq.GtOrEq{"match_count": query.MinMatchCount}).
		OrderBy("rating DESC", "id")
	if query.Limit > 0 {
		q = q.Limit(uint64(query.Limit))
	}

	rows, err := qQuery(ctx, s.db, q)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	players := []match.Player{}
	for rows.Next() {
		p, _, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// pgTx legge fuori da transazione SQL e registra le versioni; scrive solo al commit.
type pgTx struct {
	store   *Postgres
	staging *staging
}

func (t *pgTx) GetMatch(ctx context.Context, id string) (*match.Match, error) {
	if err := t.staging.beforeRead(); err != nil {
		return nil, err
	}
	if m, ok := t.staging.cachedMatch(id); ok {
		return m, nil
	}
	m, version, err := t.store.loadMatch(ctx, t.store.db, id)
	if err != nil {
		return nil, err
	}
	return t.staging.readMatch(m, version), nil
}

func (t *pgTx) GetPlayer(ctx context.Context, id string) (*match.Player, error) {
	if err := t.staging.beforeRead(); err != nil {
		return nil, err
	}
	if p, ok := t.staging.cachedPlayer(id); ok {
		return p, nil
	}
	p, version, err := t.store.loadPlayer(ctx, t.store.db, id)
	if err != nil {
		return nil, err
	}
	return t.staging.readPlayer(p, version), nil
}

func (t *pgTx) PutMatch(m *match.Match) error {
	return t.staging.putMatch(m)
}

func (t *pgTx) PutPlayer(p *match.Player) error {
	return t.staging.putPlayer(p)
}

func scanMatch(row rowScanner) (*match.Match, int64, error) {
	var (
		m            match.Match
		status       string
		teamA, teamB []byte
		version      int64
	)
	err := row.Scan(&m.ID, &m.Location, &m.Price, &m.IBAN, &m.Date, &m.CreatedBy, &status,
		&m.ColorA, &m.ColorB, &teamA, &teamB, &m.CreatedAt, &version)
	if err != nil {
		return nil, 0, err
	}
	m.Status = match.Status(status)
	m.Date = m.Date.UTC()
	m.CreatedAt = m.CreatedAt.UTC()
	if err := json.Unmarshal(teamA, &m.TeamA); err != nil {
		return nil, 0, fmt.Errorf("decode team_a: %w", err)
	}
	if err := json.Unmarshal(teamB, &m.TeamB); err != nil {
		return nil, 0, fmt.Errorf("decode team_b: %w", err)
	}
	if m.TeamA == nil {
		m.TeamA = []match.RosterEntry{}
	}
	if m.TeamB == nil {
		m.TeamB = []match.RosterEntry{}
	}
	return &m, version, nil
}

func scanPlayer(row rowScanner) (*match.Player, int64, error) {
	var (
		p        match.Player
		position string
		version  int64
	)
	err := row.Scan(&p.ID, &p.FullName, &position, &p.PreferredFoot, &p.Age, &p.Rating,
		&p.TotalVotes, &p.MatchCount, pq.Array(&p.Badges), &p.CreatedAt, &version)
	if err != nil {
		return nil, 0, err
	}
	p.Position = match.ParsePosition(position)
	p.CreatedAt = p.CreatedAt.UTC()
	if p.Badges == nil {
		p.Badges = []string{}
	}
	return &p, version, nil
}

// encodeTeams serializza i roster per le colonne jsonb.
func encodeTeams(m *match.Match) (string, string, error) {
	teamA := m.TeamA
	if teamA == nil {
		teamA = []match.RosterEntry{}
	}
	teamB := m.TeamB
	if teamB == nil {
		teamB = []match.RosterEntry{}
	}
	a, err := json.Marshal(teamA)
	if err != nil {
		return "", "", err
	}
	b, err := json.Marshal(teamB)
	if err != nil {
		return "", "", err
	}
	return string(a), string(b), nil
}

// mapPgError traduce serialization failure e deadlock in conflitti ritentabili.
func mapPgError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case "40001", "40P01":
		return fmt.Errorf("%w: %s", match.ErrConflict, pqErr.Message)
	case "23505":
		return fmt.Errorf("%w: already exists", match.ErrInvalidArgument)
	default:
		return err
	}
}

func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func qExec(ctx context.Context, q querier, b sq.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return q.ExecContext(ctx, query, args...)
}

func qQuery(ctx context.Context, q querier, b sq.SelectBuilder) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return q.QueryContext(ctx, query, args...)
}

func qRow(ctx context.Context, q querier, b sq.SelectBuilder) rowScanner {
	query, args, err := b.ToSql()
	if err != nil {
		return errRow{err: err}
	}
	return q.QueryRowContext(ctx, query, args...)
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}

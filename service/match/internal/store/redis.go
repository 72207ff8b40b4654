package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"HaliSahaX/service/match/internal/match"
	"github.com/redis/go-redis/v9"
)

const (
	matchesByDateKey   = "matches:by_date"
	matchesUpcomingKey = "matches:upcoming"
	playersByRatingKey = "players:by_rating"
	listBatchSize      = 100
)

func matchKey(id string) string        { return "match:" + id }
func playerKey(id string) string       { return "player:" + id }
func playerBadgesKey(id string) string { return "player:" + id + ":badges" }

// Redis implementa lo store su hash, set e sorted set.
// Le transazioni sono WATCH sulle chiavi lette + MULTI/EXEC delle scritture.
// matches:upcoming indicizza solo i match non ancora finalizzati, cosi' lo sweep
// non scorre lo storico.
type Redis struct {
	client *redis.Client
	opts   Options
}

// NewRedis collega lo store a un client Redis.
func NewRedis(client *redis.Client, opts Options) *Redis {
	return &Redis{client: client, opts: opts.normalize()}
}

func (s *Redis) RunTx(ctx context.Context, fn func(ctx context.Context, tx match.Tx) error) error {
	return runWithRetry(ctx, s.opts, func(ctx context.Context) error {
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			rtx := &redisTx{tx: tx, staging: newStaging()}
			if err := fn(ctx, rtx); err != nil {
				return err
			}
			if rtx.staging.empty() {
				return nil
			}
			_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				for _, m := range rtx.staging.matchWrites {
					if err := writeMatch(ctx, pipe, m); err != nil {
						return err
					}
				}
				for _, p := range rtx.staging.playerWrites {
					writePlayer(ctx, pipe, p)
				}
				return nil
			})
			return err
		})
		if errors.Is(err, redis.TxFailedErr) {
			return match.ErrConflict
		}
		return err
	})
}

func (s *Redis) GetMatch(ctx context.Context, id string) (*match.Match, error) {
	return loadMatch(ctx, s.client, id)
}

func (s *Redis) GetPlayer(ctx context.Context, id string) (*match.Player, error) {
	return loadPlayer(ctx, s.client, id)
}

func (s *Redis) CreateMatch(ctx context.Context, m *match.Match) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		return writeMatch(ctx, pipe, m)
	})
	if err != nil {
		slog.Error("errore insert match", "error", err, "match_id", m.ID)
	}
	return err
}

func (s *Redis) DeleteMatch(ctx context.Context, id string) error {
	var deleted *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, matchKey(id))
		pipe.ZRem(ctx, matchesByDateKey, id)
		pipe.ZRem(ctx, matchesUpcomingKey, id)
		return nil
	})
	if err != nil {
		return err
	}
	if deleted.Val() == 0 {
		return match.ErrMatchNotFound
	}
	return nil
}

func (s *Redis) CreatePlayer(ctx context.Context, p *match.Player) error {
	key := playerKey(p.ID)
	return runWithRetry(ctx, s.opts, func(ctx context.Context) error {
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			n, err := tx.Exists(ctx, key).Result()
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("%w: player already registered", match.ErrInvalidArgument)
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				writePlayer(ctx, pipe, p)
				return nil
			})
			return err
		}, key)
		if errors.Is(err, redis.TxFailedErr) {
			return match.ErrConflict
		}
		return err
	})
}

func (s *Redis) UpdateProfile(ctx context.Context, id string, update match.ProfileUpdate) error {
	key := playerKey(id)
	return runWithRetry(ctx, s.opts, func(ctx context.Context) error {
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			n, err := tx.Exists(ctx, key).Result()
			if err != nil {
				return err
			}
			if n == 0 {
				return match.ErrPlayerNotFound
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.HSet(ctx, key, map[string]any{
					"fullName":      update.FullName,
					"position":      string(update.Position),
					"preferredFoot": update.PreferredFoot,
					"age":           update.Age,
				})
				return nil
			})
			return err
		}, key)
		if errors.Is(err, redis.TxFailedErr) {
			return match.ErrConflict
		}
		return err
	})
}

// setFieldLua scrive un campo solo se l'hash esiste.
var setFieldLua = redis.NewScript(`
if redis.call("exists", KEYS[1]) == 1 then
	redis.call("hset", KEYS[1], ARGV[1], ARGV[2])
	return 1
end
return 0
`)

// addBadgesLua fa SADD sul set dei badge solo se il profilo esiste.
var addBadgesLua = redis.NewScript(`
if redis.call("exists", KEYS[1]) == 0 then
	return 0
end
redis.call("sadd", KEYS[2], unpack(ARGV))
return 1
`)

func (s *Redis) SetTeamColor(ctx context.Context, matchID string, team match.Team, color string) error {
	field := "colorA"
	if team == match.TeamB {
		field = "colorB"
	}
	ok, err := setFieldLua.Run(ctx, s.client, []string{matchKey(matchID)}, field, color).Int()
	if err != nil {
		return err
	}
	if ok == 0 {
		return match.ErrMatchNotFound
	}
	return nil
}

func (s *Redis) AddBadges(ctx context.Context, playerID string, badges []string) error {
	if len(badges) == 0 {
		return nil
	}
	args := make([]any, 0, len(badges))
	for _, badge := range badges {
		args = append(args, badge)
	}
	keys := []string{playerKey(playerID), playerBadgesKey(playerID)}
	ok, err := addBadgesLua.Run(ctx, s.client, keys, args...).Int()
	if err != nil {
		return err
	}
	if ok == 0 {
		return match.ErrPlayerNotFound
	}
	return nil
}

func (s *Redis) ListMatches(ctx context.Context, q match.MatchQuery) ([]match.Match, error) {
	rng := &redis.ZRangeBy{Min: "-inf", Max: "+inf"}
	if !q.From.IsZero() {
		rng.Min = strconv.FormatInt(q.From.UnixMilli(), 10)
	}
	if !q.To.IsZero() {
		rng.Max = "(" + strconv.FormatInt(q.To.UnixMilli(), 10)
	}

	index := matchesByDateKey
	if q.Status == match.StatusUpcoming {
		index = matchesUpcomingKey
	}

	var (
		ids []string
		err error
	)
	if q.Descending {
		ids, err = s.client.ZRevRangeByScore(ctx, index, rng).Result()
	} else {
		ids, err = s.client.ZRangeByScore(ctx, index, rng).Result()
	}
	if err != nil {
		return nil, err
	}

	matches := []match.Match{}
	for start := 0; start < len(ids); start += listBatchSize {
		end := min(start+listBatchSize, len(ids))
		cmds, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, id := range ids[start:end] {
				pipe.HGetAll(ctx, matchKey(id))
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		for _, cmd := range cmds {
			fields, err := cmd.(*redis.MapStringStringCmd).Result()
			if err != nil {
				return nil, err
			}
			if len(fields) == 0 {
				continue
			}
			m, err := decodeMatch(fields)
			if err != nil {
				return nil, err
			}
			if q.Status != "" && m.Status != q.Status {
				continue
			}
			matches = append(matches, *m)
			if q.Limit > 0 && len(matches) == q.Limit {
				return matches, nil
			}
		}
	}
	return matches, nil
}

// ListPlayers scorre players:by_rating (score = -rating, quindi rating decrescente
// e id crescente a parita') filtrando per matchCount. Ogni pagina e' caricata
// con una sola pipeline.
func (s *Redis) ListPlayers(ctx context.Context, q match.PlayerQuery) ([]match.Player, error) {
	players := []match.Player{}
	for offset := int64(0); ; offset += listBatchSize {
		ids, err := s.client.ZRange(ctx, playersByRatingKey, offset, offset+listBatchSize-1).Result()
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return players, nil
		}

		page, err := s.loadPlayers(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, p := range page {
			if p.MatchCount < q.MinMatchCount {
				continue
			}
			players = append(players, *p)
			if q.Limit > 0 && len(players) == q.Limit {
				return players, nil
			}
		}
	}
}

// loadPlayers legge profili e badge di una pagina di id; gli id senza profilo sono saltati.
func (s *Redis) loadPlayers(ctx context.Context, ids []string) ([]*match.Player, error) {
	fieldCmds := make([]*redis.MapStringStringCmd, len(ids))
	badgeCmds := make([]*redis.StringSliceCmd, len(ids))
	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			fieldCmds[i] = pipe.HGetAll(ctx, playerKey(id))
			badgeCmds[i] = pipe.SMembers(ctx, playerBadgesKey(id))
		}
		return nil
	})
	if err != nil {
		slog.Error("errore lettura classifica", "error", err, "players", len(ids))
		return nil, err
	}

	players := make([]*match.Player, 0, len(ids))
	for i := range ids {
		fields := fieldCmds[i].Val()
		if len(fields) == 0 {
			continue
		}
		p, err := decodePlayer(fields)
		if err != nil {
			return nil, err
		}
		p.Badges = sortBadges(badgeCmds[i].Val())
		players = append(players, p)
	}
	return players, nil
}

// redisTx legge con WATCH e mette in staging le scritture fino a EXEC.
type redisTx struct {
	tx      *redis.Tx
	staging *staging
}

func (t *redisTx) GetMatch(ctx context.Context, id string) (*match.Match, error) {
	if err := t.staging.beforeRead(); err != nil {
		return nil, err
	}
	if m, ok := t.staging.cachedMatch(id); ok {
		return m, nil
	}
	if err := t.tx.Watch(ctx, matchKey(id)).Err(); err != nil {
		return nil, err
	}
	m, err := loadMatch(ctx, t.tx, id)
	if err != nil {
		return nil, err
	}
	return t.staging.readMatch(m, 0), nil
}

func (t *redisTx) GetPlayer(ctx context.Context, id string) (*match.Player, error) {
	if err := t.staging.beforeRead(); err != nil {
		return nil, err
	}
	if p, ok := t.staging.cachedPlayer(id); ok {
		return p, nil
	}
	if err := t.tx.Watch(ctx, playerKey(id)).Err(); err != nil {
		return nil, err
	}
	p, err := loadPlayer(ctx, t.tx, id)
	if err != nil {
		return nil, err
	}
	return t.staging.readPlayer(p, 0), nil
}

func (t *redisTx) PutMatch(m *match.Match) error {
	return t.staging.putMatch(m)
}

func (t *redisTx) PutPlayer(p *match.Player) error {
	return t.staging.putPlayer(p)
}

// docReader e' la parte di *redis.Client e *redis.Tx usata per leggere i documenti.
type docReader interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

func loadMatch(ctx context.Context, c docReader, id string) (*match.Match, error) {
	fields, err := c.HGetAll(ctx, matchKey(id)).Result()
	if err != nil {
		slog.Error("errore lettura match", "error", err, "match_id", id)
		return nil, err
	}
	if len(fields) == 0 {
		return nil, match.ErrMatchNotFound
	}
	return decodeMatch(fields)
}

func loadPlayer(ctx context.Context, c docReader, id string) (*match.Player, error) {
	fields, err := c.HGetAll(ctx, playerKey(id)).Result()
	if err != nil {
		slog.Error("errore lettura giocatore", "error", err, "player_id", id)
		return nil, err
	}
	if len(fields) == 0 {
		return nil, match.ErrPlayerNotFound
	}
	badges, err := c.SMembers(ctx, playerBadgesKey(id)).Result()
	if err != nil {
		return nil, err
	}
	p, err := decodePlayer(fields)
	if err != nil {
		return nil, err
	}
	p.Badges = sortBadges(badges)
	return p, nil
}

func writeMatch(ctx context.Context, pipe redis.Pipeliner, m *match.Match) error {
	teamA, teamB, err := encodeTeams(m)
	if err != nil {
		return err
	}
	pipe.HSet(ctx, matchKey(m.ID), map[string]any{
		"id":        m.ID,
		"location":  m.Location,
		"price":     m.Price,
		"iban":      m.IBAN,
		"date":      m.Date.UnixMilli(),
		"createdBy": m.CreatedBy,
		"status":    string(m.Status),
		"colorA":    m.ColorA,
		"colorB":    m.ColorB,
		"teamA":     teamA,
		"teamB":     teamB,
		"createdAt": m.CreatedAt.UnixMilli(),
	})
	pipe.ZAdd(ctx, matchesByDateKey, redis.Z{Score: float64(m.Date.UnixMilli()), Member: m.ID})
	if m.Status == match.StatusUpcoming {
		pipe.ZAdd(ctx, matchesUpcomingKey, redis.Z{Score: float64(m.Date.UnixMilli()), Member: m.ID})
	} else {
		pipe.ZRem(ctx, matchesUpcomingKey, m.ID)
	}
	return nil
}

func writePlayer(ctx context.Context, pipe redis.Pipeliner, p *match.Player) {
	pipe.HSet(ctx, playerKey(p.ID), map[string]any{
		"id":            p.ID,
		"fullName":      p.FullName,
		"position":      string(p.Position),
		"preferredFoot": p.PreferredFoot,
		"age":           p.Age,
		"rating":        strconv.FormatFloat(p.Rating, 'f', -1, 64),
		"totalVotes":    p.TotalVotes,
		"matchCount":    p.MatchCount,
		"createdAt":     p.CreatedAt.UnixMilli(),
	})
	pipe.ZAdd(ctx, playersByRatingKey, redis.Z{Score: -p.Rating, Member: p.ID})
	if len(p.Badges) > 0 {
		badges := make([]any, 0, len(p.Badges))
		for _, badge := range p.Badges {
			badges = append(badges, badge)
		}
		pipe.SAdd(ctx, playerBadgesKey(p.ID), badges...)
	}
}

func decodeMatch(fields map[string]string) (*match.Match, error) {
	date, err := parseMillis(fields["date"])
	if err != nil {
		return nil, fmt.Errorf("decode date: %w", err)
	}
	createdAt, err := parseMillis(fields["createdAt"])
	if err != nil {
		return nil, fmt.Errorf("decode createdAt: %w", err)
	}
	m := &match.Match{
		ID:        fields["id"],
		Location:  fields["location"],
		Price:     fields["price"],
		IBAN:      fields["iban"],
		Date:      date,
		CreatedBy: fields["createdBy"],
		Status:    match.Status(fields["status"]),
		ColorA:    fields["colorA"],
		ColorB:    fields["colorB"],
		CreatedAt: createdAt,
	}
	if err := decodeRoster(fields["teamA"], &m.TeamA); err != nil {
		return nil, fmt.Errorf("decode teamA: %w", err)
	}
	if err := decodeRoster(fields["teamB"], &m.TeamB); err != nil {
		return nil, fmt.Errorf("decode teamB: %w", err)
	}
	return m, nil
}

func decodeRoster(raw string, out *[]match.RosterEntry) error {
	*out = []match.RosterEntry{}
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), out)
}

func decodePlayer(fields map[string]string) (*match.Player, error) {
	p := &match.Player{
		ID:            fields["id"],
		FullName:      fields["fullName"],
		Position:      match.ParsePosition(fields["position"]),
		PreferredFoot: fields["preferredFoot"],
	}
	var err error
	if p.Age, err = atoi(fields["age"]); err != nil {
		return nil, fmt.Errorf("decode age: %w", err)
	}
	if p.TotalVotes, err = atoi(fields["totalVotes"]); err != nil {
		return nil, fmt.Errorf("decode totalVotes: %w", err)
	}
	if p.MatchCount, err = atoi(fields["matchCount"]); err != nil {
		return nil, fmt.Errorf("decode matchCount: %w", err)
	}
	p.Rating = match.DefaultRating
	if raw := fields["rating"]; raw != "" {
		if p.Rating, err = strconv.ParseFloat(raw, 64); err != nil {
			return nil, fmt.Errorf("decode rating: %w", err)
		}
	}
	if p.CreatedAt, err = parseMillis(fields["createdAt"]); err != nil {
		return nil, fmt.Errorf("decode createdAt: %w", err)
	}
	return p, nil
}

// sortBadges ordina i badge come la tabella delle regole; gli sconosciuti in coda.
func sortBadges(badges []string) []string {
	rank := func(id string) int {
		for i, rule := range match.BadgeRules {
			if rule.ID == id {
				return i
			}
		}
		return len(match.BadgeRules)
	}
	slices.SortFunc(badges, func(a, b string) int {
		if ra, rb := rank(a), rank(b); ra != rb {
			return ra - rb
		}
		return strings.Compare(a, b)
	})
	if badges == nil {
		return []string{}
	}
	return badges
}

func atoi(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func parseMillis(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

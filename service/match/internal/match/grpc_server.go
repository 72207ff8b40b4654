package match

import (
	"context"
	"errors"
	"strings"
	"time"

	"HaliSahaX/pkg/grpcx"
	matchv1 "HaliSahaX/proto/match/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCServer espone le operazioni del dominio via gRPC.
// Qui si legge l'identita' dal context e si mappano gli errori in codici gRPC.
type GRPCServer struct {
	matchv1.UnimplementedMatchServiceServer
	service *Service
}

// NewGRPCServer crea il server gRPC con il dominio.
func NewGRPCServer(service *Service) *GRPCServer {
	return &GRPCServer{service: service}
}

// Register collega il servizio al server gRPC.
func (s *GRPCServer) Register(server grpc.ServiceRegistrar) {
	matchv1.RegisterMatchServiceServer(server, s)
}

func (s *GRPCServer) CreateMatch(ctx context.Context, req *matchv1.CreateMatchRequest) (*matchv1.MatchResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetDateUnix() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "date_unix is required")
	}
	m, err := s.service.CreateMatch(ctx, actorID, req.GetLocation(), req.GetPrice(), req.GetIban(), time.Unix(req.GetDateUnix(), 0))
	if err != nil {
		return nil, toStatus(err, "failed to create match")
	}
	return &matchv1.MatchResponse{Match: toProtoMatch(m)}, nil
}

func (s *GRPCServer) GetMatch(ctx context.Context, req *matchv1.GetMatchRequest) (*matchv1.MatchResponse, error) {
	if err := requireMatchID(req.GetMatchId()); err != nil {
		return nil, err
	}
	m, err := s.service.GetMatch(ctx, req.GetMatchId())
	if err != nil {
		return nil, toStatus(err, "failed to load match")
	}
	return &matchv1.MatchResponse{Match: toProtoMatch(m)}, nil
}

func (s *GRPCServer) DeleteMatch(ctx context.Context, req *matchv1.DeleteMatchRequest) (*matchv1.DeleteMatchResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireMatchID(req.GetMatchId()); err != nil {
		return nil, err
	}
	if err := s.service.DeleteMatch(ctx, actorID, req.GetMatchId()); err != nil {
		return nil, toStatus(err, "failed to delete match")
	}
	return &matchv1.DeleteMatchResponse{}, nil
}

func (s *GRPCServer) JoinOrSwitchTeam(ctx context.Context, req *matchv1.JoinOrSwitchTeamRequest) (*matchv1.MatchResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireMatchID(req.GetMatchId()); err != nil {
		return nil, err
	}
	m, err := s.service.JoinOrSwitchTeam(ctx, req.GetMatchId(), teamFromProto(req.GetTeam()), actorID)
	if err != nil {
		return nil, toStatus(err, "failed to join team")
	}
	return &matchv1.MatchResponse{Match: toProtoMatch(m)}, nil
}

func (s *GRPCServer) LeaveMatch(ctx context.Context, req *matchv1.LeaveMatchRequest) (*matchv1.MatchResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireMatchID(req.GetMatchId()); err != nil {
		return nil, err
	}
	m, err := s.service.LeaveMatch(ctx, req.GetMatchId(), actorID)
	if err != nil {
		return nil, toStatus(err, "failed to leave match")
	}
	return &matchv1.MatchResponse{Match: toProtoMatch(m)}, nil
}

func (s *GRPCServer) KickPlayer(ctx context.Context, req *matchv1.KickPlayerRequest) (*matchv1.MatchResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireMatchID(req.GetMatchId()); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetPlayerId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "player_id is required")
	}
	m, err := s.service.KickPlayer(ctx, actorID, req.GetMatchId(), teamFromProto(req.GetTeam()), req.GetPlayerId())
	if err != nil {
		return nil, toStatus(err, "failed to kick player")
	}
	return &matchv1.MatchResponse{Match: toProtoMatch(m)}, nil
}

func (s *GRPCServer) AddGuestPlayer(ctx context.Context, req *matchv1.AddGuestPlayerRequest) (*matchv1.MatchResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireMatchID(req.GetMatchId()); err != nil {
		return nil, err
	}
	m, err := s.service.AddGuestPlayer(ctx, actorID, req.GetMatchId(), teamFromProto(req.GetTeam()), req.GetName(), req.GetRating())
	if err != nil {
		return nil, toStatus(err, "failed to add guest")
	}
	return &matchv1.MatchResponse{Match: toProtoMatch(m)}, nil
}

func (s *GRPCServer) UpdateTeamColor(ctx context.Context, req *matchv1.UpdateTeamColorRequest) (*matchv1.UpdateTeamColorResponse, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	if err := requireMatchID(req.GetMatchId()); err != nil {
		return nil, err
	}
	if err := s.service.UpdateTeamColor(ctx, req.GetMatchId(), teamFromProto(req.GetTeam()), req.GetColor()); err != nil {
		return nil, toStatus(err, "failed to update color")
	}
	return &matchv1.UpdateTeamColorResponse{}, nil
}

func (s *GRPCServer) BalanceTeams(ctx context.Context, req *matchv1.BalanceTeamsRequest) (*matchv1.MatchResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireMatchID(req.GetMatchId()); err != nil {
		return nil, err
	}
	m, err := s.service.BalanceTeams(ctx, actorID, req.GetMatchId())
	if err != nil {
		return nil, toStatus(err, "failed to balance teams")
	}
	return &matchv1.MatchResponse{Match: toProtoMatch(m)}, nil
}

func (s *GRPCServer) SubmitBatchRatings(ctx context.Context, req *matchv1.SubmitBatchRatingsRequest) (*matchv1.SubmitBatchRatingsResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]RatingEntry, 0, len(req.GetRatings()))
	for _, rating := range req.GetRatings() {
		entries = append(entries, RatingEntry{
			TargetPlayerID: rating.GetTargetPlayerId(),
			Score:          int(rating.GetScore()),
		})
	}
	updated, err := s.service.SubmitBatchRatings(ctx, actorID, entries)
	if err != nil {
		return nil, toStatus(err, "failed to submit ratings")
	}
	return &matchv1.SubmitBatchRatingsResponse{UpdatedPlayerIds: updated}, nil
}

func (s *GRPCServer) GetMatchesByStatus(ctx context.Context, req *matchv1.GetMatchesByStatusRequest) (*matchv1.GetMatchesByStatusResponse, error) {
	matches, err := s.service.GetMatchesByStatus(ctx, filterFromProto(req.GetStatus()))
	if err != nil {
		return nil, toStatus(err, "failed to list matches")
	}
	resp := &matchv1.GetMatchesByStatusResponse{Matches: make([]*matchv1.Match, 0, len(matches))}
	for i := range matches {
		resp.Matches = append(resp.Matches, toProtoMatch(&matches[i]))
	}
	return resp, nil
}

func (s *GRPCServer) GetLeaderboard(ctx context.Context, _ *matchv1.GetLeaderboardRequest) (*matchv1.GetLeaderboardResponse, error) {
	players, err := s.service.GetLeaderboard(ctx)
	if err != nil {
		return nil, toStatus(err, "failed to load leaderboard")
	}
	resp := &matchv1.GetLeaderboardResponse{Players: make([]*matchv1.Player, 0, len(players))}
	for i := range players {
		resp.Players = append(resp.Players, toProtoPlayer(&players[i]))
	}
	return resp, nil
}

func (s *GRPCServer) RegisterPlayer(ctx context.Context, req *matchv1.RegisterPlayerRequest) (*matchv1.PlayerResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.service.RegisterPlayer(ctx, actorID, profileFromProto(req.GetProfile()))
	if err != nil {
		return nil, toStatus(err, "failed to register player")
	}
	return &matchv1.PlayerResponse{Player: toProtoPlayer(p)}, nil
}

func (s *GRPCServer) GetPlayer(ctx context.Context, req *matchv1.GetPlayerRequest) (*matchv1.PlayerResponse, error) {
	if strings.TrimSpace(req.GetPlayerId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "player_id is required")
	}
	p, err := s.service.GetPlayer(ctx, req.GetPlayerId())
	if err != nil {
		return nil, toStatus(err, "failed to load player")
	}
	return &matchv1.PlayerResponse{Player: toProtoPlayer(p)}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *matchv1.UpdateProfileRequest) (*matchv1.UpdateProfileResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.service.UpdateProfile(ctx, actorID, profileFromProto(req.GetProfile())); err != nil {
		return nil, toStatus(err, "failed to update profile")
	}
	return &matchv1.UpdateProfileResponse{}, nil
}

func (s *GRPCServer) RefreshBadges(ctx context.Context, _ *matchv1.RefreshBadgesRequest) (*matchv1.RefreshBadgesResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := s.service.RefreshBadges(ctx, actorID)
	if err != nil {
		return nil, toStatus(err, "failed to refresh badges")
	}
	return &matchv1.RefreshBadgesResponse{NewBadges: earned}, nil
}

// actorFromContext legge l'identita' messa nel context dagli interceptor.
func actorFromContext(ctx context.Context) (string, error) {
	userID, ok := grpcx.UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, ErrUnauthenticated.Error())
	}
	return userID, nil
}

func requireMatchID(matchID string) error {
	if strings.TrimSpace(matchID) == "" {
		return status.Error(codes.InvalidArgument, "match_id is required")
	}
	return nil
}

// toStatus mappa gli errori di dominio in codici gRPC.
func toStatus(err error, internalMsg string) error {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	case errors.Is(err, ErrMatchNotFound), errors.Is(err, ErrPlayerNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrMatchClosed):
		return status.Error(codes.FailedPrecondition, "match is closed")
	case errors.Is(err, ErrConflict):
		return status.Error(codes.Aborted, "concurrent update, retry")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Error(codes.Internal, internalMsg)
	}
}

// Conversioni tra modelli di dominio e messaggi protobuf.

// teamFromProto ritorna "" per valori non validi, rifiutati poi dal dominio.
func teamFromProto(team matchv1.Team) Team {
	switch team {
	case matchv1.Team_TEAM_A:
		return TeamA
	case matchv1.Team_TEAM_B:
		return TeamB
	default:
		return ""
	}
}

func filterFromProto(filter matchv1.TimeFilter) TimeFilter {
	switch filter {
	case matchv1.TimeFilter_TIME_FILTER_UPCOMING:
		return FilterUpcoming
	case matchv1.TimeFilter_TIME_FILTER_PAST:
		return FilterPast
	default:
		return ""
	}
}

func statusToProto(s Status) matchv1.MatchStatus {
	switch s {
	case StatusUpcoming:
		return matchv1.MatchStatus_MATCH_STATUS_UPCOMING
	case StatusCompleted:
		return matchv1.MatchStatus_MATCH_STATUS_COMPLETED
	default:
		return matchv1.MatchStatus_MATCH_STATUS_UNSPECIFIED
	}
}

func profileFromProto(p *matchv1.Profile) ProfileUpdate {
	return ProfileUpdate{
		FullName:      p.GetFullName(),
		Position:      Position(p.GetPosition()),
		PreferredFoot: p.GetPreferredFoot(),
		Age:           int(p.GetAge()),
	}
}

func toProtoRoster(entries []RosterEntry) []*matchv1.RosterEntry {
	out := make([]*matchv1.RosterEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, &matchv1.RosterEntry{
			Id:       entry.ID,
			FullName: entry.FullName,
			Position: string(entry.Position),
			Rating:   entry.Rating,
		})
	}
	return out
}

func toProtoMatch(m *Match) *matchv1.Match {
	return &matchv1.Match{
		Id:            m.ID,
		Location:      m.Location,
		Price:         m.Price,
		Iban:          m.IBAN,
		DateUnix:      m.Date.Unix(),
		CreatedBy:     m.CreatedBy,
		Status:        statusToProto(m.Status),
		ColorA:        m.ColorA,
		ColorB:        m.ColorB,
		TeamA:         toProtoRoster(m.TeamA),
		TeamB:         toProtoRoster(m.TeamB),
		CreatedAtUnix: m.CreatedAt.Unix(),
	}
}

func toProtoPlayer(p *Player) *matchv1.Player {
	return &matchv1.Player{
		Id:            p.ID,
		FullName:      p.FullName,
		Position:      string(p.Position),
		PreferredFoot: p.PreferredFoot,
		Age:           int32(p.Age),
		Rating:        p.Rating,
		TotalVotes:    int32(p.TotalVotes),
		MatchCount:    int32(p.MatchCount),
		Badges:        p.Badges,
		CreatedAtUnix: p.CreatedAt.Unix(),
	}
}

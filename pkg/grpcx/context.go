package grpcx

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Chiavi condivise per passare l'identita' utente tra servizi gRPC.
type contextKey string

// ContextUserIDKey definisce la chiave per il context locale (non gRPC).
const ContextUserIDKey contextKey = "user_id"

// UserIDMetadataKey definisce la chiave metadata per l'user_id su gRPC.
const UserIDMetadataKey = "user_id"

// WithUserID salva l'identita' gia' verificata nel context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextUserIDKey, userID)
}

// UserIDFromContext legge l'identita' verificata dal context locale.
func UserIDFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(ContextUserIDKey).(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}

// MetadataIdentityInterceptor copia user_id dalle metadata nel context.
// Solo per ambienti di sviluppo: l'identita' non viene verificata.
func MetadataIdentityInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(UserIDMetadataKey); len(values) > 0 && strings.TrimSpace(values[0]) != "" {
				ctx = WithUserID(ctx, values[0])
			}
		}
		return handler(ctx, req)
	}
}

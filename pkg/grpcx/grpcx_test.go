package grpcx

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestUserIDFromContext(t *testing.T) {
	if _, ok := UserIDFromContext(context.Background()); ok {
		t.Fatalf("expected no user id")
	}
	if _, ok := UserIDFromContext(WithUserID(context.Background(), "  ")); ok {
		t.Fatalf("blank user id must be rejected")
	}
	got, ok := UserIDFromContext(WithUserID(context.Background(), " u1 "))
	if !ok || got != "u1" {
		t.Fatalf("expected u1, got %q", got)
	}
}

func TestMetadataIdentityInterceptor(t *testing.T) {
	interceptor := MetadataIdentityInterceptor()
	var seen string
	var found bool
	handler := func(ctx context.Context, req any) (any, error) {
		seen, found = UserIDFromContext(ctx)
		return nil, nil
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(UserIDMetadataKey, "u2"))
	if _, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, handler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || seen != "u2" {
		t.Fatalf("expected u2, got %q", seen)
	}

	if _, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, handler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatalf("expected no identity without metadata")
	}
}

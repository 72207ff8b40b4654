package authx

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"HaliSahaX/pkg/grpcx"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// L'identita' arriva dall'identity provider esterno come JWT firmato HS256.
// Qui si verifica il token e si estrae solo il subject (user id opaco).

// CookieName e' il cookie letto dal middleware HTTP quando manca l'header.
const CookieName = "halisaha_token"

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	jwt.RegisteredClaims
}

// Verifier valida i token dell'identity provider.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier crea il verifier; issuer vuoto disabilita il controllo dell'issuer.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// Verify ritorna il subject del token se firma, scadenza e issuer sono validi.
func (v *Verifier) Verify(tokenStr string) (string, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	cl, ok := tok.Claims.(*claims)
	if !ok || strings.TrimSpace(cl.Subject) == "" {
		return "", ErrInvalidToken
	}
	return cl.Subject, nil
}

// Sign emette un token per subject; usato da test e strumenti locali.
func (v *Verifier) Sign(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return tok.SignedString(v.secret)
}

// UnaryInterceptor richiede "authorization: Bearer <token>" su ogni chiamata gRPC.
func (v *Verifier) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		tokenStr := bearer(md.Get("authorization"))
		if tokenStr == "" {
			return nil, status.Error(codes.Unauthenticated, "missing bearer token")
		}
		userID, err := v.Verify(tokenStr)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "bad token")
		}
		return handler(grpcx.WithUserID(ctx, userID), req)
	}
}

// GinMiddleware verifica header Authorization o cookie e salva "uid" nel context gin.
func (v *Verifier) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearer([]string{c.GetHeader("Authorization")})
		if tokenStr == "" {
			tokenStr, _ = c.Cookie(CookieName)
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized"})
			return
		}
		userID, err := v.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bad token"})
			return
		}
		c.Set("uid", userID)
		c.Next()
	}
}

func bearer(values []string) string {
	if len(values) == 0 {
		return ""
	}
	value := strings.TrimSpace(values[0])
	if len(value) < 7 || !strings.EqualFold(value[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(value[7:])
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// Session tokens are issued by the external auth service, which stores
// them in redis as session::<token> -> user id, with its own TTL. This
// service only resolves tokens back to user ids.

const sessionKeyPrefix = "session::"

var ErrNotLoggedIn = errors.New("not logged in")

type SessionChecker struct {
	redisClient *redis.Client
}

func NewSessionChecker(redisClient *redis.Client) *SessionChecker {
	return &SessionChecker{
		redisClient: redisClient,
	}
}

// UserID resolves a session token to the owning user id.
// Returns ErrNotLoggedIn for unknown or expired tokens.
func (sc *SessionChecker) UserID(ctx context.Context, token string) (int, error) {
	cmd := sc.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotLoggedIn
		}
		return 0, fmt.Errorf("get session: %w", err)
	}

	userID, err := strconv.Atoi(cmd.Val())
	if err != nil {
		return 0, fmt.Errorf("malformed session value: %w", err)
	}

	return userID, nil
}

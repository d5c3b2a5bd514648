package crewlist

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/breachside/crew-api/internal/entities/malifaux"
	"github.com/breachside/crew-api/internal/errors"
	"github.com/breachside/crew-api/internal/pkg/clock"
	redisclient "github.com/breachside/crew-api/internal/redis"
)

const (
	crewKeyPrefix     = "crew:"
	playerIndexPrefix = "crew:player:"

	// Error messages
	errSnapshotNil     = "snapshot cannot be nil"
	errSnapshotIDEmpty = "snapshot ID cannot be empty"
	errPlayerIDEmpty   = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis crew repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed crew snapshot repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}
	if input.Snapshot.ID == "" {
		return nil, errors.InvalidArgument(errSnapshotIDEmpty)
	}
	if input.Snapshot.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := crewKeyPrefix + input.Snapshot.ID

	// Check if already exists
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}

	if exists > 0 {
		return nil, errors.AlreadyExistsf("crew with ID %s already exists", input.Snapshot.ID)
	}

	now := r.clock.Now().Unix()
	input.Snapshot.CreatedAt = now
	input.Snapshot.UpdatedAt = now

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot")
	}

	// Start transaction
	pipe := r.client.TxPipeline()

	// Crews are persisted without a TTL; deletion is explicit
	pipe.Set(ctx, key, data, 0)

	// Add to player index
	playerKey := playerIndexPrefix + input.Snapshot.PlayerID
	pipe.SAdd(ctx, playerKey, input.Snapshot.ID)

	// Execute transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create crew")
	}

	return &CreateOutput{Snapshot: input.Snapshot}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSnapshotIDEmpty)
	}

	key := crewKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("crew with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get crew")
	}

	var snapshot malifaux.CrewSnapshot
	if err := json.Unmarshal([]byte(result), &snapshot); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal snapshot")
	}

	return &GetOutput{Snapshot: &snapshot}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}
	if input.Snapshot.ID == "" {
		return nil, errors.InvalidArgument(errSnapshotIDEmpty)
	}

	// Get existing snapshot to preserve CreatedAt and check indexes
	existingOutput, err := r.Get(ctx, GetInput{ID: input.Snapshot.ID})
	if err != nil {
		return nil, err
	}
	existing := existingOutput.Snapshot

	input.Snapshot.CreatedAt = existing.CreatedAt
	input.Snapshot.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot")
	}

	// Start transaction
	pipe := r.client.TxPipeline()

	key := crewKeyPrefix + input.Snapshot.ID
	pipe.Set(ctx, key, data, 0)

	// Update player index if ownership changed
	if existing.PlayerID != input.Snapshot.PlayerID {
		if existing.PlayerID != "" {
			oldPlayerKey := playerIndexPrefix + existing.PlayerID
			pipe.SRem(ctx, oldPlayerKey, input.Snapshot.ID)
		}
		if input.Snapshot.PlayerID != "" {
			newPlayerKey := playerIndexPrefix + input.Snapshot.PlayerID
			pipe.SAdd(ctx, newPlayerKey, input.Snapshot.ID)
		}
	}

	// Execute transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update crew")
	}

	return &UpdateOutput{Snapshot: input.Snapshot}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSnapshotIDEmpty)
	}

	// Get snapshot to find indexes
	getOutput, err := r.Get(ctx, GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	snapshot := getOutput.Snapshot

	// Start transaction
	pipe := r.client.TxPipeline()

	key := crewKeyPrefix + input.ID
	pipe.Del(ctx, key)

	// Remove from player index
	if snapshot.PlayerID != "" {
		playerKey := playerIndexPrefix + snapshot.PlayerID
		pipe.SRem(ctx, playerKey, input.ID)
	}

	// Execute transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete crew")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayer(
	ctx context.Context,
	input ListByPlayerInput,
) (*ListByPlayerOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID
	crewIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get crews from index %s", indexKey)
	}

	snapshots := make([]*malifaux.CrewSnapshot, 0, len(crewIDs))
	for _, id := range crewIDs {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// If the crew is gone, clean up the stale index entry
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "crew not found, cleaning up index",
					"crew_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		snapshots = append(snapshots, getOutput.Snapshot)
	}

	// SMembers order is unspecified; sort newest first for stable output
	sort.Slice(snapshots, func(i, j int) bool {
		if snapshots[i].UpdatedAt != snapshots[j].UpdatedAt {
			return snapshots[i].UpdatedAt > snapshots[j].UpdatedAt
		}
		return snapshots[i].ID < snapshots[j].ID
	})

	return &ListByPlayerOutput{Snapshots: snapshots}, nil
}

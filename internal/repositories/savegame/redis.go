package savegame

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-wilds/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-wilds/internal/redis"
)

const (
	saveKeyPrefix = "save:"
	// indexKey is a sorted set of save ids scored by UpdatedAt in milliseconds
	indexKey = "save_index"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ids    idgen.Generator
}

// RedisConfig contains configuration for the Redis save repository
type RedisConfig struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

// NewRedis creates a Redis-backed save repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ids := cfg.IDGenerator
	if ids == nil {
		ids = idgen.NewUUID("save")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ids:    ids,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	now := r.clock.Now().UTC()
	rec := &Record{ID: input.ID, CreatedAt: now, UpdatedAt: now, Sim: input.Sim}

	if rec.ID == "" {
		rec.ID = r.ids.Generate()
	} else {
		existing, err := r.load(ctx, rec.ID)
		switch {
		case err == nil:
			rec.CreatedAt = existing.CreatedAt
		case !errors.IsNotFound(err):
			return nil, err
		}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode save %s", rec.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, saveKeyPrefix+rec.ID, data, 0)
	pipe.ZAdd(ctx, indexKey, redis.Z{Score: float64(rec.UpdatedAt.UnixMilli()), Member: rec.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to write save").
			WithMeta("save_id", rec.ID)
	}

	slog.Info("game saved", "save_id", rec.ID, "backend", "redis")
	return &SaveOutput{Record: rec}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	rec, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Record: rec}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*Record, error) {
	data, err := r.client.Get(ctx, saveKeyPrefix+id).Bytes()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("save %s not found", id)
		}
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to read save").
			WithMeta("save_id", id)
	}
	return decodeRecord(data)
}

func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}
	ids, err := r.client.ZRevRange(ctx, indexKey, 0, stop).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to read save index")
	}
	if len(ids) == 0 {
		return &ListOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = saveKeyPrefix + id
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to read saves")
	}

	out := &ListOutput{Saves: make([]Summary, 0, len(values))}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.Warn("save index references a missing save", "save_id", ids[i])
			continue
		}
		rec, err := decodeRecord([]byte(raw))
		if err != nil {
			slog.Warn("skipping unreadable save", "save_id", ids[i], "error", err)
			continue
		}
		out.Saves = append(out.Saves, Summarize(rec))
	}
	return out, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, saveKeyPrefix+input.ID)
	pipe.ZRem(ctx, indexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to delete save").
			WithMeta("save_id", input.ID)
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("save %s not found", input.ID)
	}

	slog.Info("save deleted", "save_id", input.ID, "backend", "redis")
	return &DeleteOutput{}, nil
}

func (r *redisRepository) Repair(ctx context.Context, input *RepairInput) (*RepairOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}

	out := &RepairOutput{}
	present := make(map[string]bool)

	iter := r.client.Scan(ctx, 0, saveKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id := strings.TrimPrefix(key, saveKeyPrefix)
		out.Checked++

		data, err := r.client.Get(ctx, key).Bytes()
		if err != nil {
			if redisclient.IsNil(err) {
				continue
			}
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to read save").
				WithMeta("save_id", id)
		}
		if _, err := decodeRecord(data); err != nil {
			slog.Warn("corrupt save found", "save_id", id, "error", err)
			out.Corrupt = append(out.Corrupt, id)
			continue
		}
		present[id] = true
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to scan saves")
	}

	indexed, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to read save index")
	}
	corrupt := make(map[string]bool, len(out.Corrupt))
	for _, id := range out.Corrupt {
		corrupt[id] = true
	}
	for _, id := range indexed {
		if !present[id] && !corrupt[id] {
			out.Dangling = append(out.Dangling, id)
		}
	}

	if input.DryRun || len(out.Corrupt)+len(out.Dangling) == 0 {
		return out, nil
	}

	pipe := r.client.TxPipeline()
	for _, id := range out.Corrupt {
		pipe.Del(ctx, saveKeyPrefix+id)
		pipe.ZRem(ctx, indexKey, id)
	}
	for _, id := range out.Dangling {
		pipe.ZRem(ctx, indexKey, id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to remove broken saves")
	}
	out.Removed = len(out.Corrupt) + len(out.Dangling)

	slog.Info("saves repaired", "backend", "redis", "corrupt", len(out.Corrupt), "dangling", len(out.Dangling))
	return out, nil
}

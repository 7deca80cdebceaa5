// Package recipe provides the generation workflow: prompt construction from
// the user's pantry, a cached single-turn completion call and strict response
// parsing.
package recipe

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrychef/v2/internal/domain/recipe"
	"github.com/pantrychef/v2/internal/ports/inbound"
	"github.com/pantrychef/v2/internal/ports/outbound"
	"github.com/pantrychef/v2/pkg/errors"
)

const cacheTTL = 24 * time.Hour

// Service implements the recipe generation use case
type Service struct {
	userRepo   outbound.UserRepository
	cache      outbound.CacheRepository
	completion outbound.CompletionClient
	logger     *zap.Logger
}

// NewService creates a new recipe service. The completion client is injected;
// the service holds no global generation state.
func NewService(
	userRepo outbound.UserRepository,
	cache outbound.CacheRepository,
	completion outbound.CompletionClient,
	logger *zap.Logger,
) inbound.RecipeService {
	return &Service{
		userRepo:   userRepo,
		cache:      cache,
		completion: completion,
		logger:     logger.Named("recipe-service"),
	}
}

// Generate runs the full workflow: load the user, build the prompt, consult
// the cache, call the model once, parse strictly and fill the cache. The
// completion call is a single blocking round-trip with no retry; cancellation
// happens through ctx.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, constraints recipe.Constraints) (*recipe.Generated, error) {
	if userID == uuid.Nil {
		return nil, errors.NewValidationError("userId is required")
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find user", err)
	}
	if u == nil {
		return nil, errors.NewUserNotFoundError(userID.String())
	}

	if len(constraints.DietaryRestrictions) == 0 {
		constraints.DietaryRestrictions = u.DietaryRestrictions
	}

	prompt, err := BuildPrompt(u.PantryItems, constraints)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	key := cacheKey(prompt)
	if cached, err := s.cache.Get(ctx, key); err == nil && len(cached) > 0 {
		var out recipe.Generated
		if err := json.Unmarshal(cached, &out); err == nil {
			s.logger.Debug("Recipe cache hit", zap.String("key", key))
			return &out, nil
		}
		// unreadable cache entry, fall through to regeneration
		_ = s.cache.Delete(ctx, key)
	}

	raw, err := s.completion.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("Completion call failed", zap.Error(err))
		return nil, errors.NewExternalServiceError("completion", err)
	}

	generated, err := ParseRecipe(raw)
	if err != nil {
		s.logger.Warn("Generation output rejected",
			zap.String("code", string(errors.GetCode(err))),
			zap.Error(err),
		)
		return nil, err
	}

	if payload, err := json.Marshal(generated); err == nil {
		if err := s.cache.Set(ctx, key, payload, cacheTTL); err != nil {
			s.logger.Warn("Recipe cache write failed", zap.Error(err))
		}
	}

	s.logger.Info("Recipe generated",
		zap.String("user_id", userID.String()),
		zap.String("recipe", generated.Name),
		zap.Int("ingredients", len(generated.Ingredients)),
	)

	return generated, nil
}

// cacheKey hashes the full prompt so identical pantry and constraints reuse
// the previous generation.
func cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "recipe:prompt:" + hex.EncodeToString(sum[:])
}

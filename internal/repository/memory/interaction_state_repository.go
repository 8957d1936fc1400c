// Package memory holds volatile per-session state that does not belong in
// the database.
package memory

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"carepal-be/pkg/classify"
)

// InteractionStateRepository remembers the last classification per chat
// session, so the recommendation engine can bias suggestions toward the most
// recent resolved intent. Entries expire on their own; losing one only makes
// recommendations more generic.
type InteractionStateRepository struct {
	cache *gocache.Cache
}

func NewInteractionStateRepository() *InteractionStateRepository {
	return &InteractionStateRepository{
		cache: gocache.New(30*time.Minute, 10*time.Minute),
	}
}

func (r *InteractionStateRepository) SaveLastClassification(sessionId uuid.UUID, result classify.Result) {
	r.cache.Set(sessionId.String(), result, gocache.DefaultExpiration)
}

func (r *InteractionStateRepository) LastClassification(sessionId uuid.UUID) (classify.Result, bool) {
	v, found := r.cache.Get(sessionId.String())
	if !found {
		return classify.Result{}, false
	}
	result, ok := v.(classify.Result)
	return result, ok
}

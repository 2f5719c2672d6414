package state_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/tu-usuario/estoque-pro/internal/application/state"
	"github.com/tu-usuario/estoque-pro/pkg/logger"
)

// memStore es un KeyValueStore en memoria para los tests, con el mismo
// contrato JSON que el adaptador real.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(key string, out interface{}) bool {
	raw, ok := s.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (s *memStore) Set(key string, value interface{}) {
	raw, _ := json.Marshal(value)
	s.data[key] = raw
}

// newManager arma un Manager determinista: reloj que avanza un segundo por
// lectura e IDs secuenciales.
func newManager(t *testing.T) (*state.Manager, *memStore) {
	t.Helper()
	store := newMemStore()
	tick := 0
	seq := 0
	m := state.New(store, logger.Nop(),
		state.WithClock(func() time.Time {
			tick++
			return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC).Add(time.Duration(tick) * time.Second)
		}),
		state.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
	return m, store
}

// Package storage implementa el adaptador de persistencia clave-valor sobre
// BadgerDB: un sustrato embebido, durable entre reinicios, con los valores
// serializados en JSON.
package storage

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/tu-usuario/estoque-pro/pkg/logger"
)

// Config opciones del store.
type Config struct {
	Path       string // directorio de datos; ignorado con InMemory
	InMemory   bool   // para tests: sin tocar disco
	SyncWrites bool   // fsync por escritura; más lento, más seguro
}

// BadgerStore implementa el puerto KeyValueStore del Manager de estado.
//
// Contrato de degradación: Get devuelve false ante clave ausente o valor que
// no deserializa (el caller siembra su default); Set traga el error y lo
// loguea (el estado en memoria sigue siendo autoritativo para la sesión).
type BadgerStore struct {
	db  *badger.DB
	log *logger.Logger
}

// Open abre (o crea) la base en cfg.Path.
func Open(cfg Config, log *logger.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(cfg.SyncWrites).
		WithLogger(nil)
	if cfg.InMemory {
		opts.Dir = ""
		opts.ValueDir = ""
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: abrir badger en %q: %w", cfg.Path, err)
	}
	return &BadgerStore{db: db, log: log}, nil
}

// Close cierra la base; debe llamarse al apagar el servidor.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// Get carga y deserializa el valor bajo key. Devuelve false si la clave no
// existe o el valor guardado está corrupto.
func (s *BadgerStore) Get(key string, out interface{}) bool {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	if err != nil {
		if err != badger.ErrKeyNotFound {
			s.log.Warn().Err(err).Str("key", key).Msg("valor persistido ilegible; se usa el default")
		}
		return false
	}
	return true
}

// Set serializa y guarda value bajo key. Los errores se tragan y loguean.
func (s *BadgerStore) Set(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("no se pudo serializar la colección")
		return
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("no se pudo persistir la colección")
	}
}

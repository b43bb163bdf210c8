// Package couch persists encoded net and log documents in CouchDB, so
// imported logs survive between engine sessions.
package couch

import (
	"context"
	"os"

	_ "github.com/go-kivik/couchdb/v3"
	"github.com/go-kivik/kivik/v3"
	"github.com/joho/godotenv"
)

type Config struct {
	User    string
	Pass    string
	Address string
	Port    string
}

func (c *Config) URI() string {
	return "http://" + c.User + ":" + c.Pass + "@" + c.Address + ":" + c.Port
}

func lookupKey(key string, into *string) {
	value, ok := os.LookupEnv(key)
	if !ok {
		panic("missing env var: " + key)
	}
	*into = value
}

func LoadConfig(envFile ...string) *Config {
	var config Config
	err := godotenv.Load(envFile...)
	if err != nil {
		panic(err)
	}
	keys := []struct {
		key  string
		into *string
	}{
		{"COUCHDB_USER", &config.User},
		{"COUCHDB_PASSWORD", &config.Pass},
		{"COUCHDB_HOST", &config.Address},
		{"COUCHDB_PORT", &config.Port},
	}

	for _, k := range keys {
		lookupKey(k.key, k.into)
	}
	return &config
}

// Store holds documents produced by the petrinet and eventlog codecs. Revs
// are tracked per store instance; concurrent writers are not supported.
type Store struct {
	cancel func()
	db     *kivik.DB
	revMap map[string]string
}

func Open(uri string, name string) (*Store, error) {
	client, err := kivik.New("couch", uri)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	dbs, err := client.AllDBs(ctx)
	if err != nil {
		cancel()
		return nil, err
	}
	found := false
	for _, db := range dbs {
		if db == name {
			found = true
			break
		}
	}
	if !found {
		err = client.CreateDB(ctx, name)
		if err != nil {
			cancel()
			return nil, err
		}
	}
	return &Store{
		cancel: cancel,
		db:     client.DB(ctx, name),
		revMap: make(map[string]string),
	}, nil
}

func (s *Store) Close() error {
	s.cancel()
	return nil
}

// Put writes doc under id, updating it when a revision is already known.
func (s *Store) Put(ctx context.Context, id string, doc map[string]interface{}) error {
	if rev, ok := s.revMap[id]; ok {
		doc["_rev"] = rev
	}
	doc["_id"] = id
	rev, err := s.db.Put(ctx, id, doc)
	if err != nil {
		return err
	}
	s.revMap[id] = rev
	return nil
}

// Get fetches the document stored under id, stripped of CouchDB bookkeeping
// keys so it decodes cleanly.
func (s *Store) Get(ctx context.Context, id string) (map[string]interface{}, error) {
	var doc map[string]interface{}
	row := s.db.Get(ctx, id)
	if err := row.ScanDoc(&doc); err != nil {
		return nil, err
	}
	s.revMap[id] = row.Rev
	delete(doc, "_id")
	delete(doc, "_rev")
	return doc, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	rev, ok := s.revMap[id]
	if !ok {
		if _, err := s.Get(ctx, id); err != nil {
			return err
		}
		rev = s.revMap[id]
	}
	newRev, err := s.db.Delete(ctx, id, rev)
	if err != nil {
		return err
	}
	s.revMap[id] = newRev
	return nil
}

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const initSchema = `
  CREATE TABLE IF NOT EXISTS bridge (
    address VARCHAR(64) PRIMARY KEY,
    username TEXT,
    clientkey TEXT,
    registered_at TIMESTAMP
  );
`

// Bridge is a bridge registration saved after a successful pairing.
type Bridge struct {
	Address      string
	Username     string
	ClientKey    string
	RegisteredAt time.Time
}

type BridgeStore struct {
	logger *log.Logger
	db     *sql.DB
}

func NewBridgeStore(logger *log.Logger, db *sql.DB) (*BridgeStore, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("Error initialising bridge schema: %w", err)
	}

	return &BridgeStore{logger: logger, db: db}, nil
}

func (r *BridgeStore) Save(bridge Bridge) error {
	_, err := r.db.Exec(
		`INSERT INTO bridge (address, username, clientkey, registered_at)
     VALUES ($1, $2, $3, $4)
     ON CONFLICT(address) DO UPDATE SET username = $2, clientkey = $3, registered_at = $4;`,
		bridge.Address,
		bridge.Username,
		bridge.ClientKey,
		bridge.RegisteredAt,
	)
	if err != nil {
		return fmt.Errorf("Error saving bridge (%s): %w", bridge.Address, err)
	}
	return nil
}

func (r *BridgeStore) Get(address string) (*Bridge, error) {
	row := r.db.QueryRow("SELECT address, username, clientkey, registered_at FROM bridge WHERE address = $1", address)

	var bridge Bridge
	err := row.Scan(&bridge.Address, &bridge.Username, &bridge.ClientKey, &bridge.RegisteredAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		} else {
			return nil, fmt.Errorf("Error reading bridge (%s): %w", address, err)
		}
	}
	return &bridge, nil
}

func (r *BridgeStore) GetAll() ([]Bridge, error) {
	rows, err := r.db.Query("SELECT address, username, clientkey, registered_at FROM bridge ORDER BY address")
	if err != nil {
		return nil, fmt.Errorf("Error reading bridges: %w", err)
	}
	defer rows.Close()

	bridges := []Bridge{}

	for rows.Next() {
		var bridge Bridge
		if err := rows.Scan(&bridge.Address, &bridge.Username, &bridge.ClientKey, &bridge.RegisteredAt); err != nil {
			return nil, fmt.Errorf("Error reading bridge row: %w", err)
		}

		bridges = append(bridges, bridge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Error reading bridges: %w", err)
	}

	return bridges, nil
}

func (r *BridgeStore) Remove(address string) error {
	_, err := r.db.Exec("DELETE FROM bridge WHERE address = $1", address)
	if err != nil {
		return fmt.Errorf("Error removing bridge (%s): %w", address, err)
	}
	return nil
}

package database

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"truco-game/internal/game"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

const tableName = "truco_results"

const columns = "id, room_id, created_at, player1, player2, player3, player4, " +
	"player1_team, player2_team, player3_team, player4_team, team1_score, team2_score, winning_team, hands"

// Service stores finished match results. Supported drivers are "sqlite3"
// and "pgx".
type Service struct {
	db         *sql.DB
	m          *sync.Mutex
	driver     string
	table_name string
}

// New opens the database and makes sure the results table exists.
func New(driver, dsn string) (*Service, error) {
	if driver != "sqlite3" && driver != "pgx" {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if driver == "sqlite3" {
		// One connection keeps ":memory:" databases alive and avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	sqlStmt := `
	create table if not exists ` + tableName + ` (
		id text not null primary key,
		room_id text,
		created_at text,
		player1 text,
		player2 text,
		player3 text,
		player4 text,
		player1_team integer,
		player2_team integer,
		player3_team integer,
		player4_team integer,
		team1_score integer,
		team2_score integer,
		winning_team integer,
		hands integer
	);
	`
	if _, err := db.Exec(sqlStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("create results table: %w", err)
	}

	return &Service{
		db:         db,
		m:          &sync.Mutex{},
		driver:     driver,
		table_name: tableName,
	}, nil
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) TableName() string {
	return s.table_name
}

// rebind rewrites ? placeholders to $n for postgres.
func (s *Service) rebind(query string) string {
	if s.driver != "pgx" {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (GameResult, error) {
	var result GameResult
	err := row.Scan(
		&result.ID,
		&result.RoomID,
		&result.CreatedAt,
		&result.Player1,
		&result.Player2,
		&result.Player3,
		&result.Player4,
		&result.Player1Team,
		&result.Player2Team,
		&result.Player3Team,
		&result.Player4Team,
		&result.Team1Score,
		&result.Team2Score,
		&result.WinningTeam,
		&result.Hands)
	return result, err
}

func (s *Service) query(query string, args ...any) ([]GameResult, error) {
	rows, err := s.db.Query(s.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

func (s *Service) GetAll() ([]GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.query("SELECT " + columns + " FROM " + s.table_name + " ORDER BY created_at")
}

func (s *Service) GetByID(id string) (GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	row := s.db.QueryRow(s.rebind("SELECT "+columns+" FROM "+s.table_name+" WHERE id = ?"), id)
	return scanResult(row)
}

func (s *Service) Insert(result GameResult) error {
	s.m.Lock()
	defer s.m.Unlock()
	_, err := s.db.Exec(s.rebind("INSERT INTO "+s.table_name+" ("+columns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"),
		result.ID,
		result.RoomID,
		result.CreatedAt,
		result.Player1,
		result.Player2,
		result.Player3,
		result.Player4,
		result.Player1Team,
		result.Player2Team,
		result.Player3Team,
		result.Player4Team,
		result.Team1Score,
		result.Team2Score,
		result.WinningTeam,
		result.Hands)
	return err
}

// RecordMatch stores a finished match.
func (s *Service) RecordMatch(m game.MatchResult) error {
	return s.Insert(FromMatch(m))
}

// GetByPlayer returns every match the named player took part in, or
// sql.ErrNoRows when there is none.
func (s *Service) GetByPlayer(player_name string) ([]GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	results, err := s.query("SELECT "+columns+" FROM "+s.table_name+
		" WHERE player1 = ? OR player2 = ? OR player3 = ? OR player4 = ? ORDER BY created_at",
		player_name,
		player_name,
		player_name,
		player_name)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, sql.ErrNoRows // No results found
	}
	return results, nil
}

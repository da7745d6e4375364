package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type DefaultHistory struct {
	db *sql.DB
}

func (h *DefaultHistory) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("unable to open history: %w", err)
	}

	initStatement := `
	create table if not exists plays
	  (
		  id integer not null primary key,
		  sum text not null,
		  tune text not null,
		  event text,
		  outcome text not null,
		  started integer not null,
		  played integer not null,
		  steps integer not null
	  );
	create index if not exists plays_tune on plays (tune);
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return fmt.Errorf("unable to create history table: %w", err)
	}

	h.db = db
	return nil
}

func (h *DefaultHistory) Deinit() {
	if nil != h.db {
		h.db.Close()
	}
}

func (h *DefaultHistory) Save(p Play) error {
	_, err := h.db.Exec(
		"insert into plays(sum, tune, event, outcome, started, played, steps) values(?, ?, ?, ?, ?, ?, ?)",
		p.Sum, p.Tune, p.Event, p.Outcome, p.Started.UnixNano(), int64(p.Played), p.Steps,
	)
	if nil != err {
		return fmt.Errorf("unable to save play of %v: %w", p.Tune, err)
	}
	return nil
}

func (h *DefaultHistory) Load(name string) ([]Play, error) {
	query := "select sum, tune, event, outcome, started, played, steps from plays"
	args := []interface{}{}
	if name != "" {
		query += " where tune = ?"
		args = append(args, name)
	}
	query += " order by started, id"

	rows, err := h.db.Query(query, args...)
	if nil != err {
		return nil, fmt.Errorf("unable to load plays: %w", err)
	}
	defer rows.Close()

	plays := []Play{}
	for rows.Next() {
		var p Play
		var started, played int64
		if err := rows.Scan(&p.Sum, &p.Tune, &p.Event, &p.Outcome, &started, &played, &p.Steps); nil != err {
			return nil, fmt.Errorf("unable to read play: %w", err)
		}
		p.Started = time.Unix(0, started)
		p.Played = time.Duration(played)
		plays = append(plays, p)
	}
	return plays, rows.Err()
}

func (h *DefaultHistory) Summary() ([]Summary, error) {
	rows, err := h.db.Query(`
		select tune, outcome, count(*), sum(played) from plays
		group by tune, outcome
		order by tune, outcome`)
	if nil != err {
		return nil, fmt.Errorf("unable to summarise plays: %w", err)
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var s Summary
		var played int64
		if err := rows.Scan(&s.Tune, &s.Outcome, &s.Count, &played); nil != err {
			return nil, fmt.Errorf("unable to read summary: %w", err)
		}
		s.Played = time.Duration(played)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

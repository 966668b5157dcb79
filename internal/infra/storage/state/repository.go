package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
)

// Весь граф состояния хранится одной записью: слот -> JSON снапшот.
// Загрузка целиком при старте, полная перезапись после каждой мутации.
const tableStoreState = "store_state"

// Repository репозиторий снапшотов состояния поверх sqlite
type Repository struct {
	db   DBExecutor
	slot string
}

// NewRepository создает репозиторий для указанного слота хранения
func NewRepository(db DBExecutor, slot string) *Repository {
	return &Repository{db: db, slot: slot}
}

// EnsureSchema создает таблицу хранения, если её ещё нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS ` + tableStoreState + ` (
		slot       TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Load загружает снапшот состояния из слота.
// Возвращает ErrStateNotFound, если слот пуст (первый запуск).
func (r *Repository) Load(ctx context.Context) (*domain.State, error) {
	query, args, err := squirrel.Select("payload").
		From(tableStoreState).
		Where(squirrel.Eq{"slot": r.slot}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var payload string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan payload: %v", ErrScanRow, err)
	}

	var state domain.State
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, fmt.Errorf("%w: Load - unmarshal payload: %v", ErrDecode, err)
	}

	return &state, nil
}

// Save перезаписывает снапшот состояния в слоте
func (r *Repository) Save(ctx context.Context, state *domain.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal state: %v", ErrEncode, err)
	}

	query, args, err := squirrel.Insert(tableStoreState).
		Columns("slot", "payload", "updated_at").
		Values(r.slot, string(payload), time.Now().UTC()).
		Suffix("ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

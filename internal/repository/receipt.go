package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spendlens/spendlens/internal/common"
	"github.com/spendlens/spendlens/internal/entity"
	"github.com/spendlens/spendlens/internal/utils"
)

// Filter narrows List and the exports built on it. Zero-value fields are
// inactive. Vendor matches as a case-insensitive substring; Category
// matches exactly, case-insensitively.
type Filter struct {
	Vendor    string
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount *float64
	MaxAmount *float64
	Limit     int
	Offset    int
}

// Update carries the mutable receipt fields; nil means "leave as is".
type Update struct {
	Vendor   *string
	TxDate   *time.Time
	Amount   *float64
	Category *string
}

type ReceiptRepository interface {
	Create(ctx context.Context, r *entity.Receipt) (*entity.Receipt, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	List(ctx context.Context, f Filter) ([]*entity.Receipt, error)
	Update(ctx context.Context, id uuid.UUID, upd Update) (*entity.Receipt, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type receiptRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewReceiptRepository(db *sql.DB, logger *slog.Logger) ReceiptRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &receiptRepository{db: db, logger: logger}
}

const receiptColumns = "id, vendor, tx_date, amount, category, original_filename, created_at, updated_at"

func (r *receiptRepository) Create(ctx context.Context, rec *entity.Receipt) (*entity.Receipt, error) {
	stored := *rec
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO receipts (`+receiptColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		stored.ID.String(),
		stored.Vendor,
		utils.FormatYMD(stored.TxDate),
		stored.Amount,
		stored.Category,
		stored.OriginalFilename,
		stored.CreatedAt.Format(time.RFC3339),
		stored.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		r.logger.Error("failed to insert receipt", "error", err)
		return nil, common.NewAppError("DB_ERROR", "failed to insert receipt", err)
	}
	return &stored, nil
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+receiptColumns+` FROM receipts WHERE id = ?`, id.String())
	rec, err := scanReceipt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NewAppError("NOT_FOUND", fmt.Sprintf("receipt %s not found", id), common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to fetch receipt", "id", id, "error", err)
		return nil, common.NewAppError("DB_ERROR", "failed to fetch receipt", err)
	}
	return rec, nil
}

func (r *receiptRepository) List(ctx context.Context, f Filter) ([]*entity.Receipt, error) {
	q := `SELECT ` + receiptColumns + ` FROM receipts`
	var conds []string
	var args []any
	if f.Vendor != "" {
		conds = append(conds, "LOWER(vendor) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Vendor)+"%")
	}
	if f.Category != "" {
		conds = append(conds, "LOWER(category) = ?")
		args = append(args, strings.ToLower(f.Category))
	}
	if f.StartDate != nil {
		conds = append(conds, "tx_date >= ?")
		args = append(args, utils.FormatYMD(*f.StartDate))
	}
	if f.EndDate != nil {
		conds = append(conds, "tx_date <= ?")
		args = append(args, utils.FormatYMD(*f.EndDate))
	}
	if f.MinAmount != nil {
		conds = append(conds, "amount >= ?")
		args = append(args, *f.MinAmount)
	}
	if f.MaxAmount != nil {
		conds = append(conds, "amount <= ?")
		args = append(args, *f.MaxAmount)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY tx_date, created_at"
	if f.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, f.Limit)
		if f.Offset > 0 {
			q += " OFFSET ?"
			args = append(args, f.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		r.logger.Error("failed to list receipts", "error", err)
		return nil, common.NewAppError("DB_ERROR", "failed to list receipts", err)
	}
	defer rows.Close()

	var out []*entity.Receipt
	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, common.NewAppError("DB_ERROR", "failed to scan receipt", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewAppError("DB_ERROR", "failed to iterate receipts", err)
	}
	return out, nil
}

func (r *receiptRepository) Update(ctx context.Context, id uuid.UUID, upd Update) (*entity.Receipt, error) {
	var sets []string
	var args []any
	if upd.Vendor != nil {
		sets = append(sets, "vendor = ?")
		args = append(args, *upd.Vendor)
	}
	if upd.TxDate != nil {
		sets = append(sets, "tx_date = ?")
		args = append(args, utils.FormatYMD(*upd.TxDate))
	}
	if upd.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, *upd.Amount)
	}
	if upd.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *upd.Category)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC().Format(time.RFC3339), id.String())

	res, err := r.db.ExecContext(ctx,
		`UPDATE receipts SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		r.logger.Error("failed to update receipt", "id", id, "error", err)
		return nil, common.NewAppError("DB_ERROR", "failed to update receipt", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, common.NewAppError("NOT_FOUND", fmt.Sprintf("receipt %s not found", id), common.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM receipts WHERE id = ?`, id.String())
	if err != nil {
		r.logger.Error("failed to delete receipt", "id", id, "error", err)
		return common.NewAppError("DB_ERROR", "failed to delete receipt", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.NewAppError("NOT_FOUND", fmt.Sprintf("receipt %s not found", id), common.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReceipt(row rowScanner) (*entity.Receipt, error) {
	var (
		rec                             entity.Receipt
		idStr, txDate, created, updated string
	)
	if err := row.Scan(&idStr, &rec.Vendor, &txDate, &rec.Amount, &rec.Category, &rec.OriginalFilename, &created, &updated); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse receipt id: %w", err)
	}
	rec.ID = id
	if rec.TxDate, err = utils.ParseYMD(txDate); err != nil {
		return nil, fmt.Errorf("parse tx_date: %w", err)
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339, updated); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &rec, nil
}

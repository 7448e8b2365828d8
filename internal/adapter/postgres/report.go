package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/metrics"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/postgres"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/trm"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/uuid"
)

type ReportRepo struct {
	db Querier
	tx trm.TxManager
}

func NewReportRepo(db Querier, tx trm.TxManager) *ReportRepo {
	return &ReportRepo{db: db, tx: tx}
}

// Create stores the report and one fare_options row per option in a single
// transaction. It joins the transaction already carried by ctx, if any.
func (r *ReportRepo) Create(ctx context.Context, report models.FareReport) error {
	return r.tx.Do(ctx, func(ctx context.Context) error {
		if err := r.insertReport(ctx, report); err != nil {
			return err
		}
		return r.insertOptions(ctx, report)
	})
}

func (r *ReportRepo) insertReport(ctx context.Context, report models.FareReport) (err error) {
	const op = "reportRepo.Create"
	defer observe("insert_report", time.Now(), &err)

	request, err := json.Marshal(report.Request)
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", op, err)
	}
	results, err := json.Marshal(report.Results)
	if err != nil {
		return fmt.Errorf("%s: marshal results: %w", op, err)
	}

	query := `
		INSERT INTO fare_reports (id, place_name, destination_name, request, results, captured_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6);`

	_, err = TxorDB(ctx, r.db).Exec(ctx, query,
		report.ID.String(),
		report.Request.OriginName(),
		report.Request.DestinationName(),
		request,
		results,
		report.CapturedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return wrap.Error(ctx, types.ErrReportExists)
		}
		return wrap.Error(wrap.WithAction(ctx, types.ActionDatabaseTransactionFailed), fmt.Errorf("%s: %w", op, err))
	}
	return nil
}

func (r *ReportRepo) insertOptions(ctx context.Context, report models.FareReport) (err error) {
	const op = "reportRepo.insertOptions"
	defer observe("insert_fare_options", time.Now(), &err)

	query := `
		INSERT INTO fare_options (report_id, provider, position, fleet_label, price_text)
		VALUES ($1::uuid, $2, $3, $4, $5);`

	batch := &pgx.Batch{}
	for _, name := range report.Providers() {
		res, _ := report.Result(name)
		for i, o := range res.Options {
			batch.Queue(query, report.ID.String(), name, i, o.FleetLabel, o.PriceText)
		}
	}
	if batch.Len() == 0 {
		return nil
	}

	if err = TxorDB(ctx, r.db).SendBatch(ctx, batch).Close(); err != nil {
		return wrap.Error(wrap.WithAction(ctx, types.ActionDatabaseTransactionFailed), fmt.Errorf("%s: %w", op, err))
	}
	return nil
}

func (r *ReportRepo) Get(ctx context.Context, id uuid.UUID) (report models.FareReport, err error) {
	const op = "reportRepo.Get"
	defer observe("get_report", time.Now(), &err)

	query := `
		SELECT id::text, request, results, captured_at
		FROM fare_reports
		WHERE id = $1::uuid;`

	var (
		rawID            string
		request, results []byte
		capturedAt       time.Time
	)
	err = TxorDB(ctx, r.db).QueryRow(ctx, query, id.String()).Scan(&rawID, &request, &results, &capturedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.FareReport{}, types.ErrReportNotFound
		}
		return models.FareReport{}, fmt.Errorf("%s: %w", op, err)
	}

	return decodeReport(rawID, request, results, capturedAt)
}

func decodeReport(rawID string, request, results []byte, capturedAt time.Time) (models.FareReport, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return models.FareReport{}, fmt.Errorf("decode report id: %w", err)
	}

	var req models.TripRequest
	if err := json.Unmarshal(request, &req); err != nil {
		return models.FareReport{}, fmt.Errorf("decode request: %w", err)
	}

	var res map[string]models.ProviderResult
	if err := json.Unmarshal(results, &res); err != nil {
		return models.FareReport{}, fmt.Errorf("decode results: %w", err)
	}
	for name, pr := range res {
		if pr.Failed() {
			pr.Err = errors.New(pr.Error)
			res[name] = pr
		}
	}

	return models.NewFareReport(id, req, res, capturedAt), nil
}

// List returns one page of report summaries. Filters must be validated.
func (r *ReportRepo) List(ctx context.Context, filters models.Filters) (summaries []models.FareReportSummary, meta models.Metadata, err error) {
	const op = "reportRepo.List"
	defer observe("list_reports", time.Now(), &err)

	query := fmt.Sprintf(`
		SELECT count(*) OVER(), id::text, place_name, destination_name, results, captured_at
		FROM fare_reports
		ORDER BY %s %s, id ASC
		LIMIT $1 OFFSET $2;`, filters.SortColumn(), filters.SortDirection())

	rows, err := TxorDB(ctx, r.db).Query(ctx, query, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, models.Metadata{}, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	total := 0
	summaries = []models.FareReportSummary{}
	for rows.Next() {
		var (
			rawID   string
			s       models.FareReportSummary
			results []byte
		)
		if err := rows.Scan(&total, &rawID, &s.OriginName, &s.DestinationName, &results, &s.CapturedAt); err != nil {
			return nil, models.Metadata{}, fmt.Errorf("%s: scan: %w", op, err)
		}

		if s.ID, err = uuid.Parse(rawID); err != nil {
			return nil, models.Metadata{}, fmt.Errorf("%s: %w", op, err)
		}

		var res map[string]models.ProviderResult
		if err := json.Unmarshal(results, &res); err != nil {
			return nil, models.Metadata{}, fmt.Errorf("%s: decode results: %w", op, err)
		}
		s.OptionCounts = make(map[string]int, len(res))
		for name, pr := range res {
			s.OptionCounts[name] = len(pr.Options)
		}
		s.CapturedAt = s.CapturedAt.UTC()

		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Metadata{}, fmt.Errorf("%s: rows: %w", op, err)
	}

	return summaries, models.CalculateMetadata(total, filters.Page, filters.PageSize), nil
}

func observe(operation string, start time.Time, err *error) {
	metrics.RecordDatabaseQuery(operation, *err, time.Since(start))
}

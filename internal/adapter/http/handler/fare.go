package handler

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/uuid"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/validator"
)

type FareService interface {
	Providers() []string
	Handle(ctx context.Context, req models.TripRequest, only ...string) (models.FareReport, error)
	Get(ctx context.Context, id uuid.UUID) (models.FareReport, error)
	List(ctx context.Context, filters models.Filters) ([]models.FareReportSummary, models.Metadata, error)
	SuggestLocations(ctx context.Context, query string) ([]models.Location, error)
}

type Fare struct {
	service     FareService
	includeUber bool
	l           logger.Logger
}

// NewFare builds the fare handlers. includeUber adds the Uber branch to
// GET /ride-options.
func NewFare(service FareService, includeUber bool, l logger.Logger) *Fare {
	return &Fare{
		service:     service,
		includeUber: includeUber,
		l:           l,
	}
}

// GetFareData godoc
// @Summary      Compare fares
// @Description  Asks every configured provider (or the requested subset) for fares and returns one merged envelope. Provider failures are reported under errors, never as a failed request.
// @Tags         Fares
// @Accept       json
// @Produce      json
// @Param        request  body      dto.FareRequest  true  "Trip"
// @Success      200      {object}  models.FareEnvelope
// @Failure      400      {object}  map[string]string
// @Failure      422      {object}  map[string]any
// @Failure      500      {object}  map[string]string
// @Router       /get_fare_data [post]
func (h *Fare) GetFareData(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_fare_data")

	var req dto.FareRequest
	if err := readJSON(w, r, &req); err != nil {
		h.l.Warn(ctx, "failed to read request JSON data", "error", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	report, err := h.service.Handle(ctx, req.ToModel(), req.Providers...)
	if err != nil {
		h.fail(ctx, w, "failed to fetch fares", err)
		return
	}

	if err := writeJSON(w, http.StatusOK, models.NewFareEnvelope(report), nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "fares returned", "report_id", report.ID)
}

// RideOptions godoc
// @Summary      Ride options
// @Description  Rapido options for two place names. The Uber branch is present only when enabled in configuration.
// @Tags         Fares
// @Produce      json
// @Param        start_place        query     string  true  "Origin place name"
// @Param        destination_place  query     string  true  "Destination place name"
// @Param        pickup_lat         query     number  true  "Pickup latitude"
// @Param        pickup_lng         query     number  true  "Pickup longitude"
// @Param        drop_lat           query     number  true  "Drop latitude"
// @Param        drop_lng           query     number  true  "Drop longitude"
// @Param        providers          query     string  false "Comma separated subset of the served providers"
// @Success      200                {object}  dto.RideOptionsResponse
// @Failure      422                {object}  map[string]any
// @Router       /ride-options [get]
func (h *Fare) RideOptions(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "ride_options")

	v := validator.New()
	qs := r.URL.Query()

	q := dto.RideOptionsQuery{
		StartPlace:       readString(qs, "start_place", ""),
		DestinationPlace: readString(qs, "destination_place", ""),
		Pickup: models.Coordinates{
			Lat: readFloat(qs, "pickup_lat", v),
			Lng: readFloat(qs, "pickup_lng", v),
		},
		Drop: models.Coordinates{
			Lat: readFloat(qs, "drop_lat", v),
			Lng: readFloat(qs, "drop_lng", v),
		},
	}
	q.Validate(v)

	only := []string{types.ProviderRapido}
	if h.includeUber && slices.Contains(h.service.Providers(), types.ProviderUber) {
		only = append(only, types.ProviderUber)
	}
	if requested := readCSV(qs, "providers"); len(requested) > 0 {
		for i, name := range requested {
			requested[i] = strings.ToLower(name)
			v.Check(slices.Contains(only, requested[i]), "providers", "provider "+name+" is not served here")
		}
		v.Check(validator.Unique(requested), "providers", "must not contain duplicate values")
		only = requested
	}

	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	report, err := h.service.Handle(ctx, q.ToModel(), only...)
	if err != nil {
		h.fail(ctx, w, "failed to fetch ride options", err)
		return
	}

	if err := writeJSON(w, http.StatusOK, dto.NewRideOptionsResponse(q, report), nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

// GetReport godoc
// @Summary      Get a stored fare report
// @Tags         Fares
// @Produce      json
// @Param        report_id  path      string  true  "Report ID"
// @Success      200        {object}  models.FareEnvelope
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      503        {object}  map[string]string
// @Router       /fares/{report_id} [get]
func (h *Fare) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_fare_report")

	id, err := uuid.Parse(r.PathValue("report_id"))
	if err != nil {
		h.l.Warn(ctx, "invalid report uuid format")
		badRequestResponse(w, "invalid report uuid format")
		return
	}

	report, err := h.service.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "failed to get fare report", err)
		return
	}

	if err := writeJSON(w, http.StatusOK, models.NewFareEnvelope(report), nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

// ListReports godoc
// @Summary      List stored fare reports
// @Tags         Fares
// @Produce      json
// @Param        page       query     int     false  "Page number"  default(1)
// @Param        page_size  query     int     false  "Page size"    default(20)
// @Param        sort       query     string  false  "Sort"         Enums(-captured_at, captured_at)
// @Success      200        {object}  map[string]any
// @Failure      422        {object}  map[string]any
// @Failure      503        {object}  map[string]string
// @Router       /fares [get]
func (h *Fare) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_fare_reports")

	v := validator.New()
	qs := r.URL.Query()

	page := readInt(qs, "page", 1, v)
	pageSize := readInt(qs, "page_size", 20, v)
	sort := readString(qs, "sort", models.ReportSortSafelist[0])

	filters := models.NewReportFilters(page, pageSize, sort)
	filters.Validate(v)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	reports, meta, err := h.service.List(ctx, filters)
	if err != nil {
		h.fail(ctx, w, "failed to list fare reports", err)
		return
	}

	h.l.Debug(ctx, "listed fare reports", "total", meta.TotalRecords)

	if err := writeJSON(w, http.StatusOK, envelope{"reports": reports, "metadata": meta}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// SuggestLocations godoc
// @Summary      Suggest places
// @Description  Up to five places matching q, for filling in trip requests.
// @Tags         Locations
// @Produce      json
// @Param        q    query     string  true  "Search text, at least 3 characters"
// @Success      200  {object}  map[string][]models.Location
// @Failure      422  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /locations/suggest [get]
func (h *Fare) SuggestLocations(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "suggest_locations")

	locations, err := h.service.SuggestLocations(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.fail(ctx, w, "failed to suggest locations", err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"locations": locations}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// fail maps err to a status. Client errors are logged as warnings.
func (h *Fare) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	code := GetCode(err)
	if code >= http.StatusInternalServerError {
		h.l.Error(wrap.ErrorCtx(ctx, err), msg, err)
	} else {
		h.l.Warn(wrap.ErrorCtx(ctx, err), msg, "error", err)
	}
	errorResponse(w, code, err.Error())
}

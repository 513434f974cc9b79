package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"nursery/internal/app/caretasks"
	"nursery/internal/app/daycycle"
	"nursery/internal/app/ports"
	"nursery/internal/app/replay"
	"nursery/internal/app/status"
	"nursery/internal/app/stock"
	"nursery/internal/app/transfer"
	"nursery/internal/domain/catalog"
	"nursery/internal/domain/nursery"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	StockUC     stock.UseCase
	DayCycleUC  daycycle.UseCase
	CareTasksUC caretasks.UseCase
	TransferUC  transfer.UseCase
	ReplayUC    replay.UseCase
	StatusUC    status.UseCase
	KPI         kpiSnapshotProvider

	// AllowOrigins feeds the CORS middleware; empty allows any origin.
	AllowOrigins []string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	allow := h.AllowOrigins
	if len(allow) == 0 {
		allow = []string{"*"}
	}
	s.Use(corsMiddleware(allow))

	api := s.Group("/api")
	api.POST("/plants", h.plant)
	api.GET("/plants", h.listPlants)
	api.POST("/plants/remove-dead", h.removeDead)
	api.GET("/plants/:id", h.getPlant)
	api.POST("/plants/:id/care", h.care)
	api.POST("/days/advance", h.advanceDays)
	api.GET("/tasks", h.pendingTasks)
	api.POST("/tasks/run", h.runTasks)
	api.POST("/relocations", h.relocate)
	api.POST("/transfers", h.transfer)
	api.POST("/customers", h.registerCustomer)
	api.POST("/staff", h.registerStaff)
	api.POST("/purchases", h.purchase)
	api.GET("/journal", h.journal)
	api.GET("/status", h.status)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) plant(c context.Context, ctx *app.RequestContext) {
	var body stock.PlantRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.StockUC.Plant(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) listPlants(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StockUC.List(c, stock.ListRequest{Area: string(ctx.Query("area"))})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) getPlant(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StockUC.Get(c, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) care(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StockUC.Care(c, stock.CareRequest{PlantID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) removeDead(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StockUC.RemoveDead(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) advanceDays(c context.Context, ctx *app.RequestContext) {
	body := daycycle.Request{Days: 1}
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.DayCycleUC.Advance(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) pendingTasks(c context.Context, ctx *app.RequestContext) {
	resp, err := h.CareTasksUC.Pending(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) runTasks(c context.Context, ctx *app.RequestContext) {
	var body caretasks.RunRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.CareTasksUC.Run(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) relocate(c context.Context, ctx *app.RequestContext) {
	resp, err := h.TransferUC.Relocate(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) transfer(c context.Context, ctx *app.RequestContext) {
	var body transfer.TransferRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.TransferUC.Transfer(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) registerCustomer(c context.Context, ctx *app.RequestContext) {
	var body transfer.CustomerRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.TransferUC.RegisterCustomer(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) registerStaff(c context.Context, ctx *app.RequestContext) {
	var body transfer.StaffRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.TransferUC.RegisterStaff(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) purchase(c context.Context, ctx *app.RequestContext) {
	var body transfer.PurchaseRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.TransferUC.Purchase(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) journal(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		PlantID:      strings.TrimSpace(string(ctx.Query("plant_id"))),
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, nursery.ErrPlantNotFound),
		errors.Is(err, nursery.ErrCustomerNotFound),
		errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, nursery.ErrNotReadyForSale):
		writeErrorBody(ctx, consts.StatusConflict, "not_ready_for_sale", err.Error())
	case errors.Is(err, nursery.ErrDisplayFull):
		writeErrorBody(ctx, consts.StatusConflict, "display_full", err.Error())
	case errors.Is(err, nursery.ErrGrowingFull):
		writeErrorBody(ctx, consts.StatusConflict, "growing_full", err.Error())
	case errors.Is(err, nursery.ErrSlotOccupied):
		writeErrorBody(ctx, consts.StatusConflict, "slot_occupied", err.Error())
	case errors.Is(err, nursery.ErrAlreadyRegistered),
		errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, catalog.ErrUnknownCategory):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_category", err.Error())
	case errors.Is(err, nursery.ErrUnknownArea):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_area", err.Error())
	case errors.Is(err, nursery.ErrInvalidPosition):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_position", err.Error())
	case errors.Is(err, stock.ErrInvalidRequest),
		errors.Is(err, daycycle.ErrInvalidRequest),
		errors.Is(err, caretasks.ErrInvalidRequest),
		errors.Is(err, transfer.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, nursery.ErrInvalidDays),
		errors.Is(err, nursery.ErrInvalidParticipant):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotConfigured):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "not_configured", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

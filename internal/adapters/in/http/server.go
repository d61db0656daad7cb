package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"orderbot/internal/core/application/conversation"
	"orderbot/internal/core/application/usecases/queries"
	"orderbot/internal/generated/servers"
	"orderbot/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// UpdateHandler runs one chat update through the conversation.
type UpdateHandler interface {
	Handle(ctx context.Context, u conversation.Update) ([]conversation.Reply, error)
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for the chat webhook and the sales reports.
type Server struct {
	updates UpdateHandler

	// Query handlers
	weeklyIncomeHandler queries.GetWeeklyIncomeQueryHandler
	incomeByTypeHandler queries.GetIncomeByDishTypeQueryHandler
	dishSalesHandler    queries.GetDishSalesQueryHandler

	now func() time.Time
}

// NewServer creates a new HTTP server over the conversation and the report queries.
func NewServer(
	updates UpdateHandler,
	weeklyIncomeHandler queries.GetWeeklyIncomeQueryHandler,
	incomeByTypeHandler queries.GetIncomeByDishTypeQueryHandler,
	dishSalesHandler queries.GetDishSalesQueryHandler,
	now func() time.Time,
) *Server {
	if now == nil {
		now = time.Now
	}
	return &Server{
		updates:             updates,
		weeklyIncomeHandler: weeklyIncomeHandler,
		incomeByTypeHandler: incomeByTypeHandler,
		dishSalesHandler:    dishSalesHandler,
		now:                 now,
	}
}

// NewEcho builds an echo instance with recovery, request ids and request logging to logger.
func NewEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	}))
	return e
}

// Register mounts the operations of the OpenAPI contract on e behind the request
// validator, plus the swagger UI at /swagger/. The report operations require
// reportToken as a bearer token and answer 404 when it is empty.
func (s *Server) Register(e *echo.Echo, reportToken string) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("load openapi contract: %w", err)
	}
	if err = registerDoc(swagger); err != nil {
		return err
	}

	// Requests reach the service under any host name.
	swagger.Servers = nil
	validator, err := NewRequestValidator(swagger, reportToken)
	if err != nil {
		return err
	}

	e.Use(validator)
	servers.RegisterHandlers(e, s)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// HandleUpdate handles POST /api/v1/updates - runs one chat update and returns the replies.
func (s *Server) HandleUpdate(ctx echo.Context) error {
	var req servers.HandleUpdateJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	replies, err := s.updates.Handle(ctx.Request().Context(), toUpdate(req))
	if err != nil {
		return s.fail(ctx, err, "Failed to handle update")
	}

	return ctx.JSON(http.StatusOK, servers.UpdateResponse{
		UpdateId: ctx.Response().Header().Get(echo.HeaderXRequestID),
		Replies:  fromReplies(replies),
	})
}

// GetWeeklyIncome handles GET /api/v1/reports/weekly-income.
func (s *Server) GetWeeklyIncome(ctx echo.Context) error {
	query, err := queries.NewGetWeeklyIncomeQuery(s.now())
	if err != nil {
		return s.fail(ctx, err, "Invalid report request")
	}

	days, err := s.weeklyIncomeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to build weekly income")
	}

	return ctx.JSON(http.StatusOK, fromDailyIncome(days))
}

// GetIncomeByDishType handles GET /api/v1/reports/income-by-dish-type.
func (s *Server) GetIncomeByDishType(ctx echo.Context) error {
	rows, err := s.incomeByTypeHandler.Handle(ctx.Request().Context(), queries.NewGetIncomeByDishTypeQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to build income by dish type")
	}

	return ctx.JSON(http.StatusOK, fromTypeIncome(rows))
}

// GetDishSales handles GET /api/v1/reports/dish-sales?ranking=best|worst.
func (s *Server) GetDishSales(ctx echo.Context, params servers.GetDishSalesParams) error {
	ranking := queries.BestSellers
	if params.Ranking != nil && *params.Ranking == servers.Worst {
		ranking = queries.WorstSellers
	}

	query, err := queries.NewGetDishSalesQuery(s.now(), ranking)
	if err != nil {
		return s.fail(ctx, err, "Invalid report request")
	}

	rows, err := s.dishSalesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to build dish sales")
	}

	return ctx.JSON(http.StatusOK, fromDishSales(rows))
}

func (s *Server) fail(ctx echo.Context, err error, message string) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrStoreUnavailable),
		errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		code = http.StatusServiceUnavailable
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

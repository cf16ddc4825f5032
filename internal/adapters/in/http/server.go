// Package http exposes the order use-cases over a JSON API.
// Every order endpoint answers with the {message, code, data} envelope.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	FindOrderByIDHandler interface {
		Handle(ctx context.Context, query queries.FindOrderByIDQuery) (*order.Order, error)
	}

	FindOrdersByCustomerIDHandler interface {
		Handle(ctx context.Context, query queries.FindOrdersByCustomerIDQuery) ([]*order.Order, error)
	}

	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
	}

	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
)

// Handlers groups the use-cases served by the API.
type Handlers struct {
	CreateOrder            CreateOrderHandler
	FindOrderByID          FindOrderByIDHandler
	FindOrdersByCustomerID FindOrdersByCustomerIDHandler
	UpdateOrderStatus      UpdateOrderStatusHandler
	DeleteOrder            DeleteOrderHandler
}

// Server routes HTTP requests to the order use-cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
	echo     *echo.Echo
}

// NewServer builds the echo instance with request validation, request logging,
// metrics and the swagger UI. Metrics are registered with registry and served
// from it at /metrics.
func NewServer(
	ctx context.Context,
	handlers Handlers,
	registry *prometheus.Registry,
	logger *slog.Logger,
) (*Server, error) {
	logger = logger.With("component", "http")

	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	metrics, err := NewServerMetrics(registry)
	if err != nil {
		return nil, err
	}

	s := &Server{
		handlers: handlers,
		logger:   logger,
		echo:     echo.New(),
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true

	// The request logger sits inside the metrics middleware so it is the
	// first to see handler and routing errors.
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())
	e.Use(requestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	orders := e.Group("/orders", validator)
	orders.POST("", s.CreateOrder)
	orders.GET("/customer/:customerId", s.FindOrdersByCustomerID)
	orders.GET("/:orderId", s.FindOrderByID)
	orders.PATCH("/:orderId/status/:status", s.UpdateOrderStatus)
	orders.DELETE("/:orderId", s.DeleteOrder)

	return s, nil
}

// ServeHTTP lets the server be mounted or tested as a plain http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on address until Shutdown is called.
func (s *Server) Start(address string) error {
	if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// SetLogLevel sets the level of echo's own logger.
func (s *Server) SetLogLevel(level log.Lvl) {
	s.echo.Logger.SetLevel(level)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "Invalid request body"))
	}

	cmd, err := req.toCommand()
	if err != nil {
		return writeError(c, s.logger, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, success(http.StatusCreated, "Order created successfully", toOrderResponse(created)))
}

// FindOrderByID handles GET /orders/:orderId.
func (s *Server) FindOrderByID(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	query, err := queries.NewFindOrderByIDQuery(orderID)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	found, err := s.handlers.FindOrderByID.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, success(http.StatusOK, "Order found successfully", toOrderResponse(found)))
}

// FindOrdersByCustomerID handles GET /orders/customer/:customerId.
func (s *Server) FindOrdersByCustomerID(c echo.Context) error {
	customerID, err := pathUUID(c, "customerId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	query, err := queries.NewFindOrdersByCustomerIDQuery(customerID)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	found, err := s.handlers.FindOrdersByCustomerID.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, success(http.StatusOK, "Orders found successfully", toOrderResponses(found)))
}

// UpdateOrderStatus handles PATCH /orders/:orderId/status/:status.
// The status segment accepts the wire value or the constant name.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	var status string
	if err = bindPathParam(c, "status", &status); err != nil {
		return writeError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("status", err))
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, success(http.StatusOK, "Order status updated successfully", cmd.Status().String()))
}

// DeleteOrder handles DELETE /orders/:orderId.
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, success(http.StatusOK, "Order deleted successfully", orderID.String()))
}

func bindPathParam(c echo.Context, name string, dest *string) error {
	return runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), dest,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var raw string
	if err := bindPathParam(c, name, &raw); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelWarn
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

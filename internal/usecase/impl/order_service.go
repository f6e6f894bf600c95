package impl

import (
	"context"
	"log/slog"

	"sparestock/internal/domain/entity"
	domainerrors "sparestock/internal/domain/errors"
	"sparestock/internal/domain/repository"
	"sparestock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. Every stock mutation
// happens inside a transaction together with its order write, so the ledger
// and the inventory can never drift apart.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

// PlaceOrder prices the purchase, decrements stock and appends the order in
// one transaction. The decrement is conditional at the SQL level, so two
// concurrent purchases of the last units cannot both succeed.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if input.Address == "" {
		return nil, errors.Wrap(domainerrors.ErrAddressRequired, "order rejected")
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrStockUnavailable, "order rejected")
			}

			return errors.Wrap(err, "failed to load product for order")
		}

		if err := productRepo.DecrementStock(ctx, product.ID, quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return errors.Wrap(domainerrors.ErrStockUnavailable, "order rejected")
			}

			return errors.Wrap(err, "failed to decrement stock")
		}

		unitPrice := entity.QuoteUnitPrice(product.Price, quantity)

		order = &entity.Order{
			UserID: userID,
			Items: []entity.OrderItem{{
				ProductID: product.ID,
				Name:      product.Name,
				UnitPrice: unitPrice,
				Quantity:  quantity,
			}},
			TotalAmount: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
			Address:     input.Address,
			Status:      entity.OrderStatusProcessing,
		}

		return repoFactory.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		srv.logger.Warn("Failed to place order",
			slog.Any("userID", userID),
			slog.Any("productID", input.ProductID),
			slog.Int("quantity", quantity),
			slog.Any("error", err))

		return nil, err
	}

	srv.logger.Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("userID", userID),
		slog.String("total", order.TotalAmount.String()))

	return order, nil
}

// CancelOrder restores each line item's stock and marks the order Cancelled,
// all in one transaction. A second cancel finds the order already Cancelled
// and fails before touching stock, so restoration happens exactly once.
func (srv *orderService) CancelOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "cancel failed")
			}

			return errors.Wrap(err, "failed to load order for cancel")
		}

		if found.Status == entity.OrderStatusCancelled {
			return errors.Wrap(domainerrors.ErrOrderAlreadyCancelled, "cancel failed")
		}

		productRepo := repoFactory.ProductRepo()
		for _, item := range found.Items {
			quantity := item.Quantity
			if quantity < 1 {
				quantity = 1
			}

			// Deleted products are skipped silently: the units have nowhere
			// to return to.
			if err := productRepo.IncrementStock(ctx, item.ProductID, quantity); err != nil {
				return errors.Wrap(err, "failed to restore stock")
			}
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatusCancelled); err != nil {
			// A concurrent cancel beat us to the transition. Rolling back
			// undoes our stock restore, so the units return exactly once.
			if errors.Is(err, repository.ErrOrderStatusUnchanged) {
				return errors.Wrap(domainerrors.ErrOrderAlreadyCancelled, "cancel failed")
			}

			return errors.Wrap(err, "failed to mark order cancelled")
		}

		found.Status = entity.OrderStatusCancelled
		order = found

		return nil
	})
	if err != nil {
		srv.logger.Warn("Failed to cancel order", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Info("Order cancelled", slog.Any("orderID", orderID))

	return order, nil
}

// MyOrders returns the caller's own orders, newest first.
func (srv *orderService) MyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		srv.logger.Error("Failed to list user orders", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// AllOrders returns the full order ledger, newest first.
func (srv *orderService) AllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		srv.logger.Error("Failed to list orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ComputeStats partitions the ledger by status: cancelled orders contribute
// their TotalAmount to LostRevenue, everything else to TotalEarnings.
func (srv *orderService) ComputeStats(ctx context.Context) (*usecase.Stats, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		srv.logger.Error("Failed to load orders for stats", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load orders for stats")
	}

	stats := &usecase.Stats{
		TotalEarnings: decimal.Zero,
		LostRevenue:   decimal.Zero,
	}
	for _, order := range orders {
		if order.Status == entity.OrderStatusCancelled {
			stats.CancelledCount++
			stats.LostRevenue = stats.LostRevenue.Add(order.TotalAmount)

			continue
		}

		stats.OrderCount++
		stats.TotalEarnings = stats.TotalEarnings.Add(order.TotalAmount)
	}

	return stats, nil
}

package services

import (
	"testing"

	"wholesale_manager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderUpdateConfirmedIsImmutable(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	svc := NewOrderService(orderRepo, new(mockOrderItemRepo))

	orderRepo.On("GetByID", uint(1)).Return(&models.Order{
		ID: 1, Status: string(models.OrderConfirmed),
	}, nil)

	err := svc.Update(&models.Order{ID: 1, TotalAmount: 999})
	assert.ErrorIs(t, err, ErrOrderImmutable)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestOrderUpdateDraftAllowed(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	svc := NewOrderService(orderRepo, new(mockOrderItemRepo))

	orderRepo.On("GetByID", uint(1)).Return(&models.Order{
		ID: 1, Status: string(models.OrderDraft),
	}, nil)
	orderRepo.On("Update", mock.AnythingOfType("*models.Order")).Return(nil)

	require.NoError(t, svc.Update(&models.Order{ID: 1}))
	orderRepo.AssertExpectations(t)
}

func TestOrderCancelDraftDeletesCascade(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	svc := NewOrderService(orderRepo, new(mockOrderItemRepo))

	orderRepo.On("GetByID", uint(1)).Return(&models.Order{
		ID: 1, Status: string(models.OrderDraft),
	}, nil)
	orderRepo.On("DeleteDraft", uint(1)).Return(nil)

	require.NoError(t, svc.Cancel(1))
	orderRepo.AssertExpectations(t)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestOrderCancelConfirmedFlipsStatusOnly(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	svc := NewOrderService(orderRepo, new(mockOrderItemRepo))

	orderRepo.On("GetByID", uint(1)).Return(&models.Order{
		ID: 1, Status: string(models.OrderConfirmed),
	}, nil)
	orderRepo.On("UpdateStatus", uint(1), models.OrderCancelled).Return(nil)

	require.NoError(t, svc.Cancel(1))
	orderRepo.AssertExpectations(t)
	orderRepo.AssertNotCalled(t, "DeleteDraft", mock.Anything)
}

func TestOrderCancelAlreadyCancelled(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	svc := NewOrderService(orderRepo, new(mockOrderItemRepo))

	orderRepo.On("GetByID", uint(1)).Return(&models.Order{
		ID: 1, Status: string(models.OrderCancelled),
	}, nil)

	assert.Error(t, svc.Cancel(1))
}

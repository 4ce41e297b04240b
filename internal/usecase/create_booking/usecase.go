package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRM-RentalService/internal/availability"
	"github.com/m04kA/BRM-RentalService/internal/domain"
	boatRepo "github.com/m04kA/BRM-RentalService/internal/infra/storage/boat"
	"github.com/m04kA/BRM-RentalService/pkg/ptr"
	"github.com/m04kA/BRM-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/BRM-RentalService/pkg/txmanager"
)

// UseCase use case для создания бронирования
// Единственная точка записи бронирований: повторная проверка доступности и
// вставка выполняются в одной сериализуемой транзакции, поэтому два
// конкурирующих запроса на пересекающиеся даты не могут пройти оба
type UseCase struct {
	bookingRepo  BookingRepository
	boatRepo     BoatRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	boatRepo BoatRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		boatRepo:     boatRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: boat=%d, dates=%s..%s, guests=%d",
		req.BoatID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем даты до календарных дней
	startDate := availability.NormalizeDate(req.StartDate)
	endDate := availability.NormalizeDate(req.EndDate)

	// 3. Валидация дат относительно текущего момента
	now := uc.timeProvider.Now()
	if err := validateDates(startDate, endDate, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем лодку; её отсутствие выявляется до оценки конфликтов
	boat, err := uc.boatRepo.GetByID(ctx, req.BoatID)
	if err != nil {
		if errors.Is(err, boatRepo.ErrBoatNotFound) {
			uc.logger.Warn("CreateBooking: boat id=%d not found", req.BoatID)
			return nil, ErrBoatNotFound
		}
		uc.logger.Error("CreateBooking: failed to get boat id=%d: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: failed to get boat: %v", ErrInternal, err)
	}

	// 5. Проверяем вместимость
	if req.Guests > boat.Capacity {
		uc.logger.Warn("CreateBooking: %d guests exceed capacity %d of boat id=%d",
			req.Guests, boat.Capacity, boat.ID)
		return nil, fmt.Errorf("%w: boat fits %d guests", ErrTooManyGuests, boat.Capacity)
	}

	// 6. Считаем итоговую стоимость
	days := rentalDays(startDate, endDate)
	totalPrice := float64(days) * boat.PricePerDay

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Повторная проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем актуальные активные бронирования лодки на интервал
		// с блокировкой строк (FOR UPDATE); клиентскому списку доверять нельзя
		filter := domain.BookingsFilter{
			BoatID:           ptr.Ptr(req.BoatID),
			DateFrom:         ptr.Ptr(startDate),
			DateTo:           ptr.Ptr(endDate),
			IncludeCancelled: false,
		}

		bookings, err := uc.bookingRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 7.2. Проверяем пересечения с активными бронированиями
		if conflict := availability.FindConflict(req.BoatID, startDate, endDate, bookings); conflict != nil {
			uc.logger.Warn("CreateBooking: boat id=%d busy %s..%s", req.BoatID,
				conflict.StartDate.Format(domain.DateFormat), conflict.EndDate.Format(domain.DateFormat))
			return &ConflictError{
				ConflictStart: conflict.StartDate,
				ConflictEnd:   conflict.EndDate,
			}
		}

		// 7.3. Сохраняем бронирование
		booking := &domain.Booking{
			BoatID:        req.BoatID,
			StartDate:     startDate,
			EndDate:       endDate,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Guests:        req.Guests,
			TotalPrice:    totalPrice,
			Status:        domain.StatusConfirmed,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// PostgreSQL отклонил сериализуемую транзакцию из-за конкурентной записи:
		// для клиента это конфликт дат, а не временный сбой
		if isSerializationConflict(err) {
			uc.logger.Warn("CreateBooking: serialization conflict for boat id=%d", req.BoatID)
			return nil, ErrDatesNotAvailable
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f", result.ID, result.TotalPrice)

	// 8. Best-effort обновление счётчиков лодки; сбой логируется,
	// но уже зафиксированное бронирование не откатывает
	if err := uc.boatRepo.IncrementBookingStats(ctx, boat.ID, totalPrice); err != nil {
		uc.logger.Error("CreateBooking: failed to update stats for boat id=%d: %v", boat.ID, err)
	}

	// 9. Конвертируем в response
	return &Response{
		ID:            result.ID,
		BoatID:        result.BoatID,
		BoatName:      boat.Name,
		StartDate:     result.StartDate,
		EndDate:       result.EndDate,
		Days:          days,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
		Guests:        result.Guests,
		TotalPrice:    result.TotalPrice,
		Status:        string(result.Status),
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// isSerializationConflict распознает отказ сериализуемой транзакции
// независимо от того, какой из менеджеров транзакций используется
func isSerializationConflict(err error) bool {
	return errors.Is(err, txmanager.ErrSerialization) ||
		errors.Is(err, simpletxmanager.ErrSerialization)
}
